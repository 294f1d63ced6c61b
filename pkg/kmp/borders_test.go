package kmp_test

import (
	"math/rand/v2"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/zhulik/wildkmp/pkg/kmp"
)

var _ = Describe("BuildBorders", func() {
	symbols := kmp.Default()

	DescribeTable("border tables",
		func(seq string, want []int) {
			Expect(kmp.BuildBorders([]byte(seq), symbols)).To(Equal(want))
		},
		Entry("single symbol", "A", []int{0}),
		Entry("no borders", "ABCD", []int{0, 0, 0, 0}),
		Entry("periodic", "ABABABA", []int{0, 0, 1, 2, 3, 4, 5}),
		Entry("textbook", "AABAACAADAABAABA", []int{0, 1, 0, 1, 2, 0, 1, 2, 0, 1, 2, 3, 4, 5, 3, 4}),
		Entry("wildcard extends a border", "AB?A", []int{0, 0, 1, 1}),
		Entry("all wildcards", "???", []int{0, 1, 2}),
	)

	It("returns an empty table for an empty sequence", func() {
		Expect(kmp.BuildBorders(nil, symbols)).To(BeEmpty())
	})

	It("keeps entry 0 at zero and entry i at most i", func() {
		r := rand.New(rand.NewPCG(1, 2)) //nolint:gosec

		for range 200 {
			seq := make([]byte, 1+r.IntN(40))
			for i := range seq {
				seq[i] = "AB?"[r.IntN(3)]
			}

			for _, table := range [][]int{kmp.BuildBorders(seq, symbols), kmp.BuildBordersSpecial(seq, symbols)} {
				Expect(table).To(HaveLen(len(seq)))
				Expect(table[0]).To(BeZero())

				for i, v := range table {
					Expect(v).To(BeNumerically("<=", i))
					Expect(v).To(BeNumerically(">=", 0))
				}
			}
		}
	})
})

var _ = Describe("BuildBordersSpecial", func() {
	symbols := kmp.Default()

	DescribeTable("corrected tables",
		func(seq string, want []int) {
			Expect(kmp.BuildBordersSpecial([]byte(seq), symbols)).To(Equal(want))
		},
		Entry("periodic", "ABABABA", []int{0, 0, 0, 0, 0, 0, 5}),
		Entry("textbook", "AABAACAADAABAABA", []int{0, 1, 0, 0, 2, 0, 0, 2, 0, 0, 0, 0, 0, 5, 0, 4}),
		Entry("wildcard", "AB?A", []int{0, 0, 1, 1}),
		Entry("single symbol", "A", []int{0}),
	)
})

var _ = Describe("CorrectBorders", func() {
	It("zeroes entries extended by their successor without touching the input", func() {
		table := []int{0, 1, 2, 0, 1}

		Expect(kmp.CorrectBorders(table)).To(Equal([]int{0, 0, 2, 0, 1}))
		Expect(table).To(Equal([]int{0, 1, 2, 0, 1}))
	})
})
