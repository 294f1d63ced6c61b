package kmp_test

import (
	"encoding/json"
	"math/rand/v2"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/samber/lo"

	"github.com/zhulik/wildkmp/pkg/kmp"
)

type literalComparator struct{}

func (literalComparator) Matches(a, b byte) bool { return a == b }
func (literalComparator) Separator() byte        { return '|' }

func randomSequence(r *rand.Rand, size int, alphabet string) []byte {
	seq := make([]byte, size)
	for i := range seq {
		seq[i] = alphabet[r.IntN(len(alphabet))]
	}

	return seq
}

var _ = Describe("Search", func() {
	symbols := kmp.Default()

	DescribeTable("known matches",
		func(text, pattern string, special bool, want []int) {
			Expect(kmp.SearchString(text, pattern, symbols, special)).To(Equal(want))
			Expect(kmp.BruteForce([]byte(text), []byte(pattern), symbols)).To(Equal(want))
		},
		Entry("overlapping matches", "ABABABA", "ABA", false, []int{0, 2, 4}),
		Entry("overlapping matches, special", "ABABABA", "ABA", true, []int{0, 2, 4}),
		Entry("textbook example", "AABAACAADAABAABA", "AABA", false, []int{0, 9, 12}),
		Entry("textbook example, special", "AABAACAADAABAABA", "AABA", true, []int{0, 9, 12}),
		Entry("leading wildcard", "XYZAB", "?B", true, []int{3}),
		Entry("wildcard in the middle", "AABAABBAB", "A??B", true, []int{3}),
		Entry("wildcards only", "ABC", "??", true, []int{0, 1}),
		Entry("no occurrence", "AAAA", "B", false, nil),
		Entry("pattern longer than text", "AB", "ABC", false, nil),
		Entry("pattern longer than text, special", "AB", "A?C", true, nil),
	)

	When("the pattern has a wildcard", func() {
		It("never reports offsets outside the text in base mode", func() {
			Expect(kmp.SearchString("AAA", "A?A", symbols, false)).To(Equal([]int{0}))
			Expect(kmp.BruteForce([]byte("AAA"), []byte("A?A"), symbols)).To(Equal([]int{0}))
		})

		It("over-reports in base mode and matches brute force in special mode", func() {
			text, pattern := []byte("BDBCAAB"), []byte("B?")

			base := lo.Must(kmp.Search(text, pattern, symbols, false))
			special := lo.Must(kmp.Search(text, pattern, symbols, true))
			brute := kmp.BruteForce(text, pattern, symbols)

			Expect(brute).To(Equal([]int{0, 2}))
			Expect(special).To(Equal(brute))
			Expect(base).To(Equal([]int{0, 1, 2, 3, 4, 5}))
			Expect(base).To(ContainElements(brute))
		})
	})

	It("agrees with brute force for random wildcard-free inputs", func() {
		r := rand.New(rand.NewPCG(3, 4)) //nolint:gosec

		for range 500 {
			alphabet := []string{"AB", "ABCD"}[r.IntN(2)]
			text := randomSequence(r, 1+r.IntN(60), alphabet)
			pattern := randomSequence(r, 1+r.IntN(len(text)), alphabet)
			brute := kmp.BruteForce(text, pattern, symbols)

			Expect(kmp.Search(text, pattern, symbols, false)).To(Equal(brute))
			Expect(kmp.Search(text, pattern, symbols, true)).To(Equal(brute))
		}
	})

	It("matches brute force in special mode for random patterns with wildcards", func() {
		r := rand.New(rand.NewPCG(5, 6)) //nolint:gosec

		for range 500 {
			alphabet := []string{"AB", "ABCD"}[r.IntN(2)]
			text := randomSequence(r, 1+r.IntN(60), alphabet)
			pattern := randomSequence(r, 1+r.IntN(len(text)), alphabet)

			for _, i := range r.Perm(len(pattern))[:1+r.IntN(len(pattern))] {
				pattern[i] = kmp.DefaultWildcard
			}

			Expect(kmp.Search(text, pattern, symbols, true)).To(Equal(kmp.BruteForce(text, pattern, symbols)))
		}
	})

	It("matches brute force in special mode when the text holds wildcards", func() {
		r := rand.New(rand.NewPCG(7, 8)) //nolint:gosec

		for range 2000 {
			text := randomSequence(r, 1+r.IntN(24), "AB?")
			pattern := randomSequence(r, 1+r.IntN(8), "AB?")

			Expect(kmp.Search(text, pattern, symbols, true)).To(Equal(kmp.BruteForce(text, pattern, symbols)),
				"text %q pattern %q", text, pattern)
		}
	})

	DescribeTable("text wildcards in special mode",
		func(text, pattern string, expected []int) {
			Expect(kmp.SearchString(text, pattern, symbols, true)).To(Equal(expected))
		},
		Entry("wildcard against a pattern symbol", "A?BB", "?AB", []int{0}),
		Entry("several text wildcards", "BAB?AB?A??", "A?BA", []int{1, 3, 4, 6}),
		Entry("literal pattern", "A?A", "AB", []int{0}),
	)

	It("returns the same result on repeated calls", func() {
		text, pattern := []byte("ABA?ABAABA"), []byte("AB?")

		first := lo.Must(kmp.Search(text, pattern, symbols, true))
		second := lo.Must(kmp.Search(text, pattern, symbols, true))

		Expect(second).To(Equal(first))
	})

	It("reports either nothing or offset zero when pattern and text have equal length", func() {
		Expect(kmp.SearchString("ABCA", "A??A", symbols, true)).To(Equal([]int{0}))
		Expect(kmp.SearchString("ABCA", "ABCA", symbols, false)).To(Equal([]int{0}))
		Expect(kmp.SearchString("ABCA", "ABCB", symbols, false)).To(BeEmpty())
	})

	It("uses the whole pattern for comparators without wildcard knowledge", func() {
		Expect(kmp.SearchString("ABABA", "ABA", literalComparator{}, true)).To(Equal([]int{0, 2}))
	})

	Describe("preconditions", func() {
		It("rejects an empty pattern", func() {
			_, err := kmp.SearchString("ABC", "", symbols, false)
			Expect(err).To(MatchError(kmp.ErrEmptyPattern))
		})

		It("rejects a separator inside the pattern", func() {
			_, err := kmp.SearchString("ABC", "A#", symbols, true)
			Expect(err).To(MatchError(kmp.ErrSeparatorInInput))
		})

		It("rejects a separator inside the text", func() {
			_, err := kmp.SearchString("A#C", "A", symbols, false)
			Expect(err).To(MatchError(kmp.ErrSeparatorInInput))
		})
	})
})

var _ = Describe("Scan", func() {
	It("maps full-length borders to text offsets", func() {
		data := []byte("ABA#ABABA")
		table := kmp.BuildBorders(data, kmp.Exact('#'))

		Expect(kmp.Scan(table, 3)).To(Equal([]int{0, 2}))
	})
})

var _ = Describe("Find", func() {
	symbols := kmp.Default()

	DescribeTable("dispatches on mode",
		func(mode kmp.Mode) {
			Expect(kmp.Find(mode, []byte("XYZAB"), []byte("?B"), symbols)).To(Equal([]int{3}))
		},
		Entry("base", kmp.ModeBase),
		Entry("special", kmp.ModeSpecial),
		Entry("brute force", kmp.ModeBruteForce),
	)

	It("rejects an empty pattern in brute force mode", func() {
		_, err := kmp.Find(kmp.ModeBruteForce, []byte("ABC"), nil, symbols)
		Expect(err).To(MatchError(kmp.ErrEmptyPattern))
	})

	It("rejects unknown modes", func() {
		_, err := kmp.Find(kmp.Mode(42), []byte("ABC"), []byte("A"), symbols)
		Expect(err).To(MatchError(kmp.ErrUnknownMode))
	})
})

var _ = Describe("ParseMode", func() {
	DescribeTable("known names",
		func(name string, want kmp.Mode) {
			Expect(kmp.ParseMode(name)).To(Equal(want))
		},
		Entry("base", "base", kmp.ModeBase),
		Entry("kmp", "kmp", kmp.ModeBase),
		Entry("special", "special", kmp.ModeSpecial),
		Entry("kmp-special", "kmp-special", kmp.ModeSpecial),
		Entry("brute", "brute", kmp.ModeBruteForce),
		Entry("naive", "naive", kmp.ModeBruteForce),
	)

	It("rejects unknown names", func() {
		_, err := kmp.ParseMode("boyer-moore")
		Expect(err).To(MatchError(kmp.ErrUnknownMode))
	})

	It("round-trips through String", func() {
		for _, mode := range []kmp.Mode{kmp.ModeBase, kmp.ModeSpecial, kmp.ModeBruteForce} {
			Expect(kmp.ParseMode(mode.String())).To(Equal(mode))
		}
	})
	It("decodes from JSON by name", func() {
		var request struct {
			Mode kmp.Mode `json:"mode"`
		}

		Expect(json.Unmarshal([]byte(`{"mode":"kmp-special"}`), &request)).To(Succeed())
		Expect(request.Mode).To(Equal(kmp.ModeSpecial))

		Expect(json.Marshal(request)).To(MatchJSON(`{"mode":"special"}`))
		Expect(json.Unmarshal([]byte(`{"mode":"fast"}`), &request)).To(MatchError(kmp.ErrUnknownMode))
	})
})
