package core_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/zhulik/wildkmp/internal/core"
)

var _ = Describe("Config", func() {
	var cfg *core.Config

	BeforeEach(func() {
		cfg = &core.Config{
			Environment: "test",
			Wildcard:    "?",
			Separator:   "#",
			BenchRuns:   5,
			Locker:      core.LockerLocal,
		}
	})

	It("accepts a manually initialized config", func(ctx context.Context) {
		Expect(cfg.Init(ctx)).To(Succeed())

		wildcard, ok := cfg.Symbols().Wildcard()
		Expect(ok).To(BeTrue())
		Expect(wildcard).To(Equal(byte('?')))
		Expect(cfg.Symbols().Separator()).To(Equal(byte('#')))
	})

	DescribeTable("rejects invalid settings",
		func(mutate func(*core.Config)) {
			mutate(cfg)
			Expect(cfg.Validate()).To(MatchError(core.ErrInvalidConfig))
		},
		Entry("long wildcard", func(c *core.Config) { c.Wildcard = "**" }),
		Entry("empty separator", func(c *core.Config) { c.Separator = "" }),
		Entry("wildcard equal to separator", func(c *core.Config) { c.Separator = "?" }),
		Entry("letter wildcard", func(c *core.Config) { c.Wildcard = "A" }),
		Entry("letter separator", func(c *core.Config) { c.Separator = "Z" }),
		Entry("no runs", func(c *core.Config) { c.BenchRuns = 0 }),
		Entry("unknown locker", func(c *core.Config) { c.Locker = "etcd" }),
		Entry("endpoint without bucket", func(c *core.Config) { c.ResultsS3Endpoint = "localhost:9000" }),
	)
})
