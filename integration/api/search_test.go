package api_test

import (
	"context"
	"io"
	"net/http"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/samber/lo"
	"github.com/zhulik/wildkmp/integration/testhelpers"
)

var _ = Describe("Search service", Ordered, func() {
	var server *testhelpers.Server

	BeforeAll(func() {
		server = testhelpers.NewServer()
	})

	AfterAll(func() {
		server.Stop()
	})

	It("reports healthy", func(ctx context.Context) {
		req := lo.Must(http.NewRequestWithContext(ctx, http.MethodGet, server.HealthCheckURL(), nil))
		resp := lo.Must(http.DefaultClient.Do(req))
		defer resp.Body.Close()

		Expect(resp.StatusCode).To(Equal(http.StatusOK))
	})

	It("finds wildcard patterns", func(ctx context.Context) {
		resp := server.Post(ctx, "/search", `{"text":"AABAABBAB","pattern":"A??B"}`)
		defer resp.Body.Close()

		Expect(resp.StatusCode).To(Equal(http.StatusOK))
		Expect(io.ReadAll(resp.Body)).To(MatchJSON(`{"mode":"special","offsets":[3]}`))
	})

	It("builds border tables", func(ctx context.Context) {
		resp := server.Post(ctx, "/borders", `{"sequence":"ABABABA","special":true}`)
		defer resp.Body.Close()

		Expect(resp.StatusCode).To(Equal(http.StatusOK))
		Expect(io.ReadAll(resp.Body)).To(MatchJSON(`{"table":[0,0,0,0,0,0,5]}`))
	})

	It("rejects the separator", func(ctx context.Context) {
		resp := server.Post(ctx, "/search", `{"text":"A#A","pattern":"A"}`)
		defer resp.Body.Close()

		Expect(resp.StatusCode).To(Equal(http.StatusBadRequest))
	})
})
