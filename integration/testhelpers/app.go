package testhelpers

import (
	"bytes"
	"context"
	"fmt"
	"math/rand/v2"
	"net/http"
	"os"
	"time"

	"github.com/samber/lo"
	"github.com/zhulik/pal"
	"github.com/zhulik/wildkmp/internal/application"
	"github.com/zhulik/wildkmp/internal/commands"
	"github.com/zhulik/wildkmp/internal/core"
)

func randomPort() int {
	return 10000 + rand.IntN(10000) //nolint:gosec
}

func newConfig(resultsPath string) *core.Config {
	return &core.Config{
		Environment:     "test",
		Wildcard:        "?",
		Separator:       "#",
		ResultsPath:     resultsPath,
		BenchRuns:       1,
		Seed:            1,
		Locker:          core.LockerLocal,
		RedisAddress:    "localhost:6379",
		Port:            randomPort(),
		HealthCheckPort: randomPort(),
	}
}

// Server is a running search service.
type Server struct {
	cancel          context.CancelFunc
	port            int
	healthCheckPort int
}

func NewServer() *Server {
	ctx, cancel := context.WithCancel(context.Background())

	config := newConfig("")
	lo.Must0(config.Init(ctx))

	p := application.NewServer(config)
	lo.Must0(p.Init(ctx))

	go func() {
		lo.Must0(p.Run(ctx))
	}()

	time.Sleep(100 * time.Millisecond)

	return &Server{
		cancel:          cancel,
		port:            config.Port,
		healthCheckPort: config.HealthCheckPort,
	}
}

func (s *Server) Stop() {
	s.cancel()
}

func (s *Server) URL(path string) string {
	return fmt.Sprintf("http://localhost:%d%s", s.port, path)
}

func (s *Server) HealthCheckURL() string {
	return fmt.Sprintf("http://localhost:%d/healthz", s.healthCheckPort)
}

func (s *Server) Post(ctx context.Context, path, body string) *http.Response {
	req := lo.Must(http.NewRequestWithContext(ctx, http.MethodPost, s.URL(path), bytes.NewBufferString(body)))
	req.Header.Set("Content-Type", "application/json")

	return lo.Must(http.DefaultClient.Do(req))
}

// CLI is an initialized command line application writing results to a
// temporary folder.
type CLI struct {
	pal         *pal.Pal
	resultsPath string
}

func NewCLI(ctx context.Context) *CLI {
	resultsPath := lo.Must(os.MkdirTemp("/tmp", "wildkmp-"))

	config := newConfig(resultsPath)
	lo.Must0(config.Init(ctx))

	p := application.NewCLI(config)
	lo.Must0(p.Init(ctx))

	return &CLI{pal: p, resultsPath: resultsPath}
}

func (c *CLI) Stop() {
	lo.Must0(os.RemoveAll(c.resultsPath))
}

func (c *CLI) ResultsPath() string {
	return c.resultsPath
}

// Run executes args as if given on the command line and returns the output.
func (c *CLI) Run(ctx context.Context, args ...string) (string, error) {
	var output bytes.Buffer

	cmd := pal.MustInvoke[*commands.Runner](ctx, c.pal).Command()
	cmd.Writer = &output

	err := cmd.Run(ctx, append([]string{"wildkmp"}, args...))

	return output.String(), err
}
