package application

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/zhulik/pal"
	"github.com/zhulik/wildkmp/internal/api"
	"github.com/zhulik/wildkmp/internal/core"
)

// NewServer builds the search service. It only needs the configuration, result
// storage is not wired.
func NewServer(config *core.Config) *pal.Pal {
	setupLogging(config.Environment, os.Stdout)

	return pal.New(
		api.Provide(),
		pal.Provide(config),
	).
		InitTimeout(1*time.Minute).
		HealthCheckTimeout(5*time.Second).
		ShutdownTimeout(1*time.Minute).
		InjectSlog().
		RunHealthCheckServer(fmt.Sprintf("0.0.0.0:%d", config.HealthCheckPort), "/healthz")
}

func RunServer() {
	config := &core.Config{}
	if err := config.Init(context.Background()); err != nil {
		slog.Error("failed to initialize config", "error", err)
		os.Exit(1)
	}

	p := NewServer(config)

	err := p.Run(context.Background())
	if err != nil {
		slog.Error("failed to run application", "error", err)
		os.Exit(1)
	}
}
