package application

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/zhulik/pal"
	"github.com/zhulik/wildkmp/internal/commands"
	"github.com/zhulik/wildkmp/internal/core"
	"github.com/zhulik/wildkmp/internal/locker"
	"github.com/zhulik/wildkmp/internal/results"
	"github.com/zhulik/wildkmp/internal/sweep"
	"github.com/zhulik/wildkmp/internal/upload"
)

// NewCLI builds the command line application. Logs go to stderr, command
// output to stdout.
func NewCLI(config *core.Config) *pal.Pal {
	setupLogging(config.Environment, os.Stderr)

	return pal.New(
		pal.Provide(config),
		locker.Provide(config),
		upload.Provide(config),
		results.Provide(),
		sweep.Provide(),
		commands.Provide(),
	).
		InitTimeout(1 * time.Minute).
		HealthCheckTimeout(5 * time.Second).
		ShutdownTimeout(1 * time.Minute).
		InjectSlog()
}

func RunCLI() {
	config := &core.Config{}
	if err := config.Init(context.Background()); err != nil {
		slog.Error("failed to initialize config", "error", err)
		os.Exit(1)
	}

	p := NewCLI(config)

	err := p.Run(context.Background())
	if err != nil {
		slog.Error("failed to run application", "error", err)
		os.Exit(1)
	}
}
