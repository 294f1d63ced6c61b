package api

import (
	"context"
	"log/slog"

	"github.com/labstack/echo/v5"
	"github.com/labstack/echo/v5/middleware"
	"github.com/zhulik/wildkmp/internal/core"
)

type Echo struct {
	*echo.Echo
}

func (e *Echo) Init(_ context.Context) error {
	e.Echo = echo.New()
	e.Logger = slog.Default()

	e.Pre(middleware.RemoveTrailingSlash())
	e.Use(
		Logger(),
		middleware.Recover(),
		middleware.BodyLimit(core.MaxRequestSize),
		ErrorRenderer(),
	)

	return nil
}
