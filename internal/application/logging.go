package application

import (
	"io"
	"log/slog"

	"github.com/golang-cz/devslog"
)

func setupLogging(environment string, w io.Writer) {
	var handler slog.Handler

	switch environment {
	case "development":
		handler = devslog.NewHandler(w, &devslog.Options{
			MaxSlicePrintSize: 4,
			SortKeys:          true,
			TimeFormat:        "[04:05]",
			NewLineAfterLog:   true,
			DebugColor:        devslog.Magenta,
			StringerFormatter: true,
		})
	case "test":
		handler = slog.DiscardHandler
	default:
		handler = slog.NewJSONHandler(w, nil)
	}

	slog.SetDefault(slog.New(handler))
}
