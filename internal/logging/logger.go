package logging

import (
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
)

// Init installs the default logger: JSON lines for machine consumption,
// or a tinted console handler when LOG_FORMAT=text.
func Init() {
	var handler slog.Handler
	if os.Getenv("LOG_FORMAT") == "text" {
		handler = tint.NewHandler(os.Stderr, &tint.Options{
			Level:      slog.LevelInfo,
			TimeFormat: time.Kitchen,
		})
	} else {
		handler = slog.NewJSONHandler(os.Stderr, nil)
	}
	slog.SetDefault(slog.New(handler))
}
