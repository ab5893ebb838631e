package cli

import (
	"io"
	"os"
	"time"

	"work-hours/internal/api"
	"work-hours/internal/config"
	"work-hours/internal/report"
)

// timeNow is a variable that can be replaced in tests
var timeNow = time.Now

// App bundles the dependencies the command handlers share
type App struct {
	api      api.API
	config   *config.Config
	renderer *report.Renderer
	out      io.Writer
	errors   *ErrorHandler
}

// NewApp creates a new CLI application instance with dependency injection
func NewApp(apiInstance api.API, cfg *config.Config) *App {
	return &App{
		api:      apiInstance,
		config:   cfg,
		renderer: report.NewRenderer(cfg.Display.Currency),
		out:      os.Stdout,
		errors:   NewErrorHandler(),
	}
}

// today returns the current date in the entry date format
func today() string {
	return timeNow().Format("2006-01-02")
}
