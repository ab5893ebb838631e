package cli

import (
	"context"

	"work-hours/internal/api"
)

// SummaryCommand handles the summary command
type SummaryCommand struct {
	api api.API
	app *App
}

// NewSummaryCommand creates a new summary command handler
func NewSummaryCommand(app *App) *SummaryCommand {
	return &SummaryCommand{api: app.api, app: app}
}

// Execute prints the aggregated totals and pay breakdown for all entries
func (c *SummaryCommand) Execute(ctx context.Context) error {
	summary := c.api.Summarize()
	return c.app.renderer.WriteSummary(c.app.out, summary, c.api.GetContract())
}
