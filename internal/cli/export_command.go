package cli

import (
	"context"

	"work-hours/internal/api"
	"work-hours/internal/errors"
)

// ExportCommand handles the export command
type ExportCommand struct {
	api api.API
	app *App
}

// NewExportCommand creates a new export command handler
func NewExportCommand(app *App) *ExportCommand {
	return &ExportCommand{api: app.api, app: app}
}

// Execute writes all entries plus the summary in the requested format
func (c *ExportCommand) Execute(ctx context.Context, format string) error {
	entries := c.api.ListEntries()
	summary := c.api.Summarize()

	switch format {
	case "csv":
		return c.app.renderer.WriteCSV(c.app.out, entries, summary, c.api.GetContract())
	case "text":
		if err := c.app.renderer.WriteEntries(c.app.out, entries); err != nil {
			return err
		}
		return c.app.renderer.WriteSummary(c.app.out, summary, c.api.GetContract())
	default:
		return errors.NewInvalidInputError("format", format, "unsupported format")
	}
}
