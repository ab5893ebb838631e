package cli

import (
	"context"

	"work-hours/internal/api"
)

// ListCommand handles the list command
type ListCommand struct {
	api api.API
	app *App
}

// NewListCommand creates a new list command handler
func NewListCommand(app *App) *ListCommand {
	return &ListCommand{api: app.api, app: app}
}

// Execute prints all shift entries in the order they were recorded
func (c *ListCommand) Execute(ctx context.Context) error {
	entries := c.api.ListEntries()
	return c.app.renderer.WriteEntries(c.app.out, entries)
}
