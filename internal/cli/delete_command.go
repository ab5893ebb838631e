package cli

import (
	"context"
	"fmt"

	"work-hours/internal/api"
)

// DeleteCommand handles the delete command
type DeleteCommand struct {
	api api.API
	app *App
}

// NewDeleteCommand creates a new delete command handler
func NewDeleteCommand(app *App) *DeleteCommand {
	return &DeleteCommand{api: app.api, app: app}
}

// Execute deletes the entry with the given key. Deleting an unknown key is
// not an error.
func (c *DeleteCommand) Execute(ctx context.Context, keyArg string) error {
	key, err := parseKey(keyArg)
	if err != nil {
		return c.app.errors.Handle("delete entry", err)
	}

	_, getErr := c.api.GetEntry(key)
	if err := c.api.DeleteEntry(ctx, key); err != nil {
		return c.app.errors.Handle("delete entry", err)
	}

	if getErr != nil {
		fmt.Fprintf(c.app.out, "No entry %d\n", key)
		return nil
	}

	fmt.Fprintf(c.app.out, "Deleted entry %d\n", key)
	return nil
}
