package cli

import (
	"context"
	"fmt"
	"strconv"

	"work-hours/internal/api"
	"work-hours/internal/errors"
	"work-hours/internal/validation"
)

// EditCommand handles the edit command
type EditCommand struct {
	api       api.API
	app       *App
	validator *validation.ShiftValidator
}

// NewEditCommand creates a new edit command handler
func NewEditCommand(app *App) *EditCommand {
	return &EditCommand{
		api:       app.api,
		app:       app,
		validator: validation.NewShiftValidator(),
	}
}

// Execute edits the entry with the given key. Fields not supplied keep their
// current values, so a single field can be changed in one invocation.
func (c *EditCommand) Execute(ctx context.Context, keyArg, date, start, end string) error {
	key, err := parseKey(keyArg)
	if err != nil {
		return c.app.errors.Handle("edit entry", err)
	}

	draft, err := c.api.BeginEdit(key)
	if err != nil {
		return c.app.errors.Handle("edit entry", err)
	}

	if date == "" {
		date = draft.Date
	}
	if start == "" {
		start = draft.Start
	}
	if end == "" {
		end = draft.End
	}

	if err := c.validator.ValidateFormats(date, start, end); err != nil {
		c.api.CancelEdit()
		return c.app.errors.Handle("edit entry", err)
	}

	if err := c.api.CommitEdit(ctx, date, start, end); err != nil {
		c.api.CancelEdit()
		return c.app.errors.Handle("edit entry", err)
	}

	updated, err := c.api.GetEntry(key)
	if err != nil {
		return c.app.errors.Handle("edit entry", err)
	}

	fmt.Fprintf(c.app.out, "Updated entry %d: %s %s - %s (%.2f hours)\n",
		updated.Key, updated.Date, updated.Start, updated.End, updated.HoursWorked)
	return nil
}

// parseKey converts a command argument into an entry key
func parseKey(arg string) (int64, error) {
	key, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, errors.NewInvalidInputError("key", arg, "must be a positive integer")
	}
	if key <= 0 {
		return 0, errors.NewInvalidInputError("key", arg, "must be a positive integer")
	}
	return key, nil
}
