package cli

import (
	"context"
	"fmt"

	"work-hours/internal/api"
	"work-hours/internal/validation"
)

// AddCommand handles the add command
type AddCommand struct {
	api       api.API
	app       *App
	validator *validation.ShiftValidator
}

// NewAddCommand creates a new add command handler
func NewAddCommand(app *App) *AddCommand {
	return &AddCommand{
		api:       app.api,
		app:       app,
		validator: validation.NewShiftValidator(),
	}
}

// Execute records a new shift entry for the given date and times
func (c *AddCommand) Execute(ctx context.Context, date, start, end string) error {
	if date == "" {
		date = today()
	}

	if err := c.validator.ValidateFormats(date, start, end); err != nil {
		return c.app.errors.Handle("add entry", err)
	}

	entry, err := c.api.AddEntry(ctx, date, start, end)
	if err != nil {
		return c.app.errors.Handle("add entry", err)
	}

	fmt.Fprintf(c.app.out, "Added entry %d: %s %s - %s (%.2f hours)\n",
		entry.Key, entry.Date, entry.Start, entry.End, entry.HoursWorked)
	return nil
}
