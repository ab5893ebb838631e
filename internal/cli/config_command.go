package cli

import (
	"context"
	"fmt"

	"work-hours/internal/api"
	"work-hours/internal/domain"
)

// ConfigCommand handles the config command
type ConfigCommand struct {
	api api.API
	app *App
}

// NewConfigCommand creates a new config command handler
func NewConfigCommand(app *App) *ConfigCommand {
	return &ConfigCommand{api: app.api, app: app}
}

// ContractChanges holds the optional field updates for the contract.
// A nil field keeps the current value.
type ContractChanges struct {
	ContractHoursPerMonth *float64
	HourlyRate            *float64
	ExtraHourlyRate       *float64
}

// Execute shows the contract configuration, applying any changes first
func (c *ConfigCommand) Execute(ctx context.Context, changes ContractChanges) error {
	cfg := c.api.GetContract()

	if changes.ContractHoursPerMonth != nil || changes.HourlyRate != nil || changes.ExtraHourlyRate != nil {
		updated := domain.ContractConfig{
			ContractHoursPerMonth: cfg.ContractHoursPerMonth,
			HourlyRate:            cfg.HourlyRate,
			ExtraHourlyRate:       cfg.ExtraHourlyRate,
		}
		if changes.ContractHoursPerMonth != nil {
			updated.ContractHoursPerMonth = *changes.ContractHoursPerMonth
		}
		if changes.HourlyRate != nil {
			updated.HourlyRate = *changes.HourlyRate
		}
		if changes.ExtraHourlyRate != nil {
			updated.ExtraHourlyRate = *changes.ExtraHourlyRate
		}

		if err := c.api.UpdateContract(ctx, updated); err != nil {
			return c.app.errors.Handle("update contract", err)
		}
		cfg = updated
	}

	fmt.Fprintln(c.app.out, "Contract configuration")
	fmt.Fprintf(c.app.out, "  Hours per month:   %.2f\n", cfg.ContractHoursPerMonth)
	fmt.Fprintf(c.app.out, "  Hourly rate:       %s%.2f\n", c.app.config.Display.Currency, cfg.HourlyRate)
	fmt.Fprintf(c.app.out, "  Extra hourly rate: %s%.2f\n", c.app.config.Display.Currency, cfg.ExtraHourlyRate)
	return nil
}
