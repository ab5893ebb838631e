package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"work-hours/internal/api"
	"work-hours/internal/config"
)

// RootCommand represents the base command when called without any subcommands
type RootCommand struct {
	cmd    *cobra.Command
	api    api.API
	config *config.Config
}

// NewRootCommand creates the root cobra command with global flags
func NewRootCommand(apiInstance api.API, cfg *config.Config) *RootCommand {
	root := &RootCommand{
		api:    apiInstance,
		config: cfg,
	}

	root.cmd = &cobra.Command{
		Use:   "wh",
		Short: "A command-line work hours tracker",
		Long: `Work Hours (wh) is a command-line application for recording shifts
and calculating monthly pay against a contract.

FEATURES:
  • Record shifts by date with start and end times
  • Overnight shifts wrap past midnight automatically
  • Edit and delete recorded entries
  • Monthly summary with an overtime pay split against contract hours
  • Export entries and summary to CSV
  • Fully configurable via environment variables and command-line flags

EXAMPLES:
  wh add --date 2024-01-15 --start 09:00 --end 17:30   # Record a shift
  wh add                                               # Record today's default shift (14:00-18:00)
  wh list                                              # List all recorded entries
  wh edit 3 --end 19:00                                # Change one field of entry 3
  wh delete 3                                          # Delete entry 3
  wh summary                                           # Totals and pay breakdown
  wh config --hours 160 --rate 12.50                   # Update the contract
  wh export --format csv > hours.csv                   # Export to CSV file

CONFIGURATION:
  Configuration follows this priority order: command-line flags > environment variables > defaults

  Database Configuration:
    WH_DB_DIR                              Database directory (default: ~/.wh)
    WH_DB_FILENAME                         Database filename (default: wh.db)
    WH_DB_QUERY_TIMEOUT                    Query timeout (default: 10s)
    WH_DB_WRITE_TIMEOUT                    Write timeout (default: 5s)

  Contract Configuration:
    WH_CONTRACT_HOURS                      Contract hours per month (default: 40)
    WH_HOURLY_RATE                         Hourly rate within contract (default: 7.65)
    WH_EXTRA_HOURLY_RATE                   Hourly rate beyond contract (default: 9)

  Display Configuration:
    WH_CURRENCY                            Currency symbol (default: €)

  Application Configuration:
    WH_APP_TIMEOUT                         Application timeout (default: 60s)
    WH_DEBUG                               Enable debug logging (default: false)

GETTING HELP:
  wh [command] --help                      # Get help for any specific command`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return root.getConfigFromFlags()
		},
	}

	root.addGlobalFlags()
	root.addSubcommands()

	return root
}

// Execute runs the root command
func (r *RootCommand) Execute() error {
	return r.cmd.Execute()
}

// addGlobalFlags adds global configuration flags
func (r *RootCommand) addGlobalFlags() {
	flags := r.cmd.PersistentFlags()

	flags.String("db-dir", "", "Database directory (overrides WH_DB_DIR)")
	flags.String("db-filename", "", "Database filename (overrides WH_DB_FILENAME)")
	flags.Duration("db-query-timeout", 0, "Database query timeout (overrides WH_DB_QUERY_TIMEOUT)")
	flags.Duration("db-write-timeout", 0, "Database write timeout (overrides WH_DB_WRITE_TIMEOUT)")

	flags.String("currency", "", "Currency symbol for pay output (overrides WH_CURRENCY)")

	flags.Duration("app-timeout", 0, "Application timeout (overrides WH_APP_TIMEOUT)")
	flags.Bool("verbose", false, "Enable verbose output")
}

// addSubcommands adds all CLI subcommands to the root command
func (r *RootCommand) addSubcommands() {
	addCmd := &cobra.Command{
		Use:   "add",
		Short: "Record a new shift entry",
		Long: `Record a shift for a date with start and end times.

The date defaults to today; start and end default to the usual
afternoon shift. An end time earlier than the start time means the
shift ran past midnight.

Examples:
  wh add --date 2024-01-15 --start 09:00 --end 17:30
  wh add --start 22:00 --end 02:00     # Overnight shift, 4 hours
  wh add                               # Today, 14:00 - 18:00`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), r.getAppTimeout())
			defer cancel()

			date, _ := cmd.Flags().GetString("date")
			start, _ := cmd.Flags().GetString("start")
			end, _ := cmd.Flags().GetString("end")

			addHandler := NewAddCommand(NewApp(r.api, r.config))
			return addHandler.Execute(ctx, date, start, end)
		},
	}
	addCmd.Flags().String("date", "", "Shift date in YYYY-MM-DD format (default: today)")
	addCmd.Flags().String("start", "14:00", "Shift start time in HH:MM format")
	addCmd.Flags().String("end", "18:00", "Shift end time in HH:MM format")

	editCmd := &cobra.Command{
		Use:   "edit [key]",
		Short: "Edit a recorded entry",
		Long: `Edit the entry with the given key. Only the supplied fields change;
the rest keep their current values. Worked hours are recalculated.

Examples:
  wh edit 3 --end 19:00
  wh edit 3 --date 2024-01-16 --start 10:00 --end 18:00`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), r.getAppTimeout())
			defer cancel()

			date, _ := cmd.Flags().GetString("date")
			start, _ := cmd.Flags().GetString("start")
			end, _ := cmd.Flags().GetString("end")

			editHandler := NewEditCommand(NewApp(r.api, r.config))
			return editHandler.Execute(ctx, args[0], date, start, end)
		},
	}
	editCmd.Flags().String("date", "", "New shift date in YYYY-MM-DD format")
	editCmd.Flags().String("start", "", "New start time in HH:MM format")
	editCmd.Flags().String("end", "", "New end time in HH:MM format")

	deleteCmd := &cobra.Command{
		Use:   "delete [key]",
		Short: "Delete a recorded entry",
		Long: `Delete the entry with the given key. Deleting an entry that does not
exist is not an error.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), r.getAppTimeout())
			defer cancel()

			deleteHandler := NewDeleteCommand(NewApp(r.api, r.config))
			return deleteHandler.Execute(ctx, args[0])
		},
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List recorded entries",
		Long:  "List all shift entries in the order they were recorded.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), r.getAppTimeout())
			defer cancel()

			listHandler := NewListCommand(NewApp(r.api, r.config))
			return listHandler.Execute(ctx)
		},
	}

	summaryCmd := &cobra.Command{
		Use:   "summary",
		Short: "Show totals and pay breakdown",
		Long: `Show total hours, days worked and the pay breakdown. Hours up to the
monthly contract are paid at the regular rate, hours beyond it at the
extra rate.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), r.getAppTimeout())
			defer cancel()

			summaryHandler := NewSummaryCommand(NewApp(r.api, r.config))
			return summaryHandler.Execute(ctx)
		},
	}

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Show or update the contract configuration",
		Long: `Show the contract configuration. Supplying flags updates the named
fields first.

Examples:
  wh config                            # Show current contract
  wh config --hours 160 --rate 12.50   # Update hours and rate`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), r.getAppTimeout())
			defer cancel()

			var changes ContractChanges
			if cmd.Flags().Changed("hours") {
				v, _ := cmd.Flags().GetFloat64("hours")
				changes.ContractHoursPerMonth = &v
			}
			if cmd.Flags().Changed("rate") {
				v, _ := cmd.Flags().GetFloat64("rate")
				changes.HourlyRate = &v
			}
			if cmd.Flags().Changed("extra-rate") {
				v, _ := cmd.Flags().GetFloat64("extra-rate")
				changes.ExtraHourlyRate = &v
			}

			configHandler := NewConfigCommand(NewApp(r.api, r.config))
			return configHandler.Execute(ctx, changes)
		},
	}
	configCmd.Flags().Float64("hours", 0, "Contract hours per month")
	configCmd.Flags().Float64("rate", 0, "Hourly rate within contract hours")
	configCmd.Flags().Float64("extra-rate", 0, "Hourly rate beyond contract hours")

	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "Export entries and summary",
		Long: `Export all entries followed by the summary in the specified format.

Supported formats:
  csv  - Comma-separated values
  text - The list and summary tables

Example:
  wh export --format csv > hours.csv`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), r.getAppTimeout())
			defer cancel()

			format, _ := cmd.Flags().GetString("format")

			exportHandler := NewExportCommand(NewApp(r.api, r.config))
			return exportHandler.Execute(ctx, format)
		},
	}
	exportCmd.Flags().String("format", "csv", "Export format (csv or text)")

	r.cmd.AddCommand(
		addCmd,
		editCmd,
		deleteCmd,
		listCmd,
		summaryCmd,
		configCmd,
		exportCmd,
	)
}

// getAppTimeout returns the configured application timeout
func (r *RootCommand) getAppTimeout() time.Duration {
	if r.config != nil {
		return r.config.Application.Timeout
	}
	return 60 * time.Second
}

// getConfigFromFlags updates the configuration with values from command-line flags
func (r *RootCommand) getConfigFromFlags() error {
	if r.config == nil {
		return fmt.Errorf("configuration not initialized")
	}

	flags := r.cmd.PersistentFlags()

	if dbDir, _ := flags.GetString("db-dir"); dbDir != "" {
		r.config.Database.Dir = dbDir
	}
	if dbFilename, _ := flags.GetString("db-filename"); dbFilename != "" {
		r.config.Database.Filename = dbFilename
	}
	if queryTimeout, _ := flags.GetDuration("db-query-timeout"); queryTimeout > 0 {
		r.config.Database.QueryTimeout = queryTimeout
	}
	if writeTimeout, _ := flags.GetDuration("db-write-timeout"); writeTimeout > 0 {
		r.config.Database.WriteTimeout = writeTimeout
	}

	if currency, _ := flags.GetString("currency"); currency != "" {
		r.config.Display.Currency = currency
	}

	if appTimeout, _ := flags.GetDuration("app-timeout"); appTimeout > 0 {
		r.config.Application.Timeout = appTimeout
	}
	if verbose, _ := flags.GetBool("verbose"); verbose {
		r.config.Application.Verbose = verbose
	}

	return nil
}
