package main

import (
	"context"
	"fmt"
	"os"

	"work-hours/internal/api"
	"work-hours/internal/cli"
	"work-hours/internal/config"
	"work-hours/internal/domain"
	"work-hours/internal/logging"
	"work-hours/internal/services"
)

func main() {
	// Load configuration from .env file and environment variables
	loader := config.NewLoader()
	cfg, err := loader.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	// Create store based on environment
	factory := NewStoreFactory(getEnvironment(), cfg)
	store, err := factory.CreateStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating store: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()
	logging.Debugf("using database at %s\n", cfg.GetDatabasePath())

	// Load entries and contract into the service layer. Configured contract
	// values serve as defaults until a contract record exists.
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Application.Timeout)
	defer cancel()

	defaults := domain.ContractConfig{
		ContractHoursPerMonth: cfg.Contract.HoursPerMonth,
		HourlyRate:            cfg.Contract.HourlyRate,
		ExtraHourlyRate:       cfg.Contract.ExtraHourlyRate,
	}
	container, err := services.NewServiceContainer(ctx, store, defaults)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading entries: %v\n", err)
		os.Exit(1)
	}

	apiInstance := api.New(container)

	root := cli.NewRootCommand(apiInstance, cfg)
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
