package services

import (
	"context"

	"work-hours/internal/domain"
	"work-hours/internal/repository/sqlite"
)

// NewServiceContainer wires the services over the given store
func NewServiceContainer(ctx context.Context, store sqlite.Store, defaults domain.ContractConfig) (*ServiceContainer, error) {
	timesheet, err := NewTimesheetService(ctx, store, defaults)
	if err != nil {
		return nil, err
	}

	return &ServiceContainer{
		Timesheet: timesheet,
		Reporting: NewReportingService(),
	}, nil
}
