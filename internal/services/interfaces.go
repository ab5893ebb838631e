package services

import (
	"context"

	"work-hours/internal/domain"
)

// TimesheetService owns the ordered shift entry collection and the contract
// configuration singleton for the running session. All mutations go through
// it; persistence is write-through and best-effort.
type TimesheetService interface {
	// Entry operations
	AddEntry(ctx context.Context, date, start, end string) (domain.ShiftEntry, error)
	UpdateEntry(ctx context.Context, key int64, date, start, end string) error
	RemoveEntry(ctx context.Context, key int64) error
	GetEntry(key int64) (domain.ShiftEntry, error)
	ListEntries() []domain.ShiftEntry

	// Edit draft operations: at most one entry is under edit at a time
	BeginEdit(key int64) (domain.ShiftEntry, error)
	CommitEdit(ctx context.Context, date, start, end string) error
	CancelEdit()
	EditingKey() (int64, bool)

	// Contract operations
	Contract() domain.ContractConfig
	UpdateContract(ctx context.Context, cfg domain.ContractConfig) error
}

// ReportingService derives reporting snapshots from entries and contract.
// Stateless; every call recomputes from its inputs.
type ReportingService interface {
	Summarize(entries []domain.ShiftEntry, cfg domain.ContractConfig) domain.Summary
}

// ServiceContainer bundles the services behind one constructor-injected unit
type ServiceContainer struct {
	Timesheet TimesheetService
	Reporting ReportingService
}
