package api

import (
	"context"

	"work-hours/internal/domain"
	"work-hours/internal/services"
)

// API defines the interface for all shift entry, edit and reporting
// operations exposed to the CLI layer.
type API interface {
	// Entry operations
	AddEntry(ctx context.Context, date, start, end string) (*domain.ShiftEntry, error)
	GetEntry(key int64) (*domain.ShiftEntry, error)
	ListEntries() []domain.ShiftEntry
	DeleteEntry(ctx context.Context, key int64) error

	// Edit operations
	BeginEdit(key int64) (*domain.ShiftEntry, error)
	CommitEdit(ctx context.Context, date, start, end string) error
	CancelEdit()
	EditingKey() (int64, bool)

	// Contract operations
	GetContract() domain.ContractConfig
	UpdateContract(ctx context.Context, cfg domain.ContractConfig) error

	// Reporting
	Summarize() domain.Summary
}

type apiImpl struct {
	services *services.ServiceContainer
}

// New creates a new API instance over the given service container.
func New(container *services.ServiceContainer) API {
	return &apiImpl{services: container}
}

func (a *apiImpl) AddEntry(ctx context.Context, date, start, end string) (*domain.ShiftEntry, error) {
	entry, err := a.services.Timesheet.AddEntry(ctx, date, start, end)
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

func (a *apiImpl) GetEntry(key int64) (*domain.ShiftEntry, error) {
	entry, err := a.services.Timesheet.GetEntry(key)
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

func (a *apiImpl) ListEntries() []domain.ShiftEntry {
	return a.services.Timesheet.ListEntries()
}

func (a *apiImpl) DeleteEntry(ctx context.Context, key int64) error {
	return a.services.Timesheet.RemoveEntry(ctx, key)
}

func (a *apiImpl) BeginEdit(key int64) (*domain.ShiftEntry, error) {
	entry, err := a.services.Timesheet.BeginEdit(key)
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

func (a *apiImpl) CommitEdit(ctx context.Context, date, start, end string) error {
	return a.services.Timesheet.CommitEdit(ctx, date, start, end)
}

func (a *apiImpl) CancelEdit() {
	a.services.Timesheet.CancelEdit()
}

func (a *apiImpl) EditingKey() (int64, bool) {
	return a.services.Timesheet.EditingKey()
}

func (a *apiImpl) GetContract() domain.ContractConfig {
	return a.services.Timesheet.Contract()
}

func (a *apiImpl) UpdateContract(ctx context.Context, cfg domain.ContractConfig) error {
	return a.services.Timesheet.UpdateContract(ctx, cfg)
}

// Summarize recomputes the summary from the current entries and contract.
func (a *apiImpl) Summarize() domain.Summary {
	return a.services.Reporting.Summarize(
		a.services.Timesheet.ListEntries(),
		a.services.Timesheet.Contract(),
	)
}
