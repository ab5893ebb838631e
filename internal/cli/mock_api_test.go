package cli

import (
	"context"
	"fmt"

	"work-hours/internal/api"
	"work-hours/internal/domain"
	"work-hours/internal/errors"
	"work-hours/internal/services"
)

// mockAPI implements the api.API interface for testing
type mockAPI struct {
	entries  []domain.ShiftEntry
	nextKey  int64
	contract domain.ContractConfig
	editKey  *int64
}

// newMockAPI creates a new mock API instance
func newMockAPI() *mockAPI {
	return &mockAPI{
		nextKey:  1,
		contract: domain.DefaultContractConfig(),
	}
}

func (m *mockAPI) AddEntry(ctx context.Context, date, start, end string) (*domain.ShiftEntry, error) {
	if date == "" || start == "" || end == "" {
		return nil, errors.NewValidationError("missing required fields", nil)
	}
	entry := domain.NewShiftEntry(date, start, end)
	entry.Key = m.nextKey
	m.nextKey++
	m.entries = append(m.entries, entry)
	return &entry, nil
}

func (m *mockAPI) GetEntry(key int64) (*domain.ShiftEntry, error) {
	for i := range m.entries {
		if m.entries[i].Key == key {
			entry := m.entries[i]
			return &entry, nil
		}
	}
	return nil, errors.NewNotFoundError("shift entry", fmt.Sprintf("%d", key))
}

func (m *mockAPI) ListEntries() []domain.ShiftEntry {
	snapshot := make([]domain.ShiftEntry, len(m.entries))
	copy(snapshot, m.entries)
	return snapshot
}

func (m *mockAPI) DeleteEntry(ctx context.Context, key int64) error {
	for i := range m.entries {
		if m.entries[i].Key == key {
			m.entries = append(m.entries[:i], m.entries[i+1:]...)
			if m.editKey != nil && *m.editKey == key {
				m.editKey = nil
			}
			return nil
		}
	}
	return nil
}

func (m *mockAPI) BeginEdit(key int64) (*domain.ShiftEntry, error) {
	entry, err := m.GetEntry(key)
	if err != nil {
		return nil, err
	}
	k := key
	m.editKey = &k
	return entry, nil
}

func (m *mockAPI) CommitEdit(ctx context.Context, date, start, end string) error {
	if m.editKey == nil {
		return errors.NewInvalidInputError("edit", nil, "no edit in progress")
	}
	for i := range m.entries {
		if m.entries[i].Key == *m.editKey {
			m.entries[i].Date = date
			m.entries[i].Start = start
			m.entries[i].End = end
			m.entries[i].Recompute()
			m.editKey = nil
			return nil
		}
	}
	return errors.NewNotFoundError("shift entry", fmt.Sprintf("%d", *m.editKey))
}

func (m *mockAPI) CancelEdit() {
	m.editKey = nil
}

func (m *mockAPI) EditingKey() (int64, bool) {
	if m.editKey == nil {
		return 0, false
	}
	return *m.editKey, true
}

func (m *mockAPI) GetContract() domain.ContractConfig {
	return m.contract
}

func (m *mockAPI) UpdateContract(ctx context.Context, cfg domain.ContractConfig) error {
	if !cfg.IsValid() {
		return errors.NewValidationError("contract fields cannot be negative", nil)
	}
	m.contract = cfg
	return nil
}

func (m *mockAPI) Summarize() domain.Summary {
	var totalHours float64
	days := make(map[string]struct{})
	for _, entry := range m.entries {
		totalHours += entry.HoursWorked
		days[entry.Date] = struct{}{}
	}
	pay := services.ComputePay(totalHours, m.contract)
	return domain.Summary{
		TotalHours:       totalHours,
		RegularHours:     pay.RegularHours,
		ExtraHours:       pay.ExtraHours,
		UniqueDaysWorked: len(days),
		RegularPay:       pay.RegularPay,
		ExtraPay:         pay.ExtraPay,
		TotalPay:         pay.TotalPay,
	}
}

var _ api.API = (*mockAPI)(nil)
