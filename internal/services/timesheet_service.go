package services

import (
	"context"
	"fmt"

	"work-hours/internal/domain"
	"work-hours/internal/errors"
	"work-hours/internal/logging"
	"work-hours/internal/repository/sqlite"
	"work-hours/internal/validation"
)

// timesheetServiceImpl implements the TimesheetService interface.
//
// The entry collection lives in memory and is the source of truth for the
// session; every successful mutation is written through to the store.
// A failed write is reported and the in-memory state kept, so the tracker
// stays usable even when durability is lost.
type timesheetServiceImpl struct {
	store     sqlite.Store
	mapper    *domain.Mapper
	validator *validation.ShiftValidator

	entries  []domain.ShiftEntry
	nextKey  int64
	contract domain.ContractConfig
	editKey  *int64
}

// NewTimesheetService creates a TimesheetService backed by the given store.
// Entries and contract are loaded up front; an absent contract record falls
// back to the supplied defaults.
func NewTimesheetService(ctx context.Context, store sqlite.Store, defaults domain.ContractConfig) (TimesheetService, error) {
	s := &timesheetServiceImpl{
		store:     store,
		mapper:    domain.NewMapper(),
		validator: validation.NewShiftValidator(),
		contract:  defaults,
		nextKey:   1,
	}

	dbEntries, err := store.ListEntries(ctx)
	if err != nil {
		return nil, err
	}
	s.entries = s.mapper.ShiftEntry.FromDatabaseSlice(dbEntries)
	for _, entry := range s.entries {
		if entry.Key >= s.nextKey {
			s.nextKey = entry.Key + 1
		}
	}

	dbContract, err := store.GetContract(ctx)
	if err != nil {
		return nil, err
	}
	if dbContract != nil {
		s.contract = s.mapper.Contract.FromDatabase(*dbContract)
	}

	logging.Debugf("loaded %d entries, next key %d\n", len(s.entries), s.nextKey)
	return s, nil
}

// AddEntry validates the fields, derives worked hours, assigns a fresh key
// and appends the entry. Insertion order is preserved for ListEntries.
func (s *timesheetServiceImpl) AddEntry(ctx context.Context, date, start, end string) (domain.ShiftEntry, error) {
	if err := s.validator.ValidateRequiredFields(date, start, end); err != nil {
		return domain.ShiftEntry{}, err
	}

	entry := domain.NewShiftEntry(date, start, end)
	entry.Key = s.nextKey
	s.nextKey++
	s.entries = append(s.entries, entry)

	s.persistInsert(ctx, entry)
	return entry, nil
}

// UpdateEntry replaces date/start/end of an existing entry in place,
// recomputing hours. Key and position never change.
func (s *timesheetServiceImpl) UpdateEntry(ctx context.Context, key int64, date, start, end string) error {
	if err := s.validator.ValidateRequiredFields(date, start, end); err != nil {
		return err
	}

	idx := s.indexOf(key)
	if idx < 0 {
		return errors.NewNotFoundError("shift entry", fmt.Sprintf("%d", key))
	}

	entry := &s.entries[idx]
	entry.Date = date
	entry.Start = start
	entry.End = end
	entry.Recompute()

	s.persistUpdate(ctx, *entry)
	return nil
}

// RemoveEntry deletes the entry with the given key. Removal is idempotent:
// an unknown key is a no-op, never an error. Removing the entry currently
// under edit cancels the edit.
func (s *timesheetServiceImpl) RemoveEntry(ctx context.Context, key int64) error {
	idx := s.indexOf(key)
	if idx < 0 {
		return nil
	}

	s.entries = append(s.entries[:idx], s.entries[idx+1:]...)
	if s.editKey != nil && *s.editKey == key {
		s.CancelEdit()
	}

	s.persistDelete(ctx, key)
	return nil
}

// GetEntry returns the entry with the given key
func (s *timesheetServiceImpl) GetEntry(key int64) (domain.ShiftEntry, error) {
	idx := s.indexOf(key)
	if idx < 0 {
		return domain.ShiftEntry{}, errors.NewNotFoundError("shift entry", fmt.Sprintf("%d", key))
	}
	return s.entries[idx], nil
}

// ListEntries returns a snapshot of all entries in insertion order
func (s *timesheetServiceImpl) ListEntries() []domain.ShiftEntry {
	snapshot := make([]domain.ShiftEntry, len(s.entries))
	copy(snapshot, s.entries)
	return snapshot
}

// BeginEdit marks the entry with the given key as the current edit draft and
// returns it. Starting a new edit while another is in progress implicitly
// cancels the previous draft.
func (s *timesheetServiceImpl) BeginEdit(key int64) (domain.ShiftEntry, error) {
	entry, err := s.GetEntry(key)
	if err != nil {
		return domain.ShiftEntry{}, err
	}

	k := key
	s.editKey = &k
	return entry, nil
}

// CommitEdit applies new field values to the entry under edit and clears the
// draft. The draft survives a validation failure so the caller can retry.
func (s *timesheetServiceImpl) CommitEdit(ctx context.Context, date, start, end string) error {
	if s.editKey == nil {
		return errors.NewInvalidInputError("edit", nil, "no edit in progress")
	}

	if err := s.UpdateEntry(ctx, *s.editKey, date, start, end); err != nil {
		return err
	}

	s.editKey = nil
	return nil
}

// CancelEdit discards the current edit draft, if any
func (s *timesheetServiceImpl) CancelEdit() {
	s.editKey = nil
}

// EditingKey returns the key of the entry under edit, if an edit is in progress
func (s *timesheetServiceImpl) EditingKey() (int64, bool) {
	if s.editKey == nil {
		return 0, false
	}
	return *s.editKey, true
}

// Contract returns the current contract configuration
func (s *timesheetServiceImpl) Contract() domain.ContractConfig {
	return s.contract
}

// UpdateContract replaces the contract configuration wholesale
func (s *timesheetServiceImpl) UpdateContract(ctx context.Context, cfg domain.ContractConfig) error {
	if err := s.validator.ValidateContract(cfg.ContractHoursPerMonth, cfg.HourlyRate, cfg.ExtraHourlyRate); err != nil {
		return err
	}

	s.contract = cfg

	dbCfg := s.mapper.Contract.ToDatabase(cfg)
	if err := s.store.PutContract(ctx, &dbCfg); err != nil {
		s.reportPersistFailure("save contract", err)
	}
	return nil
}

// indexOf returns the position of the entry with the given key, or -1
func (s *timesheetServiceImpl) indexOf(key int64) int {
	for i := range s.entries {
		if s.entries[i].Key == key {
			return i
		}
	}
	return -1
}

func (s *timesheetServiceImpl) persistInsert(ctx context.Context, entry domain.ShiftEntry) {
	dbEntry := s.mapper.ShiftEntry.ToDatabase(entry)
	if err := s.store.InsertEntry(ctx, &dbEntry); err != nil {
		s.reportPersistFailure("save entry", err)
	}
}

func (s *timesheetServiceImpl) persistUpdate(ctx context.Context, entry domain.ShiftEntry) {
	dbEntry := s.mapper.ShiftEntry.ToDatabase(entry)
	if err := s.store.UpdateEntry(ctx, &dbEntry); err != nil {
		s.reportPersistFailure("update entry", err)
	}
}

func (s *timesheetServiceImpl) persistDelete(ctx context.Context, key int64) {
	if err := s.store.DeleteEntry(ctx, key); err != nil {
		s.reportPersistFailure("delete entry", err)
	}
}

// reportPersistFailure surfaces a failed write without rolling back the
// in-memory mutation. Durability is best-effort for the running session.
func (s *timesheetServiceImpl) reportPersistFailure(operation string, err error) {
	logging.Warnf("%s: %v\n", operation, err)
}
