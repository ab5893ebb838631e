package domain

import (
	"work-hours/internal/repository/sqlite"
)

// ShiftEntryMapper handles conversion between domain and database ShiftEntry models.
type ShiftEntryMapper struct{}

// NewShiftEntryMapper creates a new ShiftEntryMapper instance.
func NewShiftEntryMapper() *ShiftEntryMapper {
	return &ShiftEntryMapper{}
}

// ToDatabase converts a domain ShiftEntry to a database ShiftEntry.
func (m *ShiftEntryMapper) ToDatabase(entry ShiftEntry) sqlite.ShiftEntry {
	return sqlite.ShiftEntry{
		Key:         entry.Key,
		Date:        entry.Date,
		StartTime:   entry.Start,
		EndTime:     entry.End,
		HoursWorked: entry.HoursWorked,
	}
}

// FromDatabase converts a database ShiftEntry to a domain ShiftEntry.
func (m *ShiftEntryMapper) FromDatabase(dbEntry sqlite.ShiftEntry) ShiftEntry {
	return ShiftEntry{
		Key:         dbEntry.Key,
		Date:        dbEntry.Date,
		Start:       dbEntry.StartTime,
		End:         dbEntry.EndTime,
		HoursWorked: dbEntry.HoursWorked,
	}
}

// FromDatabaseSlice converts a slice of database ShiftEntries to domain ShiftEntries.
func (m *ShiftEntryMapper) FromDatabaseSlice(dbEntries []*sqlite.ShiftEntry) []ShiftEntry {
	entries := make([]ShiftEntry, len(dbEntries))
	for i, dbEntry := range dbEntries {
		entries[i] = m.FromDatabase(*dbEntry)
	}
	return entries
}

// ContractMapper handles conversion between domain and database ContractConfig models.
type ContractMapper struct{}

// NewContractMapper creates a new ContractMapper instance.
func NewContractMapper() *ContractMapper {
	return &ContractMapper{}
}

// ToDatabase converts a domain ContractConfig to a database ContractConfig.
func (m *ContractMapper) ToDatabase(cfg ContractConfig) sqlite.ContractConfig {
	return sqlite.ContractConfig{
		ContractHoursPerMonth: cfg.ContractHoursPerMonth,
		HourlyRate:            cfg.HourlyRate,
		ExtraHourlyRate:       cfg.ExtraHourlyRate,
	}
}

// FromDatabase converts a database ContractConfig to a domain ContractConfig.
func (m *ContractMapper) FromDatabase(dbCfg sqlite.ContractConfig) ContractConfig {
	return ContractConfig{
		ContractHoursPerMonth: dbCfg.ContractHoursPerMonth,
		HourlyRate:            dbCfg.HourlyRate,
		ExtraHourlyRate:       dbCfg.ExtraHourlyRate,
	}
}

// Mapper provides a unified interface for all mapping operations.
type Mapper struct {
	ShiftEntry *ShiftEntryMapper
	Contract   *ContractMapper
}

// NewMapper creates a new Mapper instance with all sub-mappers.
func NewMapper() *Mapper {
	return &Mapper{
		ShiftEntry: NewShiftEntryMapper(),
		Contract:   NewContractMapper(),
	}
}
