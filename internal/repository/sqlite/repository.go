package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"work-hours/internal/repository/sqlite/migrations"

	_ "modernc.org/sqlite"
)

// Store defines the persistence gateway for shift entries and the contract
// configuration. Two logical records: the ordered entry collection and the
// contract singleton.
type Store interface {
	// Entry operations
	ListEntries(ctx context.Context) ([]*ShiftEntry, error)
	GetEntry(ctx context.Context, key int64) (*ShiftEntry, error)
	InsertEntry(ctx context.Context, entry *ShiftEntry) error
	UpdateEntry(ctx context.Context, entry *ShiftEntry) error
	DeleteEntry(ctx context.Context, key int64) error

	// Contract operations
	GetContract(ctx context.Context) (*ContractConfig, error)
	PutContract(ctx context.Context, cfg *ContractConfig) error

	// Utility
	Close() error
}

// SQLiteStore implements the Store interface
type SQLiteStore struct {
	db           *sql.DB
	queryTimeout time.Duration
	writeTimeout time.Duration
}

// New creates a new SQLite store instance with no per-call timeouts
func New(dbPath string) (*SQLiteStore, error) {
	return NewWithTimeouts(dbPath, 0, 0)
}

// NewWithTimeouts creates a new SQLite store that bounds each read with
// queryTimeout and each write with writeTimeout. A zero timeout disables
// the bound for that kind of call.
func NewWithTimeouts(dbPath string, queryTimeout, writeTimeout time.Duration) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, HandleStorageError("open database", err)
	}

	// Run migrations
	if err := migrations.RunMigrations(db); err != nil {
		db.Close()
		return nil, HandleStorageError("run migrations", err)
	}

	return &SQLiteStore{db: db, queryTimeout: queryTimeout, writeTimeout: writeTimeout}, nil
}

// Close closes the database connection
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// ListEntries retrieves all shift entries in insertion order.
// Keys are assigned monotonically by the core, so key order is insertion order.
func (s *SQLiteStore) ListEntries(ctx context.Context) ([]*ShiftEntry, error) {
	ctx, cancel := withTimeout(ctx, s.queryTimeout)
	defer cancel()

	query := `
	SELECT key, date, start_time, end_time, hours_worked
	FROM shift_entries
	ORDER BY key ASC`

	return QueryMultiple(ctx, s.db, query, ScanShiftEntries, "shift entries")
}

// GetEntry retrieves a shift entry by key
func (s *SQLiteStore) GetEntry(ctx context.Context, key int64) (*ShiftEntry, error) {
	ctx, cancel := withTimeout(ctx, s.queryTimeout)
	defer cancel()

	query := `
	SELECT key, date, start_time, end_time, hours_worked
	FROM shift_entries
	WHERE key = ?`

	return QuerySingle(ctx, s.db, query, ScanShiftEntry, "shift entry", fmt.Sprintf("%d", key), key)
}

// InsertEntry persists a new shift entry under its pre-assigned key
func (s *SQLiteStore) InsertEntry(ctx context.Context, entry *ShiftEntry) error {
	ctx, cancel := withTimeout(ctx, s.writeTimeout)
	defer cancel()

	query := `
	INSERT INTO shift_entries (key, date, start_time, end_time, hours_worked)
	VALUES (?, ?, ?, ?, ?)`

	return Execute(ctx, s.db, query, entry.Key, entry.Date, entry.StartTime, entry.EndTime, entry.HoursWorked)
}

// UpdateEntry updates an existing shift entry
func (s *SQLiteStore) UpdateEntry(ctx context.Context, entry *ShiftEntry) error {
	ctx, cancel := withTimeout(ctx, s.writeTimeout)
	defer cancel()

	query := `
	UPDATE shift_entries
	SET date = ?, start_time = ?, end_time = ?, hours_worked = ?
	WHERE key = ?`

	return ExecuteWithRowsAffected(ctx, s.db, query, "shift entry", fmt.Sprintf("%d", entry.Key), entry.Date, entry.StartTime, entry.EndTime, entry.HoursWorked, entry.Key)
}

// DeleteEntry deletes a shift entry by key. Deleting an absent key is not an
// error; removal is idempotent all the way down.
func (s *SQLiteStore) DeleteEntry(ctx context.Context, key int64) error {
	ctx, cancel := withTimeout(ctx, s.writeTimeout)
	defer cancel()

	query := `DELETE FROM shift_entries WHERE key = ?`
	return Execute(ctx, s.db, query, key)
}

// GetContract retrieves the stored contract configuration.
// Returns (nil, nil) when no contract has been stored yet; the caller applies
// its defaults.
func (s *SQLiteStore) GetContract(ctx context.Context) (*ContractConfig, error) {
	ctx, cancel := withTimeout(ctx, s.queryTimeout)
	defer cancel()

	query := `
	SELECT contract_hours_per_month, hourly_rate, extra_hourly_rate
	FROM contract_config
	WHERE id = 1`

	row := s.db.QueryRowContext(ctx, query)
	cfg, err := ScanContractConfig(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, HandleStorageError("scan contract config", err)
	}
	return cfg, nil
}

// PutContract replaces the stored contract configuration wholesale
func (s *SQLiteStore) PutContract(ctx context.Context, cfg *ContractConfig) error {
	ctx, cancel := withTimeout(ctx, s.writeTimeout)
	defer cancel()

	query := `
	INSERT INTO contract_config (id, contract_hours_per_month, hourly_rate, extra_hourly_rate)
	VALUES (1, ?, ?, ?)
	ON CONFLICT(id) DO UPDATE SET
		contract_hours_per_month = excluded.contract_hours_per_month,
		hourly_rate = excluded.hourly_rate,
		extra_hourly_rate = excluded.extra_hourly_rate`

	return Execute(ctx, s.db, query, cfg.ContractHoursPerMonth, cfg.HourlyRate, cfg.ExtraHourlyRate)
}

// withTimeout derives a bounded context for a store call
func withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, timeout)
}
