package sqlite

// Scanner interface defines the common scanning behavior for both sql.Row and sql.Rows
type Scanner interface {
	Scan(dest ...interface{}) error
}

// ScanShiftEntry scans a single shift entry from a database row
func ScanShiftEntry(scanner Scanner) (*ShiftEntry, error) {
	entry := &ShiftEntry{}
	err := scanner.Scan(
		&entry.Key,
		&entry.Date,
		&entry.StartTime,
		&entry.EndTime,
		&entry.HoursWorked,
	)
	if err != nil {
		return nil, err
	}
	return entry, nil
}

// Rows interface defines the common behavior for sql.Rows
type Rows interface {
	Next() bool
	Scan(dest ...interface{}) error
	Err() error
}

// ScanShiftEntries scans multiple shift entries from database rows
func ScanShiftEntries(rows Rows) ([]*ShiftEntry, error) {
	var entries []*ShiftEntry
	for rows.Next() {
		entry, err := ScanShiftEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}

// ScanContractConfig scans the contract configuration from a database row
func ScanContractConfig(scanner Scanner) (*ContractConfig, error) {
	cfg := &ContractConfig{}
	err := scanner.Scan(
		&cfg.ContractHoursPerMonth,
		&cfg.HourlyRate,
		&cfg.ExtraHourlyRate,
	)
	if err != nil {
		return nil, err
	}
	return cfg, nil
}
