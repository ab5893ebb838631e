package sqlite

// ShiftEntry represents a persisted shift entry row.
// The key is assigned by the core, not by the database, so a failed write
// never leaves the in-memory collection without an identity.
type ShiftEntry struct {
	Key         int64
	Date        string
	StartTime   string
	EndTime     string
	HoursWorked float64
}

// ContractConfig represents the persisted contract configuration.
// Stored as a single row, replaced wholesale on every update.
type ContractConfig struct {
	ContractHoursPerMonth float64
	HourlyRate            float64
	ExtraHourlyRate       float64
}
