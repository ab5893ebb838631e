package domain

// ContractConfig is the monthly contract used to split worked hours into
// regular and overtime pay. It is a process-wide singleton, replaced
// wholesale on update; there is no partial-field merge.
type ContractConfig struct {
	ContractHoursPerMonth float64
	HourlyRate            float64
	ExtraHourlyRate       float64
}

// DefaultContractConfig returns the contract used on first run, before any
// configuration has been persisted.
func DefaultContractConfig() ContractConfig {
	return ContractConfig{
		ContractHoursPerMonth: 40,
		HourlyRate:            7.65,
		ExtraHourlyRate:       9,
	}
}

// IsValid checks that no contract field is negative.
func (c ContractConfig) IsValid() bool {
	return c.ContractHoursPerMonth >= 0 && c.HourlyRate >= 0 && c.ExtraHourlyRate >= 0
}
