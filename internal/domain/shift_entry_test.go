package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeHours(t *testing.T) {
	tests := []struct {
		name     string
		start    string
		end      string
		expected float64
	}{
		{
			name:     "regular afternoon shift",
			start:    "14:00",
			end:      "18:00",
			expected: 4.00,
		},
		{
			name:     "full workday",
			start:    "09:00",
			end:      "17:00",
			expected: 8.00,
		},
		{
			name:     "overnight shift wraps around midnight",
			start:    "22:00",
			end:      "02:00",
			expected: 4.00,
		},
		{
			name:     "zero-length shift",
			start:    "09:00",
			end:      "09:00",
			expected: 0.00,
		},
		{
			name:     "fractional hours round to two decimals",
			start:    "09:00",
			end:      "09:50",
			expected: 0.83,
		},
		{
			name:     "ten minutes",
			start:    "09:05",
			end:      "09:15",
			expected: 0.17,
		},
		{
			name:     "one minute short of a full day",
			start:    "00:00",
			end:      "23:59",
			expected: 23.98,
		},
		{
			name:     "empty start is not yet computed",
			start:    "",
			end:      "18:00",
			expected: 0,
		},
		{
			name:     "empty end is not yet computed",
			start:    "14:00",
			end:      "",
			expected: 0,
		},
		{
			name:     "unparseable start falls back to zero",
			start:    "nine",
			end:      "18:00",
			expected: 0,
		},
		{
			name:     "hour out of range falls back to zero",
			start:    "25:00",
			end:      "18:00",
			expected: 0,
		},
		{
			name:     "minute out of range falls back to zero",
			start:    "09:75",
			end:      "18:00",
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ComputeHours(tt.start, tt.end))
		})
	}
}

func TestComputeHours_Bounds(t *testing.T) {
	// For all valid clock pairs the result stays within [0, 24]
	clocks := []string{"00:00", "06:30", "09:00", "12:45", "18:00", "23:59"}
	for _, start := range clocks {
		for _, end := range clocks {
			hours := ComputeHours(start, end)
			assert.GreaterOrEqual(t, hours, 0.0, "start=%s end=%s", start, end)
			assert.LessOrEqual(t, hours, 24.0, "start=%s end=%s", start, end)
		}
	}
}

func TestNewShiftEntry_DerivesHours(t *testing.T) {
	entry := NewShiftEntry("2024-01-01", "09:00", "13:00")

	assert.Equal(t, 4.00, entry.HoursWorked)
	assert.True(t, entry.IsValid())
}

func TestShiftEntry_Recompute(t *testing.T) {
	entry := NewShiftEntry("2024-01-01", "09:00", "13:00")

	entry.End = "17:00"
	entry.Recompute()

	assert.Equal(t, 8.00, entry.HoursWorked)
}

func TestShiftEntry_IsValid(t *testing.T) {
	assert.False(t, ShiftEntry{Date: "", Start: "09:00", End: "17:00"}.IsValid())
	assert.False(t, ShiftEntry{Date: "2024-01-01", Start: "", End: "17:00"}.IsValid())
	assert.False(t, ShiftEntry{Date: "2024-01-01", Start: "09:00", End: ""}.IsValid())
	assert.True(t, ShiftEntry{Date: "2024-01-01", Start: "09:00", End: "17:00"}.IsValid())
}

func TestDefaultContractConfig(t *testing.T) {
	cfg := DefaultContractConfig()

	assert.Equal(t, 40.0, cfg.ContractHoursPerMonth)
	assert.Equal(t, 7.65, cfg.HourlyRate)
	assert.Equal(t, 9.0, cfg.ExtraHourlyRate)
	assert.True(t, cfg.IsValid())
}

func TestContractConfig_IsValid(t *testing.T) {
	assert.False(t, ContractConfig{ContractHoursPerMonth: -1}.IsValid())
	assert.False(t, ContractConfig{HourlyRate: -0.01}.IsValid())
	assert.True(t, ContractConfig{}.IsValid()) // zero contract is legal: all hours are extra
}
