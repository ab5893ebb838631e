package domain

import (
	"math"
	"strconv"
	"strings"
)

// ShiftEntry represents one recorded work period in the domain model.
// This is a pure domain model without database-specific concerns.
type ShiftEntry struct {
	Key         int64
	Date        string // calendar day, YYYY-MM-DD
	Start       string // time of day, HH:MM
	End         string // time of day, HH:MM
	HoursWorked float64
}

// NewShiftEntry creates a new ShiftEntry with hours derived from start and end.
func NewShiftEntry(date, start, end string) ShiftEntry {
	return ShiftEntry{
		Date:        date,
		Start:       start,
		End:         end,
		HoursWorked: ComputeHours(start, end),
	}
}

// Recompute refreshes HoursWorked from the current start and end times.
// HoursWorked is never stored stale; every field change goes through this.
func (e *ShiftEntry) Recompute() {
	e.HoursWorked = ComputeHours(e.Start, e.End)
}

// IsValid checks if the entry has all required fields.
func (e ShiftEntry) IsValid() bool {
	return e.Date != "" && e.Start != "" && e.End != ""
}

// ComputeHours converts a pair of wall-clock times into worked hours.
// An end time numerically earlier than the start means the shift crosses
// midnight, so a day is added. Missing or unparseable input yields 0 rather
// than an error; it reads as "not yet computed".
// The result is rounded to two decimals and lies in [0, 24].
func ComputeHours(start, end string) float64 {
	startMinutes, ok := parseClock(start)
	if !ok {
		return 0
	}
	endMinutes, ok := parseClock(end)
	if !ok {
		return 0
	}

	minutes := endMinutes - startMinutes
	if minutes < 0 {
		minutes += 24 * 60
	}

	return math.Round(float64(minutes)/60*100) / 100
}

// parseClock parses an HH:MM time of day into minutes since midnight.
func parseClock(s string) (int, bool) {
	h, m, found := strings.Cut(s, ":")
	if !found {
		return 0, false
	}
	hour, err := strconv.Atoi(h)
	if err != nil || hour < 0 || hour > 23 {
		return 0, false
	}
	minute, err := strconv.Atoi(m)
	if err != nil || minute < 0 || minute > 59 {
		return 0, false
	}
	return hour*60 + minute, true
}
