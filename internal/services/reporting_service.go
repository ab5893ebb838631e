package services

import (
	"fmt"
	"math"

	"work-hours/internal/domain"
)

// reportingServiceImpl implements the ReportingService interface
type reportingServiceImpl struct{}

// NewReportingService creates a new ReportingService instance
func NewReportingService() ReportingService {
	return &reportingServiceImpl{}
}

// Summarize recomputes the full summary from the given entries and contract.
// It holds no state of its own, so the result always reflects the inputs.
func (s *reportingServiceImpl) Summarize(entries []domain.ShiftEntry, cfg domain.ContractConfig) domain.Summary {
	var totalHours float64
	days := make(map[string]struct{})
	for _, entry := range entries {
		totalHours += entry.HoursWorked
		days[entry.Date] = struct{}{}
	}

	pay := ComputePay(totalHours, cfg)

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

// FormatDuration renders fractional hours as "H:MM". Whole hours are floored
// and minutes rounded independently, so values just under a whole hour come
// out as 60 minutes (2.999 renders as "2:60").
func FormatDuration(hours float64) string {
	wholeHours := int(math.Floor(hours))
	minutes := int(math.Round((hours - math.Floor(hours)) * 60))
	return fmt.Sprintf("%d:%02d", wholeHours, minutes)
}
