package services

import (
	"math"

	"github.com/shopspring/decimal"

	"work-hours/internal/domain"
)

// ComputePay splits a total hour count into regular and overtime pay under
// the given contract. Hours at or below the monthly threshold are billed at
// the regular rate, hours above it at the extra rate; a zero-hour contract
// makes every worked hour an extra hour.
//
// Pure function over totalHours >= 0; the entry store never produces a
// negative total. Money is multiplied in decimal and rounded to cents so
// rates like 7.65 come out exact.
func ComputePay(totalHours float64, cfg domain.ContractConfig) domain.PayBreakdown {
	regularHours := math.Min(totalHours, cfg.ContractHoursPerMonth)
	extraHours := math.Max(0, totalHours-cfg.ContractHoursPerMonth)

	regularPay := decimal.NewFromFloat(regularHours).
		Mul(decimal.NewFromFloat(cfg.HourlyRate)).
		Round(2)
	extraPay := decimal.NewFromFloat(extraHours).
		Mul(decimal.NewFromFloat(cfg.ExtraHourlyRate)).
		Round(2)
	totalPay := regularPay.Add(extraPay)

	return domain.PayBreakdown{
		RegularHours: regularHours,
		ExtraHours:   extraHours,
		RegularPay:   regularPay.InexactFloat64(),
		ExtraPay:     extraPay.InexactFloat64(),
		TotalPay:     totalPay.InexactFloat64(),
	}
}
