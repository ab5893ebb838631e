package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"work-hours/internal/domain"
	"work-hours/internal/services"
)

// Renderer writes entry listings and summaries in the configured currency
type Renderer struct {
	currency string
}

// NewRenderer creates a Renderer using the given currency symbol
func NewRenderer(currency string) *Renderer {
	return &Renderer{currency: currency}
}

// WriteEntries prints one row per shift entry in insertion order
func (r *Renderer) WriteEntries(w io.Writer, entries []domain.ShiftEntry) error {
	if len(entries) == 0 {
		_, err := fmt.Fprintln(w, "No entries recorded")
		return err
	}

	fmt.Fprintf(w, "%-6s %-12s %-7s %-7s %s\n", "Key", "Date", "Start", "End", "Hours")
	fmt.Fprintln(w, strings.Repeat("-", 42))
	for _, entry := range entries {
		_, err := fmt.Fprintf(w, "%-6d %-12s %-7s %-7s %.2f\n",
			entry.Key, entry.Date, entry.Start, entry.End, entry.HoursWorked)
		if err != nil {
			return err
		}
	}
	return nil
}

// WriteSummary prints the aggregated totals and the pay breakdown
func (r *Renderer) WriteSummary(w io.Writer, summary domain.Summary, cfg domain.ContractConfig) error {
	fmt.Fprintln(w, "Summary")
	fmt.Fprintln(w, strings.Repeat("=", 42))
	fmt.Fprintf(w, "Contract hours/month: %.2f\n", cfg.ContractHoursPerMonth)
	fmt.Fprintf(w, "Days worked:          %d\n", summary.UniqueDaysWorked)
	fmt.Fprintf(w, "Total hours:          %s (%.2f)\n", services.FormatDuration(summary.TotalHours), summary.TotalHours)
	fmt.Fprintf(w, "Regular hours:        %s\n", services.FormatDuration(summary.RegularHours))
	fmt.Fprintf(w, "Extra hours:          %s\n", services.FormatDuration(summary.ExtraHours))
	fmt.Fprintln(w, strings.Repeat("-", 42))
	fmt.Fprintf(w, "Regular pay:          %s\n", r.money(summary.RegularPay))
	fmt.Fprintf(w, "Extra pay:            %s\n", r.money(summary.ExtraPay))
	_, err := fmt.Fprintf(w, "Total pay:            %s\n", r.money(summary.TotalPay))
	return err
}

// WriteCSV exports the entries followed by the same summary fields that
// WriteSummary prints.
func (r *Renderer) WriteCSV(w io.Writer, entries []domain.ShiftEntry, summary domain.Summary, cfg domain.ContractConfig) error {
	writer := csv.NewWriter(w)
	defer writer.Flush()

	header := []string{"Key", "Date", "Start", "End", "Hours"}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, entry := range entries {
		row := []string{
			strconv.FormatInt(entry.Key, 10),
			entry.Date,
			entry.Start,
			entry.End,
			fmt.Sprintf("%.2f", entry.HoursWorked),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	summaryRows := [][]string{
		{"Contract hours", fmt.Sprintf("%.2f", cfg.ContractHoursPerMonth)},
		{"Days worked", strconv.Itoa(summary.UniqueDaysWorked)},
		{"Total hours", fmt.Sprintf("%.2f", summary.TotalHours)},
		{"Regular hours", fmt.Sprintf("%.2f", summary.RegularHours)},
		{"Extra hours", fmt.Sprintf("%.2f", summary.ExtraHours)},
		{"Regular pay", fmt.Sprintf("%.2f", summary.RegularPay)},
		{"Extra pay", fmt.Sprintf("%.2f", summary.ExtraPay)},
		{"Total pay", fmt.Sprintf("%.2f", summary.TotalPay)},
	}
	for _, row := range summaryRows {
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV summary: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}

func (r *Renderer) money(amount float64) string {
	return fmt.Sprintf("%s%.2f", r.currency, amount)
}
