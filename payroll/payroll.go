/*
Package payroll computes worked-hour and wage aggregates from shift records.

PURPOSE:
  The roster engine plans shifts; this package sums what they cost. It
  serves the reporting endpoints (monthly, cross-period, annual summary)
  and shares the same net-hour rules the generator's income-cap check
  uses, so planned and reported figures never drift apart.

KEY CONCEPTS:
  - Net hours: interval duration minus the break deduction. A submitted
    actual record may carry an explicit break that overrides the default
    one-hour-at-six-hours rule.
  - Closing day: pay periods do not align with calendar months. The
    period for month M with closing day N runs from the day after N of
    month M-1 through N of month M.
  - Schedule fallback: reports can fall back to planned times for shifts
    with no submitted actuals (projection mode) or count actuals only.

PRECISION:
  All wage arithmetic is decimal.Decimal. Hours stay float64 and are
  converted once at the wage boundary.

SEE ALSO:
  - roster/shift.go: The shared break-deduction rule
  - api/handlers.go: Report endpoints
*/
package payroll

import (
	"sort"
	"time"

	"github.com/kairo/roster-engine/roster"
	"github.com/shopspring/decimal"
)

// =============================================================================
// NET HOURS
// =============================================================================

// RecordNetHours returns the worked hours of one shift record. Actual times
// win over planned times when requested and present; a recorded break
// overrides the default deduction. Unusable records contribute zero.
func RecordNetHours(rec roster.ShiftRecord, useScheduleFallback bool) float64 {
	start, end := rec.StartTime, rec.EndTime
	var recordedBreak *float64

	if rec.Actual != nil {
		if rec.Actual.StartTime != "" && rec.Actual.EndTime != "" {
			start, end = rec.Actual.StartTime, rec.Actual.EndTime
		}
		recordedBreak = rec.Actual.BreakHours
	} else if !useScheduleFallback {
		return 0
	}

	shift, err := roster.ParseShift(start + "-" + end)
	if err != nil {
		return 0
	}

	if recordedBreak == nil {
		return shift.NetHours()
	}
	net := shift.Hours() - *recordedBreak
	if net < 0 {
		return 0
	}
	return net
}

// =============================================================================
// PAY PERIODS
// =============================================================================

// PeriodForMonth returns the pay period reported under (year, month) with
// the given closing day: the day after the previous closing through the
// closing day itself.
func PeriodForMonth(year int, month time.Month, closingDay int) roster.Period {
	end := roster.NewDate(year, month, closingDay)
	prev := roster.NewDate(year, month-1, closingDay)
	return roster.Period{Start: prev.AddDays(1), End: end}
}

// MonthsBetween lists the (year, month) labels from start through end
// inclusive, in order.
func MonthsBetween(startYear int, startMonth time.Month, endYear int, endMonth time.Month) []time.Time {
	var months []time.Time
	cur := time.Date(startYear, startMonth, 1, 0, 0, 0, 0, time.UTC)
	last := time.Date(endYear, endMonth, 1, 0, 0, 0, 0, time.UTC)
	for !cur.After(last) {
		months = append(months, cur)
		cur = cur.AddDate(0, 1, 0)
	}
	return months
}

// =============================================================================
// REPORTS
// =============================================================================

// EmployeeTotal is one employee's aggregate for a reporting period.
type EmployeeTotal struct {
	EmployeeID roster.EmployeeID
	Name       string
	Hours      float64
	Wages      decimal.Decimal
}

// MonthlyReport sums hours and wages per employee for one pay period.
// Every roster member appears in the result, zeroed if they have no
// shifts - the report reads as a full roster table.
func MonthlyReport(employees []roster.Employee, records []roster.ShiftRecord, p roster.Period, useScheduleFallback bool) []EmployeeTotal {
	hours := make(map[roster.EmployeeID]float64)
	for _, rec := range records {
		if !p.Contains(rec.Date) {
			continue
		}
		hours[rec.EmployeeID] += RecordNetHours(rec, useScheduleFallback)
	}

	totals := make([]EmployeeTotal, 0, len(employees))
	for _, e := range employees {
		h := hours[e.ID]
		totals = append(totals, EmployeeTotal{
			EmployeeID: e.ID,
			Name:       e.Name,
			Hours:      h,
			Wages:      e.HourlyWage.Mul(decimal.NewFromFloat(h)),
		})
	}
	sort.Slice(totals, func(i, j int) bool { return totals[i].EmployeeID < totals[j].EmployeeID })
	return totals
}

// CrossPeriodReport computes month-by-month hour totals per employee over
// a month range. Months are keyed "YYYY-MM" in the result.
type CrossPeriodReport struct {
	Months []string
	Hours  map[roster.EmployeeID]map[string]float64
}

func CrossPeriod(employees []roster.Employee, records []roster.ShiftRecord, months []time.Time, closingDay int, useScheduleFallback bool) CrossPeriodReport {
	report := CrossPeriodReport{
		Hours: make(map[roster.EmployeeID]map[string]float64),
	}
	for _, e := range employees {
		report.Hours[e.ID] = make(map[string]float64)
	}

	for _, m := range months {
		label := m.Format("2006-01")
		report.Months = append(report.Months, label)
		p := PeriodForMonth(m.Year(), m.Month(), closingDay)

		for _, rec := range records {
			if !p.Contains(rec.Date) {
				continue
			}
			if _, ok := report.Hours[rec.EmployeeID]; !ok {
				continue // shift for someone no longer on the roster
			}
			report.Hours[rec.EmployeeID][label] += RecordNetHours(rec, useScheduleFallback)
		}
	}
	return report
}

// AnnualSummary returns each employee's income for a calendar year:
// recorded shift wages plus initial income when its recorded year matches.
func AnnualSummary(employees []roster.Employee, records []roster.ShiftRecord, year int) []EmployeeTotal {
	hours := make(map[roster.EmployeeID]float64)
	for _, rec := range records {
		if rec.Date.Year() != year {
			continue
		}
		hours[rec.EmployeeID] += RecordNetHours(rec, true)
	}

	totals := make([]EmployeeTotal, 0, len(employees))
	for _, e := range employees {
		h := hours[e.ID]
		wages := e.HourlyWage.Mul(decimal.NewFromFloat(h))
		if e.InitialIncomeYear == year {
			wages = wages.Add(e.InitialIncome)
		}
		totals = append(totals, EmployeeTotal{
			EmployeeID: e.ID,
			Name:       e.Name,
			Hours:      h,
			Wages:      wages,
		})
	}
	sort.Slice(totals, func(i, j int) bool { return totals[i].EmployeeID < totals[j].EmployeeID })
	return totals
}
