/*
constraints.go - Per-slot constraint checking

PURPOSE:
  Answers "can this employee be assigned work on this date" against the
  partially built schedule. Every cap is evaluated with the prospective
  shift's cost already added, so a slot is never assigned if committing it
  would push a cap over its limit - caps are never retroactively violated.

CHECKS (all must hold):
  1. The slot has no entry yet (not already work or rest)
  2. Weekly day cap: work days in the Monday-start week < cap
  3. Weekly hour cap: net hours in that week + prospective shift <= cap
  4. Annual income cap: period wage cost + prior same-year income +
     prospective shift cost <= cap

RULES:
  - Hours are net of the break deduction (see shift.go)
  - Income arithmetic is decimal; hours are converted once per check
  - A missing cap means "no constraint"

SEE ALSO:
  - engine.go: The only caller during generation
  - scoring.go: Ranks the candidates that pass these checks
*/
package roster

import "github.com/shopspring/decimal"

// CanWork returns true iff assigning the employee's default template on
// the given date would violate no constraint.
func CanWork(e Employee, d Date, s *Schedule) bool {
	if s.Assigned(d, e.ID) {
		return false
	}

	if e.MaxWeeklyDays != nil {
		if s.WorkDaysInWeek(e.ID, d) >= *e.MaxWeeklyDays {
			return false
		}
	}

	prospective := TemplateNetHours(e.Template())

	if e.MaxWeeklyHours != nil {
		if s.NetHoursInWeek(e.ID, d)+prospective > *e.MaxWeeklyHours {
			return false
		}
	}

	if e.AnnualIncomeLimit != nil {
		earned := wageCost(e, s.TotalNetHours(e.ID))
		if e.InitialIncomeYear == d.Year() {
			earned = earned.Add(e.InitialIncome)
		}
		projected := earned.Add(wageCost(e, prospective))
		if projected.GreaterThan(*e.AnnualIncomeLimit) {
			return false
		}
	}

	return true
}

// wageCost converts worked hours to wage cost for one employee.
func wageCost(e Employee, hours float64) decimal.Decimal {
	return e.HourlyWage.Mul(decimal.NewFromFloat(hours))
}
