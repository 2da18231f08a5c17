package roster

import "time"

// =============================================================================
// HOLIDAY CALENDAR - External public-holiday authority
// =============================================================================

// HolidayCalendar answers whether a date is a public holiday. The concrete
// implementation lives outside the engine (see the holidayjp package);
// the generator only ever reads it.
type HolidayCalendar interface {
	IsHoliday(d Date) bool
}

// NoHolidays is a no-op calendar for deployments without a public-holiday
// feed. Weekends and company holidays still apply.
type NoHolidays struct{}

func (NoHolidays) IsHoliday(Date) bool { return false }

// =============================================================================
// CALENDAR RESOLVER - Non-working dates of a generation window
// =============================================================================

// Calendar resolves the non-working dates of a period: weekends, public
// holidays, and company-declared holidays. It is a pure lookup built once
// per generation and shared by every pass.
type Calendar struct {
	public  HolidayCalendar
	company map[Date]bool
}

// NewCalendar builds a resolver. A nil public calendar and an empty company
// list are both valid; weekends alone still apply.
func NewCalendar(public HolidayCalendar, companyHolidays []Date) *Calendar {
	if public == nil {
		public = NoHolidays{}
	}
	company := make(map[Date]bool, len(companyHolidays))
	for _, d := range companyHolidays {
		company[d] = true
	}
	return &Calendar{public: public, company: company}
}

// IsNonWorking reports whether d is a weekend, public holiday, or company
// holiday. It answers for any date, not just dates inside the generation
// period - the post-rest rule needs to look one day before the range.
func (c *Calendar) IsNonWorking(d Date) bool {
	return d.IsWeekend() || c.public.IsHoliday(d) || c.company[d]
}

// NonWorkingDays returns the set of non-working dates within the period.
func (c *Calendar) NonWorkingDays(p Period) map[Date]bool {
	set := make(map[Date]bool)
	for _, d := range p.Days() {
		if c.IsNonWorking(d) {
			set[d] = true
		}
	}
	return set
}

// IsPostRest reports whether d is a working day staffed aggressively to
// cover post-break demand: a Monday, or any working day immediately
// following a non-working day.
func (c *Calendar) IsPostRest(d Date) bool {
	if c.IsNonWorking(d) {
		return false
	}
	return d.Weekday() == time.Monday || c.IsNonWorking(d.AddDays(-1))
}
