package roster

import "time"

// =============================================================================
// DATE - Day-granularity calendar date (the roster never schedules finer)
// =============================================================================

// Date is a calendar date normalized to UTC midnight. Shift times within a
// day live in the "HH:MM-HH:MM" template string, not here.
type Date struct {
	t time.Time
}

// Constructors
func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses a YYYY-MM-DD string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return Date{}, err
	}
	return Date{t: t}, nil
}

// Comparison
func (d Date) Before(other Date) bool { return d.t.Before(other.t) }
func (d Date) After(other Date) bool  { return d.t.After(other.t) }
func (d Date) Equal(other Date) bool  { return d.t.Equal(other.t) }

// Arithmetic
func (d Date) AddDays(n int) Date { return Date{t: d.t.AddDate(0, 0, n)} }

// Properties
func (d Date) Year() int             { return d.t.Year() }
func (d Date) Month() time.Month     { return d.t.Month() }
func (d Date) Day() int              { return d.t.Day() }
func (d Date) Weekday() time.Weekday { return d.t.Weekday() }
func (d Date) IsZero() bool          { return d.t.IsZero() }

func (d Date) IsWeekend() bool {
	wd := d.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// StartOfWeek returns the Monday of the ISO week containing d.
// Weekly caps are always evaluated over Monday-start weeks.
func (d Date) StartOfWeek() Date {
	offset := int(d.Weekday()-time.Monday+7) % 7
	return d.AddDays(-offset)
}

func (d Date) String() string { return d.t.Format("2006-01-02") }

// =============================================================================
// PERIOD - Inclusive date range of one generation
// =============================================================================

type Period struct {
	Start Date
	End   Date
}

// Valid reports whether the period is usable: both endpoints set and not inverted.
func (p Period) Valid() bool {
	return !p.Start.IsZero() && !p.End.IsZero() && !p.End.Before(p.Start)
}

// Contains returns true if the date is within [Start, End].
func (p Period) Contains(d Date) bool {
	return !d.Before(p.Start) && !d.After(p.End)
}

// Days returns every day in the period in ascending order.
func (p Period) Days() []Date {
	var days []Date
	for cur := p.Start; !cur.After(p.End); cur = cur.AddDays(1) {
		days = append(days, cur)
	}
	return days
}

// Len returns the number of days in the period.
func (p Period) Len() int {
	if !p.Valid() {
		return 0
	}
	return int(p.End.t.Sub(p.Start.t).Hours()/24) + 1
}

func (p Period) String() string {
	return "[" + p.Start.String() + ", " + p.End.String() + "]"
}
