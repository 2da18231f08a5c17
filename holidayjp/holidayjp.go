/*
Package holidayjp computes the Japanese national-holiday calendar.

PURPOSE:
  Implements roster.HolidayCalendar for the roster generator and serves
  the /api/holidays lookup. Holidays are computed, not fetched: fixed
  dates, Happy Monday holidays, the astronomical equinox approximations,
  substitute (furikae) holidays, and sandwiched citizens' holidays.

ACCURACY:
  The equinox day formulas are the standard approximation valid for
  1980-2099, which covers every range a shift roster will ever be
  generated for. One-off observances (Olympic-year moves, era-change
  days) are not modeled.

USAGE:
  cal := holidayjp.NewCalendar()
  cal.IsHoliday(roster.NewDate(2025, time.January, 1)) // true, 元日
  cal.Between(start, end)                              // holidays in range

SEE ALSO:
  - roster/calendar.go: The HolidayCalendar consumer
*/
package holidayjp

import (
	"sort"
	"sync"
	"time"

	"github.com/kairo/roster-engine/roster"
)

// Holiday is one national holiday.
type Holiday struct {
	Date roster.Date
	Name string
}

// Calendar computes and caches holidays per year. Safe for concurrent use.
type Calendar struct {
	mu    sync.RWMutex
	years map[int]map[roster.Date]string
}

var _ roster.HolidayCalendar = (*Calendar)(nil)

func NewCalendar() *Calendar {
	return &Calendar{years: make(map[int]map[roster.Date]string)}
}

// IsHoliday reports whether d is a national holiday.
func (c *Calendar) IsHoliday(d roster.Date) bool {
	_, ok := c.year(d.Year())[d]
	return ok
}

// Between returns the holidays in [start, end], ascending.
func (c *Calendar) Between(start, end roster.Date) []Holiday {
	var out []Holiday
	for y := start.Year(); y <= end.Year(); y++ {
		for d, name := range c.year(y) {
			if !d.Before(start) && !d.After(end) {
				out = append(out, Holiday{Date: d, Name: name})
			}
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out
}

func (c *Calendar) year(y int) map[roster.Date]string {
	c.mu.RLock()
	m, ok := c.years[y]
	c.mu.RUnlock()
	if ok {
		return m
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if m, ok = c.years[y]; ok {
		return m
	}
	m = computeYear(y)
	c.years[y] = m
	return m
}

// =============================================================================
// HOLIDAY RULES
// =============================================================================

func computeYear(y int) map[roster.Date]string {
	base := map[roster.Date]string{
		roster.NewDate(y, time.January, 1):                 "元日",
		nthMonday(y, time.January, 2):                      "成人の日",
		roster.NewDate(y, time.February, 11):               "建国記念の日",
		roster.NewDate(y, time.February, 23):               "天皇誕生日",
		roster.NewDate(y, time.March, vernalEquinoxDay(y)): "春分の日",
		roster.NewDate(y, time.April, 29):                  "昭和の日",
		roster.NewDate(y, time.May, 3):                     "憲法記念日",
		roster.NewDate(y, time.May, 4):                     "みどりの日",
		roster.NewDate(y, time.May, 5):                     "こどもの日",
		nthMonday(y, time.July, 3):                         "海の日",
		roster.NewDate(y, time.August, 11):                 "山の日",
		nthMonday(y, time.September, 3):                    "敬老の日",
		roster.NewDate(y, time.September, autumnalEquinoxDay(y)): "秋分の日",
		nthMonday(y, time.October, 2):                      "スポーツの日",
		roster.NewDate(y, time.November, 3):                "文化の日",
		roster.NewDate(y, time.November, 23):               "勤労感謝の日",
	}

	// Substitute holidays: a holiday on Sunday shifts to the next day
	// that is not already a holiday.
	var sundays []roster.Date
	for d := range base {
		if d.Weekday() == time.Sunday {
			sundays = append(sundays, d)
		}
	}
	for _, d := range sundays {
		sub := d.AddDays(1)
		for {
			if _, taken := base[sub]; !taken {
				break
			}
			sub = sub.AddDays(1)
		}
		base[sub] = "振替休日"
	}

	// Citizens' holiday: a non-holiday weekday sandwiched between two
	// holidays becomes one (the Silver Week rule).
	var sandwiched []roster.Date
	for d := range base {
		mid := d.AddDays(1)
		_, midTaken := base[mid]
		_, after := base[d.AddDays(2)]
		if after && !midTaken && mid.Weekday() != time.Sunday {
			sandwiched = append(sandwiched, mid)
		}
	}
	for _, d := range sandwiched {
		base[d] = "国民の休日"
	}

	return base
}

// nthMonday returns the n-th Monday of the month (Happy Monday holidays).
func nthMonday(year int, month time.Month, n int) roster.Date {
	d := roster.NewDate(year, month, 1)
	offset := (int(time.Monday-d.Weekday()) + 7) % 7
	return d.AddDays(offset + (n-1)*7)
}

// Equinox approximations, valid 1980-2099.
func vernalEquinoxDay(year int) int {
	return int(20.8431+0.242194*float64(year-1980)) - (year-1980)/4
}

func autumnalEquinoxDay(year int) int {
	return int(23.2488+0.242194*float64(year-1980)) - (year-1980)/4
}
