/*
Package roster implements the automatic roster generator.

PURPOSE:
  Given a date range, a roster of employees with individual constraints,
  their standing shift requests, and the calendar of non-working days, the
  engine produces a complete day-by-employee work/rest assignment. Hard
  constraints (closures, rest requests) are seeded first, priority rules
  run next, and remaining slots are filled by a fairness-driven iterative
  process with a guaranteed termination bound.

KEY CONCEPTS IN THIS FILE (types.go):
  - Employee: roster member with wage, caps, and default shift template
  - Assignment: a single slot value - a work interval or the REST marker
  - Schedule: the date -> employee -> assignment aggregate the whole
    engine threads through

DESIGN PRINCIPLES:
  1. Determinism: identical inputs yield byte-identical output; all
     iteration happens in ascending employee-id and date order
  2. Precision: income arithmetic uses decimal.Decimal, never float
  3. Purity: the generator performs no I/O; callers load collaborator
     data up front and persist the result themselves
  4. Graceful degradation: anything malformed resolves to REST instead
     of aborting the generation

SEE ALSO:
  - engine.go: The assignment control loop
  - constraints.go: Per-slot cap checking
  - scoring.go: Fairness ranking of candidates
*/
package roster

import (
	"bytes"
	"encoding/json"
	"sort"
	"strconv"

	"github.com/shopspring/decimal"
)

// =============================================================================
// EMPLOYEE
// =============================================================================

type EmployeeID int64

// Employee is a roster member. All constraint fields are optional; a nil
// cap means "no constraint". The generator treats employees as read-only.
type Employee struct {
	ID    EmployeeID
	Name  string
	Group string // team tag, empty = ungrouped

	// DefaultHours is the usual "HH:MM-HH:MM" template assigned whenever
	// the generator schedules work. Empty falls back to DefaultTemplate.
	DefaultHours string

	HourlyWage decimal.Decimal

	MaxWeeklyHours    *float64
	MaxWeeklyDays     *int
	AnnualIncomeLimit *decimal.Decimal

	// Income already earned this fiscal year before the app took over.
	// Counted against the annual limit only when InitialIncomeYear matches
	// the year being scheduled.
	InitialIncome     decimal.Decimal
	InitialIncomeYear int
}

// Template returns the shift template to assign, falling back to the
// shared default when the employee has none.
func (e Employee) Template() string {
	if e.DefaultHours == "" {
		return DefaultTemplate
	}
	return e.DefaultHours
}

// =============================================================================
// ASSIGNMENT - One slot value
// =============================================================================

// Rest marks a day off. The marker string is what the rest of the system
// stores and displays, so the generator emits it verbatim.
const Rest Assignment = "休み"

// Assignment is either a concrete "HH:MM-HH:MM" interval or Rest.
type Assignment string

func (a Assignment) IsRest() bool { return a == Rest }
func (a Assignment) IsWork() bool { return a != "" && a != Rest }

// NetHours returns the worked hours of the assignment after break
// deduction. Rest and malformed intervals count as zero.
func (a Assignment) NetHours() float64 {
	if !a.IsWork() {
		return 0
	}
	return TemplateNetHours(string(a))
}

// =============================================================================
// SCHEDULE - The single mutable aggregate of a generation
// =============================================================================

// Schedule maps every (date, employee) slot in the generation period to an
// assignment. It is built incrementally by the engine and owned by exactly
// one generation call; helpers receive it by reference, never copied.
type Schedule struct {
	period Period
	days   map[Date]map[EmployeeID]Assignment
}

// NewSchedule creates an empty schedule with one slot map per day.
func NewSchedule(p Period) *Schedule {
	s := &Schedule{
		period: p,
		days:   make(map[Date]map[EmployeeID]Assignment, p.Len()),
	}
	for _, d := range p.Days() {
		s.days[d] = make(map[EmployeeID]Assignment)
	}
	return s
}

func (s *Schedule) Period() Period { return s.period }

// Get returns the assignment for a slot, if any.
func (s *Schedule) Get(d Date, id EmployeeID) (Assignment, bool) {
	a, ok := s.days[d][id]
	return a, ok
}

// Assigned reports whether the slot already holds work or rest.
func (s *Schedule) Assigned(d Date, id EmployeeID) bool {
	_, ok := s.days[d][id]
	return ok
}

// Set writes a slot. Setting a slot outside the period is a no-op: the
// schedule only ever covers the requested range.
func (s *Schedule) Set(d Date, id EmployeeID, a Assignment) {
	slots, ok := s.days[d]
	if !ok {
		return
	}
	slots[id] = a
}

// Headcount returns the number of employees assigned work on a day.
func (s *Schedule) Headcount(d Date) int {
	n := 0
	for _, a := range s.days[d] {
		if a.IsWork() {
			n++
		}
	}
	return n
}

// WorkersOn returns the ids assigned work on a day, ascending.
func (s *Schedule) WorkersOn(d Date) []EmployeeID {
	var ids []EmployeeID
	for id, a := range s.days[d] {
		if a.IsWork() {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// WorkDaysInWeek counts the employee's work assignments in the Monday-start
// week containing d. Days outside the generation period hold no entries and
// therefore never count.
func (s *Schedule) WorkDaysInWeek(id EmployeeID, d Date) int {
	n := 0
	week := d.StartOfWeek()
	for i := 0; i < 7; i++ {
		if a, ok := s.days[week.AddDays(i)][id]; ok && a.IsWork() {
			n++
		}
	}
	return n
}

// NetHoursInWeek sums the employee's worked hours (after break deduction)
// in the Monday-start week containing d.
func (s *Schedule) NetHoursInWeek(id EmployeeID, d Date) float64 {
	var total float64
	week := d.StartOfWeek()
	for i := 0; i < 7; i++ {
		if a, ok := s.days[week.AddDays(i)][id]; ok {
			total += a.NetHours()
		}
	}
	return total
}

// TotalNetHours sums the employee's worked hours across the whole period.
func (s *Schedule) TotalNetHours(id EmployeeID) float64 {
	var total float64
	for _, slots := range s.days {
		total += slots[id].NetHours()
	}
	return total
}

// Finalize defaults every still-unassigned slot to Rest, completing the
// invariant that each (date, employee) pair has exactly one entry.
func (s *Schedule) Finalize(employees []Employee) {
	for _, slots := range s.days {
		for _, e := range employees {
			if _, ok := slots[e.ID]; !ok {
				slots[e.ID] = Rest
			}
		}
	}
}

// MarshalJSON emits {"date": {"employeeId": "HH:MM-HH:MM" | "休み"}} with
// dates ascending and employee ids ascending numerically. The explicit
// ordering keeps repeated generations byte-identical.
func (s *Schedule) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, d := range s.period.Days() {
		if i > 0 {
			buf.WriteByte(',')
		}
		dateKey, err := json.Marshal(d.String())
		if err != nil {
			return nil, err
		}
		buf.Write(dateKey)
		buf.WriteByte(':')

		slots := s.days[d]
		ids := make([]EmployeeID, 0, len(slots))
		for id := range slots {
			ids = append(ids, id)
		}
		sort.Slice(ids, func(a, b int) bool { return ids[a] < ids[b] })

		buf.WriteByte('{')
		for j, id := range ids {
			if j > 0 {
				buf.WriteByte(',')
			}
			idKey, err := json.Marshal(strconv.FormatInt(int64(id), 10))
			if err != nil {
				return nil, err
			}
			buf.Write(idKey)
			buf.WriteByte(':')
			val, err := json.Marshal(string(slots[id]))
			if err != nil {
				return nil, err
			}
			buf.Write(val)
		}
		buf.WriteByte('}')
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
