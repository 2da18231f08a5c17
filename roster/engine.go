/*
engine.go - The assignment control loop

PURPOSE:
  Drives schedule generation through five stages over a single mutable
  Schedule:

    INITIALIZED             one empty slot map per date
    HARD-CONSTRAINTS-APPLIED  closures and rest requests marked REST
    PRIORITY-ASSIGNED       work requests, then post-rest over-staffing
    ITERATING               fairness-driven fill passes to a fixed point
    FINALIZED               remaining slots default to REST

TERMINATION:
  Each successful assignment strictly shrinks the finite pool of open
  (employee, date) slots, so the iterating loop reaches a pass with zero
  new assignments. A hard ceiling of employees + days passes bounds the
  loop anyway; hitting it is not an error - the engine finalizes with
  whatever was assigned and under-staffing shows up in the output.

FAILURE SEMANTICS:
  The only hard error is a missing or inverted range. Malformed optional
  data (no template, duplicate requests) resolves to safe defaults; the
  generator never returns a partial schedule.

SEE ALSO:
  - calendar.go: Non-working and post-rest day resolution
  - requests.go: Rest/work request classification
  - constraints.go, scoring.go: Slot eligibility and ranking
*/
package roster

import "sort"

// Generator holds one generation's immutable inputs. Callers fetch all
// collaborator data up front; the generator performs no I/O of its own.
type Generator struct {
	Employees       []Employee
	Requests        []ShiftRequest
	PublicHolidays  HolidayCalendar
	CompanyHolidays []Date
}

// Generate produces the complete schedule for the period. Safe to call
// concurrently for non-overlapping ranges; each call owns its Schedule.
func (g *Generator) Generate(p Period) (*Schedule, error) {
	if !p.Valid() {
		return nil, &RangeError{Start: p.Start, End: p.End}
	}

	// Fix the iteration order once: ascending employee id. Everything
	// downstream (priority passes, tie-breaking) relies on it.
	employees := make([]Employee, len(g.Employees))
	copy(employees, g.Employees)
	sort.Slice(employees, func(i, j int) bool { return employees[i].ID < employees[j].ID })

	calendar := NewCalendar(g.PublicHolidays, g.CompanyHolidays)
	requests := ClassifyRequests(g.Requests, p)
	schedule := NewSchedule(p)
	days := p.Days()

	g.applyHardConstraints(schedule, days, employees, calendar, requests)
	g.assignPriorities(schedule, days, employees, calendar, requests)
	g.iterate(schedule, days, employees, calendar)

	schedule.Finalize(employees)
	return schedule, nil
}

// applyHardConstraints seeds the slots no later pass may touch: company
// and weekend closures rest everyone (overriding individual requests),
// and rest requests rest their employee on remaining working days.
func (g *Generator) applyHardConstraints(s *Schedule, days []Date, employees []Employee, cal *Calendar, req RequestSets) {
	for _, d := range days {
		if cal.IsNonWorking(d) {
			for _, e := range employees {
				s.Set(d, e.ID, Rest)
			}
			continue
		}
		for _, e := range employees {
			if req.WantsRest(e.ID, d) {
				s.Set(d, e.ID, Rest)
			}
		}
	}
}

// assignPriorities runs the two ordered priority sub-passes over working
// days: explicit work requests first, then blanket post-rest staffing.
// Both honor CanWork - hard caps outrank request priority.
func (g *Generator) assignPriorities(s *Schedule, days []Date, employees []Employee, cal *Calendar, req RequestSets) {
	for _, d := range days {
		if cal.IsNonWorking(d) {
			continue
		}
		for _, e := range employees {
			if req.WantsWork(e.ID, d) && CanWork(e, d, s) {
				s.Set(d, e.ID, Assignment(e.Template()))
			}
		}
	}

	// Post-rest days are deliberately over-staffed: every employee who
	// still can work is assigned, not just one.
	for _, d := range days {
		if !cal.IsPostRest(d) {
			continue
		}
		for _, e := range employees {
			if CanWork(e, d, s) {
				s.Set(d, e.ID, Assignment(e.Template()))
			}
		}
	}
}

// iterate fills remaining slots pass by pass until a pass makes zero new
// assignments. Each pass raises every day's target headcount by one, with
// post-rest days targeting one extra; days with no eligible employee are
// skipped for the remainder of the pass.
func (g *Generator) iterate(s *Schedule, days []Date, employees []Employee, cal *Calendar) {
	ceiling := len(employees) + len(days)

	for pass := 0; pass < ceiling; pass++ {
		// Once per pass, not per slot: fairness freshness is traded for
		// bounded cost on the hot path.
		average := AverageHours(employees, s)
		assigned := 0

		for _, d := range days {
			if cal.IsNonWorking(d) {
				continue
			}

			target := pass + 1
			if cal.IsPostRest(d) {
				target++
			}

			for s.Headcount(d) < target {
				e, ok := PickCandidate(employees, d, s, average)
				if !ok {
					break // nobody eligible; skip this day for the pass
				}
				s.Set(d, e.ID, Assignment(e.Template()))
				assigned++
			}
		}

		if assigned == 0 {
			break // fixed point
		}
	}
}
