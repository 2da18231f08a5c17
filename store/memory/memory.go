// Package memory provides an in-memory roster.Store for tests and demos.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/kairo/roster-engine/roster"
)

// =============================================================================
// MEMORY STORE - In-memory implementation (for testing/dev)
// =============================================================================

type Store struct {
	mu        sync.RWMutex
	nextID    int64
	employees map[roster.EmployeeID]roster.Employee
	requests  map[int64]roster.ShiftRequest
	holidays  map[roster.Date]roster.CompanyHoliday
	shifts    map[slot]roster.ShiftRecord
}

type slot struct {
	EmployeeID roster.EmployeeID
	Date       roster.Date
}

var _ roster.Store = (*Store)(nil)

func New() *Store {
	return &Store{
		employees: make(map[roster.EmployeeID]roster.Employee),
		requests:  make(map[int64]roster.ShiftRequest),
		holidays:  make(map[roster.Date]roster.CompanyHoliday),
		shifts:    make(map[slot]roster.ShiftRecord),
	}
}

func (s *Store) nextSequence() int64 {
	s.nextID++
	return s.nextID
}

// =============================================================================
// EMPLOYEES
// =============================================================================

func (s *Store) ListEmployees(_ context.Context) ([]roster.Employee, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	employees := make([]roster.Employee, 0, len(s.employees))
	for _, e := range s.employees {
		employees = append(employees, e)
	}
	sort.Slice(employees, func(i, j int) bool { return employees[i].ID < employees[j].ID })
	return employees, nil
}

func (s *Store) GetEmployee(_ context.Context, id roster.EmployeeID) (roster.Employee, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.employees[id]
	if !ok {
		return roster.Employee{}, roster.ErrEmployeeNotFound
	}
	return e, nil
}

func (s *Store) CreateEmployee(_ context.Context, e *roster.Employee) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	e.ID = roster.EmployeeID(s.nextSequence())
	s.employees[e.ID] = *e
	return nil
}

func (s *Store) UpdateEmployee(_ context.Context, e roster.Employee) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.employees[e.ID]; !ok {
		return roster.ErrEmployeeNotFound
	}
	s.employees[e.ID] = e
	return nil
}

func (s *Store) DeleteEmployee(_ context.Context, id roster.EmployeeID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.employees[id]; !ok {
		return roster.ErrEmployeeNotFound
	}
	delete(s.employees, id)
	return nil
}

// =============================================================================
// SHIFT REQUESTS
// =============================================================================

func (s *Store) RequestsInRange(_ context.Context, p roster.Period) ([]roster.ShiftRequest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var requests []roster.ShiftRequest
	for _, r := range s.requests {
		if p.Contains(r.Date) {
			requests = append(requests, r)
		}
	}
	sort.Slice(requests, func(i, j int) bool {
		if !requests[i].Date.Equal(requests[j].Date) {
			return requests[i].Date.Before(requests[j].Date)
		}
		return requests[i].EmployeeID < requests[j].EmployeeID
	})
	return requests, nil
}

func (s *Store) CreateRequest(_ context.Context, r *roster.ShiftRequest) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.requests {
		if existing.EmployeeID == r.EmployeeID && existing.Date.Equal(r.Date) {
			return roster.ErrDuplicateRequest
		}
	}
	r.ID = s.nextSequence()
	s.requests[r.ID] = *r
	return nil
}

func (s *Store) DeleteRequest(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.requests, id)
	return nil
}

// =============================================================================
// COMPANY HOLIDAYS
// =============================================================================

func (s *Store) CompanyHolidays(_ context.Context) ([]roster.CompanyHoliday, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.holidaysLocked(func(roster.Date) bool { return true }), nil
}

func (s *Store) CompanyHolidaysInRange(_ context.Context, p roster.Period) ([]roster.CompanyHoliday, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.holidaysLocked(p.Contains), nil
}

func (s *Store) holidaysLocked(keep func(roster.Date) bool) []roster.CompanyHoliday {
	var holidays []roster.CompanyHoliday
	for _, h := range s.holidays {
		if keep(h.Date) {
			holidays = append(holidays, h)
		}
	}
	sort.Slice(holidays, func(i, j int) bool { return holidays[i].Date.Before(holidays[j].Date) })
	return holidays
}

func (s *Store) SaveCompanyHoliday(_ context.Context, h roster.CompanyHoliday) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.holidays[h.Date] = h
	return nil
}

func (s *Store) DeleteCompanyHoliday(_ context.Context, d roster.Date) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.holidays[d]; !ok {
		return roster.ErrHolidayNotFound
	}
	delete(s.holidays, d)
	return nil
}

// =============================================================================
// SHIFTS AND ACTUALS
// =============================================================================

func (s *Store) ShiftsInRange(_ context.Context, p roster.Period) ([]roster.ShiftRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var records []roster.ShiftRecord
	for _, rec := range s.shifts {
		if p.Contains(rec.Date) {
			records = append(records, copyRecord(rec))
		}
	}
	sort.Slice(records, func(i, j int) bool {
		if !records[i].Date.Equal(records[j].Date) {
			return records[i].Date.Before(records[j].Date)
		}
		return records[i].EmployeeID < records[j].EmployeeID
	})
	return records, nil
}

func (s *Store) SaveShifts(_ context.Context, records []roster.ShiftRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, rec := range records {
		k := slot{EmployeeID: rec.EmployeeID, Date: rec.Date}
		if existing, ok := s.shifts[k]; ok {
			existing.StartTime = rec.StartTime
			existing.EndTime = rec.EndTime
			s.shifts[k] = existing
			continue
		}
		rec.ID = s.nextSequence()
		rec.Actual = nil
		s.shifts[k] = rec
	}
	return nil
}

func (s *Store) DeleteShift(_ context.Context, employeeID roster.EmployeeID, d roster.Date) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.shifts, slot{EmployeeID: employeeID, Date: d})
	return nil
}

func (s *Store) RecordActual(_ context.Context, shiftID int64, actual roster.ActualHours) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for k, rec := range s.shifts {
		if rec.ID == shiftID {
			a := actual
			if actual.BreakHours != nil {
				b := *actual.BreakHours
				a.BreakHours = &b
			}
			rec.Actual = &a
			s.shifts[k] = rec
			return nil
		}
	}
	return roster.ErrShiftNotFound
}

func copyRecord(rec roster.ShiftRecord) roster.ShiftRecord {
	if rec.Actual != nil {
		a := *rec.Actual
		if a.BreakHours != nil {
			b := *a.BreakHours
			a.BreakHours = &b
		}
		rec.Actual = &a
	}
	return rec
}
