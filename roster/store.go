/*
store.go - Persistence interfaces and stored record types

PURPOSE:
  Declares what the surrounding system must persist: the employee roster,
  standing shift requests, company holidays, and the shift records a
  generated schedule is saved into. The engine itself never touches a
  store - callers load these collections up front and hand them in - but
  the HTTP layer and reports read and write through these interfaces.

IMPLEMENTATIONS:
  store/sqlite: production SQLite store
  store/memory: in-memory store for tests and demos

SEE ALSO:
  - store/sqlite/sqlite.go
  - payroll/report.go: Consumes ShiftRecord slices
*/
package roster

import "context"

// =============================================================================
// STORED RECORDS
// =============================================================================

// ShiftRecord is one persisted shift: the planned interval for an employee
// on a date, plus submitted actual hours when present. Rest days are not
// stored; absence of a record means rest.
type ShiftRecord struct {
	ID         int64
	EmployeeID EmployeeID
	Date       Date
	StartTime  string // "HH:MM"
	EndTime    string // "HH:MM"
	Actual     *ActualHours
}

// ActualHours is the employee-submitted record of what was really worked.
// BreakHours overrides the default break deduction when set.
type ActualHours struct {
	StartTime  string
	EndTime    string
	BreakHours *float64
}

// CompanyHoliday is a company-declared closure date.
type CompanyHoliday struct {
	Date Date
	Note string
}

// =============================================================================
// STORE INTERFACES
// =============================================================================

// EmployeeStore persists the roster.
type EmployeeStore interface {
	ListEmployees(ctx context.Context) ([]Employee, error)
	GetEmployee(ctx context.Context, id EmployeeID) (Employee, error)
	CreateEmployee(ctx context.Context, e *Employee) error
	UpdateEmployee(ctx context.Context, e Employee) error
	DeleteEmployee(ctx context.Context, id EmployeeID) error
}

// RequestStore persists standing shift requests. CreateRequest returns
// ErrDuplicateRequest when the (employee, date) pair is already taken.
type RequestStore interface {
	RequestsInRange(ctx context.Context, p Period) ([]ShiftRequest, error)
	CreateRequest(ctx context.Context, r *ShiftRequest) error
	DeleteRequest(ctx context.Context, id int64) error
}

// HolidayStore persists company-declared holidays. SaveCompanyHoliday
// upserts by date.
type HolidayStore interface {
	CompanyHolidays(ctx context.Context) ([]CompanyHoliday, error)
	CompanyHolidaysInRange(ctx context.Context, p Period) ([]CompanyHoliday, error)
	SaveCompanyHoliday(ctx context.Context, h CompanyHoliday) error
	DeleteCompanyHoliday(ctx context.Context, d Date) error
}

// ShiftStore persists generated schedules as shift records. SaveShifts
// upserts by (employee, date); a generated REST slot removes any existing
// record for that slot.
type ShiftStore interface {
	ShiftsInRange(ctx context.Context, p Period) ([]ShiftRecord, error)
	SaveShifts(ctx context.Context, records []ShiftRecord) error
	DeleteShift(ctx context.Context, employeeID EmployeeID, d Date) error
	RecordActual(ctx context.Context, shiftID int64, actual ActualHours) error
}

// Store is the full persistence surface the HTTP layer depends on.
type Store interface {
	EmployeeStore
	RequestStore
	HolidayStore
	ShiftStore
}
