/*
dto.go - Data Transfer Objects for API requests and responses

PURPOSE:
  Defines the JSON structures for API communication. These types decouple
  the internal domain model from the external API contract: the engine
  works in roster.Date and decimal.Decimal, the wire works in ISO date
  strings and decimal strings.

NAMING CONVENTION:
  - *DTO: Response types returned to clients
  - *Request: Request body types from clients

VALIDATION:
  Validation is done in handlers, not in DTOs. DTOs are pure data carriers.

SEE ALSO:
  - handlers.go: Uses these types
  - roster/types.go: Domain model these map onto
*/
package api

import (
	"github.com/shopspring/decimal"

	"github.com/kairo/roster-engine/payroll"
	"github.com/kairo/roster-engine/roster"
)

// =============================================================================
// EMPLOYEES
// =============================================================================

// EmployeeDTO represents an employee in API responses. Money fields are
// decimal strings; absent caps are null.
type EmployeeDTO struct {
	ID                int64    `json:"id"`
	Name              string   `json:"name"`
	Group             string   `json:"group,omitempty"`
	DefaultWorkHours  string   `json:"default_work_hours,omitempty"`
	HourlyWage        string   `json:"hourly_wage"`
	MaxWeeklyHours    *float64 `json:"max_weekly_hours,omitempty"`
	MaxWeeklyDays     *int     `json:"max_weekly_days,omitempty"`
	AnnualIncomeLimit *string  `json:"annual_income_limit,omitempty"`
	InitialIncome     string   `json:"initial_income,omitempty"`
	InitialIncomeYear int      `json:"initial_income_year,omitempty"`
}

// SaveEmployeeRequest is the request body for creating or updating an
// employee. Decimal fields arrive as strings.
type SaveEmployeeRequest struct {
	Name              string   `json:"name"`
	Group             string   `json:"group"`
	DefaultWorkHours  string   `json:"default_work_hours"`
	HourlyWage        string   `json:"hourly_wage"`
	MaxWeeklyHours    *float64 `json:"max_weekly_hours"`
	MaxWeeklyDays     *int     `json:"max_weekly_days"`
	AnnualIncomeLimit *string  `json:"annual_income_limit"`
	InitialIncome     string   `json:"initial_income"`
	InitialIncomeYear int      `json:"initial_income_year"`
}

// =============================================================================
// SCHEDULE GENERATION
// =============================================================================

// GenerateScheduleRequest is the request body for schedule generation.
type GenerateScheduleRequest struct {
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
	Save      bool   `json:"save,omitempty"`
}

// GenerateScheduleResponse wraps the generated schedule. Schedule maps
// each date to {employee id: "HH:MM-HH:MM" or the rest marker}.
type GenerateScheduleResponse struct {
	StartDate string           `json:"startDate"`
	EndDate   string           `json:"endDate"`
	Schedule  *roster.Schedule `json:"schedule"`
	Saved     bool             `json:"saved"`
}

// =============================================================================
// REQUESTS, HOLIDAYS, SHIFTS
// =============================================================================

// ShiftRequestDTO represents a standing shift request.
type ShiftRequestDTO struct {
	ID         int64  `json:"id"`
	EmployeeID int64  `json:"employee_id"`
	Date       string `json:"date"`
	Type       string `json:"request_type"`
	Notes      string `json:"notes,omitempty"`
}

// CreateShiftRequestRequest is the request body for submitting a request.
type CreateShiftRequestRequest struct {
	EmployeeID int64  `json:"employee_id"`
	Date       string `json:"date"`
	Type       string `json:"request_type"`
	Notes      string `json:"notes"`
}

// CompanyHolidayDTO represents a company-declared closure.
type CompanyHolidayDTO struct {
	Date string `json:"date"`
	Note string `json:"note,omitempty"`
}

// PublicHolidayDTO represents one computed national holiday.
type PublicHolidayDTO struct {
	Date string `json:"date"`
	Name string `json:"name"`
}

// ShiftRecordDTO represents one persisted shift with optional actuals.
type ShiftRecordDTO struct {
	ID         int64           `json:"id"`
	EmployeeID int64           `json:"employee_id"`
	Date       string          `json:"date"`
	StartTime  string          `json:"start_time"`
	EndTime    string          `json:"end_time"`
	Actual     *ActualHoursDTO `json:"actual,omitempty"`
}

// ActualHoursDTO represents submitted actual hours for one shift.
type ActualHoursDTO struct {
	StartTime  string   `json:"start_time"`
	EndTime    string   `json:"end_time"`
	BreakHours *float64 `json:"break_hours,omitempty"`
}

// SaveShiftsRequest is the request body for batch-saving shifts.
type SaveShiftsRequest struct {
	Shifts []SaveShiftEntry `json:"shifts"`
}

// SaveShiftEntry is one slot in a batch save. Empty times clear the slot.
type SaveShiftEntry struct {
	EmployeeID int64  `json:"employee_id"`
	Date       string `json:"date"`
	StartTime  string `json:"start_time"`
	EndTime    string `json:"end_time"`
}

// RecordActualRequest is the request body for submitting actual hours.
type RecordActualRequest struct {
	StartTime  string   `json:"start_time"`
	EndTime    string   `json:"end_time"`
	BreakHours *float64 `json:"break_hours"`
}

// =============================================================================
// REPORTS
// =============================================================================

// EmployeeTotalDTO is one row of a wage report.
type EmployeeTotalDTO struct {
	EmployeeID int64   `json:"employee_id"`
	Name       string  `json:"name"`
	Hours      float64 `json:"hours"`
	Wages      string  `json:"wages"`
}

// MonthlyReportDTO is the monthly report response.
type MonthlyReportDTO struct {
	Year       int                `json:"year"`
	Month      int                `json:"month"`
	ClosingDay int                `json:"closing_day"`
	Start      string             `json:"period_start"`
	End        string             `json:"period_end"`
	Totals     []EmployeeTotalDTO `json:"totals"`
}

// CrossPeriodReportDTO is the month-by-month hours matrix response.
type CrossPeriodReportDTO struct {
	Months []string                       `json:"months"`
	Hours  map[int64]map[string]float64   `json:"hours"`
}

// AnnualSummaryDTO is the annual income summary response.
type AnnualSummaryDTO struct {
	Year   int                `json:"year"`
	Totals []EmployeeTotalDTO `json:"totals"`
}

// ErrorResponse is the standard error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details any    `json:"details,omitempty"`
}

// =============================================================================
// CONVERSION HELPERS
// =============================================================================

func toEmployeeDTO(e roster.Employee) EmployeeDTO {
	dto := EmployeeDTO{
		ID:                int64(e.ID),
		Name:              e.Name,
		Group:             e.Group,
		DefaultWorkHours:  e.DefaultHours,
		HourlyWage:        e.HourlyWage.String(),
		MaxWeeklyHours:    e.MaxWeeklyHours,
		MaxWeeklyDays:     e.MaxWeeklyDays,
		InitialIncomeYear: e.InitialIncomeYear,
	}
	if e.AnnualIncomeLimit != nil {
		s := e.AnnualIncomeLimit.String()
		dto.AnnualIncomeLimit = &s
	}
	if !e.InitialIncome.IsZero() {
		dto.InitialIncome = e.InitialIncome.String()
	}
	return dto
}

func (req SaveEmployeeRequest) toEmployee() (roster.Employee, error) {
	wage, err := decimal.NewFromString(req.HourlyWage)
	if err != nil {
		return roster.Employee{}, err
	}

	e := roster.Employee{
		Name:              req.Name,
		Group:             req.Group,
		DefaultHours:      req.DefaultWorkHours,
		HourlyWage:        wage,
		MaxWeeklyHours:    req.MaxWeeklyHours,
		MaxWeeklyDays:     req.MaxWeeklyDays,
		InitialIncomeYear: req.InitialIncomeYear,
	}
	if req.AnnualIncomeLimit != nil {
		limit, err := decimal.NewFromString(*req.AnnualIncomeLimit)
		if err != nil {
			return roster.Employee{}, err
		}
		e.AnnualIncomeLimit = &limit
	}
	if req.InitialIncome != "" {
		if e.InitialIncome, err = decimal.NewFromString(req.InitialIncome); err != nil {
			return roster.Employee{}, err
		}
	}
	return e, nil
}

func toShiftRequestDTO(r roster.ShiftRequest) ShiftRequestDTO {
	return ShiftRequestDTO{
		ID:         r.ID,
		EmployeeID: int64(r.EmployeeID),
		Date:       r.Date.String(),
		Type:       string(r.Type),
		Notes:      r.Notes,
	}
}

func toShiftRecordDTO(rec roster.ShiftRecord) ShiftRecordDTO {
	dto := ShiftRecordDTO{
		ID:         rec.ID,
		EmployeeID: int64(rec.EmployeeID),
		Date:       rec.Date.String(),
		StartTime:  rec.StartTime,
		EndTime:    rec.EndTime,
	}
	if rec.Actual != nil {
		dto.Actual = &ActualHoursDTO{
			StartTime:  rec.Actual.StartTime,
			EndTime:    rec.Actual.EndTime,
			BreakHours: rec.Actual.BreakHours,
		}
	}
	return dto
}

func toTotalDTOs(totals []payroll.EmployeeTotal) []EmployeeTotalDTO {
	dtos := make([]EmployeeTotalDTO, len(totals))
	for i, t := range totals {
		dtos[i] = EmployeeTotalDTO{
			EmployeeID: int64(t.EmployeeID),
			Name:       t.Name,
			Hours:      t.Hours,
			Wages:      t.Wages.String(),
		}
	}
	return dtos
}
