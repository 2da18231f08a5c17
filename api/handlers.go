/*
handlers.go - HTTP API handlers for the roster engine

PURPOSE:
  Exposes schedule generation, roster management, and wage reports via
  REST API. Handles HTTP request/response, JSON serialization, and
  delegates to domain logic.

ENDPOINTS:
  Schedule:
    POST   /api/shifts/generate-schedule  Generate a schedule for a range

  Employees:
    GET    /api/employees                 List all employees
    POST   /api/employees                 Create employee
    GET    /api/employees/{id}            Get employee details
    PUT    /api/employees/{id}            Update employee
    DELETE /api/employees/{id}            Delete employee

  Shift requests:
    GET    /api/shift-requests            List requests in a range
    POST   /api/shift-requests            Submit a request (409 on duplicate)
    DELETE /api/shift-requests/{id}       Withdraw a request

  Holidays:
    GET    /api/company-holidays          List company holidays
    POST   /api/company-holidays          Upsert a company holiday
    DELETE /api/company-holidays/{date}   Remove a company holiday
    GET    /api/public-holidays           National holidays in a range

  Shifts:
    GET    /api/shifts                    Saved shifts in a range
    POST   /api/shifts                    Batch-save shift slots
    POST   /api/shifts/{id}/actual        Submit actual hours

  Reports:
    GET    /api/reports/monthly           Hours and wages for one pay period
    GET    /api/reports/cross-period      Month-by-month hours matrix
    GET    /api/reports/annual-summary    Yearly income per employee

REQUEST FLOW:
  1. Parse HTTP request
  2. Validate input
  3. Call domain logic (generator, payroll, store)
  4. Serialize response
  5. Handle errors

ERROR HANDLING:
  Errors are returned as JSON with appropriate HTTP status:
  - 400: Validation errors, invalid range
  - 404: Resource not found
  - 409: Duplicate request for the same employee and date
  - 500: Internal errors

SECURITY NOTE:
  No authentication middleware. All endpoints are public.

SEE ALSO:
  - dto.go: Request/response data structures
  - server.go: Router setup and middleware
  - roster/engine.go: The generation algorithm
*/
package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/kairo/roster-engine/holidayjp"
	"github.com/kairo/roster-engine/payroll"
	"github.com/kairo/roster-engine/roster"
)

const defaultClosingDay = 25

// =============================================================================
// HANDLER CONTEXT
// =============================================================================

// Handler holds all dependencies for HTTP handlers.
type Handler struct {
	Store    roster.Store
	Holidays *holidayjp.Calendar
}

// NewHandler creates a new handler with the given store.
func NewHandler(store roster.Store) *Handler {
	return &Handler{
		Store:    store,
		Holidays: holidayjp.NewCalendar(),
	}
}

// =============================================================================
// SCHEDULE GENERATION
// =============================================================================

// GenerateSchedule builds a schedule for the requested range and
// optionally persists it.
// POST /api/shifts/generate-schedule
func (h *Handler) GenerateSchedule(w http.ResponseWriter, r *http.Request) {
	var req GenerateScheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if req.StartDate == "" || req.EndDate == "" {
		writeError(w, http.StatusBadRequest, "startDate and endDate are required", nil)
		return
	}

	start, err := roster.ParseDate(req.StartDate)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid startDate (use YYYY-MM-DD)", err)
		return
	}
	end, err := roster.ParseDate(req.EndDate)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid endDate (use YYYY-MM-DD)", err)
		return
	}
	period := roster.Period{Start: start, End: end}

	ctx := r.Context()
	var (
		employees    []roster.Employee
		requests     []roster.ShiftRequest
		companyDates []roster.Date
	)
	// An inverted range skips the loads and surfaces the generator's
	// range error below.
	if period.Valid() {
		var err error
		if employees, err = h.Store.ListEmployees(ctx); err != nil {
			writeError(w, http.StatusInternalServerError, "Failed to list employees", err)
			return
		}
		if requests, err = h.Store.RequestsInRange(ctx, period); err != nil {
			writeError(w, http.StatusInternalServerError, "Failed to load shift requests", err)
			return
		}
		holidays, err := h.Store.CompanyHolidaysInRange(ctx, period)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "Failed to load company holidays", err)
			return
		}
		for _, ch := range holidays {
			companyDates = append(companyDates, ch.Date)
		}
	}

	gen := roster.Generator{
		Employees:       employees,
		Requests:        requests,
		PublicHolidays:  h.Holidays,
		CompanyHolidays: companyDates,
	}
	schedule, err := gen.Generate(period)
	if err != nil {
		writeError(w, statusFor(err), "Failed to generate schedule", err)
		return
	}

	if req.Save {
		if err := h.saveSchedule(r, schedule, employees); err != nil {
			writeError(w, http.StatusInternalServerError, "Failed to save schedule", err)
			return
		}
	}

	writeJSON(w, http.StatusOK, GenerateScheduleResponse{
		StartDate: start.String(),
		EndDate:   end.String(),
		Schedule:  schedule,
		Saved:     req.Save,
	})
}

// saveSchedule persists work assignments as shift records and clears the
// slots the schedule rested.
func (h *Handler) saveSchedule(r *http.Request, schedule *roster.Schedule, employees []roster.Employee) error {
	ctx := r.Context()
	var records []roster.ShiftRecord

	for _, d := range schedule.Period().Days() {
		for _, e := range employees {
			a, ok := schedule.Get(d, e.ID)
			if !ok {
				continue
			}
			if !a.IsWork() {
				if err := h.Store.DeleteShift(ctx, e.ID, d); err != nil {
					return err
				}
				continue
			}
			startTime, endTime, ok := splitInterval(string(a))
			if !ok {
				continue
			}
			records = append(records, roster.ShiftRecord{
				EmployeeID: e.ID,
				Date:       d,
				StartTime:  startTime,
				EndTime:    endTime,
			})
		}
	}
	return h.Store.SaveShifts(ctx, records)
}

// =============================================================================
// EMPLOYEE HANDLERS
// =============================================================================

// ListEmployees returns all employees.
// GET /api/employees
func (h *Handler) ListEmployees(w http.ResponseWriter, r *http.Request) {
	employees, err := h.Store.ListEmployees(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list employees", err)
		return
	}

	dtos := make([]EmployeeDTO, len(employees))
	for i, e := range employees {
		dtos[i] = toEmployeeDTO(e)
	}
	writeJSON(w, http.StatusOK, dtos)
}

// GetEmployee returns a single employee.
// GET /api/employees/{id}
func (h *Handler) GetEmployee(w http.ResponseWriter, r *http.Request) {
	id, ok := employeeID(w, r)
	if !ok {
		return
	}

	e, err := h.Store.GetEmployee(r.Context(), id)
	if err != nil {
		writeError(w, statusFor(err), "Failed to get employee", err)
		return
	}
	writeJSON(w, http.StatusOK, toEmployeeDTO(e))
}

// CreateEmployee creates a new employee.
// POST /api/employees
func (h *Handler) CreateEmployee(w http.ResponseWriter, r *http.Request) {
	e, ok := decodeEmployee(w, r)
	if !ok {
		return
	}

	if err := h.Store.CreateEmployee(r.Context(), &e); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to create employee", err)
		return
	}
	writeJSON(w, http.StatusCreated, toEmployeeDTO(e))
}

// UpdateEmployee replaces an employee's fields.
// PUT /api/employees/{id}
func (h *Handler) UpdateEmployee(w http.ResponseWriter, r *http.Request) {
	id, ok := employeeID(w, r)
	if !ok {
		return
	}
	e, ok := decodeEmployee(w, r)
	if !ok {
		return
	}
	e.ID = id

	if err := h.Store.UpdateEmployee(r.Context(), e); err != nil {
		writeError(w, statusFor(err), "Failed to update employee", err)
		return
	}
	writeJSON(w, http.StatusOK, toEmployeeDTO(e))
}

// DeleteEmployee removes an employee from the roster.
// DELETE /api/employees/{id}
func (h *Handler) DeleteEmployee(w http.ResponseWriter, r *http.Request) {
	id, ok := employeeID(w, r)
	if !ok {
		return
	}

	if err := h.Store.DeleteEmployee(r.Context(), id); err != nil {
		writeError(w, statusFor(err), "Failed to delete employee", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func decodeEmployee(w http.ResponseWriter, r *http.Request) (roster.Employee, bool) {
	var req SaveEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return roster.Employee{}, false
	}
	if req.Name == "" {
		writeError(w, http.StatusBadRequest, "name is required", nil)
		return roster.Employee{}, false
	}
	e, err := req.toEmployee()
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid decimal field", err)
		return roster.Employee{}, false
	}
	return e, true
}

func employeeID(w http.ResponseWriter, r *http.Request) (roster.EmployeeID, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid employee id", err)
		return 0, false
	}
	return roster.EmployeeID(id), true
}

// =============================================================================
// SHIFT REQUEST HANDLERS
// =============================================================================

// ListShiftRequests returns the requests inside ?start=...&end=...
// GET /api/shift-requests
func (h *Handler) ListShiftRequests(w http.ResponseWriter, r *http.Request) {
	p, ok := queryPeriod(w, r)
	if !ok {
		return
	}

	requests, err := h.Store.RequestsInRange(r.Context(), p)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list requests", err)
		return
	}

	dtos := make([]ShiftRequestDTO, len(requests))
	for i, req := range requests {
		dtos[i] = toShiftRequestDTO(req)
	}
	writeJSON(w, http.StatusOK, dtos)
}

// CreateShiftRequest records a standing request. One per employee per
// date; a second submission conflicts.
// POST /api/shift-requests
func (h *Handler) CreateShiftRequest(w http.ResponseWriter, r *http.Request) {
	var req CreateShiftRequestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	d, err := roster.ParseDate(req.Date)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid date (use YYYY-MM-DD)", err)
		return
	}
	reqType := roster.RequestType(req.Type)
	if !reqType.Valid() {
		writeError(w, http.StatusBadRequest, "request_type must be 'holiday' or 'work'", nil)
		return
	}
	if _, err := h.Store.GetEmployee(r.Context(), roster.EmployeeID(req.EmployeeID)); err != nil {
		writeError(w, statusFor(err), "Unknown employee", err)
		return
	}

	sr := roster.ShiftRequest{
		EmployeeID: roster.EmployeeID(req.EmployeeID),
		Date:       d,
		Type:       reqType,
		Notes:      req.Notes,
	}
	if err := h.Store.CreateRequest(r.Context(), &sr); err != nil {
		writeError(w, statusFor(err), "Failed to create request", err)
		return
	}
	writeJSON(w, http.StatusCreated, toShiftRequestDTO(sr))
}

// DeleteShiftRequest withdraws a request.
// DELETE /api/shift-requests/{id}
func (h *Handler) DeleteShiftRequest(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request id", err)
		return
	}

	if err := h.Store.DeleteRequest(r.Context(), id); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to delete request", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// =============================================================================
// HOLIDAY HANDLERS
// =============================================================================

// ListCompanyHolidays returns all company-declared closures.
// GET /api/company-holidays
func (h *Handler) ListCompanyHolidays(w http.ResponseWriter, r *http.Request) {
	holidays, err := h.Store.CompanyHolidays(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list company holidays", err)
		return
	}

	dtos := make([]CompanyHolidayDTO, len(holidays))
	for i, ch := range holidays {
		dtos[i] = CompanyHolidayDTO{Date: ch.Date.String(), Note: ch.Note}
	}
	writeJSON(w, http.StatusOK, dtos)
}

// SaveCompanyHoliday declares a closure date. Upserts by date.
// POST /api/company-holidays
func (h *Handler) SaveCompanyHoliday(w http.ResponseWriter, r *http.Request) {
	var req CompanyHolidayDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	d, err := roster.ParseDate(req.Date)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid date (use YYYY-MM-DD)", err)
		return
	}

	holiday := roster.CompanyHoliday{Date: d, Note: req.Note}
	if err := h.Store.SaveCompanyHoliday(r.Context(), holiday); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to save company holiday", err)
		return
	}
	writeJSON(w, http.StatusCreated, CompanyHolidayDTO{Date: d.String(), Note: req.Note})
}

// DeleteCompanyHoliday removes a closure date.
// DELETE /api/company-holidays/{date}
func (h *Handler) DeleteCompanyHoliday(w http.ResponseWriter, r *http.Request) {
	d, err := roster.ParseDate(chi.URLParam(r, "date"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid date (use YYYY-MM-DD)", err)
		return
	}

	if err := h.Store.DeleteCompanyHoliday(r.Context(), d); err != nil {
		writeError(w, statusFor(err), "Failed to delete company holiday", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ListPublicHolidays returns the computed national holidays in a range.
// GET /api/public-holidays?start=...&end=...
func (h *Handler) ListPublicHolidays(w http.ResponseWriter, r *http.Request) {
	p, ok := queryPeriod(w, r)
	if !ok {
		return
	}

	holidays := h.Holidays.Between(p.Start, p.End)
	dtos := make([]PublicHolidayDTO, len(holidays))
	for i, ph := range holidays {
		dtos[i] = PublicHolidayDTO{Date: ph.Date.String(), Name: ph.Name}
	}
	writeJSON(w, http.StatusOK, dtos)
}

// =============================================================================
// SHIFT HANDLERS
// =============================================================================

// ListShifts returns saved shifts (with actuals) in ?start=...&end=...
// GET /api/shifts
func (h *Handler) ListShifts(w http.ResponseWriter, r *http.Request) {
	p, ok := queryPeriod(w, r)
	if !ok {
		return
	}

	records, err := h.Store.ShiftsInRange(r.Context(), p)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list shifts", err)
		return
	}

	dtos := make([]ShiftRecordDTO, len(records))
	for i, rec := range records {
		dtos[i] = toShiftRecordDTO(rec)
	}
	writeJSON(w, http.StatusOK, dtos)
}

// SaveShifts batch-saves manual edits to the plan. Entries with empty
// times clear the slot.
// POST /api/shifts
func (h *Handler) SaveShifts(w http.ResponseWriter, r *http.Request) {
	var req SaveShiftsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	ctx := r.Context()
	var records []roster.ShiftRecord
	for _, entry := range req.Shifts {
		d, err := roster.ParseDate(entry.Date)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid date (use YYYY-MM-DD)", err)
			return
		}
		if entry.StartTime == "" && entry.EndTime == "" {
			if err := h.Store.DeleteShift(ctx, roster.EmployeeID(entry.EmployeeID), d); err != nil {
				writeError(w, http.StatusInternalServerError, "Failed to clear shift", err)
				return
			}
			continue
		}
		if _, err := roster.ParseShift(entry.StartTime + "-" + entry.EndTime); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid shift times (use HH:MM)", err)
			return
		}
		records = append(records, roster.ShiftRecord{
			EmployeeID: roster.EmployeeID(entry.EmployeeID),
			Date:       d,
			StartTime:  entry.StartTime,
			EndTime:    entry.EndTime,
		})
	}

	if err := h.Store.SaveShifts(ctx, records); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to save shifts", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// RecordActual submits actual worked hours for one shift.
// POST /api/shifts/{id}/actual
func (h *Handler) RecordActual(w http.ResponseWriter, r *http.Request) {
	shiftID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid shift id", err)
		return
	}

	var req RecordActualRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if req.StartTime != "" || req.EndTime != "" {
		if _, err := roster.ParseShift(req.StartTime + "-" + req.EndTime); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid actual times (use HH:MM)", err)
			return
		}
	}

	actual := roster.ActualHours{
		StartTime:  req.StartTime,
		EndTime:    req.EndTime,
		BreakHours: req.BreakHours,
	}
	if err := h.Store.RecordActual(r.Context(), shiftID, actual); err != nil {
		writeError(w, statusFor(err), "Failed to record actual hours", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// =============================================================================
// REPORT HANDLERS
// =============================================================================

// MonthlyReport returns hours and wages per employee for one pay period.
// GET /api/reports/monthly?year=2025&month=6&closing_day=25&projection=true
func (h *Handler) MonthlyReport(w http.ResponseWriter, r *http.Request) {
	year, month, ok := queryYearMonth(w, r)
	if !ok {
		return
	}
	closingDay := queryInt(r, "closing_day", defaultClosingDay)
	projection := r.URL.Query().Get("projection") == "true"

	p := payroll.PeriodForMonth(year, month, closingDay)
	employees, records, ok := h.loadReportInputs(w, r, p)
	if !ok {
		return
	}

	totals := payroll.MonthlyReport(employees, records, p, projection)
	writeJSON(w, http.StatusOK, MonthlyReportDTO{
		Year:       year,
		Month:      int(month),
		ClosingDay: closingDay,
		Start:      p.Start.String(),
		End:        p.End.String(),
		Totals:     toTotalDTOs(totals),
	})
}

// CrossPeriodReport returns month-by-month hour totals per employee.
// GET /api/reports/cross-period?from=2025-04&to=2025-09&closing_day=25
func (h *Handler) CrossPeriodReport(w http.ResponseWriter, r *http.Request) {
	from, err := time.Parse("2006-01", r.URL.Query().Get("from"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid from month (use YYYY-MM)", err)
		return
	}
	to, err := time.Parse("2006-01", r.URL.Query().Get("to"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid to month (use YYYY-MM)", err)
		return
	}
	if to.Before(from) {
		writeError(w, http.StatusBadRequest, "to month precedes from month", nil)
		return
	}
	closingDay := queryInt(r, "closing_day", defaultClosingDay)
	projection := r.URL.Query().Get("projection") == "true"

	months := payroll.MonthsBetween(from.Year(), from.Month(), to.Year(), to.Month())
	p := roster.Period{
		Start: payroll.PeriodForMonth(from.Year(), from.Month(), closingDay).Start,
		End:   payroll.PeriodForMonth(to.Year(), to.Month(), closingDay).End,
	}
	employees, records, ok := h.loadReportInputs(w, r, p)
	if !ok {
		return
	}

	report := payroll.CrossPeriod(employees, records, months, closingDay, projection)
	hours := make(map[int64]map[string]float64, len(report.Hours))
	for id, byMonth := range report.Hours {
		hours[int64(id)] = byMonth
	}
	writeJSON(w, http.StatusOK, CrossPeriodReportDTO{Months: report.Months, Hours: hours})
}

// AnnualSummary returns each employee's yearly income, including any
// carried-in initial income for that year.
// GET /api/reports/annual-summary?year=2025
func (h *Handler) AnnualSummary(w http.ResponseWriter, r *http.Request) {
	year := queryInt(r, "year", 0)
	if year == 0 {
		writeError(w, http.StatusBadRequest, "year is required", nil)
		return
	}

	p := roster.Period{
		Start: roster.NewDate(year, time.January, 1),
		End:   roster.NewDate(year, time.December, 31),
	}
	employees, records, ok := h.loadReportInputs(w, r, p)
	if !ok {
		return
	}

	totals := payroll.AnnualSummary(employees, records, year)
	writeJSON(w, http.StatusOK, AnnualSummaryDTO{Year: year, Totals: toTotalDTOs(totals)})
}

func (h *Handler) loadReportInputs(w http.ResponseWriter, r *http.Request, p roster.Period) ([]roster.Employee, []roster.ShiftRecord, bool) {
	ctx := r.Context()
	employees, err := h.Store.ListEmployees(ctx)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list employees", err)
		return nil, nil, false
	}
	records, err := h.Store.ShiftsInRange(ctx, p)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load shifts", err)
		return nil, nil, false
	}
	return employees, records, true
}

// =============================================================================
// SHARED HELPERS
// =============================================================================

func queryPeriod(w http.ResponseWriter, r *http.Request) (roster.Period, bool) {
	start, err := roster.ParseDate(r.URL.Query().Get("start"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid start date (use YYYY-MM-DD)", err)
		return roster.Period{}, false
	}
	end, err := roster.ParseDate(r.URL.Query().Get("end"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid end date (use YYYY-MM-DD)", err)
		return roster.Period{}, false
	}
	p := roster.Period{Start: start, End: end}
	if !p.Valid() {
		writeError(w, http.StatusBadRequest, "end date precedes start date", nil)
		return roster.Period{}, false
	}
	return p, true
}

func queryYearMonth(w http.ResponseWriter, r *http.Request) (int, time.Month, bool) {
	year := queryInt(r, "year", 0)
	month := queryInt(r, "month", 0)
	if year == 0 || month < 1 || month > 12 {
		writeError(w, http.StatusBadRequest, "year and month (1-12) are required", nil)
		return 0, 0, false
	}
	return year, time.Month(month), true
}

func queryInt(r *http.Request, key string, def int) int {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return n
}

// splitInterval breaks an "HH:MM-HH:MM" assignment into its endpoints.
func splitInterval(interval string) (string, string, bool) {
	parts := strings.SplitN(interval, "-", 2)
	if len(parts) != 2 {
		return "", "", false
	}
	return parts[0], parts[1], true
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, roster.ErrDuplicateRequest):
		return http.StatusConflict
	case roster.IsNotFound(err):
		return http.StatusNotFound
	case roster.IsClientError(err):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string, err error) {
	resp := ErrorResponse{Error: message}
	if err != nil {
		resp.Details = err.Error()
	}
	writeJSON(w, status, resp)
}
