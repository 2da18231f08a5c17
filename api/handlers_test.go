package api_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kairo/roster-engine/api"
	"github.com/kairo/roster-engine/store/memory"
)

// =============================================================================
// TEST SETUP
// =============================================================================

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	h := api.NewHandler(memory.New())
	srv := httptest.NewServer(api.NewRouter(h))
	t.Cleanup(srv.Close)
	return srv
}

func doJSON(t *testing.T, method, url string, body any) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, url, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func createEmployee(t *testing.T, srv *httptest.Server, name string) api.EmployeeDTO {
	t.Helper()
	resp := doJSON(t, http.MethodPost, srv.URL+"/api/employees", map[string]any{
		"name":               name,
		"group":              "hall",
		"default_work_hours": "09:00-17:00",
		"hourly_wage":        "1000",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	return decode[api.EmployeeDTO](t, resp)
}

// =============================================================================
// EMPLOYEES
// =============================================================================

func TestEmployees_CRUD(t *testing.T) {
	srv := newTestServer(t)

	created := createEmployee(t, srv, "Tanaka")
	assert.NotZero(t, created.ID)
	assert.Equal(t, "1000", created.HourlyWage)

	resp := doJSON(t, http.MethodGet, fmt.Sprintf("%s/api/employees/%d", srv.URL, created.ID), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	got := decode[api.EmployeeDTO](t, resp)
	assert.Equal(t, "Tanaka", got.Name)
	assert.Equal(t, "hall", got.Group)

	resp = doJSON(t, http.MethodPut, fmt.Sprintf("%s/api/employees/%d", srv.URL, created.ID), map[string]any{
		"name":        "Tanaka",
		"hourly_wage": "1200",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "1200", decode[api.EmployeeDTO](t, resp).HourlyWage)

	resp = doJSON(t, http.MethodDelete, fmt.Sprintf("%s/api/employees/%d", srv.URL, created.ID), nil)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = doJSON(t, http.MethodGet, fmt.Sprintf("%s/api/employees/%d", srv.URL, created.ID), nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestEmployees_ValidationErrors(t *testing.T) {
	srv := newTestServer(t)

	resp := doJSON(t, http.MethodPost, srv.URL+"/api/employees", map[string]any{
		"hourly_wage": "1000",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode, "missing name")

	resp = doJSON(t, http.MethodPost, srv.URL+"/api/employees", map[string]any{
		"name":        "Tanaka",
		"hourly_wage": "not-a-number",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode, "malformed wage")
}

// =============================================================================
// SHIFT REQUESTS
// =============================================================================

func TestShiftRequests_DuplicateConflict(t *testing.T) {
	srv := newTestServer(t)
	e := createEmployee(t, srv, "Tanaka")

	body := map[string]any{
		"employee_id":  e.ID,
		"date":         "2025-03-11",
		"request_type": "holiday",
	}
	resp := doJSON(t, http.MethodPost, srv.URL+"/api/shift-requests", body)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	body["request_type"] = "work"
	resp = doJSON(t, http.MethodPost, srv.URL+"/api/shift-requests", body)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestShiftRequests_UnknownEmployeeAndBadType(t *testing.T) {
	srv := newTestServer(t)
	e := createEmployee(t, srv, "Tanaka")

	resp := doJSON(t, http.MethodPost, srv.URL+"/api/shift-requests", map[string]any{
		"employee_id":  999,
		"date":         "2025-03-11",
		"request_type": "holiday",
	})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = doJSON(t, http.MethodPost, srv.URL+"/api/shift-requests", map[string]any{
		"employee_id":  e.ID,
		"date":         "2025-03-11",
		"request_type": "vacation",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestShiftRequests_ListAndDelete(t *testing.T) {
	srv := newTestServer(t)
	e := createEmployee(t, srv, "Tanaka")

	resp := doJSON(t, http.MethodPost, srv.URL+"/api/shift-requests", map[string]any{
		"employee_id":  e.ID,
		"date":         "2025-03-11",
		"request_type": "work",
		"notes":        "prefers tuesdays",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := decode[api.ShiftRequestDTO](t, resp)

	resp = doJSON(t, http.MethodGet, srv.URL+"/api/shift-requests?start=2025-03-10&end=2025-03-16", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	listed := decode[[]api.ShiftRequestDTO](t, resp)
	require.Len(t, listed, 1)
	assert.Equal(t, "prefers tuesdays", listed[0].Notes)

	resp = doJSON(t, http.MethodDelete, fmt.Sprintf("%s/api/shift-requests/%d", srv.URL, created.ID), nil)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = doJSON(t, http.MethodGet, srv.URL+"/api/shift-requests?start=2025-03-10&end=2025-03-16", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, decode[[]api.ShiftRequestDTO](t, resp))
}

// =============================================================================
// SCHEDULE GENERATION
// =============================================================================

func TestGenerateSchedule_InvalidRange(t *testing.T) {
	srv := newTestServer(t)

	resp := doJSON(t, http.MethodPost, srv.URL+"/api/shifts/generate-schedule", map[string]any{
		"startDate": "2025-03-16",
		"endDate":   "2025-03-10",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode, "inverted range")

	resp = doJSON(t, http.MethodPost, srv.URL+"/api/shifts/generate-schedule", map[string]any{
		"startDate": "2025-03-10",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode, "missing endDate")
}

func TestGenerateSchedule_WeekWithSave(t *testing.T) {
	srv := newTestServer(t)
	e := createEmployee(t, srv, "Tanaka")

	// Company holiday on the Wednesday
	resp := doJSON(t, http.MethodPost, srv.URL+"/api/company-holidays", map[string]any{
		"date": "2025-03-12",
		"note": "inventory",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = doJSON(t, http.MethodPost, srv.URL+"/api/shifts/generate-schedule", map[string]any{
		"startDate": "2025-03-10",
		"endDate":   "2025-03-16",
		"save":      true,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out struct {
		Schedule map[string]map[string]string `json:"schedule"`
		Saved    bool                         `json:"saved"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.True(t, out.Saved)
	require.Len(t, out.Schedule, 7)

	id := fmt.Sprint(e.ID)
	assert.Equal(t, "09:00-17:00", out.Schedule["2025-03-10"][id])
	assert.Equal(t, "休み", out.Schedule["2025-03-12"][id], "company holiday")
	assert.Equal(t, "休み", out.Schedule["2025-03-15"][id], "saturday")
	assert.Equal(t, "休み", out.Schedule["2025-03-16"][id], "sunday")

	// Working days were persisted, rest days were not
	resp = doJSON(t, http.MethodGet, srv.URL+"/api/shifts?start=2025-03-10&end=2025-03-16", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	records := decode[[]api.ShiftRecordDTO](t, resp)
	require.Len(t, records, 4)
	assert.Equal(t, "2025-03-10", records[0].Date)
	assert.Equal(t, "09:00", records[0].StartTime)
}

// =============================================================================
// HOLIDAYS
// =============================================================================

func TestCompanyHolidays_Lifecycle(t *testing.T) {
	srv := newTestServer(t)

	resp := doJSON(t, http.MethodPost, srv.URL+"/api/company-holidays", map[string]any{
		"date": "2025-08-14",
		"note": "obon",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = doJSON(t, http.MethodGet, srv.URL+"/api/company-holidays", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	listed := decode[[]api.CompanyHolidayDTO](t, resp)
	require.Len(t, listed, 1)
	assert.Equal(t, "obon", listed[0].Note)

	resp = doJSON(t, http.MethodDelete, srv.URL+"/api/company-holidays/2025-08-14", nil)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = doJSON(t, http.MethodDelete, srv.URL+"/api/company-holidays/2025-08-14", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestPublicHolidays_GoldenWeek(t *testing.T) {
	srv := newTestServer(t)

	resp := doJSON(t, http.MethodGet, srv.URL+"/api/public-holidays?start=2025-04-29&end=2025-05-06", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	holidays := decode[[]api.PublicHolidayDTO](t, resp)
	require.Len(t, holidays, 5)
	assert.Equal(t, "2025-04-29", holidays[0].Date)
	assert.Equal(t, "2025-05-06", holidays[4].Date)
}

// =============================================================================
// SHIFTS AND ACTUALS
// =============================================================================

func TestShifts_ManualSaveAndActuals(t *testing.T) {
	srv := newTestServer(t)
	e := createEmployee(t, srv, "Tanaka")

	resp := doJSON(t, http.MethodPost, srv.URL+"/api/shifts", map[string]any{
		"shifts": []map[string]any{
			{"employee_id": e.ID, "date": "2025-03-11", "start_time": "10:00", "end_time": "15:00"},
		},
	})
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = doJSON(t, http.MethodGet, srv.URL+"/api/shifts?start=2025-03-11&end=2025-03-11", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	records := decode[[]api.ShiftRecordDTO](t, resp)
	require.Len(t, records, 1)

	resp = doJSON(t, http.MethodPost,
		fmt.Sprintf("%s/api/shifts/%d/actual", srv.URL, records[0].ID),
		map[string]any{"start_time": "10:15", "end_time": "15:30"})
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = doJSON(t, http.MethodGet, srv.URL+"/api/shifts?start=2025-03-11&end=2025-03-11", nil)
	records = decode[[]api.ShiftRecordDTO](t, resp)
	require.Len(t, records, 1)
	require.NotNil(t, records[0].Actual)
	assert.Equal(t, "10:15", records[0].Actual.StartTime)

	// Clearing the slot removes the record and its actuals
	resp = doJSON(t, http.MethodPost, srv.URL+"/api/shifts", map[string]any{
		"shifts": []map[string]any{
			{"employee_id": e.ID, "date": "2025-03-11", "start_time": "", "end_time": ""},
		},
	})
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = doJSON(t, http.MethodGet, srv.URL+"/api/shifts?start=2025-03-11&end=2025-03-11", nil)
	assert.Empty(t, decode[[]api.ShiftRecordDTO](t, resp))
}

func TestShifts_ActualForUnknownShift(t *testing.T) {
	srv := newTestServer(t)

	resp := doJSON(t, http.MethodPost, srv.URL+"/api/shifts/999/actual",
		map[string]any{"start_time": "09:00", "end_time": "17:00"})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

// =============================================================================
// REPORTS
// =============================================================================

func TestReports_Monthly(t *testing.T) {
	srv := newTestServer(t)
	e := createEmployee(t, srv, "Tanaka")

	// Five planned weekday shifts, 7 net hours each after the break
	var entries []map[string]any
	for day := 10; day <= 14; day++ {
		entries = append(entries, map[string]any{
			"employee_id": e.ID,
			"date":        fmt.Sprintf("2025-03-%02d", day),
			"start_time":  "09:00",
			"end_time":    "17:00",
		})
	}
	resp := doJSON(t, http.MethodPost, srv.URL+"/api/shifts", map[string]any{"shifts": entries})
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = doJSON(t, http.MethodGet,
		srv.URL+"/api/reports/monthly?year=2025&month=3&closing_day=25&projection=true", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	report := decode[api.MonthlyReportDTO](t, resp)

	assert.Equal(t, "2025-02-26", report.Start)
	assert.Equal(t, "2025-03-25", report.End)
	require.Len(t, report.Totals, 1)
	assert.Equal(t, 35.0, report.Totals[0].Hours)
	assert.Equal(t, "35000", report.Totals[0].Wages)

	// Without projection, shifts with no actuals contribute nothing
	resp = doJSON(t, http.MethodGet,
		srv.URL+"/api/reports/monthly?year=2025&month=3&closing_day=25", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	report = decode[api.MonthlyReportDTO](t, resp)
	require.Len(t, report.Totals, 1)
	assert.Zero(t, report.Totals[0].Hours)
}

func TestReports_CrossPeriodAndAnnual(t *testing.T) {
	srv := newTestServer(t)
	e := createEmployee(t, srv, "Tanaka")

	resp := doJSON(t, http.MethodPost, srv.URL+"/api/shifts", map[string]any{
		"shifts": []map[string]any{
			{"employee_id": e.ID, "date": "2025-03-11", "start_time": "09:00", "end_time": "17:00"},
			{"employee_id": e.ID, "date": "2025-04-10", "start_time": "09:00", "end_time": "13:00"},
		},
	})
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = doJSON(t, http.MethodGet,
		srv.URL+"/api/reports/cross-period?from=2025-03&to=2025-04&closing_day=25&projection=true", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	cross := decode[api.CrossPeriodReportDTO](t, resp)
	assert.Equal(t, []string{"2025-03", "2025-04"}, cross.Months)
	assert.Equal(t, 7.0, cross.Hours[e.ID]["2025-03"])
	assert.Equal(t, 4.0, cross.Hours[e.ID]["2025-04"])

	resp = doJSON(t, http.MethodGet, srv.URL+"/api/reports/annual-summary?year=2025", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	annual := decode[api.AnnualSummaryDTO](t, resp)
	require.Len(t, annual.Totals, 1)
	assert.Equal(t, 11.0, annual.Totals[0].Hours)
	assert.Equal(t, "11000", annual.Totals[0].Wages)
}
