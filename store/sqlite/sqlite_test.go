package sqlite_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kairo/roster-engine/roster"
	"github.com/kairo/roster-engine/store/sqlite"
)

// =============================================================================
// TEST SETUP
// =============================================================================

func newTestStore(t *testing.T) *sqlite.Store {
	store, err := sqlite.New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func createEmployee(t *testing.T, store *sqlite.Store, name string) roster.Employee {
	t.Helper()
	hours := 20.0
	days := 3
	limit := decimal.NewFromInt(1030000)
	e := roster.Employee{
		Name:              name,
		Group:             "kitchen",
		DefaultHours:      "09:00-17:00",
		HourlyWage:        decimal.NewFromInt(1100),
		MaxWeeklyHours:    &hours,
		MaxWeeklyDays:     &days,
		AnnualIncomeLimit: &limit,
		InitialIncome:     decimal.NewFromInt(250000),
		InitialIncomeYear: 2025,
	}
	require.NoError(t, store.CreateEmployee(context.Background(), &e))
	require.NotZero(t, e.ID)
	return e
}

// =============================================================================
// EMPLOYEE ROUND-TRIP
// =============================================================================

func TestEmployees_RoundTrip(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	created := createEmployee(t, store, "Tanaka")

	got, err := store.GetEmployee(ctx, created.ID)
	require.NoError(t, err)

	assert.Equal(t, "Tanaka", got.Name)
	assert.Equal(t, "kitchen", got.Group)
	assert.Equal(t, "09:00-17:00", got.DefaultHours)
	assert.True(t, got.HourlyWage.Equal(decimal.NewFromInt(1100)))
	require.NotNil(t, got.MaxWeeklyHours)
	assert.Equal(t, 20.0, *got.MaxWeeklyHours)
	require.NotNil(t, got.MaxWeeklyDays)
	assert.Equal(t, 3, *got.MaxWeeklyDays)
	require.NotNil(t, got.AnnualIncomeLimit)
	assert.True(t, got.AnnualIncomeLimit.Equal(decimal.NewFromInt(1030000)))
	assert.True(t, got.InitialIncome.Equal(decimal.NewFromInt(250000)))
	assert.Equal(t, 2025, got.InitialIncomeYear)
}

func TestEmployees_OptionalFieldsNull(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	e := roster.Employee{Name: "Sato", HourlyWage: decimal.NewFromInt(1000)}
	require.NoError(t, store.CreateEmployee(ctx, &e))

	got, err := store.GetEmployee(ctx, e.ID)
	require.NoError(t, err)
	assert.Nil(t, got.MaxWeeklyHours)
	assert.Nil(t, got.MaxWeeklyDays)
	assert.Nil(t, got.AnnualIncomeLimit)
	assert.Empty(t, got.Group)
	assert.Empty(t, got.DefaultHours)
}

func TestEmployees_UpdateAndDelete(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	e := createEmployee(t, store, "Suzuki")
	e.Name = "Suzuki (updated)"
	e.MaxWeeklyDays = nil
	require.NoError(t, store.UpdateEmployee(ctx, e))

	got, err := store.GetEmployee(ctx, e.ID)
	require.NoError(t, err)
	assert.Equal(t, "Suzuki (updated)", got.Name)
	assert.Nil(t, got.MaxWeeklyDays)

	require.NoError(t, store.DeleteEmployee(ctx, e.ID))
	_, err = store.GetEmployee(ctx, e.ID)
	assert.ErrorIs(t, err, roster.ErrEmployeeNotFound)
	assert.ErrorIs(t, store.DeleteEmployee(ctx, e.ID), roster.ErrEmployeeNotFound)
}

// =============================================================================
// SHIFT REQUESTS
// =============================================================================

func TestRequests_DuplicateRejected(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	e := createEmployee(t, store, "Tanaka")
	d := roster.NewDate(2025, time.March, 11)

	r1 := roster.ShiftRequest{EmployeeID: e.ID, Date: d, Type: roster.RequestRest, Notes: "dentist"}
	require.NoError(t, store.CreateRequest(ctx, &r1))
	require.NotZero(t, r1.ID)

	r2 := roster.ShiftRequest{EmployeeID: e.ID, Date: d, Type: roster.RequestWork}
	assert.ErrorIs(t, store.CreateRequest(ctx, &r2), roster.ErrDuplicateRequest)
}

func TestRequests_RangeFilter(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	e := createEmployee(t, store, "Tanaka")

	inside := roster.ShiftRequest{EmployeeID: e.ID, Date: roster.NewDate(2025, time.March, 12), Type: roster.RequestWork}
	outside := roster.ShiftRequest{EmployeeID: e.ID, Date: roster.NewDate(2025, time.April, 1), Type: roster.RequestRest}
	require.NoError(t, store.CreateRequest(ctx, &inside))
	require.NoError(t, store.CreateRequest(ctx, &outside))

	p := roster.Period{Start: roster.NewDate(2025, time.March, 10), End: roster.NewDate(2025, time.March, 16)}
	got, err := store.RequestsInRange(ctx, p)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, roster.RequestWork, got[0].Type)
	assert.Equal(t, "2025-03-12", got[0].Date.String())
}

// =============================================================================
// COMPANY HOLIDAYS
// =============================================================================

func TestCompanyHolidays_UpsertAndDelete(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	d := roster.NewDate(2025, time.August, 14)

	require.NoError(t, store.SaveCompanyHoliday(ctx, roster.CompanyHoliday{Date: d, Note: "obon"}))
	require.NoError(t, store.SaveCompanyHoliday(ctx, roster.CompanyHoliday{Date: d, Note: "obon break"}))

	holidays, err := store.CompanyHolidays(ctx)
	require.NoError(t, err)
	require.Len(t, holidays, 1, "same date must upsert, not duplicate")
	assert.Equal(t, "obon break", holidays[0].Note)

	require.NoError(t, store.DeleteCompanyHoliday(ctx, d))
	assert.ErrorIs(t, store.DeleteCompanyHoliday(ctx, d), roster.ErrHolidayNotFound)
}

// =============================================================================
// SHIFTS AND ACTUALS
// =============================================================================

func TestShifts_SaveGeneratedScheduleAndReadBack(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	e := createEmployee(t, store, "Tanaka")

	d := roster.NewDate(2025, time.March, 11)
	records := []roster.ShiftRecord{
		{EmployeeID: e.ID, Date: d, StartTime: "09:00", EndTime: "17:00"},
		{EmployeeID: e.ID, Date: d.AddDays(1), StartTime: "10:00", EndTime: "18:00"},
	}
	require.NoError(t, store.SaveShifts(ctx, records))

	// Regenerating overwrites the slot rather than duplicating it
	records[0].StartTime, records[0].EndTime = "08:00", "16:00"
	require.NoError(t, store.SaveShifts(ctx, records[:1]))

	p := roster.Period{Start: d, End: d.AddDays(1)}
	got, err := store.ShiftsInRange(ctx, p)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "08:00", got[0].StartTime)
	assert.Nil(t, got[0].Actual)
}

func TestShifts_ActualsJoined(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	e := createEmployee(t, store, "Tanaka")
	d := roster.NewDate(2025, time.March, 11)

	require.NoError(t, store.SaveShifts(ctx, []roster.ShiftRecord{
		{EmployeeID: e.ID, Date: d, StartTime: "09:00", EndTime: "17:00"},
	}))

	p := roster.Period{Start: d, End: d}
	got, err := store.ShiftsInRange(ctx, p)
	require.NoError(t, err)
	require.Len(t, got, 1)

	breakHours := 0.5
	require.NoError(t, store.RecordActual(ctx, got[0].ID, roster.ActualHours{
		StartTime: "09:15", EndTime: "17:30", BreakHours: &breakHours,
	}))

	got, err = store.ShiftsInRange(ctx, p)
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.NotNil(t, got[0].Actual)
	assert.Equal(t, "09:15", got[0].Actual.StartTime)
	require.NotNil(t, got[0].Actual.BreakHours)
	assert.Equal(t, 0.5, *got[0].Actual.BreakHours)
}
