/*
Package sqlite provides the SQLite-backed implementation of roster.Store.

PURPOSE:
  Persists everything around the generator: the employee roster, standing
  shift requests, company holidays, generated shift records, and the
  actual hours employees submit afterwards. The generator itself never
  sees this package - the HTTP layer loads collections through it and
  hands plain slices to the engine.

KEY TABLES:
  employees:          roster members with wages and caps
  shift_requests:     one request per (employee, date), rest or work
  shifts:             planned shifts, one per (employee, date); rest days
                      are simply absent
  company_holidays:   company-declared closures, keyed by date
  actual_work_hours:  submitted actuals, one per shift

MONEY COLUMNS:
  Wages, income limits, and initial income are stored as TEXT and parsed
  with decimal.NewFromString; REAL columns would reintroduce the float
  rounding the engine avoids.

WAL MODE:
  The database opens with WAL and foreign keys on. A sync.RWMutex guards
  multi-statement operations; SQLite serializes single statements itself.

USAGE:
  store, err := sqlite.New("./data/roster.db")
  if err != nil {
      log.Fatal(err)
  }
  defer store.Close()

SEE ALSO:
  - roster/store.go: Interface definitions
  - store/memory: In-memory implementation for tests
*/
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"

	_ "github.com/mattn/go-sqlite3"
	"github.com/shopspring/decimal"

	"github.com/kairo/roster-engine/roster"
)

// Store implements roster.Store using SQLite.
type Store struct {
	db *sql.DB
	mu sync.RWMutex
}

var _ roster.Store = (*Store)(nil)

// New creates a new SQLite store with the given database path.
// Use ":memory:" for an in-memory database.
func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_foreign_keys=on&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	return store, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS employees (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		group_name TEXT,
		default_work_hours TEXT,
		hourly_wage TEXT NOT NULL,
		max_weekly_hours REAL,
		max_weekly_days INTEGER,
		annual_income_limit TEXT,
		initial_income TEXT,
		initial_income_year INTEGER,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS shift_requests (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		employee_id INTEGER NOT NULL,
		date TEXT NOT NULL,
		request_type TEXT NOT NULL,
		notes TEXT,
		UNIQUE(employee_id, date),
		FOREIGN KEY (employee_id) REFERENCES employees (id)
	);

	CREATE TABLE IF NOT EXISTS shifts (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		employee_id INTEGER NOT NULL,
		date TEXT NOT NULL,
		start_time TEXT,
		end_time TEXT,
		UNIQUE(employee_id, date),
		FOREIGN KEY (employee_id) REFERENCES employees (id)
	);

	CREATE TABLE IF NOT EXISTS company_holidays (
		date TEXT PRIMARY KEY,
		note TEXT
	);

	CREATE TABLE IF NOT EXISTS actual_work_hours (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		shift_id INTEGER NOT NULL UNIQUE,
		actual_start_time TEXT,
		actual_end_time TEXT,
		break_hours REAL,
		FOREIGN KEY (shift_id) REFERENCES shifts (id) ON DELETE CASCADE
	);

	CREATE INDEX IF NOT EXISTS idx_shifts_date ON shifts(date);
	CREATE INDEX IF NOT EXISTS idx_requests_date ON shift_requests(date);
	`
	_, err := s.db.Exec(schema)
	return err
}

// =============================================================================
// EMPLOYEES
// =============================================================================

const employeeColumns = `id, name, group_name, default_work_hours, hourly_wage,
	max_weekly_hours, max_weekly_days, annual_income_limit, initial_income, initial_income_year`

func (s *Store) ListEmployees(ctx context.Context) ([]roster.Employee, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx, `SELECT `+employeeColumns+` FROM employees ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var employees []roster.Employee
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		employees = append(employees, e)
	}
	return employees, rows.Err()
}

func (s *Store) GetEmployee(ctx context.Context, id roster.EmployeeID) (roster.Employee, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row := s.db.QueryRowContext(ctx, `SELECT `+employeeColumns+` FROM employees WHERE id = ?`, id)
	e, err := scanEmployee(row)
	if errors.Is(err, sql.ErrNoRows) {
		return roster.Employee{}, roster.ErrEmployeeNotFound
	}
	return e, err
}

func (s *Store) CreateEmployee(ctx context.Context, e *roster.Employee) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.ExecContext(ctx, `
		INSERT INTO employees (name, group_name, default_work_hours, hourly_wage,
			max_weekly_hours, max_weekly_days, annual_income_limit, initial_income, initial_income_year)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.Name, nullStr(e.Group), nullStr(e.DefaultHours), e.HourlyWage.String(),
		e.MaxWeeklyHours, e.MaxWeeklyDays, nullDec(e.AnnualIncomeLimit),
		e.InitialIncome.String(), nullInt(e.InitialIncomeYear))
	if err != nil {
		return err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	e.ID = roster.EmployeeID(id)
	return nil
}

func (s *Store) UpdateEmployee(ctx context.Context, e roster.Employee) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.ExecContext(ctx, `
		UPDATE employees SET name = ?, group_name = ?, default_work_hours = ?, hourly_wage = ?,
			max_weekly_hours = ?, max_weekly_days = ?, annual_income_limit = ?,
			initial_income = ?, initial_income_year = ?
		WHERE id = ?`,
		e.Name, nullStr(e.Group), nullStr(e.DefaultHours), e.HourlyWage.String(),
		e.MaxWeeklyHours, e.MaxWeeklyDays, nullDec(e.AnnualIncomeLimit),
		e.InitialIncome.String(), nullInt(e.InitialIncomeYear), e.ID)
	if err != nil {
		return err
	}
	return requireRow(res, roster.ErrEmployeeNotFound)
}

func (s *Store) DeleteEmployee(ctx context.Context, id roster.EmployeeID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.ExecContext(ctx, `DELETE FROM employees WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return requireRow(res, roster.ErrEmployeeNotFound)
}

// =============================================================================
// SHIFT REQUESTS
// =============================================================================

func (s *Store) RequestsInRange(ctx context.Context, p roster.Period) ([]roster.ShiftRequest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, employee_id, date, request_type, COALESCE(notes, '')
		FROM shift_requests WHERE date BETWEEN ? AND ? ORDER BY date, employee_id`,
		p.Start.String(), p.End.String())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var requests []roster.ShiftRequest
	for rows.Next() {
		var r roster.ShiftRequest
		var dateStr, typeStr string
		if err := rows.Scan(&r.ID, &r.EmployeeID, &dateStr, &typeStr, &r.Notes); err != nil {
			return nil, err
		}
		if r.Date, err = roster.ParseDate(dateStr); err != nil {
			return nil, err
		}
		r.Type = roster.RequestType(typeStr)
		requests = append(requests, r)
	}
	return requests, rows.Err()
}

func (s *Store) CreateRequest(ctx context.Context, r *roster.ShiftRequest) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var existing int64
	err := s.db.QueryRowContext(ctx,
		`SELECT id FROM shift_requests WHERE employee_id = ? AND date = ?`,
		r.EmployeeID, r.Date.String()).Scan(&existing)
	if err == nil {
		return roster.ErrDuplicateRequest
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return err
	}

	res, err := s.db.ExecContext(ctx, `
		INSERT INTO shift_requests (employee_id, date, request_type, notes)
		VALUES (?, ?, ?, ?)`,
		r.EmployeeID, r.Date.String(), string(r.Type), r.Notes)
	if err != nil {
		return err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	r.ID = id
	return nil
}

func (s *Store) DeleteRequest(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx, `DELETE FROM shift_requests WHERE id = ?`, id)
	return err
}

// =============================================================================
// COMPANY HOLIDAYS
// =============================================================================

func (s *Store) CompanyHolidays(ctx context.Context) ([]roster.CompanyHoliday, error) {
	return s.queryHolidays(ctx, `SELECT date, COALESCE(note, '') FROM company_holidays ORDER BY date`)
}

func (s *Store) CompanyHolidaysInRange(ctx context.Context, p roster.Period) ([]roster.CompanyHoliday, error) {
	return s.queryHolidays(ctx,
		`SELECT date, COALESCE(note, '') FROM company_holidays WHERE date BETWEEN ? AND ? ORDER BY date`,
		p.Start.String(), p.End.String())
}

func (s *Store) queryHolidays(ctx context.Context, query string, args ...any) ([]roster.CompanyHoliday, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var holidays []roster.CompanyHoliday
	for rows.Next() {
		var h roster.CompanyHoliday
		var dateStr string
		if err := rows.Scan(&dateStr, &h.Note); err != nil {
			return nil, err
		}
		if h.Date, err = roster.ParseDate(dateStr); err != nil {
			return nil, err
		}
		holidays = append(holidays, h)
	}
	return holidays, rows.Err()
}

func (s *Store) SaveCompanyHoliday(ctx context.Context, h roster.CompanyHoliday) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO company_holidays (date, note) VALUES (?, ?)`,
		h.Date.String(), h.Note)
	return err
}

func (s *Store) DeleteCompanyHoliday(ctx context.Context, d roster.Date) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.ExecContext(ctx, `DELETE FROM company_holidays WHERE date = ?`, d.String())
	if err != nil {
		return err
	}
	return requireRow(res, roster.ErrHolidayNotFound)
}

// =============================================================================
// SHIFTS AND ACTUALS
// =============================================================================

func (s *Store) ShiftsInRange(ctx context.Context, p roster.Period) ([]roster.ShiftRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx, `
		SELECT s.id, s.employee_id, s.date, COALESCE(s.start_time, ''), COALESCE(s.end_time, ''),
		       a.actual_start_time, a.actual_end_time, a.break_hours
		FROM shifts s
		LEFT JOIN actual_work_hours a ON s.id = a.shift_id
		WHERE s.date BETWEEN ? AND ?
		ORDER BY s.date, s.employee_id`,
		p.Start.String(), p.End.String())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []roster.ShiftRecord
	for rows.Next() {
		var rec roster.ShiftRecord
		var dateStr string
		var actualStart, actualEnd sql.NullString
		var breakHours sql.NullFloat64
		if err := rows.Scan(&rec.ID, &rec.EmployeeID, &dateStr, &rec.StartTime, &rec.EndTime,
			&actualStart, &actualEnd, &breakHours); err != nil {
			return nil, err
		}
		if rec.Date, err = roster.ParseDate(dateStr); err != nil {
			return nil, err
		}
		if actualStart.Valid || actualEnd.Valid || breakHours.Valid {
			actual := &roster.ActualHours{
				StartTime: actualStart.String,
				EndTime:   actualEnd.String,
			}
			if breakHours.Valid {
				b := breakHours.Float64
				actual.BreakHours = &b
			}
			rec.Actual = actual
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// SaveShifts upserts a batch of planned shifts atomically.
func (s *Store) SaveShifts(ctx context.Context, records []roster.ShiftRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, rec := range records {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO shifts (employee_id, date, start_time, end_time)
			VALUES (?, ?, ?, ?)
			ON CONFLICT(employee_id, date) DO UPDATE SET start_time = excluded.start_time, end_time = excluded.end_time`,
			rec.EmployeeID, rec.Date.String(), rec.StartTime, rec.EndTime); err != nil {
			return err
		}
	}
	return tx.Commit()
}

func (s *Store) DeleteShift(ctx context.Context, employeeID roster.EmployeeID, d roster.Date) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx,
		`DELETE FROM shifts WHERE employee_id = ? AND date = ?`, employeeID, d.String())
	return err
}

func (s *Store) RecordActual(ctx context.Context, shiftID int64, actual roster.ActualHours) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var exists int64
	err := s.db.QueryRowContext(ctx, `SELECT id FROM shifts WHERE id = ?`, shiftID).Scan(&exists)
	if errors.Is(err, sql.ErrNoRows) {
		return roster.ErrShiftNotFound
	}
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO actual_work_hours (shift_id, actual_start_time, actual_end_time, break_hours)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(shift_id) DO UPDATE SET actual_start_time = excluded.actual_start_time,
			actual_end_time = excluded.actual_end_time, break_hours = excluded.break_hours`,
		shiftID, actual.StartTime, actual.EndTime, actual.BreakHours)
	return err
}

// =============================================================================
// SCAN HELPERS
// =============================================================================

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEmployee(row rowScanner) (roster.Employee, error) {
	var e roster.Employee
	var group, defaultHours, wage sql.NullString
	var maxHours sql.NullFloat64
	var maxDays, incomeYear sql.NullInt64
	var limit, initial sql.NullString

	err := row.Scan(&e.ID, &e.Name, &group, &defaultHours, &wage,
		&maxHours, &maxDays, &limit, &initial, &incomeYear)
	if err != nil {
		return roster.Employee{}, err
	}

	e.Group = group.String
	e.DefaultHours = defaultHours.String
	if e.HourlyWage, err = parseDecimal(wage); err != nil {
		return roster.Employee{}, err
	}
	if maxHours.Valid {
		h := maxHours.Float64
		e.MaxWeeklyHours = &h
	}
	if maxDays.Valid {
		d := int(maxDays.Int64)
		e.MaxWeeklyDays = &d
	}
	if limit.Valid {
		l, err := decimal.NewFromString(limit.String)
		if err != nil {
			return roster.Employee{}, err
		}
		e.AnnualIncomeLimit = &l
	}
	if e.InitialIncome, err = parseDecimal(initial); err != nil {
		return roster.Employee{}, err
	}
	e.InitialIncomeYear = int(incomeYear.Int64)
	return e, nil
}

func parseDecimal(s sql.NullString) (decimal.Decimal, error) {
	if !s.Valid || s.String == "" {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(s.String)
}

func requireRow(res sql.Result, missing error) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return missing
	}
	return nil
}

func nullStr(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func nullInt(n int) any {
	if n == 0 {
		return nil
	}
	return n
}

func nullDec(d *decimal.Decimal) any {
	if d == nil {
		return nil
	}
	return d.String()
}
