package postgresql

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/workpay/workpay-backend-go/internal/domain/attendance"
	"github.com/workpay/workpay-backend-go/internal/pkg/database"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

// Create implements attendance.AttendanceRepository.
func (a *attendanceRepository) Create(ctx context.Context, entry attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		INSERT INTO attendance_entries (
			id, employee_id, date, check_in, check_out, hours_worked, status, leave_type
		) VALUES (
			gen_random_uuid(), $1, $2, $3, $4, $5, $6, $7
		) RETURNING id, created_at
	`

	err := q.QueryRow(ctx, query,
		entry.EmployeeID,
		entry.Date,
		entry.CheckIn,
		entry.CheckOut,
		entry.HoursWorked,
		entry.Status,
		entry.LeaveType,
	).Scan(&entry.ID, &entry.CreatedAt)

	if err != nil {
		return attendance.Attendance{}, database.WrapErr("failed to create attendance entry", err)
	}

	return entry, nil
}

// HasCheckedIn implements attendance.AttendanceRepository.
func (a *attendanceRepository) HasCheckedIn(ctx context.Context, employeeID string, date time.Time) (bool, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT EXISTS (
			SELECT 1 FROM attendance_entries
			WHERE employee_id = $1 AND date = $2 AND check_in IS NOT NULL
		)
	`

	var exists bool
	err := q.QueryRow(ctx, query, employeeID, date).Scan(&exists)
	if err != nil {
		return false, database.WrapErr("failed to check existing check-in", err)
	}

	return exists, nil
}

// CloseOpenEntry implements attendance.AttendanceRepository.
// The open-entry guard lives in the UPDATE predicate: of two concurrent
// check-outs only one can match the check_out-is-null row.
func (a *attendanceRepository) CloseOpenEntry(ctx context.Context, employeeID string, date time.Time, checkOut time.Time) (attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		UPDATE attendance_entries
		SET check_out = $3,
		    hours_worked = EXTRACT(EPOCH FROM ($3 - check_in)) / 3600.0
		WHERE employee_id = $1
		  AND date = $2
		  AND check_in IS NOT NULL
		  AND check_out IS NULL
		RETURNING id, employee_id, date, check_in, check_out, hours_worked, status, leave_type, created_at
	`

	var entry attendance.Attendance
	err := q.QueryRow(ctx, query, employeeID, date, checkOut).Scan(
		&entry.ID, &entry.EmployeeID, &entry.Date, &entry.CheckIn, &entry.CheckOut,
		&entry.HoursWorked, &entry.Status, &entry.LeaveType, &entry.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return attendance.Attendance{}, attendance.ErrNoOpenCheckIn
		}
		return attendance.Attendance{}, database.WrapErr("failed to close open attendance entry", err)
	}

	return entry, nil
}

// GetByEmployeeAndDate implements attendance.AttendanceRepository.
func (a *attendanceRepository) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT id, employee_id, date, check_in, check_out, hours_worked, status, leave_type, created_at
		FROM attendance_entries
		WHERE employee_id = $1 AND date = $2
		ORDER BY created_at
		LIMIT 1
	`

	var entry attendance.Attendance
	err := q.QueryRow(ctx, query, employeeID, date).Scan(
		&entry.ID, &entry.EmployeeID, &entry.Date, &entry.CheckIn, &entry.CheckOut,
		&entry.HoursWorked, &entry.Status, &entry.LeaveType, &entry.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, database.WrapErr("failed to get attendance by employee and date", err)
	}

	return &entry, nil
}

// ListByDate implements attendance.AttendanceRepository.
func (a *attendanceRepository) ListByDate(ctx context.Context, date time.Time) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT a.id, a.employee_id, a.date, a.check_in, a.check_out, a.hours_worked,
		       a.status, a.leave_type, a.created_at,
		       COALESCE(e.first_name, 'Deleted') || ' ' || COALESCE(e.last_name, 'Employee') AS employee_name,
		       e.position
		FROM attendance_entries a
		LEFT JOIN employees e ON e.id = a.employee_id
		WHERE a.date = $1
		ORDER BY e.last_name, e.first_name
	`

	rows, err := q.Query(ctx, query, date)
	if err != nil {
		return nil, database.WrapErr("failed to list attendance by date", err)
	}
	defer rows.Close()

	var entries []attendance.Attendance
	for rows.Next() {
		var entry attendance.Attendance
		if err := rows.Scan(
			&entry.ID, &entry.EmployeeID, &entry.Date, &entry.CheckIn, &entry.CheckOut,
			&entry.HoursWorked, &entry.Status, &entry.LeaveType, &entry.CreatedAt,
			&entry.EmployeeName, &entry.Position,
		); err != nil {
			return nil, database.WrapErr("failed to scan attendance entry", err)
		}
		entries = append(entries, entry)
	}

	return entries, nil
}

// ListByEmployee implements attendance.AttendanceRepository.
func (a *attendanceRepository) ListByEmployee(ctx context.Context, employeeID string, start, end time.Time) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT a.id, a.employee_id, a.date, a.check_in, a.check_out, a.hours_worked,
		       a.status, a.leave_type, a.created_at,
		       COALESCE(e.first_name, 'Deleted') || ' ' || COALESCE(e.last_name, 'Employee') AS employee_name,
		       e.position
		FROM attendance_entries a
		LEFT JOIN employees e ON e.id = a.employee_id
		WHERE a.employee_id = $1 AND a.date BETWEEN $2 AND $3
		ORDER BY a.date DESC
	`

	rows, err := q.Query(ctx, query, employeeID, start, end)
	if err != nil {
		return nil, database.WrapErr("failed to list attendance by employee", err)
	}
	defer rows.Close()

	var entries []attendance.Attendance
	for rows.Next() {
		var entry attendance.Attendance
		if err := rows.Scan(
			&entry.ID, &entry.EmployeeID, &entry.Date, &entry.CheckIn, &entry.CheckOut,
			&entry.HoursWorked, &entry.Status, &entry.LeaveType, &entry.CreatedAt,
			&entry.EmployeeName, &entry.Position,
		); err != nil {
			return nil, database.WrapErr("failed to scan attendance entry", err)
		}
		entries = append(entries, entry)
	}

	return entries, nil
}

// GetMonthlySummary implements attendance.AttendanceRepository.
func (a *attendanceRepository) GetMonthlySummary(ctx context.Context, employeeID string, year, month int) (attendance.MonthlySummary, error) {
	q := GetQuerier(ctx, a.db)

	firstDay := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	lastDay := firstDay.AddDate(0, 1, -1)

	query := `
		SELECT
			COUNT(*) AS total_days,
			COUNT(*) FILTER (WHERE status = 'present') AS present_days,
			COUNT(*) FILTER (WHERE status = 'leave') AS leave_days,
			COALESCE(SUM(hours_worked), 0) AS total_hours
		FROM attendance_entries
		WHERE employee_id = $1 AND date BETWEEN $2 AND $3
	`

	var s attendance.MonthlySummary
	err := q.QueryRow(ctx, query, employeeID, firstDay, lastDay).Scan(
		&s.TotalDays, &s.PresentDays, &s.LeaveDays, &s.TotalHours,
	)
	if err != nil {
		return attendance.MonthlySummary{}, database.WrapErr("failed to get monthly attendance summary", err)
	}

	return s, nil
}
