package attendance

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/workpay/workpay-backend-go/internal/domain/attendance"
	"github.com/workpay/workpay-backend-go/internal/pkg/database"
	"github.com/workpay/workpay-backend-go/internal/repository/postgresql"
)

var testAttendanceDB *database.DB

func attendanceTestInit(t *testing.T) {
	if testAttendanceDB != nil {
		return
	}
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set, skipping integration test")
	}

	var err error
	testAttendanceDB, err = database.NewPostgreSQLDB(dsn)
	if err != nil {
		t.Fatal("Failed to connect to test database: " + err.Error())
	}
}

func truncateAttendanceTables(t *testing.T, ctx context.Context) {
	for _, table := range []string{"payroll_records", "attendance_entries", "employees"} {
		_, err := testAttendanceDB.Exec(ctx, fmt.Sprintf("TRUNCATE TABLE %s CASCADE", table))
		require.NoError(t, err)
	}
}

func createAttendanceTestEmployee(t *testing.T, ctx context.Context, firstName string) string {
	var employeeID string
	lastName := fmt.Sprintf("Tester-%d", time.Now().UnixNano())
	err := testAttendanceDB.QueryRow(ctx, `
		INSERT INTO employees (id, first_name, last_name, position, base_salary, status, created_at)
		VALUES (gen_random_uuid(), $1, $2, 'Engineer', 5000, 'active', NOW())
		RETURNING id
	`, firstName, lastName).Scan(&employeeID)
	require.NoError(t, err)
	return employeeID
}

func newTestAttendanceService(t *testing.T) attendance.AttendanceService {
	attendanceTestInit(t)
	attendanceRepo := postgresql.NewAttendanceRepository(testAttendanceDB)
	employeeRepo := postgresql.NewEmployeeRepository(testAttendanceDB)
	return NewAttendanceService(testAttendanceDB, attendanceRepo, employeeRepo)
}

func TestAttendanceService_CheckIn(t *testing.T) {
	svc := newTestAttendanceService(t)
	ctx := context.Background()
	truncateAttendanceTables(t, ctx)

	employeeID := createAttendanceTestEmployee(t, ctx, "Pat")
	now := time.Date(2026, time.March, 2, 9, 0, 0, 0, time.UTC)

	result, err := svc.CheckIn(ctx, employeeID, now)
	require.NoError(t, err)

	assert.Equal(t, "2026-03-02", result.Date)
	assert.Equal(t, "present", result.Status)
	require.NotNil(t, result.CheckInTime)
	assert.Equal(t, "09:00:00", *result.CheckInTime)
	assert.Nil(t, result.CheckOutTime)
	assert.Nil(t, result.HoursWorked)
}

func TestAttendanceService_CheckIn_Duplicate(t *testing.T) {
	svc := newTestAttendanceService(t)
	ctx := context.Background()
	truncateAttendanceTables(t, ctx)

	employeeID := createAttendanceTestEmployee(t, ctx, "Pat")
	now := time.Date(2026, time.March, 2, 9, 0, 0, 0, time.UTC)

	_, err := svc.CheckIn(ctx, employeeID, now)
	require.NoError(t, err)

	_, err = svc.CheckIn(ctx, employeeID, now.Add(time.Hour))
	assert.ErrorIs(t, err, attendance.ErrAlreadyCheckedIn)
}

func TestAttendanceService_CheckOut(t *testing.T) {
	svc := newTestAttendanceService(t)
	ctx := context.Background()
	truncateAttendanceTables(t, ctx)

	employeeID := createAttendanceTestEmployee(t, ctx, "Pat")
	checkIn := time.Date(2026, time.March, 2, 9, 0, 0, 0, time.UTC)
	checkOut := time.Date(2026, time.March, 2, 17, 30, 0, 0, time.UTC)

	_, err := svc.CheckIn(ctx, employeeID, checkIn)
	require.NoError(t, err)

	result, err := svc.CheckOut(ctx, employeeID, checkOut)
	require.NoError(t, err)

	require.NotNil(t, result.CheckOutTime)
	assert.Equal(t, "17:30:00", *result.CheckOutTime)
	require.NotNil(t, result.HoursWorked)
	assert.InDelta(t, 8.5, *result.HoursWorked, 1e-9)
}

func TestAttendanceService_CheckOut_WithoutCheckIn(t *testing.T) {
	svc := newTestAttendanceService(t)
	ctx := context.Background()
	truncateAttendanceTables(t, ctx)

	employeeID := createAttendanceTestEmployee(t, ctx, "Pat")
	now := time.Date(2026, time.March, 2, 17, 0, 0, 0, time.UTC)

	_, err := svc.CheckOut(ctx, employeeID, now)
	assert.ErrorIs(t, err, attendance.ErrNoOpenCheckIn)
}

func TestAttendanceService_CheckOut_Twice(t *testing.T) {
	svc := newTestAttendanceService(t)
	ctx := context.Background()
	truncateAttendanceTables(t, ctx)

	employeeID := createAttendanceTestEmployee(t, ctx, "Pat")
	checkIn := time.Date(2026, time.March, 2, 9, 0, 0, 0, time.UTC)

	_, err := svc.CheckIn(ctx, employeeID, checkIn)
	require.NoError(t, err)
	_, err = svc.CheckOut(ctx, employeeID, checkIn.Add(8*time.Hour))
	require.NoError(t, err)

	_, err = svc.CheckOut(ctx, employeeID, checkIn.Add(9*time.Hour))
	assert.ErrorIs(t, err, attendance.ErrNoOpenCheckIn)
}

func TestAttendanceService_MarkLeave_DuplicatesAllowed(t *testing.T) {
	svc := newTestAttendanceService(t)
	ctx := context.Background()
	truncateAttendanceTables(t, ctx)

	employeeID := createAttendanceTestEmployee(t, ctx, "Pat")
	req := attendance.MarkLeaveRequest{
		EmployeeID: employeeID,
		Date:       "2026-03-02",
		LeaveType:  "vacation",
	}

	first, err := svc.MarkLeave(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, "leave", first.Status)
	require.NotNil(t, first.LeaveType)
	assert.Equal(t, "vacation", *first.LeaveType)

	second, err := svc.MarkLeave(ctx, req)
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)
}

func TestAttendanceService_TodayStatus(t *testing.T) {
	svc := newTestAttendanceService(t)
	ctx := context.Background()
	truncateAttendanceTables(t, ctx)

	employeeID := createAttendanceTestEmployee(t, ctx, "Pat")
	now := time.Date(2026, time.March, 2, 9, 0, 0, 0, time.UTC)

	status, err := svc.TodayStatus(ctx, employeeID, now)
	require.NoError(t, err)
	assert.Equal(t, "not_checked_in", status.Status)
	assert.False(t, status.HasCheckedIn)

	_, err = svc.CheckIn(ctx, employeeID, now)
	require.NoError(t, err)

	status, err = svc.TodayStatus(ctx, employeeID, now.Add(time.Hour))
	require.NoError(t, err)
	assert.Equal(t, "present", status.Status)
	assert.True(t, status.HasCheckedIn)
	assert.False(t, status.HasCheckedOut)
}

func TestAttendanceService_DailySummary(t *testing.T) {
	svc := newTestAttendanceService(t)
	ctx := context.Background()
	truncateAttendanceTables(t, ctx)

	presentID := createAttendanceTestEmployee(t, ctx, "Present")
	absentID := createAttendanceTestEmployee(t, ctx, "Absent")
	now := time.Date(2026, time.March, 2, 9, 0, 0, 0, time.UTC)

	_, err := svc.CheckIn(ctx, presentID, now)
	require.NoError(t, err)

	summary, err := svc.DailySummary(ctx, now)
	require.NoError(t, err)

	require.Len(t, summary.PresentRecords, 1)
	assert.Equal(t, presentID, summary.PresentRecords[0].EmployeeID)
	require.Len(t, summary.AbsentEmployees, 1)
	assert.Equal(t, absentID, summary.AbsentEmployees[0].EmployeeID)
}

func TestAttendanceService_MonthlySummary(t *testing.T) {
	svc := newTestAttendanceService(t)
	ctx := context.Background()
	truncateAttendanceTables(t, ctx)

	employeeID := createAttendanceTestEmployee(t, ctx, "Pat")

	// Two worked days of 8h and 9h, one leave day.
	for day, hours := range map[int]time.Duration{2: 8 * time.Hour, 3: 9 * time.Hour} {
		checkIn := time.Date(2026, time.March, day, 9, 0, 0, 0, time.UTC)
		_, err := svc.CheckIn(ctx, employeeID, checkIn)
		require.NoError(t, err)
		_, err = svc.CheckOut(ctx, employeeID, checkIn.Add(hours))
		require.NoError(t, err)
	}
	_, err := svc.MarkLeave(ctx, attendance.MarkLeaveRequest{
		EmployeeID: employeeID,
		Date:       "2026-03-04",
		LeaveType:  "sick",
	})
	require.NoError(t, err)

	summary, err := svc.MonthlySummary(ctx, attendance.MonthlySummaryRequest{
		EmployeeID: employeeID,
		Year:       2026,
		Month:      3,
	})
	require.NoError(t, err)

	assert.Equal(t, 3, summary.TotalDays)
	assert.Equal(t, 2, summary.PresentDays)
	assert.Equal(t, 1, summary.LeaveDays)
	assert.InDelta(t, 17.0, summary.TotalHours, 0.01)
	assert.InDelta(t, 8.5, summary.AverageHours, 0.01)
}

func TestAttendanceService_History(t *testing.T) {
	svc := newTestAttendanceService(t)
	ctx := context.Background()
	truncateAttendanceTables(t, ctx)

	employeeID := createAttendanceTestEmployee(t, ctx, "Pat")
	inRange := time.Date(2026, time.March, 2, 9, 0, 0, 0, time.UTC)
	outOfRange := time.Date(2026, time.January, 5, 9, 0, 0, 0, time.UTC)

	_, err := svc.CheckIn(ctx, employeeID, inRange)
	require.NoError(t, err)
	_, err = svc.CheckIn(ctx, employeeID, outOfRange)
	require.NoError(t, err)

	start := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, time.March, 31, 0, 0, 0, 0, time.UTC)
	entries, err := svc.History(ctx, employeeID, start, end)
	require.NoError(t, err)

	require.Len(t, entries, 1)
	assert.Equal(t, "2026-03-02", entries[0].Date)
	assert.NotNil(t, entries[0].EmployeeName)
}

func TestAttendanceService_History_UnknownEmployeeIsEmpty(t *testing.T) {
	svc := newTestAttendanceService(t)
	ctx := context.Background()
	truncateAttendanceTables(t, ctx)

	entries, err := svc.History(ctx, uuid.NewString(),
		time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, time.March, 31, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Empty(t, entries)
}
