package attendance

import (
	"context"
	"fmt"
	"time"

	"github.com/workpay/workpay-backend-go/internal/domain/attendance"
	"github.com/workpay/workpay-backend-go/internal/domain/employee"
	"github.com/workpay/workpay-backend-go/internal/pkg/database"
)

type AttendanceServiceImpl struct {
	db             *database.DB
	attendanceRepo attendance.AttendanceRepository
	employeeRepo   employee.EmployeeRepository
}

func NewAttendanceService(
	db *database.DB,
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		db:             db,
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
	}
}

// dayOf truncates a timestamp to its calendar date.
func dayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// timePtrToString safely converts a *time.Time to a clock string.
func timePtrToString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	format := t.UTC().Format("15:04:05")
	return &format
}

func toResponse(entry attendance.Attendance) attendance.AttendanceResponse {
	var hours *float64
	if entry.CheckOut != nil {
		rounded := attendance.RoundHours(entry.HoursWorked)
		hours = &rounded
	}

	return attendance.AttendanceResponse{
		ID:           entry.ID,
		EmployeeID:   entry.EmployeeID,
		EmployeeName: entry.EmployeeName,
		Position:     entry.Position,
		Date:         entry.Date.Format("2006-01-02"),
		CheckInTime:  timePtrToString(entry.CheckIn),
		CheckOutTime: timePtrToString(entry.CheckOut),
		HoursWorked:  hours,
		Status:       string(entry.Status),
		LeaveType:    entry.LeaveType,
	}
}

// CheckIn implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) CheckIn(ctx context.Context, employeeID string, now time.Time) (attendance.AttendanceResponse, error) {
	date := dayOf(now)

	hasCheckedIn, err := a.attendanceRepo.HasCheckedIn(ctx, employeeID, date)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to check existing check-in: %w", err)
	}
	if hasCheckedIn {
		return attendance.AttendanceResponse{}, attendance.ErrAlreadyCheckedIn
	}

	entry := attendance.Attendance{
		EmployeeID: employeeID,
		Date:       date,
		CheckIn:    &now,
		Status:     attendance.StatusPresent,
	}

	created, err := a.attendanceRepo.Create(ctx, entry)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to create attendance entry: %w", err)
	}

	return toResponse(created), nil
}

// CheckOut implements attendance.AttendanceService.
// The open-entry guard is re-verified by the store at write time; this
// method never checks first and writes second.
func (a *AttendanceServiceImpl) CheckOut(ctx context.Context, employeeID string, now time.Time) (attendance.AttendanceResponse, error) {
	closed, err := a.attendanceRepo.CloseOpenEntry(ctx, employeeID, dayOf(now), now)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return toResponse(closed), nil
}

// MarkLeave implements attendance.AttendanceService.
// Multiple leave entries for the same employee/day are deliberately allowed.
func (a *AttendanceServiceImpl) MarkLeave(ctx context.Context, req attendance.MarkLeaveRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	date, _ := time.Parse("2006-01-02", req.Date)

	entry := attendance.Attendance{
		EmployeeID: req.EmployeeID,
		Date:       date,
		Status:     attendance.StatusLeave,
		LeaveType:  &req.LeaveType,
	}

	created, err := a.attendanceRepo.Create(ctx, entry)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to create leave entry: %w", err)
	}

	return toResponse(created), nil
}

// TodayStatus implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) TodayStatus(ctx context.Context, employeeID string, now time.Time) (attendance.TodayStatusResponse, error) {
	entry, err := a.attendanceRepo.GetByEmployeeAndDate(ctx, employeeID, dayOf(now))
	if err != nil {
		return attendance.TodayStatusResponse{}, fmt.Errorf("failed to get today's entry: %w", err)
	}

	if entry == nil {
		return attendance.TodayStatusResponse{
			Status: string(attendance.StatusNotCheckedIn),
		}, nil
	}

	var hours *float64
	if entry.CheckOut != nil {
		rounded := attendance.RoundHours(entry.HoursWorked)
		hours = &rounded
	}

	return attendance.TodayStatusResponse{
		HasCheckedIn:  entry.CheckIn != nil,
		HasCheckedOut: entry.CheckOut != nil,
		Status:        string(entry.Status),
		CheckInTime:   timePtrToString(entry.CheckIn),
		CheckOutTime:  timePtrToString(entry.CheckOut),
		HoursWorked:   hours,
	}, nil
}

// DailySummary implements attendance.AttendanceService.
// Absence is not stored: it is the active roster minus employees with an
// entry for the date.
func (a *AttendanceServiceImpl) DailySummary(ctx context.Context, date time.Time) (attendance.DailySummaryResponse, error) {
	entries, err := a.attendanceRepo.ListByDate(ctx, dayOf(date))
	if err != nil {
		return attendance.DailySummaryResponse{}, fmt.Errorf("failed to list attendance: %w", err)
	}

	roster, err := a.employeeRepo.GetActive(ctx)
	if err != nil {
		return attendance.DailySummaryResponse{}, fmt.Errorf("failed to get active roster: %w", err)
	}

	presentIDs := make(map[string]bool, len(entries))
	records := make([]attendance.AttendanceResponse, 0, len(entries))
	for _, entry := range entries {
		presentIDs[entry.EmployeeID] = true
		records = append(records, toResponse(entry))
	}

	absent := make([]attendance.AbsentEmployee, 0)
	for _, emp := range roster {
		if presentIDs[emp.ID] {
			continue
		}
		absent = append(absent, attendance.AbsentEmployee{
			EmployeeID: emp.ID,
			FirstName:  emp.FirstName,
			LastName:   emp.LastName,
			Position:   emp.Position,
		})
	}

	return attendance.DailySummaryResponse{
		Date:            dayOf(date).Format("2006-01-02"),
		PresentRecords:  records,
		AbsentEmployees: absent,
	}, nil
}

// MonthlySummary implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) MonthlySummary(ctx context.Context, req attendance.MonthlySummaryRequest) (attendance.MonthlySummaryResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.MonthlySummaryResponse{}, err
	}

	summary, err := a.attendanceRepo.GetMonthlySummary(ctx, req.EmployeeID, req.Year, req.Month)
	if err != nil {
		return attendance.MonthlySummaryResponse{}, fmt.Errorf("failed to get monthly summary: %w", err)
	}

	return attendance.MonthlySummaryResponse{
		EmployeeID:   req.EmployeeID,
		Year:         req.Year,
		Month:        req.Month,
		TotalDays:    summary.TotalDays,
		PresentDays:  summary.PresentDays,
		LeaveDays:    summary.LeaveDays,
		TotalHours:   attendance.RoundHours(summary.TotalHours),
		AverageHours: attendance.RoundHours(summary.AverageHours()),
	}, nil
}

// History implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) History(ctx context.Context, employeeID string, start, end time.Time) ([]attendance.AttendanceResponse, error) {
	entries, err := a.attendanceRepo.ListByEmployee(ctx, employeeID, dayOf(start), dayOf(end))
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance history: %w", err)
	}

	records := make([]attendance.AttendanceResponse, 0, len(entries))
	for _, entry := range entries {
		records = append(records, toResponse(entry))
	}

	return records, nil
}
