package attendance

import (
	"context"
	"time"
)

// AttendanceService is the time ledger. The current time is always passed in
// by the caller rather than read from the wall clock inside the service.
type AttendanceService interface {
	CheckIn(ctx context.Context, employeeID string, now time.Time) (AttendanceResponse, error)
	CheckOut(ctx context.Context, employeeID string, now time.Time) (AttendanceResponse, error)
	MarkLeave(ctx context.Context, req MarkLeaveRequest) (AttendanceResponse, error)
	TodayStatus(ctx context.Context, employeeID string, now time.Time) (TodayStatusResponse, error)
	DailySummary(ctx context.Context, date time.Time) (DailySummaryResponse, error)
	MonthlySummary(ctx context.Context, req MonthlySummaryRequest) (MonthlySummaryResponse, error)
	History(ctx context.Context, employeeID string, start, end time.Time) ([]AttendanceResponse, error)
}
