package attendance

import (
	"math"
	"time"
)

// Attendance is one row per employee per calendar date. HoursWorked keeps
// full precision; rounding to 2dp happens only when mapping to responses.
type Attendance struct {
	ID          string
	EmployeeID  string
	Date        time.Time
	CheckIn     *time.Time
	CheckOut    *time.Time
	HoursWorked float64
	Status      Status
	LeaveType   *string
	CreatedAt   time.Time

	// Joined fields
	EmployeeName *string
	Position     *string
}

type Status string

const (
	StatusPresent Status = "present"
	StatusLeave   Status = "leave"

	// StatusNotCheckedIn never hits storage; it is the today-status answer
	// when no entry exists for the date.
	StatusNotCheckedIn Status = "not_checked_in"
)

// HoursBetween returns the wall-clock difference in fractional hours.
func HoursBetween(checkIn, checkOut time.Time) float64 {
	return checkOut.Sub(checkIn).Hours()
}

// RoundHours rounds to 2 decimal places for display.
func RoundHours(hours float64) float64 {
	return math.Round(hours*100) / 100
}

// MonthlySummary is the per-employee aggregate over one calendar month.
type MonthlySummary struct {
	TotalDays   int
	PresentDays int
	LeaveDays   int
	TotalHours  float64
}

// AverageHours is total hours over days actually worked. Leave days do not
// count toward the average; zero present days yields 0, not an error.
func (s MonthlySummary) AverageHours() float64 {
	if s.PresentDays == 0 {
		return 0
	}
	return s.TotalHours / float64(s.PresentDays)
}
