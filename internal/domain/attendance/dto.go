package attendance

import (
	"github.com/workpay/workpay-backend-go/internal/pkg/validator"
)

type AttendanceResponse struct {
	ID           string   `json:"id"`
	EmployeeID   string   `json:"employee_id"`
	EmployeeName *string  `json:"employee_name,omitempty"`
	Position     *string  `json:"position,omitempty"`
	Date         string   `json:"date"`
	CheckInTime  *string  `json:"check_in_time,omitempty"`
	CheckOutTime *string  `json:"check_out_time,omitempty"`
	HoursWorked  *float64 `json:"hours_worked,omitempty"`
	Status       string   `json:"status"`
	LeaveType    *string  `json:"leave_type,omitempty"`
}

type MarkLeaveRequest struct {
	EmployeeID string `json:"employee_id"`
	Date       string `json:"date"`
	LeaveType  string `json:"leave_type"`
}

func (r *MarkLeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "must be a valid date (YYYY-MM-DD)"})
	}
	if validator.IsEmpty(r.LeaveType) {
		errs = append(errs, validator.ValidationError{Field: "leave_type", Message: "is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type TodayStatusResponse struct {
	HasCheckedIn  bool     `json:"has_checked_in"`
	HasCheckedOut bool     `json:"has_checked_out"`
	Status        string   `json:"status"`
	CheckInTime   *string  `json:"check_in_time,omitempty"`
	CheckOutTime  *string  `json:"check_out_time,omitempty"`
	HoursWorked   *float64 `json:"hours_worked,omitempty"`
}

type AbsentEmployee struct {
	EmployeeID string  `json:"employee_id"`
	FirstName  string  `json:"first_name"`
	LastName   string  `json:"last_name"`
	Position   *string `json:"position,omitempty"`
}

type DailySummaryResponse struct {
	Date            string               `json:"date"`
	PresentRecords  []AttendanceResponse `json:"present_records"`
	AbsentEmployees []AbsentEmployee     `json:"absent_employees"`
}

type MonthlySummaryRequest struct {
	EmployeeID string `json:"employee_id"`
	Year       int    `json:"year"`
	Month      int    `json:"month"`
}

func (r *MonthlySummaryRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	if !validator.IsValidMonth(r.Month) {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "must be between 1 and 12"})
	}
	if !validator.IsValidYear(r.Year) {
		errs = append(errs, validator.ValidationError{Field: "year", Message: "is out of range"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type MonthlySummaryResponse struct {
	EmployeeID   string  `json:"employee_id"`
	Year         int     `json:"year"`
	Month        int     `json:"month"`
	TotalDays    int     `json:"total_days"`
	PresentDays  int     `json:"present_days"`
	LeaveDays    int     `json:"leave_days"`
	TotalHours   float64 `json:"total_hours"`
	AverageHours float64 `json:"average_hours"`
}
