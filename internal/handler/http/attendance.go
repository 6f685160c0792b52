package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/workpay/workpay-backend-go/internal/domain/attendance"
	"github.com/workpay/workpay-backend-go/internal/handler/http/response"
	"github.com/workpay/workpay-backend-go/internal/pkg/validator"
)

type AttendanceHandler interface {
	CheckIn(w http.ResponseWriter, r *http.Request)
	CheckOut(w http.ResponseWriter, r *http.Request)
	MarkLeave(w http.ResponseWriter, r *http.Request)
	TodayStatus(w http.ResponseWriter, r *http.Request)
	History(w http.ResponseWriter, r *http.Request)
	DailySummary(w http.ResponseWriter, r *http.Request)
	MonthlySummary(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &attendanceHandlerImpl{
		attendanceService: attendanceService,
	}
}

// CheckIn implements AttendanceHandler.
// The employee always checks in as themselves; the identity comes from the
// token, never the request body.
func (h *attendanceHandlerImpl) CheckIn(w http.ResponseWriter, r *http.Request) {
	employeeID, _, err := callerClaims(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.attendanceService.CheckIn(r.Context(), employeeID, time.Now().UTC())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Check-in recorded", result)
}

// CheckOut implements AttendanceHandler.
func (h *attendanceHandlerImpl) CheckOut(w http.ResponseWriter, r *http.Request) {
	employeeID, _, err := callerClaims(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.attendanceService.CheckOut(r.Context(), employeeID, time.Now().UTC())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Check-out recorded", result)
}

// MarkLeave implements AttendanceHandler.
func (h *attendanceHandlerImpl) MarkLeave(w http.ResponseWriter, r *http.Request) {
	var req attendance.MarkLeaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.attendanceService.MarkLeave(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Leave recorded", result)
}

// TodayStatus implements AttendanceHandler.
func (h *attendanceHandlerImpl) TodayStatus(w http.ResponseWriter, r *http.Request) {
	targetID := chi.URLParam(r, "employeeID")

	callerID, role, err := callerClaims(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	if !canActFor(callerID, role, targetID) {
		response.Forbidden(w, "Cannot view another employee's attendance")
		return
	}

	result, err := h.attendanceService.TodayStatus(r.Context(), targetID, time.Now().UTC())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// History implements AttendanceHandler.
// Defaults to the trailing 30 days when no range is given.
func (h *attendanceHandlerImpl) History(w http.ResponseWriter, r *http.Request) {
	targetID := chi.URLParam(r, "employeeID")

	callerID, role, err := callerClaims(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	if !canActFor(callerID, role, targetID) {
		response.Forbidden(w, "Cannot view another employee's attendance")
		return
	}

	end := time.Now().UTC()
	if raw := r.URL.Query().Get("end"); raw != "" {
		parsed, ok := validator.IsValidDate(raw)
		if !ok {
			response.BadRequest(w, "end must be a valid date (YYYY-MM-DD)", nil)
			return
		}
		end = parsed
	}

	start := end.AddDate(0, 0, -30)
	if raw := r.URL.Query().Get("start"); raw != "" {
		parsed, ok := validator.IsValidDate(raw)
		if !ok {
			response.BadRequest(w, "start must be a valid date (YYYY-MM-DD)", nil)
			return
		}
		start = parsed
	}

	results, err := h.attendanceService.History(r.Context(), targetID, start, end)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

// DailySummary implements AttendanceHandler.
func (h *attendanceHandlerImpl) DailySummary(w http.ResponseWriter, r *http.Request) {
	date := time.Now().UTC()
	if raw := r.URL.Query().Get("date"); raw != "" {
		parsed, ok := validator.IsValidDate(raw)
		if !ok {
			response.BadRequest(w, "date must be a valid date (YYYY-MM-DD)", nil)
			return
		}
		date = parsed
	}

	result, err := h.attendanceService.DailySummary(r.Context(), date)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// MonthlySummary implements AttendanceHandler.
func (h *attendanceHandlerImpl) MonthlySummary(w http.ResponseWriter, r *http.Request) {
	req := attendance.MonthlySummaryRequest{
		EmployeeID: chi.URLParam(r, "employeeID"),
	}
	req.Year, _ = strconv.Atoi(r.URL.Query().Get("year"))
	req.Month, _ = strconv.Atoi(r.URL.Query().Get("month"))

	result, err := h.attendanceService.MonthlySummary(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
