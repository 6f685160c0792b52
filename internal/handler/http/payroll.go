package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/workpay/workpay-backend-go/internal/domain/payroll"
	"github.com/workpay/workpay-backend-go/internal/handler/http/response"
)

type PayrollHandler interface {
	Process(w http.ResponseWriter, r *http.Request)
	RunBatch(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	EmployeeHistory(w http.ResponseWriter, r *http.Request)
}

type payrollHandlerImpl struct {
	payrollService payroll.PayrollService
}

func NewPayrollHandler(payrollService payroll.PayrollService) PayrollHandler {
	return &payrollHandlerImpl{
		payrollService: payrollService,
	}
}

// Process implements PayrollHandler.
func (h *payrollHandlerImpl) Process(w http.ResponseWriter, r *http.Request) {
	var req payroll.ProcessPayrollRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.payrollService.ProcessPayroll(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Payroll processed", result)
}

// RunBatch implements PayrollHandler.
func (h *payrollHandlerImpl) RunBatch(w http.ResponseWriter, r *http.Request) {
	var req payroll.RunBatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	results, err := h.payrollService.RunBatch(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Batch payroll generated", results)
}

// Approve implements PayrollHandler.
// The approver is always the authenticated caller.
func (h *payrollHandlerImpl) Approve(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	approverID, _, err := callerClaims(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.payrollService.Approve(r.Context(), id, approverID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Payroll approved", result)
}

// Get implements PayrollHandler.
func (h *payrollHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := h.payrollService.GetRecord(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// EmployeeHistory implements PayrollHandler.
func (h *payrollHandlerImpl) EmployeeHistory(w http.ResponseWriter, r *http.Request) {
	targetID := chi.URLParam(r, "employeeID")

	callerID, role, err := callerClaims(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	if !canActFor(callerID, role, targetID) {
		response.Forbidden(w, "Cannot view another employee's payroll")
		return
	}

	result, err := h.payrollService.EmployeeHistory(r.Context(), targetID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
