package http

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/workpay/workpay-backend-go/internal/domain/accounting"
	"github.com/workpay/workpay-backend-go/internal/handler/http/response"
)

type AccountingHandler interface {
	MonthlyReport(w http.ResponseWriter, r *http.Request)
	AnnualTaxSummary(w http.ResponseWriter, r *http.Request)
	YtdSummary(w http.ResponseWriter, r *http.Request)
	MonthlyAttendanceReport(w http.ResponseWriter, r *http.Request)
}

type accountingHandlerImpl struct {
	accountingService accounting.AccountingService
}

func NewAccountingHandler(accountingService accounting.AccountingService) AccountingHandler {
	return &accountingHandlerImpl{
		accountingService: accountingService,
	}
}

// MonthlyReport implements AccountingHandler.
func (h *accountingHandlerImpl) MonthlyReport(w http.ResponseWriter, r *http.Request) {
	var req accounting.MonthlyReportRequest
	req.Year, _ = strconv.Atoi(r.URL.Query().Get("year"))
	req.Month, _ = strconv.Atoi(r.URL.Query().Get("month"))

	result, err := h.accountingService.MonthlyReport(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// AnnualTaxSummary implements AccountingHandler.
func (h *accountingHandlerImpl) AnnualTaxSummary(w http.ResponseWriter, r *http.Request) {
	var req accounting.AnnualTaxSummaryRequest
	req.Year, _ = strconv.Atoi(r.URL.Query().Get("year"))

	result, err := h.accountingService.AnnualTaxSummary(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// YtdSummary implements AccountingHandler.
func (h *accountingHandlerImpl) YtdSummary(w http.ResponseWriter, r *http.Request) {
	targetID := chi.URLParam(r, "employeeID")

	callerID, role, err := callerClaims(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	if !canActFor(callerID, role, targetID) {
		response.Forbidden(w, "Cannot view another employee's year-to-date summary")
		return
	}

	year, _ := strconv.Atoi(r.URL.Query().Get("year"))

	result, err := h.accountingService.YtdSummary(r.Context(), targetID, year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// MonthlyAttendanceReport implements AccountingHandler.
func (h *accountingHandlerImpl) MonthlyAttendanceReport(w http.ResponseWriter, r *http.Request) {
	var req accounting.MonthlyReportRequest
	req.Year, _ = strconv.Atoi(r.URL.Query().Get("year"))
	req.Month, _ = strconv.Atoi(r.URL.Query().Get("month"))

	result, err := h.accountingService.MonthlyAttendanceReport(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
