package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopstaff/staffpay-backend-go/internal/domain/payroll"
	"github.com/shopstaff/staffpay-backend-go/internal/handler/http/response"
)

type PayrollHandler interface {
	GetSettlement(w http.ResponseWriter, r *http.Request)
	ListSettlements(w http.ResponseWriter, r *http.Request)
	GetPartTimeSalary(w http.ResponseWriter, r *http.Request)
	ListPartTimeSalaries(w http.ResponseWriter, r *http.Request)
}

type PayrollHandlerImpl struct {
	payrollService payroll.PayrollService
}

func NewPayrollHandler(payrollService payroll.PayrollService) PayrollHandler {
	return &PayrollHandlerImpl{payrollService: payrollService}
}

// GetSettlement implements PayrollHandler.
func (h *PayrollHandlerImpl) GetSettlement(w http.ResponseWriter, r *http.Request) {
	staffID := chi.URLParam(r, "staffId")

	year, month0, err := monthYearParams(r)
	if err != nil {
		response.BadRequest(w, err.Error(), nil)
		return
	}

	result, err := h.payrollService.GetSettlement(r.Context(), staffID, year, month0)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ListSettlements implements PayrollHandler.
func (h *PayrollHandlerImpl) ListSettlements(w http.ResponseWriter, r *http.Request) {
	year, month0, err := monthYearParams(r)
	if err != nil {
		response.BadRequest(w, err.Error(), nil)
		return
	}

	results, err := h.payrollService.ListSettlements(r.Context(), year, month0)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

// GetPartTimeSalary implements PayrollHandler.
func (h *PayrollHandlerImpl) GetPartTimeSalary(w http.ResponseWriter, r *http.Request) {
	staffName := chi.URLParam(r, "staffName")

	year, month0, err := monthYearParams(r)
	if err != nil {
		response.BadRequest(w, err.Error(), nil)
		return
	}

	result, err := h.payrollService.GetPartTimeSalary(r.Context(), staffName, year, month0)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ListPartTimeSalaries implements PayrollHandler.
func (h *PayrollHandlerImpl) ListPartTimeSalaries(w http.ResponseWriter, r *http.Request) {
	year, month0, err := monthYearParams(r)
	if err != nil {
		response.BadRequest(w, err.Error(), nil)
		return
	}

	results, err := h.payrollService.ListPartTimeSalaries(r.Context(), year, month0)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}
