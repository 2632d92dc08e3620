package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopstaff/staffpay-backend-go/internal/domain/advance"
	"github.com/shopstaff/staffpay-backend-go/internal/handler/http/response"
)

type AdvanceHandler interface {
	Upsert(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	ListMonth(w http.ResponseWriter, r *http.Request)
	OpenMonth(w http.ResponseWriter, r *http.Request)
}

type AdvanceHandlerImpl struct {
	advanceService advance.AdvanceService
}

func NewAdvanceHandler(advanceService advance.AdvanceService) AdvanceHandler {
	return &AdvanceHandlerImpl{advanceService: advanceService}
}

// Upsert implements AdvanceHandler.
func (h *AdvanceHandlerImpl) Upsert(w http.ResponseWriter, r *http.Request) {
	staffID := chi.URLParam(r, "staffId")

	var req advance.UpsertAdvanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.advanceService.Upsert(r.Context(), staffID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Advance updated successfully", result)
}

// Get implements AdvanceHandler.
func (h *AdvanceHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	staffID := chi.URLParam(r, "staffId")

	year, month0, err := monthYearParams(r)
	if err != nil {
		response.BadRequest(w, err.Error(), nil)
		return
	}

	result, err := h.advanceService.Get(r.Context(), staffID, year, month0)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ListMonth implements AdvanceHandler.
func (h *AdvanceHandlerImpl) ListMonth(w http.ResponseWriter, r *http.Request) {
	year, month0, err := monthYearParams(r)
	if err != nil {
		response.BadRequest(w, err.Error(), nil)
		return
	}

	results, err := h.advanceService.ListMonth(r.Context(), year, month0)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

// OpenMonth implements AdvanceHandler.
func (h *AdvanceHandlerImpl) OpenMonth(w http.ResponseWriter, r *http.Request) {
	var req advance.OpenMonthRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	created, err := h.advanceService.EnsureMonthOpened(r.Context(), req.Year, req.Month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Advance month opened", map[string]int{"lines_created": created})
}
