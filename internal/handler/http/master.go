package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopstaff/staffpay-backend-go/internal/domain/master/location"
	"github.com/shopstaff/staffpay-backend-go/internal/domain/master/salarycategory"
	"github.com/shopstaff/staffpay-backend-go/internal/handler/http/response"
)

type MasterHandler interface {
	// Location handlers
	CreateLocation(w http.ResponseWriter, r *http.Request)
	ListLocations(w http.ResponseWriter, r *http.Request)
	UpdateLocation(w http.ResponseWriter, r *http.Request)
	DeactivateLocation(w http.ResponseWriter, r *http.Request)

	// Salary category handlers
	CreateSalaryCategory(w http.ResponseWriter, r *http.Request)
	ListSalaryCategories(w http.ResponseWriter, r *http.Request)
	UpdateSalaryCategory(w http.ResponseWriter, r *http.Request)
	DeactivateSalaryCategory(w http.ResponseWriter, r *http.Request)
}

type masterHandlerImpl struct {
	locationService location.LocationService
	categoryService salarycategory.SalaryCategoryService
}

func NewMasterHandler(locationService location.LocationService, categoryService salarycategory.SalaryCategoryService) MasterHandler {
	return &masterHandlerImpl{
		locationService: locationService,
		categoryService: categoryService,
	}
}

// ==================== LOCATION HANDLERS ====================

func (h *masterHandlerImpl) CreateLocation(w http.ResponseWriter, r *http.Request) {
	var req location.CreateLocationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.locationService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Location created successfully", result)
}

func (h *masterHandlerImpl) ListLocations(w http.ResponseWriter, r *http.Request) {
	activeOnly := r.URL.Query().Get("include_inactive") != "true"

	results, err := h.locationService.List(r.Context(), activeOnly)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

func (h *masterHandlerImpl) UpdateLocation(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req location.UpdateLocationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.locationService.Update(r.Context(), id, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Location updated successfully", result)
}

func (h *masterHandlerImpl) DeactivateLocation(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.locationService.Deactivate(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Location deactivated successfully", nil)
}

// ==================== SALARY CATEGORY HANDLERS ====================

func (h *masterHandlerImpl) CreateSalaryCategory(w http.ResponseWriter, r *http.Request) {
	var req salarycategory.CreateSalaryCategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.categoryService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Salary category created successfully", result)
}

func (h *masterHandlerImpl) ListSalaryCategories(w http.ResponseWriter, r *http.Request) {
	activeOnly := r.URL.Query().Get("include_inactive") != "true"

	results, err := h.categoryService.List(r.Context(), activeOnly)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

func (h *masterHandlerImpl) UpdateSalaryCategory(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req salarycategory.UpdateSalaryCategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.categoryService.Update(r.Context(), id, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Salary category updated successfully", result)
}

func (h *masterHandlerImpl) DeactivateSalaryCategory(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.categoryService.Deactivate(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Salary category deactivated successfully", nil)
}
