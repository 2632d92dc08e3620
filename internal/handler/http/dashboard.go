package http

import (
	"net/http"

	"github.com/shopstaff/staffpay-backend-go/internal/domain/dashboard"
	"github.com/shopstaff/staffpay-backend-go/internal/handler/http/response"
)

type DashboardHandler interface {
	LocationSummary(w http.ResponseWriter, r *http.Request)
	AllLocationSummaries(w http.ResponseWriter, r *http.Request)
}

type DashboardHandlerImpl struct {
	dashboardService dashboard.DashboardService
}

func NewDashboardHandler(dashboardService dashboard.DashboardService) DashboardHandler {
	return &DashboardHandlerImpl{dashboardService: dashboardService}
}

// LocationSummary implements DashboardHandler.
func (h *DashboardHandlerImpl) LocationSummary(w http.ResponseWriter, r *http.Request) {
	location := r.URL.Query().Get("location")

	result, err := h.dashboardService.LocationSummary(r.Context(), dateParam(r), location)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// AllLocationSummaries implements DashboardHandler.
func (h *DashboardHandlerImpl) AllLocationSummaries(w http.ResponseWriter, r *http.Request) {
	results, err := h.dashboardService.AllLocationSummaries(r.Context(), dateParam(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}
