package handler

import (
	"net/http"

	"health-records-backend/internal/usecase"
	"health-records-backend/pkg/response"
)

type DashboardHandler struct {
	dashboardUsecase usecase.DashboardUsecase
}

func NewDashboardHandler(dashboardUsecase usecase.DashboardUsecase) *DashboardHandler {
	return &DashboardHandler{dashboardUsecase: dashboardUsecase}
}

func (h *DashboardHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.dashboardUsecase.GetStats(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to load dashboard")
		return
	}

	response.Success(w, http.StatusOK, "Dashboard retrieved successfully", stats)
}
