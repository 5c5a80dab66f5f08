package handlers

import (
	"net/http"

	"github.com/zizo-ux/tm-auto-elite-shop/internal/api/middleware"
	service "github.com/zizo-ux/tm-auto-elite-shop/internal/services"
	"github.com/zizo-ux/tm-auto-elite-shop/internal/utils/response"
)

type StatsHandler struct {
	statsService service.StatsService
}

func NewStatsHandler(statsService service.StatsService) *StatsHandler {
	return &StatsHandler{statsService: statsService}
}

func (h *StatsHandler) DashboardStats() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		stats, err := h.statsService.DashboardStats(r.Context())
		if err != nil {
			logger.Error("Dashboard stats failed", "error", err.Error())
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, stats)
	}
}
