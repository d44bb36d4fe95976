package get_dashboard_stats

import (
	"net/http"

	"github.com/m04kA/AgendaAuto-SchedulingService/internal/api/handlers"
)

type Handler struct {
	useCase GetDashboardStatsUseCase
	logger  Logger
}

func NewHandler(useCase GetDashboardStatsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/dashboard/stats
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.useCase.Execute(r.Context())
	if err != nil {
		h.logger.Error("GET /dashboard/stats - Failed to compute stats: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /dashboard/stats - sessions=%d, atRisk=%d", result.TotalSessions, len(result.AtRisk))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
