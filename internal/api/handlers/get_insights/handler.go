package get_insights

import (
	"net/http"

	"github.com/m04kA/AgendaAuto-SchedulingService/internal/api/handlers"
	"github.com/m04kA/AgendaAuto-SchedulingService/internal/domain"
	"github.com/m04kA/AgendaAuto-SchedulingService/internal/integrations/insightsservice"
)

type Handler struct {
	client          InsightsClient
	appointmentRepo AppointmentRepository
	professional    domain.Professional
	defaultLanguage string
	logger          Logger
}

func NewHandler(
	client InsightsClient,
	appointmentRepo AppointmentRepository,
	professional domain.Professional,
	defaultLanguage string,
	logger Logger,
) *Handler {
	return &Handler{
		client:          client,
		appointmentRepo: appointmentRepo,
		professional:    professional,
		defaultLanguage: defaultLanguage,
		logger:          logger,
	}
}

// Handle GET /api/v1/dashboard/insights?lang=pt|en|es
// При выключенных инсайтах или ошибке генерации отвечает 200 с null:
// дашборд просто не показывает блок, ошибок наружу не поднимаем
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	lang := r.URL.Query().Get("lang")
	if lang == "" {
		lang = h.defaultLanguage
	}

	if h.client == nil {
		h.logger.Info("GET /dashboard/insights - Insights disabled")
		handlers.RespondJSON(w, http.StatusOK, (*InsightsResponse)(nil))
		return
	}

	appointments, err := h.appointmentRepo.List(r.Context(), domain.AppointmentsFilter{})
	if err != nil {
		h.logger.Error("GET /dashboard/insights - Failed to list appointments: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	data := make([]insightsservice.AppointmentData, 0, len(appointments))
	for _, apt := range appointments {
		data = append(data, insightsservice.AppointmentData{
			ClientName: apt.ClientName,
			Date:       apt.Date,
			Status:     string(apt.Status),
			Value:      apt.Value,
		})
	}

	result, err := h.client.GenerateInsights(r.Context(), data, h.professional.Name, lang)
	if err != nil {
		h.logger.Warn("GET /dashboard/insights - Generation failed: %v", err)
		handlers.RespondJSON(w, http.StatusOK, (*InsightsResponse)(nil))
		return
	}

	h.logger.Info("GET /dashboard/insights - Generated %d insights, lang=%s", len(result.Insights), lang)
	handlers.RespondJSON(w, http.StatusOK, FromClientResponse(result))
}
