package get_professional

import (
	"net/http"

	"github.com/m04kA/AgendaAuto-SchedulingService/internal/api/handlers"
	"github.com/m04kA/AgendaAuto-SchedulingService/internal/domain"
)

// Handler отдает данные профессионала для публичной страницы записи
// Профессионал один и неизменяем в течение сессии, ответ собирается
// один раз при создании хендлера
type Handler struct {
	response *ProfessionalResponse
	logger   Logger
}

func NewHandler(professional domain.Professional, logger Logger) *Handler {
	return &Handler{
		response: FromDomainProfessional(professional),
		logger:   logger,
	}
}

// Handle GET /api/v1/professional
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, h.response)
}
