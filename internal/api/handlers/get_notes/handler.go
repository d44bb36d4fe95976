package get_notes

import (
	"net/http"

	"github.com/m04kA/AgendaAuto-SchedulingService/internal/api/handlers"
)

type Handler struct {
	service NotesService
	logger  Logger
}

func NewHandler(service NotesService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/notes
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.Get(r.Context())
	if err != nil {
		h.logger.Error("GET /notes - Failed to get notes: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
