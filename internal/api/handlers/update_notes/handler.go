package update_notes

import (
	"errors"
	"net/http"

	"github.com/m04kA/AgendaAuto-SchedulingService/internal/api/handlers"
	"github.com/m04kA/AgendaAuto-SchedulingService/internal/service/notes"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgNotesTooLong       = "текст заметок слишком длинный"
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

// Handle PUT /api/v1/notes
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req notes.SaveNotesRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /notes - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := h.service.Save(r.Context(), &req); err != nil {
		switch {
		case errors.Is(err, notes.ErrNotesTooLong):
			h.logger.Warn("PUT /notes - Notes too long")
			handlers.RespondBadRequest(w, msgNotesTooLong)

		default:
			h.logger.Error("PUT /notes - Failed to save notes: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
