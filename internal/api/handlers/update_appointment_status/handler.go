package update_appointment_status

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/AgendaAuto-SchedulingService/internal/api/handlers"
	updateStatus "github.com/m04kA/AgendaAuto-SchedulingService/internal/usecase/update_appointment_status"
)

const (
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgInvalidAction        = "некорректное действие"
	msgTransitionNotAllowed = "действие недоступно для текущего статуса записи"
)

type Handler struct {
	useCase UpdateStatusUseCase
	logger  Logger
}

func NewHandler(useCase UpdateStatusUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/appointments/{appointmentId}/status
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	appointmentID := mux.Vars(r)["appointmentId"]

	var req UpdateStatusRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /appointments/%s/status - Invalid request body: %v", appointmentID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &updateStatus.Request{
		AppointmentID: appointmentID,
		Action:        req.Action,
	})
	if err != nil {
		switch {
		case errors.Is(err, updateStatus.ErrInvalidInput):
			h.logger.Warn("PATCH /appointments/%s/status - Invalid action %q", appointmentID, req.Action)
			handlers.RespondBadRequest(w, msgInvalidAction)

		case errors.Is(err, updateStatus.ErrTransitionNotAllowed):
			h.logger.Warn("PATCH /appointments/%s/status - Transition not allowed: %v", appointmentID, err)
			handlers.RespondError(w, http.StatusConflict, msgTransitionNotAllowed)

		default:
			h.logger.Error("PATCH /appointments/%s/status - Failed to update status: %v", appointmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /appointments/%s/status - action=%s, applied=%t", appointmentID, req.Action, result.Applied)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
