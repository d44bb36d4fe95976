package create_checkout_session

import (
	"errors"
	"net/http"

	"github.com/m04kA/AgendaAuto-SchedulingService/internal/api/handlers"
	"github.com/m04kA/AgendaAuto-SchedulingService/internal/integrations/checkoutservice"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgUnknownPlan        = "неизвестный тарифный план"
)

type Handler struct {
	client CheckoutClient
	logger Logger
}

func NewHandler(client CheckoutClient, logger Logger) *Handler {
	return &Handler{
		client: client,
		logger: logger,
	}
}

// Handle POST /api/v1/checkout
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CheckoutRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /checkout - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	session, err := h.client.CreateSession(r.Context(), req.PlanID)
	if err != nil {
		switch {
		case errors.Is(err, checkoutservice.ErrUnknownPlan):
			h.logger.Warn("POST /checkout - Unknown plan %q", req.PlanID)
			handlers.RespondBadRequest(w, msgUnknownPlan)

		default:
			h.logger.Error("POST /checkout - Failed to create session: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /checkout - Session created: plan=%s", session.PlanID)
	handlers.RespondJSON(w, http.StatusCreated, FromClientSession(session))
}
