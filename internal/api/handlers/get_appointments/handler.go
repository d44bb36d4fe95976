package get_appointments

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/AgendaAuto-SchedulingService/internal/api/handlers"
	"github.com/m04kA/AgendaAuto-SchedulingService/internal/domain"
	"github.com/m04kA/AgendaAuto-SchedulingService/internal/service/appointments"
	"github.com/m04kA/AgendaAuto-SchedulingService/internal/service/appointments/models"
)

const (
	msgInvalidStatus = "некорректный статус записи"
	msgInvalidDate   = "некорректный формат даты, ожидается YYYY-MM-DD"
)

type Handler struct {
	service AppointmentsService
	logger  Logger
}

func NewHandler(service AppointmentsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/appointments?status=&date=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req := &models.ListAppointmentsRequest{}

	// Опциональный фильтр по статусу
	if status := r.URL.Query().Get("status"); status != "" {
		if _, err := models.ToDomainAppointmentStatus(status); err != nil {
			h.logger.Warn("GET /appointments - Invalid status filter: %q", status)
			handlers.RespondBadRequest(w, msgInvalidStatus)
			return
		}
		req.Status = &status
	}

	// Опциональный фильтр по календарному дню
	if dateStr := r.URL.Query().Get("date"); dateStr != "" {
		date, err := time.Parse(domain.DateFormat, dateStr)
		if err != nil {
			h.logger.Warn("GET /appointments - Invalid date filter: %q", dateStr)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		req.Date = &date
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrInvalidInput):
			h.logger.Warn("GET /appointments - Invalid filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		default:
			h.logger.Error("GET /appointments - Failed to list appointments: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /appointments - Returned %d appointments", len(result.Appointments))
	handlers.RespondJSON(w, http.StatusOK, result)
}
