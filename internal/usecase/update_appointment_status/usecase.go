package update_appointment_status

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/AgendaAuto-SchedulingService/internal/domain"
	"github.com/m04kA/AgendaAuto-SchedulingService/internal/infra/storage/appointment"
)

// UseCase use case изменения статуса записи
type UseCase struct {
	appointmentRepo AppointmentRepository
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(appointmentRepo AppointmentRepository, logger Logger) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		logger:          logger,
	}
}

// Execute выполняет use case изменения статуса записи
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("UpdateAppointmentStatus: id=%s, action=%s", req.AppointmentID, req.Action)

	// 1. Валидация входных данных
	if strings.TrimSpace(req.AppointmentID) == "" {
		uc.logger.Warn("UpdateAppointmentStatus: appointmentId is required")
		return nil, fmt.Errorf("%w: appointmentId is required", ErrInvalidInput)
	}

	trigger := domain.TransitionTrigger(req.Action)
	if _, err := trigger.Target(); err != nil {
		uc.logger.Warn("UpdateAppointmentStatus: unknown action %q", req.Action)
		return nil, fmt.Errorf("%w: unknown action %q", ErrInvalidInput, req.Action)
	}

	// 2. Получаем текущую запись
	apt, err := uc.appointmentRepo.GetByID(ctx, req.AppointmentID)
	if err != nil {
		// Неизвестный ID — no-op: логируем и сообщаем, что переход не применен
		if errors.Is(err, appointment.ErrAppointmentNotFound) {
			uc.logger.Warn("UpdateAppointmentStatus: appointment %s not found, skipping", req.AppointmentID)
			return &Response{
				Applied:       false,
				AppointmentID: req.AppointmentID,
			}, nil
		}
		uc.logger.Error("UpdateAppointmentStatus: failed to get appointment %s: %v", req.AppointmentID, err)
		return nil, fmt.Errorf("%w: failed to get appointment: %v", ErrInternal, err)
	}

	// 3. Применяем политику переходов
	target, err := domain.Transition(apt.Status, trigger)
	if err != nil {
		if errors.Is(err, domain.ErrTransitionNotAllowed) {
			uc.logger.Warn("UpdateAppointmentStatus: action %s not allowed for appointment %s in status %s",
				req.Action, req.AppointmentID, apt.Status)
			return nil, fmt.Errorf("%w: action %s from status %s", ErrTransitionNotAllowed, req.Action, apt.Status)
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	// 4. Сохраняем новый статус
	if err := uc.appointmentRepo.UpdateStatus(ctx, req.AppointmentID, target); err != nil {
		// Запись могла исчезнуть между чтением и записью
		if errors.Is(err, appointment.ErrAppointmentNotFound) {
			uc.logger.Warn("UpdateAppointmentStatus: appointment %s disappeared before update, skipping", req.AppointmentID)
			return &Response{
				Applied:       false,
				AppointmentID: req.AppointmentID,
			}, nil
		}
		uc.logger.Error("UpdateAppointmentStatus: failed to update status for %s: %v", req.AppointmentID, err)
		return nil, fmt.Errorf("%w: failed to update status: %v", ErrInternal, err)
	}

	uc.logger.Info("UpdateAppointmentStatus: appointment %s moved %s -> %s", req.AppointmentID, apt.Status, target)

	return &Response{
		Applied:       true,
		AppointmentID: req.AppointmentID,
		Status:        string(target),
		UpdatedAt:     time.Now(),
	}, nil
}
