package get_available_slots

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/AgendaAuto-SchedulingService/internal/domain"
	"github.com/m04kA/AgendaAuto-SchedulingService/pkg/types"
)

// UseCase use case получения доступных слотов на дату
type UseCase struct {
	appointmentRepo    AppointmentRepository
	slots              []types.TimeString
	excludeBookedSlots bool
	timeProvider       TimeProvider
	logger             Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	slots []types.TimeString,
	excludeBookedSlots bool,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo:    appointmentRepo,
		slots:              slots,
		excludeBookedSlots: excludeBookedSlots,
		timeProvider:       &RealTimeProvider{},
		logger:             logger,
	}
}

// Execute выполняет use case получения доступных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: date=%s", req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if req.Date.IsZero() {
		uc.logger.Warn("GetAvailableSlots: date is required")
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	// 2. Дата не может быть раньше сегодняшней
	now := uc.timeProvider.Now()
	today := truncateToDay(now)
	if req.Date.Before(today) {
		uc.logger.Warn("GetAvailableSlots: date %s is in the past", req.Date.Format(domain.DateFormat))
		return nil, fmt.Errorf("%w: %s", ErrDateInPast, req.Date.Format(domain.DateFormat))
	}

	// 3. Базовый список слотов фиксированный и не зависит от даты
	available := make([]types.TimeString, 0, len(uc.slots))
	available = append(available, uc.slots...)

	// 4. По настройке исключаем слоты, на которые уже есть активная запись
	if uc.excludeBookedSlots {
		filtered, err := uc.withoutBookedSlots(ctx, req.Date, available)
		if err != nil {
			uc.logger.Error("GetAvailableSlots: failed to filter booked slots: %v", err)
			return nil, fmt.Errorf("%w: failed to filter booked slots: %v", ErrInternal, err)
		}
		available = filtered
	}

	uc.logger.Info("GetAvailableSlots: date=%s, slots=%d", req.Date.Format(domain.DateFormat), len(available))

	return &Response{
		Date:  req.Date,
		Slots: available,
	}, nil
}

// truncateToDay обнуляет компоненту времени, оставляя только дату
func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// withoutBookedSlots убирает из списка слоты, время которых совпадает
// со временем начала активной записи на эту дату
func (uc *UseCase) withoutBookedSlots(ctx context.Context, date time.Time, slots []types.TimeString) ([]types.TimeString, error) {
	appointments, err := uc.appointmentRepo.List(ctx, domain.AppointmentsFilter{Date: &date})
	if err != nil {
		return nil, err
	}

	booked := make(map[types.TimeString]struct{}, len(appointments))
	for _, apt := range appointments {
		if !apt.IsActive() {
			continue
		}
		booked[types.NewTimeString(apt.Date)] = struct{}{}
	}

	filtered := make([]types.TimeString, 0, len(slots))
	for _, slot := range slots {
		if _, ok := booked[slot]; ok {
			continue
		}
		filtered = append(filtered, slot)
	}

	return filtered, nil
}
