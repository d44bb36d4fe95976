package create_appointment

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/AgendaAuto-SchedulingService/internal/domain"
)

// UseCase use case создания записи
// Обслуживает оба пути создания: ручное добавление из календаря и
// публичную запись клиента. Оба пути создают pending-запись
type UseCase struct {
	appointmentRepo AppointmentRepository
	professional    domain.Professional
	idGenerator     IDGenerator
	timeProvider    TimeProvider
	logger          Logger
}

// UUIDGenerator генератор идентификаторов на основе UUID v4
type UUIDGenerator struct{}

// NewID возвращает новый уникальный идентификатор
func (g *UUIDGenerator) NewID() string {
	return uuid.NewString()
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	professional domain.Professional,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		professional:    professional,
		idGenerator:     &UUIDGenerator{},
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case создания записи
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateAppointment: source=%s, client=%s, date=%s, time=%s",
		req.Source, req.ClientName, req.Date.Format(domain.DateFormat), req.StartTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	// 2. Собираем абсолютный момент начала сессии из даты и времени
	startAt, err := req.StartTime.At(req.Date)
	if err != nil {
		uc.logger.Warn("CreateAppointment: failed to combine date and time: %v", err)
		return nil, fmt.Errorf("%w: invalid startTime: %v", ErrInvalidInput, err)
	}

	// 3. Применяем значения по умолчанию:
	// стоимость — стоимость сессии профессионала, длительность — 60 минут,
	// статус — pending для обоих путей создания
	value := uc.professional.SessionValue
	if req.Value != nil {
		value = *req.Value
	}

	apt := &domain.Appointment{
		ID:              uc.idGenerator.NewID(),
		ProfessionalID:  uc.professional.ID,
		ClientName:      req.ClientName,
		ClientPhone:     req.ClientPhone,
		Date:            startAt,
		DurationMinutes: domain.DefaultDurationMinutes,
		Status:          domain.StatusPending,
		Value:           value,
	}

	// 4. Сохраняем запись
	created, err := uc.appointmentRepo.Create(ctx, apt)
	if err != nil {
		uc.logger.Error("CreateAppointment: failed to create appointment: %v", err)
		return nil, fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
	}

	uc.logger.Info("CreateAppointment: successfully created appointment id=%s, source=%s",
		created.ID, req.Source)

	return &Response{
		ID:              created.ID,
		ProfessionalID:  created.ProfessionalID,
		ClientName:      created.ClientName,
		ClientPhone:     created.ClientPhone,
		Date:            created.Date,
		StartTime:       req.StartTime,
		DurationMinutes: created.DurationMinutes,
		Status:          string(created.Status),
		Value:           created.Value,
		CreatedAt:       created.CreatedAt,
		UpdatedAt:       created.UpdatedAt,
	}, nil
}
