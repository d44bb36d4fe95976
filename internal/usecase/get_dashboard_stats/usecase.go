package get_dashboard_stats

import (
	"context"
	"fmt"

	"github.com/m04kA/AgendaAuto-SchedulingService/internal/domain"
)

// UseCase use case расчета сводной статистики дашборда
// Статистика считается по всему множеству записей при каждом запросе,
// промежуточные агрегаты нигде не хранятся
type UseCase struct {
	appointmentRepo AppointmentRepository
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(appointmentRepo AppointmentRepository, logger Logger) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case расчета статистики
func (uc *UseCase) Execute(ctx context.Context) (*Response, error) {
	// 1. Загружаем все записи без фильтров
	appointments, err := uc.appointmentRepo.List(ctx, domain.AppointmentsFilter{})
	if err != nil {
		uc.logger.Error("GetDashboardStats: failed to list appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to list appointments: %v", ErrInternal, err)
	}

	// 2. Агрегируем за один проход
	now := uc.timeProvider.Now()
	resp := &Response{
		TotalSessions: len(appointments),
		AtRisk:        []AtRiskAppointment{},
	}

	confirmed := 0
	noShows := 0
	for _, apt := range appointments {
		if apt.CountsTowardRevenue() {
			resp.TotalRevenue += apt.Value
		}
		if apt.Status == domain.StatusConfirmed {
			confirmed++
		}
		if apt.Status == domain.StatusNoShow {
			noShows++
		}
		if apt.IsAtRisk(now) {
			resp.AtRisk = append(resp.AtRisk, AtRiskAppointment{
				ID:          apt.ID,
				ClientName:  apt.ClientName,
				ClientPhone: apt.ClientPhone,
				Date:        apt.Date,
				Value:       apt.Value,
			})
		}
	}

	// 3. Доли определены как 0 для пустого множества записей
	if resp.TotalSessions > 0 {
		resp.ConfirmationRate = float64(confirmed) / float64(resp.TotalSessions) * 100
		resp.NoShowRate = float64(noShows) / float64(resp.TotalSessions) * 100
	}

	uc.logger.Info("GetDashboardStats: sessions=%d, revenue=%.2f, atRisk=%d",
		resp.TotalSessions, resp.TotalRevenue, len(resp.AtRisk))

	return resp, nil
}
