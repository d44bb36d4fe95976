package get_dashboard_stats

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/AgendaAuto-SchedulingService/internal/domain"
)

type mockAppointmentRepo struct {
	appointments []*domain.Appointment
	err          error
}

func (m *mockAppointmentRepo) List(_ context.Context, _ domain.AppointmentsFilter) ([]*domain.Appointment, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.appointments, nil
}

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

func newTestUseCase(repo AppointmentRepository, now time.Time) *UseCase {
	uc := NewUseCase(repo, noopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: now}
	return uc
}

func apt(id string, status domain.AppointmentStatus, date time.Time, value float64) *domain.Appointment {
	return &domain.Appointment{
		ID:     id,
		Status: status,
		Date:   date,
		Value:  value,
	}
}

func TestUseCase_Execute_EmptyStore(t *testing.T) {
	now := time.Date(2026, 2, 10, 12, 0, 0, 0, time.UTC)
	uc := newTestUseCase(&mockAppointmentRepo{}, now)

	resp, err := uc.Execute(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 0, resp.TotalSessions)
	assert.Equal(t, 0.0, resp.TotalRevenue)
	assert.Equal(t, 0.0, resp.ConfirmationRate)
	assert.Equal(t, 0.0, resp.NoShowRate)
	assert.Empty(t, resp.AtRisk)
}

func TestUseCase_Execute_RevenueCountsCompletedAndConfirmed(t *testing.T) {
	now := time.Date(2026, 2, 10, 12, 0, 0, 0, time.UTC)
	date := now.Add(72 * time.Hour)

	repo := &mockAppointmentRepo{appointments: []*domain.Appointment{
		apt("a1", domain.StatusCompleted, date, 150),
		apt("a2", domain.StatusConfirmed, date, 200),
		apt("a3", domain.StatusPending, date, 999),
		apt("a4", domain.StatusCanceled, date, 999),
		apt("a5", domain.StatusNoShow, date, 999),
	}}
	uc := newTestUseCase(repo, now)

	resp, err := uc.Execute(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 350.0, resp.TotalRevenue)
	assert.Equal(t, 5, resp.TotalSessions)
}

func TestUseCase_Execute_Rates(t *testing.T) {
	now := time.Date(2026, 2, 10, 12, 0, 0, 0, time.UTC)
	date := now.Add(72 * time.Hour)

	repo := &mockAppointmentRepo{appointments: []*domain.Appointment{
		apt("a1", domain.StatusConfirmed, date, 150),
		apt("a2", domain.StatusConfirmed, date, 150),
		apt("a3", domain.StatusPending, date, 150),
		apt("a4", domain.StatusNoShow, date, 150),
	}}
	uc := newTestUseCase(repo, now)

	resp, err := uc.Execute(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 50.0, resp.ConfirmationRate)
	assert.Equal(t, 25.0, resp.NoShowRate)
}

func TestUseCase_Execute_AllConfirmed(t *testing.T) {
	now := time.Date(2026, 2, 10, 12, 0, 0, 0, time.UTC)
	date := now.Add(72 * time.Hour)

	repo := &mockAppointmentRepo{appointments: []*domain.Appointment{
		apt("a1", domain.StatusConfirmed, date, 150),
		apt("a2", domain.StatusConfirmed, date, 150),
	}}
	uc := newTestUseCase(repo, now)

	resp, err := uc.Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 100.0, resp.ConfirmationRate)
}

func TestUseCase_Execute_AtRiskWindow(t *testing.T) {
	now := time.Date(2026, 2, 10, 12, 0, 0, 0, time.UTC)

	repo := &mockAppointmentRepo{appointments: []*domain.Appointment{
		// pending за 23 часа до начала — в зоне риска
		apt("soon", domain.StatusPending, now.Add(23*time.Hour), 150),
		// pending за 25 часов — вне зоны риска
		apt("later", domain.StatusPending, now.Add(25*time.Hour), 150),
		// confirmed за 23 часа — не в зоне риска независимо от времени
		apt("conf", domain.StatusConfirmed, now.Add(23*time.Hour), 150),
		// pending в прошлом тоже попадает в зону риска: нижней границы нет
		apt("past", domain.StatusPending, now.Add(-2*time.Hour), 150),
	}}
	uc := newTestUseCase(repo, now)

	resp, err := uc.Execute(context.Background())
	require.NoError(t, err)

	ids := make([]string, 0, len(resp.AtRisk))
	for _, a := range resp.AtRisk {
		ids = append(ids, a.ID)
	}
	assert.ElementsMatch(t, []string{"soon", "past"}, ids)
}

func TestUseCase_Execute_RepoErrorWrappedAsInternal(t *testing.T) {
	uc := newTestUseCase(&mockAppointmentRepo{err: assert.AnError}, time.Now())

	resp, err := uc.Execute(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInternal)
	assert.Nil(t, resp)
}
