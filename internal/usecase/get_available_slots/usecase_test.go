package get_available_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/AgendaAuto-SchedulingService/internal/domain"
	"github.com/m04kA/AgendaAuto-SchedulingService/pkg/types"
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

func newTestUseCase(repo AppointmentRepository, excludeBooked bool, now time.Time) *UseCase {
	uc := NewUseCase(repo, domain.DefaultSlots, excludeBooked, noopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: now}
	return uc
}

func TestUseCase_Execute_ReturnsDefaultSlots(t *testing.T) {
	now := time.Date(2026, 2, 10, 9, 30, 0, 0, time.UTC)
	uc := newTestUseCase(&mockAppointmentRepo{}, false, now)

	resp, err := uc.Execute(context.Background(), &Request{
		Date: time.Date(2026, 2, 11, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	assert.Equal(t, domain.DefaultSlots, resp.Slots)
}

func TestUseCase_Execute_SameDayAllowed(t *testing.T) {
	// Запрос на сегодняшнюю дату допустим даже после полудня
	now := time.Date(2026, 2, 10, 16, 45, 0, 0, time.UTC)
	uc := newTestUseCase(&mockAppointmentRepo{}, false, now)

	resp, err := uc.Execute(context.Background(), &Request{
		Date: time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	assert.Len(t, resp.Slots, len(domain.DefaultSlots))
}

func TestUseCase_Execute_PastDateRejected(t *testing.T) {
	now := time.Date(2026, 2, 10, 9, 30, 0, 0, time.UTC)
	uc := newTestUseCase(&mockAppointmentRepo{}, false, now)

	resp, err := uc.Execute(context.Background(), &Request{
		Date: time.Date(2026, 2, 9, 0, 0, 0, 0, time.UTC),
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDateInPast)
	assert.Nil(t, resp)
}

func TestUseCase_Execute_ZeroDateRejected(t *testing.T) {
	now := time.Date(2026, 2, 10, 9, 30, 0, 0, time.UTC)
	uc := newTestUseCase(&mockAppointmentRepo{}, false, now)

	resp, err := uc.Execute(context.Background(), &Request{})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Nil(t, resp)
}

func TestUseCase_Execute_ExcludesBookedSlots(t *testing.T) {
	now := time.Date(2026, 2, 10, 9, 30, 0, 0, time.UTC)
	date := time.Date(2026, 2, 11, 0, 0, 0, 0, time.UTC)

	repo := &mockAppointmentRepo{
		appointments: []*domain.Appointment{
			{
				ID:     "apt-1",
				Date:   time.Date(2026, 2, 11, 10, 0, 0, 0, time.UTC),
				Status: domain.StatusConfirmed,
			},
			{
				// Отмененная запись не блокирует слот
				ID:     "apt-2",
				Date:   time.Date(2026, 2, 11, 14, 0, 0, 0, time.UTC),
				Status: domain.StatusCanceled,
			},
		},
	}
	uc := newTestUseCase(repo, true, now)

	resp, err := uc.Execute(context.Background(), &Request{Date: date})
	require.NoError(t, err)

	assert.NotContains(t, resp.Slots, types.TimeString("10:00"))
	assert.Contains(t, resp.Slots, types.TimeString("14:00"))
	assert.Len(t, resp.Slots, len(domain.DefaultSlots)-1)
}

func TestUseCase_Execute_BookedSlotsKeptWhenFilteringDisabled(t *testing.T) {
	now := time.Date(2026, 2, 10, 9, 30, 0, 0, time.UTC)
	date := time.Date(2026, 2, 11, 0, 0, 0, 0, time.UTC)

	repo := &mockAppointmentRepo{
		appointments: []*domain.Appointment{
			{
				ID:     "apt-1",
				Date:   time.Date(2026, 2, 11, 10, 0, 0, 0, time.UTC),
				Status: domain.StatusConfirmed,
			},
		},
	}
	uc := newTestUseCase(repo, false, now)

	resp, err := uc.Execute(context.Background(), &Request{Date: date})
	require.NoError(t, err)
	assert.Contains(t, resp.Slots, types.TimeString("10:00"))
}
