package update_appointment_status

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/AgendaAuto-SchedulingService/internal/domain"
	"github.com/m04kA/AgendaAuto-SchedulingService/internal/infra/storage/appointment"
)

type mockAppointmentRepo struct {
	appointments map[string]*domain.Appointment
	updates      map[string]domain.AppointmentStatus
}

func newMockRepo(apts ...*domain.Appointment) *mockAppointmentRepo {
	m := &mockAppointmentRepo{
		appointments: make(map[string]*domain.Appointment),
		updates:      make(map[string]domain.AppointmentStatus),
	}
	for _, apt := range apts {
		m.appointments[apt.ID] = apt
	}
	return m
}

func (m *mockAppointmentRepo) GetByID(_ context.Context, id string) (*domain.Appointment, error) {
	apt, ok := m.appointments[id]
	if !ok {
		return nil, appointment.ErrAppointmentNotFound
	}
	return apt.Clone(), nil
}

func (m *mockAppointmentRepo) UpdateStatus(_ context.Context, id string, status domain.AppointmentStatus) error {
	apt, ok := m.appointments[id]
	if !ok {
		return appointment.ErrAppointmentNotFound
	}
	apt.Status = status
	m.updates[id] = status
	return nil
}

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

func pendingAppointment(id string) *domain.Appointment {
	return &domain.Appointment{
		ID:     id,
		Status: domain.StatusPending,
		Date:   time.Date(2026, 2, 11, 10, 0, 0, 0, time.UTC),
	}
}

func TestUseCase_Execute_AppliesTriggers(t *testing.T) {
	tests := []struct {
		action string
		want   domain.AppointmentStatus
	}{
		{action: "check_in", want: domain.StatusCompleted},
		{action: "no_show", want: domain.StatusNoShow},
		{action: "cancel", want: domain.StatusCanceled},
		{action: "confirm", want: domain.StatusConfirmed},
		{action: "reschedule", want: domain.StatusRescheduleRequested},
	}

	for _, tt := range tests {
		t.Run(tt.action, func(t *testing.T) {
			repo := newMockRepo(pendingAppointment("apt-1"))
			uc := NewUseCase(repo, noopLogger{})

			resp, err := uc.Execute(context.Background(), &Request{
				AppointmentID: "apt-1",
				Action:        tt.action,
			})
			require.NoError(t, err)

			assert.True(t, resp.Applied)
			assert.Equal(t, string(tt.want), resp.Status)
			assert.Equal(t, tt.want, repo.updates["apt-1"])
		})
	}
}

func TestUseCase_Execute_ManualTriggerAllowedFromTerminalStatus(t *testing.T) {
	apt := pendingAppointment("apt-1")
	apt.Status = domain.StatusCompleted

	repo := newMockRepo(apt)
	uc := NewUseCase(repo, noopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		AppointmentID: "apt-1",
		Action:        "cancel",
	})
	require.NoError(t, err)
	assert.True(t, resp.Applied)
	assert.Equal(t, string(domain.StatusCanceled), resp.Status)
}

func TestUseCase_Execute_ClientTriggerRejectedFromTerminalStatus(t *testing.T) {
	for _, status := range domain.TerminalStatuses {
		t.Run(string(status), func(t *testing.T) {
			apt := pendingAppointment("apt-1")
			apt.Status = status

			repo := newMockRepo(apt)
			uc := NewUseCase(repo, noopLogger{})

			resp, err := uc.Execute(context.Background(), &Request{
				AppointmentID: "apt-1",
				Action:        "confirm",
			})
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrTransitionNotAllowed)
			assert.Nil(t, resp)
			assert.Empty(t, repo.updates)
		})
	}
}

func TestUseCase_Execute_UnknownAppointmentIsNoOp(t *testing.T) {
	repo := newMockRepo()
	uc := NewUseCase(repo, noopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		AppointmentID: "missing",
		Action:        "confirm",
	})
	require.NoError(t, err)

	assert.False(t, resp.Applied)
	assert.Empty(t, resp.Status)
	assert.Empty(t, repo.updates)
}

func TestUseCase_Execute_UnknownActionRejected(t *testing.T) {
	repo := newMockRepo(pendingAppointment("apt-1"))
	uc := NewUseCase(repo, noopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		AppointmentID: "apt-1",
		Action:        "teleport",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Nil(t, resp)
}

func TestUseCase_Execute_EmptyIDRejected(t *testing.T) {
	uc := NewUseCase(newMockRepo(), noopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{Action: "confirm"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Nil(t, resp)
}
