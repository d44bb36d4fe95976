package appointments

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/AgendaAuto-SchedulingService/internal/domain"
	appointmentRepo "github.com/m04kA/AgendaAuto-SchedulingService/internal/infra/storage/appointment"
	"github.com/m04kA/AgendaAuto-SchedulingService/internal/service/appointments/models"
	"github.com/m04kA/AgendaAuto-SchedulingService/pkg/ptr"
)

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

func seedRepo(t *testing.T) *appointmentRepo.MemoryRepository {
	t.Helper()
	repo := appointmentRepo.NewMemoryRepository()
	ctx := context.Background()

	fixtures := []*domain.Appointment{
		{
			ID:         "apt-1",
			ClientName: "João Ferreira",
			Date:       time.Date(2026, 2, 10, 14, 0, 0, 0, time.UTC),
			Status:     domain.StatusConfirmed,
			Value:      150,
		},
		{
			ID:         "apt-2",
			ClientName: "Maria Alice",
			Date:       time.Date(2026, 2, 11, 10, 0, 0, 0, time.UTC),
			Status:     domain.StatusPending,
			Value:      150,
		},
	}
	for _, f := range fixtures {
		_, err := repo.Create(ctx, f)
		require.NoError(t, err)
	}
	return repo
}

func TestService_GetByID(t *testing.T) {
	svc := NewService(seedRepo(t), noopLogger{})

	resp, err := svc.GetByID(context.Background(), "apt-1")
	require.NoError(t, err)

	assert.Equal(t, "apt-1", resp.ID)
	assert.Equal(t, "João Ferreira", resp.ClientName)
	assert.Equal(t, string(domain.StatusConfirmed), resp.Status)
}

func TestService_GetByID_NotFound(t *testing.T) {
	svc := NewService(seedRepo(t), noopLogger{})

	resp, err := svc.GetByID(context.Background(), "missing")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
	assert.Nil(t, resp)
}

func TestService_List_All(t *testing.T) {
	svc := NewService(seedRepo(t), noopLogger{})

	resp, err := svc.List(context.Background(), &models.ListAppointmentsRequest{})
	require.NoError(t, err)
	assert.Len(t, resp.Appointments, 2)
}

func TestService_List_FilterByStatus(t *testing.T) {
	svc := NewService(seedRepo(t), noopLogger{})

	resp, err := svc.List(context.Background(), &models.ListAppointmentsRequest{
		Status: ptr.Ptr("pending"),
	})
	require.NoError(t, err)

	require.Len(t, resp.Appointments, 1)
	assert.Equal(t, "apt-2", resp.Appointments[0].ID)
}

func TestService_List_FilterByDate(t *testing.T) {
	svc := NewService(seedRepo(t), noopLogger{})

	resp, err := svc.List(context.Background(), &models.ListAppointmentsRequest{
		Date: ptr.Ptr(time.Date(2026, 2, 11, 0, 0, 0, 0, time.UTC)),
	})
	require.NoError(t, err)

	require.Len(t, resp.Appointments, 1)
	assert.Equal(t, "apt-2", resp.Appointments[0].ID)
}

func TestService_List_InvalidStatus(t *testing.T) {
	svc := NewService(seedRepo(t), noopLogger{})

	resp, err := svc.List(context.Background(), &models.ListAppointmentsRequest{
		Status: ptr.Ptr("teleported"),
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Nil(t, resp)
}
