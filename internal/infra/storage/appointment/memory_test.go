package appointment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/AgendaAuto-SchedulingService/internal/domain"
	"github.com/m04kA/AgendaAuto-SchedulingService/pkg/ptr"
)

func newTestAppointment(id string, status domain.AppointmentStatus, date time.Time) *domain.Appointment {
	return &domain.Appointment{
		ID:              id,
		ProfessionalID:  "prof-1",
		ClientName:      "João Ferreira",
		ClientPhone:     "551188888888",
		Date:            date,
		DurationMinutes: domain.DefaultDurationMinutes,
		Status:          status,
		Value:           150,
	}
}

func TestMemoryRepository_CreateAndList(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	created, err := repo.Create(ctx, newTestAppointment("apt-1", domain.StatusPending, time.Now()))
	require.NoError(t, err)
	assert.False(t, created.CreatedAt.IsZero())

	list, err := repo.List(ctx, domain.AppointmentsFilter{})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "apt-1", list[0].ID)
	assert.Equal(t, domain.StatusPending, list[0].Status)
}

func TestMemoryRepository_ListReturnsSnapshot(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	_, err := repo.Create(ctx, newTestAppointment("apt-1", domain.StatusPending, time.Now()))
	require.NoError(t, err)

	list, err := repo.List(ctx, domain.AppointmentsFilter{})
	require.NoError(t, err)

	// Мутация снимка не должна влиять на хранилище
	list[0].Status = domain.StatusCompleted
	list[0].Value = 999

	stored, err := repo.GetByID(ctx, "apt-1")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPending, stored.Status)
	assert.Equal(t, float64(150), stored.Value)
}

func TestMemoryRepository_DuplicatesPermitted(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()
	date := time.Date(2026, 9, 2, 10, 0, 0, 0, time.Local)

	_, err := repo.Create(ctx, newTestAppointment("apt-1", domain.StatusPending, date))
	require.NoError(t, err)
	_, err = repo.Create(ctx, newTestAppointment("apt-2", domain.StatusPending, date))
	require.NoError(t, err)

	list, err := repo.List(ctx, domain.AppointmentsFilter{})
	require.NoError(t, err)
	assert.Len(t, list, 2)
}

func TestMemoryRepository_UpdateStatus(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	_, err := repo.Create(ctx, newTestAppointment("apt-1", domain.StatusPending, time.Now()))
	require.NoError(t, err)

	// Каждый статус из перечисления применим
	for _, status := range domain.AllStatuses {
		require.NoError(t, repo.UpdateStatus(ctx, "apt-1", status))

		stored, err := repo.GetByID(ctx, "apt-1")
		require.NoError(t, err)
		assert.Equal(t, status, stored.Status)
	}
}

func TestMemoryRepository_UpdateStatusUnknownID(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	_, err := repo.Create(ctx, newTestAppointment("apt-1", domain.StatusPending, time.Now()))
	require.NoError(t, err)

	before, err := repo.List(ctx, domain.AppointmentsFilter{})
	require.NoError(t, err)

	err = repo.UpdateStatus(ctx, "missing", domain.StatusConfirmed)
	assert.ErrorIs(t, err, ErrAppointmentNotFound)

	// Коллекция не изменилась
	after, err := repo.List(ctx, domain.AppointmentsFilter{})
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestMemoryRepository_ListFilters(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()
	today := time.Date(2026, 9, 1, 10, 0, 0, 0, time.Local)
	tomorrow := today.AddDate(0, 0, 1)

	_, err := repo.Create(ctx, newTestAppointment("apt-1", domain.StatusConfirmed, today))
	require.NoError(t, err)
	_, err = repo.Create(ctx, newTestAppointment("apt-2", domain.StatusPending, tomorrow))
	require.NoError(t, err)

	byStatus, err := repo.List(ctx, domain.AppointmentsFilter{Status: ptr.Ptr(domain.StatusPending)})
	require.NoError(t, err)
	require.Len(t, byStatus, 1)
	assert.Equal(t, "apt-2", byStatus[0].ID)

	byDate, err := repo.List(ctx, domain.AppointmentsFilter{Date: ptr.Ptr(today)})
	require.NoError(t, err)
	require.Len(t, byDate, 1)
	assert.Equal(t, "apt-1", byDate[0].ID)
}
