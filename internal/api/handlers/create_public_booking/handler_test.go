package create_public_booking

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/AgendaAuto-SchedulingService/internal/domain"
	appointmentRepo "github.com/m04kA/AgendaAuto-SchedulingService/internal/infra/storage/appointment"
	createAppointment "github.com/m04kA/AgendaAuto-SchedulingService/internal/usecase/create_appointment"
)

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

func newTestHandler() (*Handler, *appointmentRepo.MemoryRepository) {
	repo := appointmentRepo.NewMemoryRepository()
	professional := domain.Professional{
		ID:           "prof-1",
		Name:         "Dra. Beatriz Silva",
		Profession:   "Psicóloga Clínica",
		SessionValue: 150,
	}
	uc := createAppointment.NewUseCase(repo, professional, noopLogger{})
	return NewHandler(uc, noopLogger{}), repo
}

func TestHandler_Handle_CreatesPendingBooking(t *testing.T) {
	handler, repo := newTestHandler()

	tomorrow := time.Now().AddDate(0, 0, 1).Format(domain.DateFormat)
	body := `{"clientName": "Maria Alice", "clientPhone": "11 91234-5678", "date": "` + tomorrow + `", "startTime": "10:00"}`

	req := httptest.NewRequest(http.MethodPost, "/api/v1/public/appointments", strings.NewReader(body))
	rec := httptest.NewRecorder()

	handler.Handle(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp PublicBookingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, "Maria Alice", resp.ClientName)
	assert.Equal(t, "10:00", resp.StartTime)
	assert.Equal(t, string(domain.StatusPending), resp.Status)

	// Запись действительно сохранена со значениями по умолчанию
	stored, err := repo.GetByID(context.Background(), resp.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPending, stored.Status)
	assert.Equal(t, domain.DefaultDurationMinutes, stored.DurationMinutes)
	assert.Equal(t, 150.0, stored.Value)
}

func TestHandler_Handle_InvalidDateRejected(t *testing.T) {
	handler, repo := newTestHandler()

	body := `{"clientName": "Maria Alice", "clientPhone": "11 91234-5678", "date": "11/02/2026", "startTime": "10:00"}`

	req := httptest.NewRequest(http.MethodPost, "/api/v1/public/appointments", strings.NewReader(body))
	rec := httptest.NewRecorder()

	handler.Handle(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	list, err := repo.List(context.Background(), domain.AppointmentsFilter{})
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestHandler_Handle_MissingClientNameRejected(t *testing.T) {
	handler, repo := newTestHandler()

	tomorrow := time.Now().AddDate(0, 0, 1).Format(domain.DateFormat)
	body := `{"clientName": "", "clientPhone": "11 91234-5678", "date": "` + tomorrow + `", "startTime": "10:00"}`

	req := httptest.NewRequest(http.MethodPost, "/api/v1/public/appointments", strings.NewReader(body))
	rec := httptest.NewRecorder()

	handler.Handle(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	list, err := repo.List(context.Background(), domain.AppointmentsFilter{})
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestHandler_Handle_MalformedBodyRejected(t *testing.T) {
	handler, _ := newTestHandler()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/public/appointments", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()

	handler.Handle(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
