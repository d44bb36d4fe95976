package create_appointment

import (
	"time"

	"github.com/m04kA/AgendaAuto-SchedulingService/internal/domain"
	createAppointment "github.com/m04kA/AgendaAuto-SchedulingService/internal/usecase/create_appointment"
	"github.com/m04kA/AgendaAuto-SchedulingService/pkg/types"
)

// CreateAppointmentRequest HTTP request model
type CreateAppointmentRequest struct {
	ClientName  string   `json:"clientName"`
	ClientPhone string   `json:"clientPhone"`
	Date        string   `json:"date"`      // "2026-02-11"
	StartTime   string   `json:"startTime"` // "10:00"
	Value       *float64 `json:"value,omitempty"`
}

// AppointmentResponse HTTP response model
type AppointmentResponse struct {
	ID              string  `json:"id"`
	ProfessionalID  string  `json:"professionalId"`
	ClientName      string  `json:"clientName"`
	ClientPhone     string  `json:"clientPhone"`
	Date            string  `json:"date"` // ISO 8601
	StartTime       string  `json:"startTime"`
	DurationMinutes int     `json:"durationMinutes"`
	Status          string  `json:"status"`
	Value           float64 `json:"value"`
	CreatedAt       string  `json:"createdAt"`
	UpdatedAt       string  `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateAppointmentRequest) ToUseCaseRequest(source createAppointment.Source) (*createAppointment.Request, error) {
	// Парсим дату
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	// Парсим время
	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	return &createAppointment.Request{
		ClientName:  r.ClientName,
		ClientPhone: r.ClientPhone,
		Date:        date,
		StartTime:   startTime,
		Value:       r.Value,
		Source:      source,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createAppointment.Response) *AppointmentResponse {
	return &AppointmentResponse{
		ID:              resp.ID,
		ProfessionalID:  resp.ProfessionalID,
		ClientName:      resp.ClientName,
		ClientPhone:     resp.ClientPhone,
		Date:            resp.Date.Format(time.RFC3339),
		StartTime:       resp.StartTime.String(),
		DurationMinutes: resp.DurationMinutes,
		Status:          resp.Status,
		Value:           resp.Value,
		CreatedAt:       resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       resp.UpdatedAt.Format(time.RFC3339),
	}
}
