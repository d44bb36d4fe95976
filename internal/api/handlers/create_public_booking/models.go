package create_public_booking

import (
	"time"

	"github.com/m04kA/AgendaAuto-SchedulingService/internal/domain"
	createAppointment "github.com/m04kA/AgendaAuto-SchedulingService/internal/usecase/create_appointment"
	"github.com/m04kA/AgendaAuto-SchedulingService/pkg/types"
)

// PublicBookingRequest HTTP request model
// Публичная форма не позволяет задавать стоимость: всегда применяется
// стоимость сессии профессионала
type PublicBookingRequest struct {
	ClientName  string `json:"clientName"`
	ClientPhone string `json:"clientPhone"`
	Date        string `json:"date"`      // "2026-02-11"
	StartTime   string `json:"startTime"` // "10:00"
}

// PublicBookingResponse HTTP response model
// Телефон клиента обратно не возвращается
type PublicBookingResponse struct {
	ID         string `json:"id"`
	ClientName string `json:"clientName"`
	Date       string `json:"date"` // ISO 8601
	StartTime  string `json:"startTime"`
	Status     string `json:"status"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *PublicBookingRequest) ToUseCaseRequest() (*createAppointment.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	return &createAppointment.Request{
		ClientName:  r.ClientName,
		ClientPhone: r.ClientPhone,
		Date:        date,
		StartTime:   startTime,
		Source:      createAppointment.SourcePublicBooking,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createAppointment.Response) *PublicBookingResponse {
	return &PublicBookingResponse{
		ID:         resp.ID,
		ClientName: resp.ClientName,
		Date:       resp.Date.Format(time.RFC3339),
		StartTime:  resp.StartTime.String(),
		Status:     resp.Status,
	}
}
