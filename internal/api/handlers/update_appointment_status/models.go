package update_appointment_status

import (
	"time"

	updateStatus "github.com/m04kA/AgendaAuto-SchedulingService/internal/usecase/update_appointment_status"
)

// UpdateStatusRequest HTTP request model
type UpdateStatusRequest struct {
	Action string `json:"action"` // check_in, no_show, cancel, confirm, reschedule
}

// UpdateStatusResponse HTTP response model
type UpdateStatusResponse struct {
	Applied       bool   `json:"applied"`
	AppointmentID string `json:"appointmentId"`
	Status        string `json:"status,omitempty"`
	UpdatedAt     string `json:"updatedAt,omitempty"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *updateStatus.Response) *UpdateStatusResponse {
	out := &UpdateStatusResponse{
		Applied:       resp.Applied,
		AppointmentID: resp.AppointmentID,
		Status:        resp.Status,
	}
	if !resp.UpdatedAt.IsZero() {
		out.UpdatedAt = resp.UpdatedAt.Format(time.RFC3339)
	}
	return out
}
