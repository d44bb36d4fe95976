package get_professional

import "github.com/m04kA/AgendaAuto-SchedulingService/internal/domain"

// WorkingHoursResponse рабочие часы профессионала
type WorkingHoursResponse struct {
	Start string `json:"start"` // "08:00"
	End   string `json:"end"`   // "18:00"
	Days  []int  `json:"days"`  // 0-6 (Вс-Сб)
}

// ProfessionalResponse HTTP response model
type ProfessionalResponse struct {
	ID           string               `json:"id"`
	Name         string               `json:"name"`
	Profession   string               `json:"profession"`
	SessionValue float64              `json:"sessionValue"`
	WhatsApp     string               `json:"whatsapp,omitempty"`
	Email        string               `json:"email,omitempty"`
	WorkingHours WorkingHoursResponse `json:"workingHours"`
}

// FromDomainProfessional конвертирует domain модель в HTTP response
func FromDomainProfessional(p domain.Professional) *ProfessionalResponse {
	return &ProfessionalResponse{
		ID:           p.ID,
		Name:         p.Name,
		Profession:   p.Profession,
		SessionValue: p.SessionValue,
		WhatsApp:     p.WhatsApp,
		Email:        p.Email,
		WorkingHours: WorkingHoursResponse{
			Start: p.WorkingHours.Start.String(),
			End:   p.WorkingHours.End.String(),
			Days:  p.WorkingHours.Days,
		},
	}
}
