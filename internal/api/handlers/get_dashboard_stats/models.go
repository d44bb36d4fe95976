package get_dashboard_stats

import (
	"time"

	getStats "github.com/m04kA/AgendaAuto-SchedulingService/internal/usecase/get_dashboard_stats"
)

// DashboardStatsResponse HTTP response model
type DashboardStatsResponse struct {
	TotalRevenue     float64                 `json:"totalRevenue"`
	ConfirmationRate float64                 `json:"confirmationRate"`
	NoShowRate       float64                 `json:"noShowRate"`
	TotalSessions    int                     `json:"totalSessions"`
	AtRisk           []AtRiskAppointmentItem `json:"atRisk"`
}

// AtRiskAppointmentItem pending-запись в зоне риска неявки
type AtRiskAppointmentItem struct {
	ID          string  `json:"id"`
	ClientName  string  `json:"clientName"`
	ClientPhone string  `json:"clientPhone"`
	Date        string  `json:"date"` // ISO 8601
	Value       float64 `json:"value"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getStats.Response) *DashboardStatsResponse {
	atRisk := make([]AtRiskAppointmentItem, 0, len(resp.AtRisk))
	for _, a := range resp.AtRisk {
		atRisk = append(atRisk, AtRiskAppointmentItem{
			ID:          a.ID,
			ClientName:  a.ClientName,
			ClientPhone: a.ClientPhone,
			Date:        a.Date.Format(time.RFC3339),
			Value:       a.Value,
		})
	}

	return &DashboardStatsResponse{
		TotalRevenue:     resp.TotalRevenue,
		ConfirmationRate: resp.ConfirmationRate,
		NoShowRate:       resp.NoShowRate,
		TotalSessions:    resp.TotalSessions,
		AtRisk:           atRisk,
	}
}
