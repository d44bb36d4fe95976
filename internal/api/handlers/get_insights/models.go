package get_insights

import "github.com/m04kA/AgendaAuto-SchedulingService/internal/integrations/insightsservice"

// MessagesResponse готовые тексты сообщений
type MessagesResponse struct {
	Reminder24h  string `json:"reminder24h"`
	Confirmation string `json:"confirmation"`
	Reschedule   string `json:"reschedule"`
}

// InsightsResponse HTTP response model
type InsightsResponse struct {
	Insights     []string         `json:"insights"`
	Optimization string           `json:"optimization"`
	Messages     MessagesResponse `json:"messages"`
}

// FromClientResponse конвертирует ответ клиента инсайтов в HTTP response
func FromClientResponse(in *insightsservice.Insights) *InsightsResponse {
	if in == nil {
		return nil
	}

	return &InsightsResponse{
		Insights:     in.Insights,
		Optimization: in.Optimization,
		Messages: MessagesResponse{
			Reminder24h:  in.Messages.Reminder24h,
			Confirmation: in.Messages.Confirmation,
			Reschedule:   in.Messages.Reschedule,
		},
	}
}
