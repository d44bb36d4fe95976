package create_checkout_session

import "github.com/m04kA/AgendaAuto-SchedulingService/internal/integrations/checkoutservice"

// CheckoutRequest HTTP request model
type CheckoutRequest struct {
	PlanID string `json:"planId"`
}

// CheckoutResponse HTTP response model
type CheckoutResponse struct {
	PlanID    string `json:"planId"`
	URL       string `json:"url"`
	TrialDays int    `json:"trialDays"`
}

// FromClientSession конвертирует сессию провайдера в HTTP response
func FromClientSession(s *checkoutservice.Session) *CheckoutResponse {
	return &CheckoutResponse{
		PlanID:    s.PlanID,
		URL:       s.URL,
		TrialDays: s.TrialDays,
	}
}
