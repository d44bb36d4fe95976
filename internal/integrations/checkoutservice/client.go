package checkoutservice

import (
	"context"
	"fmt"
)

// Client заглушка платежного провайдера
// Реальная интеграция с процессингом не подключена: клиент валидирует
// план и возвращает ссылку-заглушку с пробным периодом
type Client struct {
	plans     map[string]struct{}
	trialDays int
	log       Logger
}

// NewClient создает новый экземпляр клиента оформления подписки
func NewClient(plans []string, trialDays int, log Logger) *Client {
	known := make(map[string]struct{}, len(plans))
	for _, p := range plans {
		known[p] = struct{}{}
	}

	return &Client{
		plans:     known,
		trialDays: trialDays,
		log:       log,
	}
}

// CreateSession создает сессию оформления подписки для плана planID
func (c *Client) CreateSession(_ context.Context, planID string) (*Session, error) {
	if _, ok := c.plans[planID]; !ok {
		c.log.Warn("CreateSession: unknown plan %q", planID)
		return nil, fmt.Errorf("%w: %q", ErrUnknownPlan, planID)
	}

	c.log.Info("CreateSession: plan=%s, trial_days=%d", planID, c.trialDays)

	return &Session{
		PlanID:    planID,
		URL:       fmt.Sprintf("https://checkout.example.com/subscribe/%s?trial=%d", planID, c.trialDays),
		TrialDays: c.trialDays,
	}, nil
}
