package create_checkout_session

import (
	"context"

	"github.com/m04kA/AgendaAuto-SchedulingService/internal/integrations/checkoutservice"
)

type CheckoutClient interface {
	CreateSession(ctx context.Context, planID string) (*checkoutservice.Session, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
