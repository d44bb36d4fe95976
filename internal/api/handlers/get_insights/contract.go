package get_insights

import (
	"context"

	"github.com/m04kA/AgendaAuto-SchedulingService/internal/domain"
	"github.com/m04kA/AgendaAuto-SchedulingService/internal/integrations/insightsservice"
)

type InsightsClient interface {
	GenerateInsights(ctx context.Context, appointments []insightsservice.AppointmentData, professionalName, lang string) (*insightsservice.Insights, error)
}

type AppointmentRepository interface {
	List(ctx context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
