package domain

import (
	"time"

	"github.com/m04kA/AgendaAuto-SchedulingService/pkg/types"
)

// Default configuration values
const (
	// DefaultDurationMinutes длительность сессии: фиксированные 60 минут
	// во всех путях создания записи
	DefaultDurationMinutes = 60

	// AtRiskWindow окно риска неявки: pending-записи ближе 24 часов
	// требуют действия профессионала
	AtRiskWindow = 24 * time.Hour
)

// Business validation constants
const (
	MaxClientNameLength  = 200
	MaxClientPhoneLength = 30
	MaxNotesLength       = 5000
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// DefaultSlots фиксированный список кандидатных слотов публичной записи
// Час 12:00-13:00 намеренно исключен (обеденный перерыв)
var DefaultSlots = []types.TimeString{
	"08:00", "09:00", "10:00", "11:00",
	"14:00", "15:00", "16:00", "17:00",
}

// AllStatuses полный список статусов записи
var AllStatuses = []AppointmentStatus{
	StatusPending,
	StatusConfirmed,
	StatusCompleted,
	StatusCanceled,
	StatusNoShow,
	StatusRescheduleRequested,
}

// TerminalStatuses статусы, после которых клиентские (симулированные)
// переходы больше не предлагаются
var TerminalStatuses = []AppointmentStatus{
	StatusCompleted,
	StatusCanceled,
	StatusNoShow,
}
