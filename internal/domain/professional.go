package domain

import (
	"time"

	"github.com/m04kA/AgendaAuto-SchedulingService/pkg/types"
)

// WorkingHours represents the professional's weekly schedule
type WorkingHours struct {
	Start types.TimeString // Начало рабочего дня, "HH:MM"
	End   types.TimeString // Конец рабочего дня, "HH:MM"
	Days  []int            // Рабочие дни недели, 0-6 (Вс-Сб)
}

// IsWorkingDay returns true if the given date falls on an active weekday
func (w WorkingHours) IsWorkingDay(date time.Time) bool {
	weekday := int(date.Weekday())
	for _, d := range w.Days {
		if d == weekday {
			return true
		}
	}
	return false
}

// Professional represents the single service provider the system is configured for
// Неизменяем в течение сессии: загружается из конфигурации при старте
type Professional struct {
	ID           string
	Name         string
	Profession   string
	SessionValue float64
	WhatsApp     string
	Email        string
	WorkingHours WorkingHours
}
