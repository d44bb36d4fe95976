package domain

import "time"

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	StatusPending             AppointmentStatus = "pending"
	StatusConfirmed           AppointmentStatus = "confirmed"
	StatusCompleted           AppointmentStatus = "completed"
	StatusCanceled            AppointmentStatus = "canceled"
	StatusNoShow              AppointmentStatus = "no_show"
	StatusRescheduleRequested AppointmentStatus = "reschedule_requested"
)

// Appointment represents a scheduled client session
type Appointment struct {
	ID             string
	ProfessionalID string
	ClientName     string
	ClientPhone    string

	// Date абсолютный момент начала сессии (дата + время, с часовым поясом)
	Date            time.Time
	DurationMinutes int
	Status          AppointmentStatus

	// Value стоимость сессии, фиксируется при создании и не меняется статусами
	Value float64

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the appointment still occupies its time slot
func (a *Appointment) IsActive() bool {
	return a.Status != StatusCanceled &&
		a.Status != StatusNoShow &&
		a.Status != StatusRescheduleRequested
}

// CountsTowardRevenue returns true if the appointment contributes to total revenue
func (a *Appointment) CountsTowardRevenue() bool {
	return a.Status == StatusCompleted || a.Status == StatusConfirmed
}

// IsAtRisk returns true if the appointment is pending and starts within the
// at-risk window relative to now (past-due pending appointments stay at risk)
func (a *Appointment) IsAtRisk(now time.Time) bool {
	return a.Status == StatusPending && a.Date.Sub(now) < AtRiskWindow
}

// Clone returns a deep copy of the appointment
func (a *Appointment) Clone() *Appointment {
	clone := *a
	return &clone
}

// AppointmentsFilter фильтр для выборки записей
type AppointmentsFilter struct {
	Status *AppointmentStatus // Фильтр по статусу (опционально)
	Date   *time.Time         // Фильтр по календарному дню (опционально)
}
