package domain

import "errors"

var (
	// ErrUnknownTrigger возвращается при неизвестном действии перехода
	ErrUnknownTrigger = errors.New("domain: unknown transition trigger")

	// ErrTransitionNotAllowed возвращается, когда переход запрещен политикой
	ErrTransitionNotAllowed = errors.New("domain: transition not allowed")
)

// TransitionTrigger действие, инициирующее смену статуса записи
type TransitionTrigger string

const (
	// TriggerCheckIn отметка о посещении (внутреннее действие)
	TriggerCheckIn TransitionTrigger = "check_in"

	// TriggerNoShow отметка о неявке (внутреннее действие)
	TriggerNoShow TransitionTrigger = "no_show"

	// TriggerCancel отмена записи (внутреннее действие)
	TriggerCancel TransitionTrigger = "cancel"

	// TriggerConfirm подтверждение клиентом через симулированное
	// интерактивное сообщение
	TriggerConfirm TransitionTrigger = "confirm"

	// TriggerReschedule запрос переноса клиентом через симулированное
	// интерактивное сообщение
	TriggerReschedule TransitionTrigger = "reschedule"
)

// IsClientTrigger returns true for triggers that originate from the simulated
// client confirmation message rather than from the professional
func (t TransitionTrigger) IsClientTrigger() bool {
	return t == TriggerConfirm || t == TriggerReschedule
}

// Target returns the status the trigger moves an appointment into
func (t TransitionTrigger) Target() (AppointmentStatus, error) {
	switch t {
	case TriggerCheckIn:
		return StatusCompleted, nil
	case TriggerNoShow:
		return StatusNoShow, nil
	case TriggerCancel:
		return StatusCanceled, nil
	case TriggerConfirm:
		return StatusConfirmed, nil
	case TriggerReschedule:
		return StatusRescheduleRequested, nil
	default:
		return "", ErrUnknownTrigger
	}
}

// IsTerminal returns true if the status blocks further client-initiated
// (simulated message) transitions
func (s AppointmentStatus) IsTerminal() bool {
	for _, t := range TerminalStatuses {
		if s == t {
			return true
		}
	}
	return false
}

// IsValid returns true if the status belongs to the closed enumeration
func (s AppointmentStatus) IsValid() bool {
	for _, v := range AllStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// Transition применяет действие trigger к текущему статусу current
// Внутренние действия разрешены из любого статуса (пермиссивная политика,
// перезапись сохраняется как поведение по умолчанию). Клиентские действия
// отклоняются, если запись уже в терминальном статусе: симулированное
// сообщение с подтверждением не предлагается для завершенных, отмененных
// и пропущенных записей
func Transition(current AppointmentStatus, trigger TransitionTrigger) (AppointmentStatus, error) {
	target, err := trigger.Target()
	if err != nil {
		return "", err
	}

	if trigger.IsClientTrigger() && current.IsTerminal() {
		return "", ErrTransitionNotAllowed
	}

	return target, nil
}
