package update_appointment_status

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("update_appointment_status: invalid input data")

	// ErrTransitionNotAllowed возвращается, когда переход запрещен политикой статусов
	ErrTransitionNotAllowed = errors.New("update_appointment_status: transition not allowed")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("update_appointment_status: internal error")
)
