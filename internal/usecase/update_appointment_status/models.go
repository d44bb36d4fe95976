package update_appointment_status

import "time"

// Request модель запроса на изменение статуса записи
type Request struct {
	AppointmentID string // ID записи
	Action        string // Триггер перехода: check_in, no_show, cancel, confirm, reschedule
}

// Response модель ответа на изменение статуса
type Response struct {
	Applied       bool      // Применен ли переход; false — запись не найдена
	AppointmentID string    // ID записи
	Status        string    // Новый статус записи (пустой, если переход не применен)
	UpdatedAt     time.Time // Время обновления
}
