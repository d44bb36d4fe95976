package create_appointment

import (
	"time"

	"github.com/m04kA/AgendaAuto-SchedulingService/pkg/types"
)

// Source источник создания записи
type Source string

const (
	// SourceManual ручное добавление из календаря профессионала
	SourceManual Source = "manual"

	// SourcePublicBooking публичная страница записи клиента
	SourcePublicBooking Source = "public_booking"
)

// Request модель запроса на создание записи
type Request struct {
	ClientName  string           // Имя клиента (обязательно)
	ClientPhone string           // Телефон клиента (обязательно)
	Date        time.Time        // Дата сессии (без времени)
	StartTime   types.TimeString // Время начала (например, "10:00")
	Value       *float64         // Стоимость; nil — стоимость сессии профессионала
	Source      Source           // Источник создания (для логирования)
}

// Response модель ответа с созданной записью
type Response struct {
	ID              string           // ID созданной записи
	ProfessionalID  string           // ID профессионала
	ClientName      string           // Имя клиента
	ClientPhone     string           // Телефон клиента
	Date            time.Time        // Абсолютный момент начала сессии
	StartTime       types.TimeString // Время начала
	DurationMinutes int              // Длительность в минутах
	Status          string           // Статус записи (всегда pending)
	Value           float64          // Стоимость сессии

	CreatedAt time.Time // Время создания
	UpdatedAt time.Time // Время обновления
}
