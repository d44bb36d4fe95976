package insightsservice

import "time"

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// AppointmentData данные записи, передаваемые модели для анализа
type AppointmentData struct {
	ClientName string    `json:"clientName"`
	Date       time.Time `json:"date"`
	Status     string    `json:"status"`
	Value      float64   `json:"value"`
}

// Messages готовые тексты для симулированных WhatsApp-сообщений
type Messages struct {
	Reminder24h  string `json:"reminder24h"`  // Текст для кнопки «Подтвердить присутствие» (до 140 символов)
	Confirmation string `json:"confirmation"` // Текст немедленного подтверждения после записи
	Reschedule   string `json:"reschedule"`   // Текст при нажатии «Перенести»
}

// Insights результат анализа записей моделью
type Insights struct {
	Insights     []string `json:"insights"`     // Три наблюдения о поведении клиентов
	Optimization string   `json:"optimization"` // Предложение по изменению расписания
	Messages     Messages `json:"messages"`
}
