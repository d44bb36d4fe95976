package checkoutservice

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Session сессия оформления подписки
type Session struct {
	PlanID    string // Идентификатор тарифного плана
	URL       string // Ссылка на страницу оплаты
	TrialDays int    // Длительность пробного периода в днях
}
