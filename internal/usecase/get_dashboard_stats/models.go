package get_dashboard_stats

import "time"

// Response модель ответа со сводной статистикой дашборда
type Response struct {
	TotalRevenue     float64 // Сумма стоимости completed и confirmed записей
	ConfirmationRate float64 // Доля confirmed от всех записей, в процентах
	NoShowRate       float64 // Доля no_show от всех записей, в процентах
	TotalSessions    int     // Общее число записей
	AtRisk           []AtRiskAppointment
}

// AtRiskAppointment pending-запись, до начала которой осталось меньше суток
type AtRiskAppointment struct {
	ID          string
	ClientName  string
	ClientPhone string
	Date        time.Time
	Value       float64
}
