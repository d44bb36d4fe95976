package get_available_slots

import (
	"time"

	"github.com/m04kA/AgendaAuto-SchedulingService/pkg/types"
)

// Request модель запроса доступных слотов
type Request struct {
	Date time.Time // Дата, на которую запрашиваются слоты
}

// Response модель ответа со списком доступных слотов
type Response struct {
	Date  time.Time          // Запрошенная дата
	Slots []types.TimeString // Доступные слоты в порядке возрастания
}
