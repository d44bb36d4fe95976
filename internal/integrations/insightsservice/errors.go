package insightsservice

import "errors"

var (
	// ErrDisabled возвращается, когда генерация инсайтов выключена
	// (нет API-ключа или выключено в конфигурации)
	ErrDisabled = errors.New("insightsservice: insights are disabled")

	// ErrInsightsUnavailable возвращается при ошибке генерации инсайтов
	// Повторных попыток клиент не делает
	ErrInsightsUnavailable = errors.New("insightsservice: failed to generate insights")

	// ErrInvalidResponse возвращается при некорректном ответе модели
	ErrInvalidResponse = errors.New("insightsservice: invalid model response")
)
