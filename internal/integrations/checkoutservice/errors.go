package checkoutservice

import "errors"

var (
	// ErrUnknownPlan возвращается при запросе неизвестного тарифного плана
	ErrUnknownPlan = errors.New("checkoutservice: unknown plan")
)
