package get_dashboard_stats

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_dashboard_stats: internal error")
)
