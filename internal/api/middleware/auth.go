package middleware

import (
	"net/http"

	"github.com/m04kA/AgendaAuto-SchedulingService/internal/api/handlers"
)

const (
	// HeaderProfessionalID заголовок аутентификации защищенных маршрутов
	HeaderProfessionalID = "X-Professional-ID"

	msgUnauthorized = "требуется заголовок X-Professional-ID"
	msgForbidden    = "доступ запрещен"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// AuthMiddleware проверяет заголовок X-Professional-ID на защищенных маршрутах
// Сервис обслуживает единственного профессионала, поэтому достаточно
// сверить значение с ID из конфигурации
func AuthMiddleware(professionalID string, logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(HeaderProfessionalID)
			if id == "" {
				logger.Warn("%s %s - Missing %s header", r.Method, r.URL.Path, HeaderProfessionalID)
				handlers.RespondUnauthorized(w, msgUnauthorized)
				return
			}

			if id != professionalID {
				logger.Warn("%s %s - Unknown professional id %q", r.Method, r.URL.Path, id)
				handlers.RespondForbidden(w, msgForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
