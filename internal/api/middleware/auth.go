package middleware

import (
	"net/http"

	"github.com/m04kA/GYM-ReservationService/internal/api/handlers"
)

// HeaderUserID заголовок с идентификатором сотрудника, проставляется шлюзом
const HeaderUserID = "X-User-ID"

// Auth проверяет наличие заголовка X-User-ID
// Аутентификация выполняется на API шлюзе; сюда приходит уже проверенный ID.
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get(HeaderUserID) == "" {
			handlers.RespondError(w, http.StatusUnauthorized, "falta el encabezado X-User-ID")
			return
		}
		next.ServeHTTP(w, r)
	})
}
