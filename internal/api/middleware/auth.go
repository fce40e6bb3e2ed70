package middleware

import (
	"context"
	"net/http"

	"github.com/glamtime/GT-BookingService/internal/api/handlers"
)

// userIDHeader заголовок, которым API Gateway передает ID аутентифицированного пользователя
const userIDHeader = "X-User-ID"

type userIDKey struct{}

// Auth требует наличия заголовка X-User-ID и кладет его значение в контекст запроса
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID := r.Header.Get(userIDHeader)
		if userID == "" {
			handlers.RespondUnauthorized(w, "отсутствует заголовок X-User-ID")
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey{}, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetUserID возвращает ID пользователя из контекста запроса
func GetUserID(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(userIDKey{}).(string)
	return userID, ok
}
