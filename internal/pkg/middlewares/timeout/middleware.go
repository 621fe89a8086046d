package timeout

import (
	"context"
	"net/http"
	"time"
)

// Middleware навешивает дедлайн на контекст запроса: он уходит дальше во все
// вызовы хранилища и kafka, поэтому зависший бэкенд не держит соединение.
func Middleware(limit time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// r.Context() наследуется от ongoingCtx из BaseContext
			ctx, cancel := context.WithTimeout(r.Context(), limit)
			defer cancel()

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
