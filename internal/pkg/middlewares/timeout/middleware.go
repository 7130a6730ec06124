package timeout

import (
	"context"
	"net/http"
	"time"
)

// Middleware чтения получают readTimeout, изменяющие запросы writeTimeout:
// проводка может ждать блокировку кошелька или повтор сериализуемой транзакции.
func Middleware(readTimeout, writeTimeout time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			limit := readTimeout
			switch r.Method {
			case http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
				limit = writeTimeout
			}

			// r.Context() = ongoingCtx (из BaseContext)
			ctx, cancel := context.WithTimeout(r.Context(), limit)
			defer cancel()

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
