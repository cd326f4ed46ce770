package timeout

import (
	"context"
	"net/http"
	"time"
)

// Timeout attaches a deadline of the given number of seconds to every
// request context. Handlers performing outbound calls observe it through
// their own client timeouts.
func Timeout(seconds int) func(next http.Handler) http.Handler {
	duration := time.Duration(seconds) * time.Second

	return func(next http.Handler) http.Handler {
		fn := func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), duration)
			defer cancel()

			next.ServeHTTP(w, r.WithContext(ctx))
		}
		return http.HandlerFunc(fn)
	}
}
