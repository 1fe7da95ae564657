package web

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

// rateLimit allows each client IP perMinute requests per minute.
// RemoteAddr has already been resolved by TrustedRealIP.
func rateLimit(perMinute int) func(http.Handler) http.Handler {
	store := memory.NewStoreWithOptions(limiter.StoreOptions{
		Prefix:          "csvtransform",
		CleanUpInterval: time.Minute,
	})
	rl := limiter.New(store, limiter.Rate{Period: time.Minute, Limit: int64(perMinute)})

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			lc, err := rl.Get(r.Context(), clientIP(r.RemoteAddr))
			if err != nil {
				// Store failures let the request through.
				slog.Warn("rate limit store error", "error", err)
				next.ServeHTTP(w, r)
				return
			}

			h := w.Header()
			h.Set("X-RateLimit-Limit", strconv.FormatInt(lc.Limit, 10))
			h.Set("X-RateLimit-Remaining", strconv.FormatInt(lc.Remaining, 10))
			h.Set("X-RateLimit-Reset", strconv.FormatInt(lc.Reset, 10))

			if lc.Reached {
				h.Set("Retry-After", strconv.Itoa(retryAfter(lc.Reset)))
				writeError(w, r, http.StatusTooManyRequests, errRateLimited)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// retryAfter returns whole seconds until the unix time reset, at least 1.
func retryAfter(reset int64) int {
	secs := int(time.Until(time.Unix(reset, 0)).Round(time.Second).Seconds())
	return max(secs, 1)
}
