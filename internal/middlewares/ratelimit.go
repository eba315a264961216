package middlewares

import (
	"net/http"
	"strconv"

	json "github.com/goccy/go-json"
	"github.com/sbilibin2017/gw-forex-archive/internal/logger"
	"github.com/sbilibin2017/gw-forex-archive/internal/models"
	"github.com/ulule/limiter/v3"
)

// RateLimitMiddleware limits requests per client IP.
func RateLimitMiddleware(l *limiter.Limiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := l.GetIPKey(r)

			lctx, err := l.Get(r.Context(), ip)
			if err != nil {
				logger.Log.Errorw("failed to get rate limit context", "ip", ip, "error", err)
				writeJSONError(w, http.StatusInternalServerError, "internal server error during rate limit check")
				return
			}

			w.Header().Set("X-RateLimit-Limit", strconv.FormatInt(lctx.Limit, 10))
			w.Header().Set("X-RateLimit-Remaining", strconv.FormatInt(lctx.Remaining, 10))
			w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(lctx.Reset, 10))

			if lctx.Reached {
				logger.Log.Warnw("rate limit exceeded", "ip", ip, "limit", lctx.Limit)
				writeJSONError(w, http.StatusTooManyRequests, "too many requests, please try again later")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func writeJSONError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(models.ErrorResponse{Error: msg})
}
