package middleware

import (
	"net/http"

	"doctor-directory/config"
	"doctor-directory/pkg/response"

	"golang.org/x/time/rate"
)

// RateLimitMiddleware applies one process-wide token bucket to the API.
type RateLimitMiddleware struct {
	limiter *rate.Limiter
}

// NewRateLimitMiddleware returns a pass-through middleware when cfg.RPS is not positive
func NewRateLimitMiddleware(cfg config.RateLimitConfig) *RateLimitMiddleware {
	if cfg.RPS <= 0 {
		return &RateLimitMiddleware{}
	}

	burst := cfg.Burst
	if burst <= 0 {
		burst = 1
	}
	return &RateLimitMiddleware{
		limiter: rate.NewLimiter(rate.Limit(cfg.RPS), burst),
	}
}

func (m *RateLimitMiddleware) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if m.limiter != nil && !m.limiter.Allow() {
			response.TooManyRequests(w, "")
			return
		}
		next.ServeHTTP(w, r)
	})
}
