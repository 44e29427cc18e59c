package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/ethpandaops/getgas/services"
)

// CallLimiter consumes call budget of the requesting visitor.
type CallLimiter interface {
	CheckCallLimit(r *http.Request, callCost uint) error
}

// RateLimitMiddleware rejects requests of visitors that used up their call budget
type RateLimitMiddleware struct {
	limiter CallLimiter
}

// NewRateLimitMiddleware creates a new rate limiting middleware instance
func NewRateLimitMiddleware(limiter CallLimiter) *RateLimitMiddleware {
	return &RateLimitMiddleware{
		limiter: limiter,
	}
}

// Middleware applies rate limiting to requests with a call cost
func (m *RateLimitMiddleware) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cost := GetCallCost(r)
		if cost == 0 || m.limiter == nil {
			next.ServeHTTP(w, r)
			return
		}

		err := m.limiter.CheckCallLimit(r, cost)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"client_ip": GetClientIP(r),
				"route":     r.URL.Path,
				"cost":      cost,
			}).Warn("call rate limit exceeded")

			if !errors.Is(err, services.ErrCallLimitExceeded) {
				http.Error(w, "Internal server error", http.StatusInternalServerError)
				return
			}
			if strings.HasPrefix(r.Header.Get("Content-Type"), "application/json") {
				APIErrorResponse(w, http.StatusTooManyRequests, "ERROR: rate limit exceeded")
			} else {
				http.Error(w, "Too many requests", http.StatusTooManyRequests)
			}
			return
		}

		next.ServeHTTP(w, r)
	})
}
