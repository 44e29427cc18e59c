package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ethpandaops/getgas/services"
)

type fakeLimiter struct {
	err   error
	costs []uint
}

func (f *fakeLimiter) CheckCallLimit(r *http.Request, callCost uint) error {
	f.costs = append(f.costs, callCost)
	return f.err
}

func okHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func TestCallCostMiddleware(t *testing.T) {
	SetEndpointCost("POST", "/test/costly", 3)

	tests := []struct {
		method string
		path   string
		want   uint
	}{
		{"POST", "/test/costly", 3},
		{"GET", "/test/costly", 0},
		{"POST", "/test/free", 0},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			var got uint
			handler := CallCostMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				got = GetCallCost(r)
			}))
			handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(tt.method, tt.path, nil))
			assert.Equal(t, tt.want, got)
		})
	}

	assert.Equal(t, uint(0), GetCallCost(httptest.NewRequest("GET", "/", nil).WithContext(context.Background())))
}

func TestRateLimitMiddleware(t *testing.T) {
	SetEndpointCost("POST", "/test/limited", 2)

	tests := []struct {
		name        string
		path        string
		contentType string
		err         error
		wantStatus  int
		wantJSON    bool
		wantCalls   int
	}{
		{name: "free endpoint skips limiter", path: "/test/unlimited", err: services.ErrCallLimitExceeded, wantStatus: http.StatusOK},
		{name: "within budget", path: "/test/limited", wantStatus: http.StatusOK, wantCalls: 1},
		{name: "exceeded form post", path: "/test/limited", contentType: "application/x-www-form-urlencoded", err: services.ErrCallLimitExceeded, wantStatus: http.StatusTooManyRequests, wantCalls: 1},
		{name: "exceeded json post", path: "/test/limited", contentType: "application/json", err: services.ErrCallLimitExceeded, wantStatus: http.StatusTooManyRequests, wantJSON: true, wantCalls: 1},
		{name: "limiter failure", path: "/test/limited", err: errors.New("could not get visitor"), wantStatus: http.StatusInternalServerError, wantCalls: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			limiter := &fakeLimiter{err: tt.err}
			handler := CallCostMiddleware(NewRateLimitMiddleware(limiter).Middleware(http.HandlerFunc(okHandler)))

			req := httptest.NewRequest("POST", tt.path, nil)
			if tt.contentType != "" {
				req.Header.Set("Content-Type", tt.contentType)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Len(t, limiter.costs, tt.wantCalls)
			for _, cost := range limiter.costs {
				assert.Equal(t, uint(2), cost)
			}

			if tt.wantJSON {
				assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
				body := map[string]string{}
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
				assert.Equal(t, "ERROR: rate limit exceeded", body["status"])
			}
		})
	}
}

func TestRateLimitMiddlewareWithCallRateLimiter(t *testing.T) {
	SetEndpointCost("POST", "/test/burst", 1)

	limiter := services.NewCallRateLimiter(context.Background(), 0, 1, 2)
	handler := CallCostMiddleware(NewRateLimitMiddleware(limiter).Middleware(http.HandlerFunc(okHandler)))

	codes := []int{}
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest("POST", "/test/burst", nil)
		req.RemoteAddr = "203.0.113.7:4000"
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		codes = append(codes, rec.Code)
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
}

func TestGetClientIP(t *testing.T) {
	req := httptest.NewRequest("GET", "/", nil)
	req.RemoteAddr = "198.51.100.4:1234"
	req.Header.Set("X-Forwarded-For", "192.0.2.1")

	assert.Equal(t, "198.51.100.4", GetClientIP(req))
}
