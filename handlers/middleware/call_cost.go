package middleware

import (
	"context"
	"net/http"
	"sync"
)

type callCostKey string

const (
	contextKeyCallCost callCostKey = "call_cost"
)

var (
	endpointCosts = make(map[string]uint)
	costMutex     sync.RWMutex
)

func endpointKey(method, path string) string {
	return method + " " + path
}

// SetEndpointCost sets the call cost for a method and path. Endpoints without a cost are free.
func SetEndpointCost(method, path string, cost uint) {
	costMutex.Lock()
	defer costMutex.Unlock()
	endpointCosts[endpointKey(method, path)] = cost
}

// CallCostMiddleware sets call costs based on endpoint mapping
func CallCostMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		costMutex.RLock()
		cost := endpointCosts[endpointKey(r.Method, r.URL.Path)]
		costMutex.RUnlock()

		ctx := context.WithValue(r.Context(), contextKeyCallCost, cost)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetCallCost extracts the call cost from request context
func GetCallCost(r *http.Request) uint {
	if cost, ok := r.Context().Value(contextKeyCallCost).(uint); ok {
		return cost
	}
	return 0
}
