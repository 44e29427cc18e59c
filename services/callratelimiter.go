package services

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/ethpandaops/getgas/metrics"
	"github.com/ethpandaops/getgas/utils"
)

var ErrCallLimitExceeded = errors.New("call rate limit exceeded")

// visitors idle for longer are forgotten and start with a full bucket again
const visitorIdleTimeout = 3 * time.Minute

// CallRateLimiter is a token bucket per visitor ip. Endpoints that trigger outbound calls (balance
// reads, proof verification) consume tokens according to their call cost.
type CallRateLimiter struct {
	proxyCount uint
	limit      rate.Limit
	burst      int

	mutex    sync.Mutex
	visitors map[string]*callRateVisitor
}

type callRateVisitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// NewCallRateLimiter refills ratePerSecond tokens per second up to burst. Idle visitors are
// dropped until ctx is done.
func NewCallRateLimiter(ctx context.Context, proxyCount uint, ratePerSecond uint, burst uint) *CallRateLimiter {
	crl := &CallRateLimiter{
		proxyCount: proxyCount,
		limit:      rate.Limit(ratePerSecond),
		burst:      int(burst),
		visitors:   map[string]*callRateVisitor{},
	}
	go crl.dropIdleVisitors(ctx)

	metrics.AddPreCollectFn(func() {
		metrics.RateLimiterVisitors.Set(float64(crl.visitorCount()))
	})

	return crl
}

// CheckCallLimit consumes callCost tokens of the requesting visitor. A nil limiter allows everything.
func (crl *CallRateLimiter) CheckCallLimit(r *http.Request, callCost uint) error {
	if crl == nil {
		return nil
	}
	return crl.allow(utils.ClientIP(r, crl.proxyCount), callCost, time.Now())
}

func (crl *CallRateLimiter) allow(ip string, callCost uint, now time.Time) error {
	crl.mutex.Lock()
	visitor := crl.visitors[ip]
	if visitor == nil {
		visitor = &callRateVisitor{
			limiter: rate.NewLimiter(crl.limit, crl.burst),
		}
		crl.visitors[ip] = visitor
		metrics.RateLimiterNewVisitors.Inc()
	}
	visitor.lastSeen = now
	crl.mutex.Unlock()

	if !visitor.limiter.AllowN(now, int(callCost)) {
		return ErrCallLimitExceeded
	}
	return nil
}

func (crl *CallRateLimiter) visitorCount() int {
	crl.mutex.Lock()
	defer crl.mutex.Unlock()
	return len(crl.visitors)
}

func (crl *CallRateLimiter) dropIdleVisitors(ctx context.Context) {
	defer utils.HandleSubroutinePanic("CallRateLimiter.dropIdleVisitors")

	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			crl.dropVisitorsIdleSince(now.Add(-visitorIdleTimeout))
		}
	}
}

func (crl *CallRateLimiter) dropVisitorsIdleSince(cutoff time.Time) {
	crl.mutex.Lock()
	defer crl.mutex.Unlock()

	for ip, visitor := range crl.visitors {
		if visitor.lastSeen.Before(cutoff) {
			delete(crl.visitors, ip)
		}
	}
}
