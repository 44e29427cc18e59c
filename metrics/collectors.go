package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	BalanceFetches = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "getgas_balance_fetches_total",
		Help: "Number of balance fetches by result (ok, error, timeout)",
	}, []string{"result"})

	BalanceFetchDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "getgas_balance_fetch_duration_seconds",
		Help:    "Duration of the combined balance fetch on both chains",
		Buckets: prometheus.DefBuckets,
	})

	WalletTransitions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "getgas_wallet_transitions_total",
		Help: "Number of wallet session transitions",
	}, []string{"transition"})

	Verifications = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "getgas_verifications_total",
		Help: "Number of identity verifications by result",
	}, []string{"result"})

	Submissions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "getgas_submissions_total",
		Help: "Number of claim and transfer submissions by result",
	}, []string{"kind", "result"})

	RateLimiterVisitors = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "getgas_call_rate_limiter_visitors_count",
		Help: "Number of visitors in the call rate limiter",
	})

	RateLimiterNewVisitors = promauto.NewCounter(prometheus.CounterOpts{
		Name: "getgas_call_rate_limiter_new_visitors_count",
		Help: "Number of new visitors in the call rate limiter",
	})
)
