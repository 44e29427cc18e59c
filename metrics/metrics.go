package metrics

import (
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
)

type Metrics struct {
	preCollectMutex sync.Mutex
	preCollectFns   []func()
}

type MetricsHandler struct {
	handler         http.Handler
	collectMutex    sync.Mutex
	lastCollectTime time.Time
}

var metrics *Metrics = &Metrics{
	preCollectFns: []func(){},
}

// AddPreCollectFn registers a function that refreshes gauges before they are scraped.
func AddPreCollectFn(fn func()) {
	metrics.preCollectMutex.Lock()
	defer metrics.preCollectMutex.Unlock()
	metrics.preCollectFns = append(metrics.preCollectFns, fn)
}

func runPreCollectFns() {
	metrics.preCollectMutex.Lock()
	fns := metrics.preCollectFns
	metrics.preCollectMutex.Unlock()

	for _, fn := range fns {
		fn()
	}
}

func StartMetricsServer(logger logrus.FieldLogger, host string, port string) error {
	if host == "" {
		host = "127.0.0.1"
	}
	if port == "" {
		port = "9090"
	}

	srv := &http.Server{
		Addr:    host + ":" + port,
		Handler: GetMetricsHandler(),
	}

	listener, err := net.Listen("tcp", srv.Addr)
	if err != nil {
		return err
	}

	go func() {
		logger.Infof("metrics server listening on %v", srv.Addr)
		if err := srv.Serve(listener); err != nil {
			logger.WithError(err).Fatal("Error serving metrics")
		}
	}()

	return nil
}

func GetMetricsHandler() http.Handler {
	return &MetricsHandler{
		handler:         promhttp.Handler(),
		lastCollectTime: time.Now(),
	}
}

func (mh *MetricsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	mh.collectMutex.Lock()
	if time.Since(mh.lastCollectTime) > 1*time.Second {
		runPreCollectFns()
		mh.lastCollectTime = time.Now()
	}
	mh.collectMutex.Unlock()

	mh.handler.ServeHTTP(w, r)
}
