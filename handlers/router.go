package handlers

import (
	"io/fs"
	"net/http"
	_ "net/http/pprof"
	"os"

	"github.com/gorilla/mux"

	"github.com/ethpandaops/getgas/handlers/middleware"
	"github.com/ethpandaops/getgas/metrics"
	"github.com/ethpandaops/getgas/static"
	"github.com/ethpandaops/getgas/utils"
)

// NewRouter registers the pages, the wallet endpoint and the static files. Posts that reach out
// to the chains or the verification api are metered by limiter.
func NewRouter(limiter middleware.CallLimiter) *mux.Router {
	router := mux.NewRouter()

	router.HandleFunc("/", Landing).Methods("GET")
	router.HandleFunc("/verify", Verify).Methods("POST")
	router.HandleFunc("/claim", Claim).Methods("POST")
	router.HandleFunc("/panel", Panel).Methods("POST")
	router.HandleFunc("/transfer", Transfer).Methods("GET")
	router.HandleFunc("/transfer", TransferAction).Methods("POST")
	router.HandleFunc("/wallet/accounts", WalletAccounts).Methods("POST")

	middleware.SetEndpointCost("POST", "/verify", 2)
	middleware.SetEndpointCost("POST", "/claim", 1)
	middleware.SetEndpointCost("POST", "/transfer", 1)
	middleware.SetEndpointCost("POST", "/wallet/accounts", 1)
	router.Use(middleware.CallCostMiddleware, middleware.NewRateLimitMiddleware(limiter).Middleware)

	if utils.Config.Frontend.Pprof {
		router.PathPrefix("/debug/pprof/").Handler(http.DefaultServeMux)
		router.Handle("/debug/metrics", metrics.GetMetricsHandler())
	}
	if utils.Config.Metrics.Enabled && utils.Config.Metrics.Public {
		router.Handle("/metrics", metrics.GetMetricsHandler())
	}

	// debug mode serves the static files from disk, changes show up on reload
	var staticFiles fs.FS = static.Files
	if utils.Config.Frontend.Debug {
		staticFiles = os.DirFS("static")
	}
	router.PathPrefix("/").Handler(StaticFiles(staticFiles, NotFound))

	return router
}
