package middleware

import (
	"encoding/json"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/ethpandaops/getgas/utils"
)

// APIErrorResponse writes a json error body for requests of the browser scripts.
func APIErrorResponse(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(map[string]string{"status": message}); err != nil {
		logrus.WithError(err).Error("failed to encode API error response")
	}
}

// GetClientIP returns the visitor address as seen by the rate limiter.
func GetClientIP(r *http.Request) string {
	var proxyCount uint
	if utils.Config != nil {
		proxyCount = utils.Config.RateLimit.ProxyCount
	}
	return utils.ClientIP(r, proxyCount)
}
