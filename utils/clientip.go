package utils

import (
	"net"
	"net/http"
	"strings"
)

// ClientIP returns the address of the visitor behind proxyCount trusted reverse proxies. The
// proxies append to X-Forwarded-For, so the client is the entry proxyCount places from the end.
// Without proxies, or with a shorter header, the connection address is used.
func ClientIP(r *http.Request, proxyCount uint) string {
	if proxyCount > 0 {
		forwarded := strings.Split(r.Header.Get("X-Forwarded-For"), ",")
		if idx := len(forwarded) - int(proxyCount); idx >= 0 {
			if ip := strings.TrimSpace(forwarded[idx]); ip != "" {
				return ip
			}
		}
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
