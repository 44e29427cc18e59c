package utils

import (
	"net/http/httptest"
	"testing"
)

func TestClientIP(t *testing.T) {
	tests := []struct {
		name       string
		remoteAddr string
		forwarded  string
		proxyCount uint
		want       string
	}{
		{"direct", "198.51.100.4:1234", "", 0, "198.51.100.4"},
		{"header ignored without proxies", "198.51.100.4:1234", "192.0.2.1", 0, "198.51.100.4"},
		{"one proxy", "10.0.0.1:443", "192.0.2.1", 1, "192.0.2.1"},
		{"one proxy with spoofed entry", "10.0.0.1:443", "203.0.113.9, 192.0.2.1", 1, "192.0.2.1"},
		{"two proxies", "10.0.0.1:443", "192.0.2.1,10.0.0.2", 2, "192.0.2.1"},
		{"header shorter than proxy chain", "10.0.0.1:443", "192.0.2.1", 2, "10.0.0.1"},
		{"missing header", "10.0.0.1:443", "", 1, "10.0.0.1"},
		{"remote addr without port", "10.0.0.1", "", 0, "10.0.0.1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", "/", nil)
			r.RemoteAddr = tt.remoteAddr
			if tt.forwarded != "" {
				r.Header.Set("X-Forwarded-For", tt.forwarded)
			}
			if got := ClientIP(r, tt.proxyCount); got != tt.want {
				t.Errorf("ClientIP() = %q, want %q", got, tt.want)
			}
		})
	}
}
