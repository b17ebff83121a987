package config

import "time"

const httpTimeoutVar = "OAUTH_HTTP_TIMEOUT"

type TransportConfig interface {
	GetHTTPTimeout() time.Duration
}

type Transport struct{}

var _ TransportConfig = Transport{}

// GetHTTPTimeout parses OAUTH_HTTP_TIMEOUT as a Go duration, 10s by default.
func (Transport) GetHTTPTimeout() time.Duration {
	d, err := time.ParseDuration(GetEnv(httpTimeoutVar, "10s"))
	if err != nil || d <= 0 {
		return 10 * time.Second
	}
	return d
}
