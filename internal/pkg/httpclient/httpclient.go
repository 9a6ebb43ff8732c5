package httpclient

import (
	"net/http"

	circuit "github.com/rubyist/circuitbreaker"
	"go.elastic.co/apm/module/apmhttp"

	"travel-booking-service/config"
)

// InitCircuitBreaker builds the breaker guarding outbound third-party calls.
// The type is configuration so staging can trip faster than production.
func InitCircuitBreaker(cfg *config.HttpClientConfig, breakerType string) *circuit.Breaker {
	switch breakerType {
	case "consecutive":
		return circuit.NewConsecutiveBreaker(cfg.ConsecutiveFailures)
	case "rate":
		return circuit.NewRateBreaker(cfg.ErrorRate, cfg.MinSamples)
	default:
		return circuit.NewThresholdBreaker(cfg.FailureThreshold)
	}
}

// InitHttpClient wraps the breaker around an apm-instrumented transport so
// outbound gateway and scorer calls show up as spans on the active
// transaction.
func InitHttpClient(cfg *config.HttpClientConfig, cb *circuit.Breaker) *circuit.HTTPClient {
	client := circuit.NewHTTPClient(cfg.Timeout, cfg.FailureThreshold, &http.Client{
		Timeout:   cfg.Timeout,
		Transport: apmhttp.WrapRoundTripper(http.DefaultTransport),
	})
	client.BreakerLookup = func(c *circuit.HTTPClient, _ interface{}) *circuit.Breaker {
		return cb
	}

	return client
}
