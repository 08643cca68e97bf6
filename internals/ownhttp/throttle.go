package ownhttp

import (
	"net/http"

	"golang.org/x/time/rate"
)

// ThrottleTransport paces consecutive requests. The extraction batch walks
// many Hypixel endpoints back to back, the limiter enforces the pause
// between them.
type ThrottleTransport struct {
	T       http.RoundTripper
	limiter *rate.Limiter
}

// RoundTrip blocks until the limiter grants a slot. Cancelling the request
// context also cancels the wait.
func (tt *ThrottleTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	err := tt.limiter.Wait(req.Context())
	if err != nil {
		return nil, err
	}

	return tt.T.RoundTrip(req)
}

func NewThrottleTransport(T http.RoundTripper, limiter *rate.Limiter) *ThrottleTransport {
	if T == nil {
		T = http.DefaultTransport
	}
	return &ThrottleTransport{T, limiter}
}
