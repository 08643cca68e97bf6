package ownhttp

import (
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

const userAgent = "sbextract (https://github.com/sahaj33-op/sbextract)"

// DefaultInterval is the pause enforced between two consecutive upstream
// requests. Hypixel allows far more, but this tool is a batch extractor and
// has no reason to hammer the API.
const DefaultInterval = 500 * time.Millisecond

// perCallTimeout bounds the worst case latency of a single request. There is
// no overall deadline for a run.
const perCallTimeout = 30 * time.Second

// AddHeaderTransport sets the User-Agent header on every request
type AddHeaderTransport struct {
	T http.RoundTripper
}

func (t *AddHeaderTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.Header.Get("User-Agent") == "" {
		req.Header.Set("User-Agent", userAgent)
	}
	return t.T.RoundTrip(req)
}

func NewAddHeaderTransport(T http.RoundTripper) *AddHeaderTransport {
	if T == nil {
		T = http.DefaultTransport
	}
	return &AddHeaderTransport{T}
}

// New returns a new http.Client with the AddHeaderTransport (setting the
// User-Agent header) and a ThrottleTransport pausing between requests
func New() *http.Client {
	return NewThrottled(DefaultInterval)
}

// NewThrottled is New with a custom pause between consecutive requests
func NewThrottled(interval time.Duration) *http.Client {
	return &http.Client{
		Timeout: perCallTimeout,
		Transport: NewThrottleTransport(
			NewAddHeaderTransport(nil),
			rate.NewLimiter(rate.Every(interval), 1),
		),
	}
}
