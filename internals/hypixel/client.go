// Package hypixel is a small client for the parts of the Hypixel public API
// (v2) this tool extracts: SkyBlock profiles, per-category player data and
// the global SkyBlock resources.
package hypixel

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/pkg/errors"

	"github.com/sahaj33-op/sbextract/internals/cmdlog"
)

const DefaultAPIURL = "https://api.hypixel.net/v2/"

var (
	// ErrNoProfiles gets returned when a player has no SkyBlock profiles
	ErrNoProfiles = errors.New("player has no SkyBlock profiles")
	// ErrPermissionDenied gets returned when the API key may not access an
	// endpoint (or the player restricted API access in their settings)
	ErrPermissionDenied = errors.New("api key may not access this endpoint")
)

// Client talks to the Hypixel API. One client per API key.
type Client struct {
	// HTTP is the internal http client
	HTTP *http.Client
	// BaseURL points at the Hypixel API
	BaseURL string
	// Key is sent as a query parameter on every request
	Key string
	// Log receives warnings about degraded behavior (optional)
	Log *cmdlog.Logger
}

// New returns a new Client using the default http client
func New(key string) *Client {
	return &Client{
		HTTP:    http.DefaultClient,
		BaseURL: DefaultAPIURL,
		Key:     key,
	}
}

// envelope is the common response wrapper of all Hypixel endpoints
type envelope struct {
	Success bool   `json:"success"`
	Cause   string `json:"cause"`
}

// endpoint builds the full URL for a path (which may carry its own query
// string) and appends the API key
func (c *Client) endpoint(pathAndQuery string) string {
	u := strings.TrimSuffix(c.BaseURL, "/") + "/" + strings.TrimPrefix(pathAndQuery, "/")
	if c.Key == "" {
		return u
	}
	sep := "?"
	if strings.Contains(pathAndQuery, "?") {
		sep = "&"
	}
	return u + sep + "key=" + url.QueryEscape(c.Key)
}

// FetchRaw performs one GET and returns the body verbatim after checking
// the success envelope. The caller owns interpretation of the payload.
func (c *Client) FetchRaw(ctx context.Context, pathAndQuery string) (json.RawMessage, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", c.endpoint(pathAndQuery), nil)
	if err != nil {
		return nil, err
	}

	res, err := c.HTTP.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "fetching %s failed", pathOf(pathAndQuery))
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, errors.Wrapf(err, "fetching %s failed", pathOf(pathAndQuery))
	}

	if res.StatusCode == http.StatusForbidden {
		return nil, ErrPermissionDenied
	}

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, errors.Wrapf(err, "%s returned a malformed body", pathOf(pathAndQuery))
	}
	if !env.Success {
		if env.Cause != "" {
			return nil, fmt.Errorf("%s: %s", pathOf(pathAndQuery), env.Cause)
		}
		return nil, fmt.Errorf("%s: unexpected status %s", pathOf(pathAndQuery), res.Status)
	}
	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%s: unexpected status %s", pathOf(pathAndQuery), res.Status)
	}

	return body, nil
}

// pathOf strips the query string for error messages (it may contain the
// player's uuid, never the key. that one is appended later)
func pathOf(pathAndQuery string) string {
	if i := strings.IndexByte(pathAndQuery, '?'); i != -1 {
		return pathAndQuery[:i]
	}
	return pathAndQuery
}

func (c *Client) warn(s string) {
	if c.Log != nil {
		c.Log.Warn(s)
	}
}
