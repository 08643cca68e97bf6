// Package mojang resolves Minecraft usernames to stable account UUIDs using
// the public Mojang profile API.
package mojang

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"

	"github.com/pkg/errors"
)

const DefaultAPIURL = "https://api.mojang.com/"

// ErrPlayerNotFound gets returned when no account exists for a username
var ErrPlayerNotFound = errors.New("player not found")

// Client contains methods to talk to the Mojang API
type Client struct {
	// HTTP is the internal http client
	HTTP *http.Client
	// BaseURL points at the Mojang account API
	BaseURL string
}

// New returns a new Client using the default http client
func New() *Client {
	return &Client{
		HTTP:    http.DefaultClient,
		BaseURL: DefaultAPIURL,
	}
}

type profileResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Resolve looks up the account behind username. Usernames are matched case
// insensitively by the upstream API, the returned Identity carries the
// canonical spelling.
func (c *Client) Resolve(ctx context.Context, username string) (*Identity, error) {
	if strings.TrimSpace(username) == "" {
		return nil, errors.New("username must not be empty")
	}

	endpoint := strings.TrimSuffix(c.BaseURL, "/") +
		"/users/profiles/minecraft/" + url.PathEscape(username)

	req, err := http.NewRequestWithContext(ctx, "GET", endpoint, nil)
	if err != nil {
		return nil, err
	}

	// every lookup failure counts as "player not found". the run is fatal
	// either way, the wrapping keeps the cause visible
	res, err := c.HTTP.Do(req)
	if err != nil {
		return nil, errors.Wrapf(ErrPlayerNotFound, "uuid lookup failed: %s", err)
	}
	defer res.Body.Close()

	switch res.StatusCode {
	case http.StatusOK:
		// fallthrough to parsing
	case http.StatusNotFound, http.StatusNoContent:
		return nil, ErrPlayerNotFound
	default:
		return nil, errors.Wrapf(ErrPlayerNotFound, "uuid lookup: unexpected status %s", res.Status)
	}

	var profile profileResponse
	if err := json.NewDecoder(res.Body).Decode(&profile); err != nil {
		return nil, errors.Wrapf(ErrPlayerNotFound, "uuid lookup returned a malformed body: %s", err)
	}
	if profile.ID == "" {
		return nil, ErrPlayerNotFound
	}

	return &Identity{Name: profile.Name, ID: profile.ID}, nil
}
