package hypixel

import (
	"context"
	"encoding/json"

	"github.com/pkg/errors"
	"golang.org/x/exp/slices"

	"github.com/sahaj33-op/sbextract/internals/mojang"
)

// Profile is one SkyBlock save slot of a player. Instances are immutable,
// selection never mutates them.
type Profile struct {
	ID   string
	Name string
	// GameMode is an opaque upstream string ("normal", "ironman", "bingo",
	// ...). Empty upstream values are normalized to "normal".
	GameMode string
	// LastSave is epoch milliseconds of the player's last save on this
	// profile, 0 when upstream omits it
	LastSave int64
	// Selected marks the profile the player currently plays on
	Selected bool
	// Raw is the verbatim upstream profile object
	Raw json.RawMessage
}

type profileEntry struct {
	ProfileID string `json:"profile_id"`
	CuteName  string `json:"cute_name"`
	GameMode  string `json:"game_mode"`
	Selected  bool   `json:"selected"`
	Members   map[string]struct {
		LastSave int64 `json:"last_save"`
	} `json:"members"`
}

func (e *profileEntry) toProfile(playerUUID string, raw json.RawMessage) Profile {
	p := Profile{
		ID:       e.ProfileID,
		Name:     e.CuteName,
		GameMode: e.GameMode,
		Selected: e.Selected,
		Raw:      raw,
	}
	if p.GameMode == "" {
		p.GameMode = "normal"
	}
	if member, ok := e.Members[playerUUID]; ok {
		p.LastSave = member.LastSave
	}
	return p
}

// ListProfiles returns all SkyBlock profiles of the given player, most
// recently saved first (ties keep upstream order). When the key may not
// list all profiles it falls back to the single active profile.
func (c *Client) ListProfiles(ctx context.Context, identity *mojang.Identity) ([]Profile, error) {
	body, err := c.FetchRaw(ctx, "skyblock/profiles?uuid="+identity.ID)
	if err != nil {
		if errors.Is(err, ErrPermissionDenied) {
			c.warn("Could not fetch all profiles (API access restricted). Falling back to the active profile only.")
			return c.activeProfile(ctx, identity)
		}
		return nil, err
	}

	var listing struct {
		Profiles []json.RawMessage `json:"profiles"`
	}
	if err := json.Unmarshal(body, &listing); err != nil {
		return nil, errors.Wrap(err, "profile listing returned a malformed body")
	}

	profiles := make([]Profile, 0, len(listing.Profiles))
	for _, raw := range listing.Profiles {
		var entry profileEntry
		if err := json.Unmarshal(raw, &entry); err != nil {
			return nil, errors.Wrap(err, "profile listing returned a malformed profile")
		}
		profiles = append(profiles, entry.toProfile(identity.ID, raw))
	}
	if len(profiles) == 0 {
		return nil, ErrNoProfiles
	}

	// index 0 is the most recently saved profile. the sort must be stable
	// so profiles with equal last_save keep their upstream order
	slices.SortStableFunc(profiles, func(a, b Profile) int {
		switch {
		case a.LastSave > b.LastSave:
			return -1
		case a.LastSave < b.LastSave:
			return 1
		default:
			return 0
		}
	})
	return profiles, nil
}

// activeProfile queries the single currently selected profile. Its
// last_save is left at 0: the endpoint stands for "currently selected", not
// for a point in time.
func (c *Client) activeProfile(ctx context.Context, identity *mojang.Identity) ([]Profile, error) {
	body, err := c.FetchRaw(ctx, "skyblock/profile?uuid="+identity.ID)
	if err != nil {
		return nil, errors.Wrap(ErrNoProfiles, err.Error())
	}

	var wrapper struct {
		Profile json.RawMessage `json:"profile"`
	}
	if err := json.Unmarshal(body, &wrapper); err != nil {
		return nil, errors.Wrap(err, "active profile lookup returned a malformed body")
	}
	if len(wrapper.Profile) == 0 || string(wrapper.Profile) == "null" {
		return nil, ErrNoProfiles
	}

	var entry profileEntry
	if err := json.Unmarshal(wrapper.Profile, &entry); err != nil {
		return nil, errors.Wrap(err, "active profile lookup returned a malformed profile")
	}

	profile := entry.toProfile(identity.ID, wrapper.Profile)
	profile.LastSave = 0
	profile.Selected = true
	return []Profile{profile}, nil
}
