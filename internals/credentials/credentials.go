// Package credentials stores the Hypixel API key in the system keyring,
// falling back to a plain file in the config dir when no keyring is
// available.
package credentials

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/zalando/go-keyring"
)

const (
	keyringService = "sbextract"
	keyringUser    = "hypixel_api_key"
	fallbackFile   = "credentials.json"
)

// Store holds the loaded API key. The key itself is passed around as a
// plain value, the store only deals with persistence.
type Store struct {
	// Dir is where the fallback file lives
	Dir           string
	NoKeyRingMode bool
	APIKey        string
}

type storedCredentials struct {
	APIKey string `json:"apiKey"`
}

// New creates a store and loads any existing credential
func New(dir string) (*Store, error) {
	store := &Store{Dir: dir}
	if err := store.Find(); err != nil {
		return nil, err
	}
	return store, nil
}

// Find tries to find an existing API key
func (s *Store) Find() error {
	if s.NoKeyRingMode {
		return s.findFromFile()
	}

	key, err := keyring.Get(keyringService, keyringUser)
	switch err {
	case nil:
		s.APIKey = key
		return nil
	case keyring.ErrNotFound:
		// no credentials (yet) is fine
		return nil
	default:
		s.NoKeyRingMode = true
		return s.findFromFile()
	}
}

// SetAPIKey sets APIKey and persists it
func (s *Store) SetAPIKey(key string) error {
	s.APIKey = key
	if s.NoKeyRingMode {
		blob, err := json.Marshal(storedCredentials{APIKey: key})
		if err != nil {
			return err
		}
		return s.writeCredentialFile(blob)
	}
	return keyring.Set(keyringService, keyringUser, key)
}

// Clear deletes the stored API key
func (s *Store) Clear() error {
	s.APIKey = ""
	if s.NoKeyRingMode {
		err := os.Remove(filepath.Join(s.Dir, fallbackFile))
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	err := keyring.Delete(keyringService, keyringUser)
	if err == keyring.ErrNotFound {
		return nil
	}
	return err
}

func (s *Store) findFromFile() error {
	rawCreds, err := os.ReadFile(filepath.Join(s.Dir, fallbackFile))
	switch {
	case err == nil:
		var creds storedCredentials
		if err := json.Unmarshal(rawCreds, &creds); err != nil {
			return err
		}
		s.APIKey = creds.APIKey
		return nil
	case os.IsNotExist(err):
		// no file is fine
		return nil
	default:
		return err
	}
}

func (s *Store) writeCredentialFile(content []byte) error {
	if err := os.MkdirAll(s.Dir, os.ModePerm); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(s.Dir, fallbackFile), content, 0600)
}
