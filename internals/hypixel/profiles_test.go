package hypixel_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/sahaj33-op/sbextract/internals/hypixel"
	"github.com/sahaj33-op/sbextract/internals/mojang"
)

const playerUUID = "069a79f444e94726a5befca90e38aaf5"

var identity = &mojang.Identity{Name: "Notch", ID: playerUUID}

func profileJSON(id, name, mode string, lastSave int64) string {
	entry := fmt.Sprintf(`{"profile_id":%q,"cute_name":%q`, id, name)
	if mode != "" {
		entry += fmt.Sprintf(`,"game_mode":%q`, mode)
	}
	entry += fmt.Sprintf(`,"members":{%q:{"last_save":%d}}}`, playerUUID, lastSave)
	return entry
}

func newClient(srv *httptest.Server) *hypixel.Client {
	client := hypixel.New("secret")
	client.BaseURL = srv.URL
	client.HTTP = srv.Client()
	return client
}

func TestListProfilesSorted(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("key"); got != "secret" {
			t.Errorf("expected the api key as query parameter, got %q", got)
		}
		if got := r.URL.Query().Get("uuid"); got != playerUUID {
			t.Errorf("expected the uuid as query parameter, got %q", got)
		}
		fmt.Fprintf(w, `{"success":true,"profiles":[%s,%s]}`,
			profileJSON("id-apple", "Apple", "", 100),
			profileJSON("id-banana", "Banana", "ironman", 200),
		)
	}))
	defer srv.Close()

	profiles, err := newClient(srv).ListProfiles(context.Background(), identity)
	if err != nil {
		t.Fatal(err)
	}

	if len(profiles) != 2 {
		t.Fatalf("expected 2 profiles, got %d", len(profiles))
	}
	if profiles[0].Name != "Banana" || profiles[1].Name != "Apple" {
		t.Errorf("expected [Banana Apple], got [%s %s]", profiles[0].Name, profiles[1].Name)
	}
	if profiles[0].LastSave != 200 || profiles[1].LastSave != 100 {
		t.Errorf("unexpected last_save values: %d, %d", profiles[0].LastSave, profiles[1].LastSave)
	}
	if profiles[0].GameMode != "ironman" {
		t.Errorf("expected game mode ironman, got %q", profiles[0].GameMode)
	}
	// missing game_mode normalizes to "normal"
	if profiles[1].GameMode != "normal" {
		t.Errorf("expected game mode normal, got %q", profiles[1].GameMode)
	}
	if !strings.Contains(string(profiles[0].Raw), `"cute_name":"Banana"`) {
		t.Error("expected the verbatim upstream payload in Raw")
	}
}

// profiles with equal last_save keep their upstream order
func TestListProfilesSortIsStable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, `{"success":true,"profiles":[%s,%s,%s,%s]}`,
			profileJSON("1", "First", "", 100),
			profileJSON("2", "Second", "", 100),
			profileJSON("3", "Newest", "", 500),
			profileJSON("4", "Third", "", 100),
		)
	}))
	defer srv.Close()

	profiles, err := newClient(srv).ListProfiles(context.Background(), identity)
	if err != nil {
		t.Fatal(err)
	}

	got := make([]string, 0, len(profiles))
	for _, p := range profiles {
		got = append(got, p.Name)
	}
	want := "Newest First Second Third"
	if strings.Join(got, " ") != want {
		t.Errorf("expected order %q, got %q", want, strings.Join(got, " "))
	}
}

func TestListProfilesEmpty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"success":true,"profiles":[]}`)
	}))
	defer srv.Close()

	_, err := newClient(srv).ListProfiles(context.Background(), identity)
	if !errors.Is(err, hypixel.ErrNoProfiles) {
		t.Fatalf("expected ErrNoProfiles, got %v", err)
	}
}

func TestListProfilesFallback(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/skyblock/profiles":
			w.WriteHeader(http.StatusForbidden)
			fmt.Fprint(w, `{"success":false,"cause":"Insufficient permissions"}`)
		case "/skyblock/profile":
			fmt.Fprintf(w, `{"success":true,"profile":%s}`,
				profileJSON("id-active", "Active", "bingo", 12345))
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	profiles, err := newClient(srv).ListProfiles(context.Background(), identity)
	if err != nil {
		t.Fatal(err)
	}

	if len(profiles) != 1 {
		t.Fatalf("expected exactly one fallback profile, got %d", len(profiles))
	}
	p := profiles[0]
	if p.Name != "Active" || p.ID != "id-active" {
		t.Errorf("unexpected profile %+v", p)
	}
	if !p.Selected {
		t.Error("the fallback profile stands for the currently selected one")
	}
	// the fallback path never trusts last_save
	if p.LastSave != 0 {
		t.Errorf("expected last_save 0 on the fallback path, got %d", p.LastSave)
	}
}

func TestListProfilesFallbackEmpty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/skyblock/profiles":
			w.WriteHeader(http.StatusForbidden)
		default:
			fmt.Fprint(w, `{"success":true,"profile":null}`)
		}
	}))
	defer srv.Close()

	_, err := newClient(srv).ListProfiles(context.Background(), identity)
	if !errors.Is(err, hypixel.ErrNoProfiles) {
		t.Fatalf("expected ErrNoProfiles, got %v", err)
	}
}

func TestFetchRawReportsCause(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		fmt.Fprint(w, `{"success":false,"cause":"Malformed UUID"}`)
	}))
	defer srv.Close()

	_, err := newClient(srv).FetchRaw(context.Background(), "skyblock/profiles?uuid=nope")
	if err == nil || !strings.Contains(err.Error(), "Malformed UUID") {
		t.Fatalf("expected the upstream cause in the error, got %v", err)
	}
}
