package mojang_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sahaj33-op/sbextract/internals/mojang"
)

const notchUUID = "069a79f444e94726a5befca90e38aaf5"

func newFakeMojang() *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/users/profiles/minecraft/Notch" {
			fmt.Fprintf(w, `{"id":%q,"name":"Notch"}`, notchUUID)
			return
		}
		w.WriteHeader(http.StatusNotFound)
		fmt.Fprint(w, `{"errorMessage":"Couldn't find any profile with that name"}`)
	}))
}

func TestResolve(t *testing.T) {
	srv := newFakeMojang()
	defer srv.Close()

	client := mojang.New()
	client.BaseURL = srv.URL

	identity, err := client.Resolve(context.Background(), "Notch")
	if err != nil {
		t.Fatal(err)
	}
	if identity.Name != "Notch" {
		t.Errorf("expected name Notch, got %q", identity.Name)
	}
	if identity.ID != notchUUID {
		t.Errorf("expected raw uuid %q, got %q", notchUUID, identity.ID)
	}
	if want := "069a79f4-44e9-4726-a5be-fca90e38aaf5"; identity.Dashed() != want {
		t.Errorf("expected dashed uuid %q, got %q", want, identity.Dashed())
	}
}

func TestResolveNotFound(t *testing.T) {
	srv := newFakeMojang()
	defer srv.Close()

	client := mojang.New()
	client.BaseURL = srv.URL

	_, err := client.Resolve(context.Background(), "NoSuchPlayer404")
	if !errors.Is(err, mojang.ErrPlayerNotFound) {
		t.Fatalf("expected ErrPlayerNotFound, got %v", err)
	}
}

// old API versions answer unknown names with 204 and an empty body
func TestResolveNoContent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	client := mojang.New()
	client.BaseURL = srv.URL

	_, err := client.Resolve(context.Background(), "Notch")
	if !errors.Is(err, mojang.ErrPlayerNotFound) {
		t.Fatalf("expected ErrPlayerNotFound, got %v", err)
	}
}

// server errors and unreachable hosts also mean "player not found", the
// cause stays visible in the message
func TestResolveFailuresMapToPlayerNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := mojang.New()
	client.BaseURL = srv.URL

	_, err := client.Resolve(context.Background(), "Notch")
	if !errors.Is(err, mojang.ErrPlayerNotFound) {
		t.Fatalf("expected ErrPlayerNotFound on a server error, got %v", err)
	}

	srv.Close()
	_, err = client.Resolve(context.Background(), "Notch")
	if !errors.Is(err, mojang.ErrPlayerNotFound) {
		t.Fatalf("expected ErrPlayerNotFound on a transport error, got %v", err)
	}
}

func TestResolveEmptyUsername(t *testing.T) {
	client := mojang.New()
	if _, err := client.Resolve(context.Background(), "  "); err == nil {
		t.Fatal("expected an error for a blank username")
	}
}

func TestDashedLeavesMalformedIDsAlone(t *testing.T) {
	identity := &mojang.Identity{Name: "x", ID: "tooshort"}
	if identity.Dashed() != "tooshort" {
		t.Errorf("expected malformed id to pass through, got %q", identity.Dashed())
	}
}
