package clashroyale

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"royalestats/internal/domain"
)

func TestNormalizeTag(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"#V2RJUG0P", "V2RJUG0P"},
		{"V2RJUG0P", "V2RJUG0P"},
		{"  #ABC123  ", "ABC123"},
		{"#", ""},
		{"", ""},
	}
	for _, tc := range cases {
		if got := NormalizeTag(tc.in); got != tc.want {
			t.Errorf("NormalizeTag(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestGetPlayer_Success(t *testing.T) {
	var gotPath, gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.EscapedPath()
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"tag":"#ABC123","name":"Player","trophies":4200,"wins":10,"losses":5,"expLevel":13,"clan":{"name":"The Clan"},"arena":{"name":"Legendary Arena"}}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "test-key")
	stats, err := client.GetPlayer(context.Background(), "#ABC123")
	if err != nil {
		t.Fatalf("GetPlayer returned error: %v", err)
	}

	if gotPath != "/players/%23ABC123" {
		t.Errorf("request path = %q, want /players/%%23ABC123", gotPath)
	}
	if gotAuth != "Bearer test-key" {
		t.Errorf("Authorization header = %q, want Bearer test-key", gotAuth)
	}
	if stats.Trophies != 4200 {
		t.Errorf("trophies = %d, want 4200", stats.Trophies)
	}
	if stats.Clan == nil || stats.Clan.Name != "The Clan" {
		t.Errorf("clan not decoded: %+v", stats.Clan)
	}
}

func TestGetPlayer_StatusMapping(t *testing.T) {
	cases := []struct {
		name   string
		status int
		check  func(t *testing.T, err error)
	}{
		{"not found", http.StatusNotFound, func(t *testing.T, err error) {
			if !errors.Is(err, domain.ErrPlayerNotFound) {
				t.Errorf("got %v, want ErrPlayerNotFound", err)
			}
		}},
		{"forbidden", http.StatusForbidden, func(t *testing.T, err error) {
			if !errors.Is(err, domain.ErrUpstreamAuth) {
				t.Errorf("got %v, want ErrUpstreamAuth", err)
			}
		}},
		{"teapot carries status", http.StatusTeapot, func(t *testing.T, err error) {
			var ue *domain.UpstreamError
			if !errors.As(err, &ue) || ue.Status != http.StatusTeapot {
				t.Errorf("got %v, want UpstreamError with status 418", err)
			}
		}},
		{"server error has no status", http.StatusServiceUnavailable, func(t *testing.T, err error) {
			var ue *domain.UpstreamError
			if !errors.As(err, &ue) || ue.Status != 0 {
				t.Errorf("got %v, want UpstreamError without status", err)
			}
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
			}))
			defer srv.Close()

			_, err := NewClient(srv.URL, "test-key").GetPlayer(context.Background(), "ABC123")
			if err == nil {
				t.Fatal("expected error")
			}
			tc.check(t, err)
		})
	}
}

func TestGetPlayer_MissingKeyMakesNoCall(t *testing.T) {
	var calls int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&calls, 1)
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL, "").GetPlayer(context.Background(), "ABC123")
	if !errors.Is(err, domain.ErrAPIKeyMissing) {
		t.Fatalf("got %v, want ErrAPIKeyMissing", err)
	}
	if n := atomic.LoadInt64(&calls); n != 0 {
		t.Errorf("upstream received %d calls, want 0", n)
	}
}

func TestGetPlayer_NetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused

	_, err := NewClient(srv.URL, "test-key").GetPlayer(context.Background(), "ABC123")
	var ue *domain.UpstreamError
	if !errors.As(err, &ue) || ue.Status != 0 {
		t.Fatalf("got %v, want UpstreamError without status", err)
	}
}
