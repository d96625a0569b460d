package theme

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
)

type failingStore struct{ err error }

func (f failingStore) Get(context.Context, string) (string, bool, error) { return "", false, f.err }
func (f failingStore) Set(context.Context, string, string) error { return f.err }

func TestPreferenceDefaultsToLight(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	tests := []struct {
		name  string
		store Store
	}{
		{name: "empty", store: NewMemoryStore()},
		{name: "unavailable", store: failingStore{err: errors.New("storage disabled")}},
		{name: "malformed", store: func() Store {
			s := NewMemoryStore()
			_ = s.Set(ctx, Key, "Dark")
			return s
		}()},
		{name: "light", store: func() Store {
			s := NewMemoryStore()
			_ = s.Set(ctx, Key, "light")
			return s
		}()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewController(tt.store)
			if c.Preference(ctx) {
				t.Fatalf("Preference() = true, want false")
			}
			if got := c.Theme(ctx); got != Light {
				t.Fatalf("Theme() = %q, want %q", got, Light)
			}
		})
	}
}

func TestSetPreferenceRoundTrip(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := NewMemoryStore()

	got, err := NewController(store).SetPreference(ctx, true)
	if err != nil {
		t.Fatalf("SetPreference() error = %v", err)
	}
	if got != Dark {
		t.Fatalf("SetPreference() = %q, want %q", got, Dark)
	}
	if v, _, _ := store.Get(ctx, Key); v != "dark" {
		t.Fatalf("stored = %q, want %q", v, "dark")
	}

	// A fresh controller over the same storage stands in for a reload.
	if !NewController(store).Preference(ctx) {
		t.Fatalf("Preference() after reload = false, want true")
	}
}

func TestSetPreferenceWriteFailure(t *testing.T) {
	t.Parallel()

	want := errors.New("quota exceeded")
	_, err := NewController(failingStore{err: want}).SetPreference(context.Background(), true)
	if !errors.Is(err, want) {
		t.Fatalf("SetPreference() error = %v, want %v", err, want)
	}
}

func TestToggle(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	c := NewController(NewMemoryStore())
	for i, want := range []Theme{Dark, Light, Dark} {
		got, err := c.Toggle(ctx)
		if err != nil {
			t.Fatalf("Toggle() #%d error = %v", i, err)
		}
		if got != want {
			t.Fatalf("Toggle() #%d = %q, want %q", i, got, want)
		}
	}
}

func TestThemeClass(t *testing.T) {
	t.Parallel()

	if Dark.Class() != "dark" || Light.Class() != "" {
		t.Fatalf("classes = %q/%q", Dark.Class(), Light.Class())
	}
	if Dark.Toggle() != Light || Light.Toggle() != Dark {
		t.Fatalf("Toggle() does not flip")
	}
	if Dark.ToggleLabel() != "Light" || Light.ToggleLabel() != "Dark" {
		t.Fatalf("labels = %q/%q", Dark.ToggleLabel(), Light.ToggleLabel())
	}
}

func TestCookieStore(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	req := httptest.NewRequest(http.MethodGet, "http://example.com", nil)
	rr := httptest.NewRecorder()
	c := NewController(NewCookieStore(rr, req))

	if c.Preference(ctx) {
		t.Fatalf("expected light without cookie")
	}
	if _, err := c.SetPreference(ctx, true); err != nil {
		t.Fatalf("SetPreference() error = %v", err)
	}
	if !c.Preference(ctx) {
		t.Fatalf("expected write-through within the request")
	}

	cookie, err := parseSetCookie(rr.Header().Get("Set-Cookie"))
	if err != nil {
		t.Fatalf("ParseSetCookie() error = %v", err)
	}
	if cookie.Name != Key || cookie.Value != "dark" {
		t.Fatalf("cookie = %s=%s, want %s=dark", cookie.Name, cookie.Value, Key)
	}
	if cookie.Path != "/" {
		t.Fatalf("cookie path = %q, want /", cookie.Path)
	}
	if cookie.HttpOnly {
		t.Fatalf("expected script-readable cookie")
	}
	if cookie.Secure {
		t.Fatalf("expected non-secure cookie for http request")
	}

	next := httptest.NewRequest(http.MethodGet, "http://example.com", nil)
	next.AddCookie(cookie)
	if !NewController(NewCookieStore(httptest.NewRecorder(), next)).Preference(ctx) {
		t.Fatalf("expected dark on the next request")
	}
}

// parseSetCookie parses a single Set-Cookie header value. It stands in for
// http.ParseSetCookie, which is unavailable before Go 1.23.
func parseSetCookie(line string) (*http.Cookie, error) {
	cookies := (&http.Response{Header: http.Header{"Set-Cookie": {line}}}).Cookies()
	if len(cookies) != 1 {
		return nil, fmt.Errorf("invalid Set-Cookie header %q", line)
	}
	return cookies[0], nil
}
