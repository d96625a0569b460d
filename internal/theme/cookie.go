package theme

import (
	"context"
	"net/http"
	"time"
)

const cookieMaxAge = 365 * 24 * time.Hour

// CookieStore keeps values in browser cookies, one cookie per key. It is bound
// to a single request and its response.
type CookieStore struct {
	w       http.ResponseWriter
	r       *http.Request
	written map[string]string
}

func NewCookieStore(w http.ResponseWriter, r *http.Request) *CookieStore {
	return &CookieStore{w: w, r: r, written: make(map[string]string)}
}

// Get returns a value set earlier in this request, or the request cookie.
func (s *CookieStore) Get(_ context.Context, key string) (string, bool, error) {
	if v, ok := s.written[key]; ok {
		return v, true, nil
	}
	if s.r == nil {
		return "", false, nil
	}
	c, err := s.r.Cookie(key)
	if err != nil {
		return "", false, nil
	}
	return c.Value, true, nil
}

// Set writes the cookie for a year. It is not HttpOnly.
func (s *CookieStore) Set(_ context.Context, key, value string) error {
	http.SetCookie(s.w, &http.Cookie{
		Name:     key,
		Value:    value,
		Path:     "/",
		MaxAge:   int(cookieMaxAge.Seconds()),
		SameSite: http.SameSiteLaxMode,
		Secure:   s.r != nil && s.r.TLS != nil,
		HttpOnly: false,
	})
	s.written[key] = value
	return nil
}

var _ Store = (*CookieStore)(nil)
