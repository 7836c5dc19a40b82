package tokenstore

import (
	"net/http"
	"time"
)

// RequestStore is a Store bound to a single server-rendered request. Reads
// come from the request's cookies, writes become Set-Cookie headers on the
// response. Each request gets its own instance, so concurrent requests from
// different clients never observe each other's token.
type RequestStore struct {
	r *http.Request
	w http.ResponseWriter

	// pending mirrors a write made during this request so that later reads in
	// the same scope see the new value, not the stale request cookie.
	pending *string
	cleared bool
}

// FromRequest returns the token store scoped to the given request.
func FromRequest(w http.ResponseWriter, r *http.Request) *RequestStore {
	return &RequestStore{r: r, w: w}
}

func (s *RequestStore) Get() (string, bool) {
	if s.cleared {
		return "", false
	}
	if s.pending != nil {
		return *s.pending, true
	}
	cookie, err := s.r.Cookie(CookieName)
	if err != nil || cookie.Value == "" {
		return "", false
	}
	return cookie.Value, true
}

func (s *RequestStore) Set(token string) {
	s.pending = &token
	s.cleared = false
	http.SetCookie(s.w, &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     CookiePath,
		MaxAge:   int(TokenTTL / time.Second),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func (s *RequestStore) Clear() {
	s.pending = nil
	s.cleared = true
	http.SetCookie(s.w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     CookiePath,
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
