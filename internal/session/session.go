package session

import (
	"net/http"
	"net/url"
	"strings"
)

// DefaultCookieName is the cookie holding the session token
const DefaultCookieName = "token"

// Token is the opaque credential issued by the external login flow.
// The zero value means no session.
type Token string

// Present reports whether a token is set
func (t Token) Present() bool {
	return strings.TrimSpace(string(t)) != ""
}

// String keeps the credential out of logs
func (t Token) String() string {
	if !t.Present() {
		return "<none>"
	}
	return "<redacted>"
}

// Store reads and writes the session token cookie
type Store struct {
	cookieName string
	secure     bool
}

// NewStore creates a cookie-backed token store
func NewStore(cookieName string, secure bool) *Store {
	if cookieName == "" {
		cookieName = DefaultCookieName
	}
	return &Store{cookieName: cookieName, secure: secure}
}

// CookieName returns the name of the session cookie
func (s *Store) CookieName() string {
	return s.cookieName
}

// Read returns the token carried by the request, or the zero Token
func (s *Store) Read(r *http.Request) Token {
	cookie, err := r.Cookie(s.cookieName)
	if err != nil {
		return ""
	}
	value, err := url.QueryUnescape(cookie.Value)
	if err != nil {
		return ""
	}
	return Token(strings.TrimSpace(value))
}

// Save stores the token on the response
func (s *Store) Save(w http.ResponseWriter, token Token) {
	http.SetCookie(w, &http.Cookie{
		Name:     s.cookieName,
		Value:    url.QueryEscape(strings.TrimSpace(string(token))),
		Path:     "/",
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// Clear removes the token cookie
func (s *Store) Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     s.cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	})
}
