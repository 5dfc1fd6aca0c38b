package session

import (
	"net/http"
	"time"
)

// CookieName is the cookie carrying the signed session token.
const CookieName = "token"

// Transport binds session tokens to an HTTP cookie. Secure is only set in
// production so local development over plain HTTP keeps working. SameSite
// is Lax everywhere: Strict would drop the cookie on the top-level
// navigation back from Google's consent screen.
type Transport struct {
	secure bool
	maxAge time.Duration
}

// NewTransport creates a cookie transport. secure should be true in
// production deployments served over HTTPS.
func NewTransport(secure bool, maxAge time.Duration) *Transport {
	if maxAge <= 0 {
		maxAge = DefaultTTL
	}
	return &Transport{secure: secure, maxAge: maxAge}
}

// Attach sets the session cookie on the response.
func (t *Transport) Attach(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   t.secure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(t.maxAge.Seconds()),
	})
}

// Clear instructs the client to delete the session cookie. The attributes
// mirror Attach so browsers accept the deletion.
func (t *Transport) Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   t.secure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
		Expires:  time.Unix(0, 0).UTC(),
	})
}

// Read extracts the raw session token from the request cookie, if present.
func (t *Transport) Read(r *http.Request) (string, bool) {
	cookie, err := r.Cookie(CookieName)
	if err != nil || cookie.Value == "" {
		return "", false
	}
	return cookie.Value, true
}
