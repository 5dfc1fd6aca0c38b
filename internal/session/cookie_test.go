package session

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func recordedCookie(t *testing.T, w *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	cookies := w.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("Expected exactly 1 cookie, got %d", len(cookies))
	}
	return cookies[0]
}

func TestTransport_Attach(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		secure     bool
		wantSecure bool
	}{
		{"development", false, false},
		{"production", true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			transport := NewTransport(tt.secure, 24*time.Hour)
			w := httptest.NewRecorder()
			transport.Attach(w, "signed-token-value")

			c := recordedCookie(t, w)
			if c.Name != CookieName {
				t.Errorf("Expected cookie name %q, got %q", CookieName, c.Name)
			}
			if c.Value != "signed-token-value" {
				t.Errorf("Expected cookie value to carry the token, got %q", c.Value)
			}
			if !c.HttpOnly {
				t.Error("Expected HttpOnly cookie")
			}
			if c.Secure != tt.wantSecure {
				t.Errorf("Expected Secure=%v, got %v", tt.wantSecure, c.Secure)
			}
			if c.SameSite != http.SameSiteLaxMode {
				t.Errorf("Expected SameSite=Lax, got %v", c.SameSite)
			}
			if c.MaxAge != 86400 {
				t.Errorf("Expected MaxAge 86400, got %d", c.MaxAge)
			}
			if c.Path != "/" {
				t.Errorf("Expected Path '/', got %q", c.Path)
			}
		})
	}
}

func TestTransport_Clear(t *testing.T) {
	t.Parallel()

	transport := NewTransport(true, 24*time.Hour)
	w := httptest.NewRecorder()
	transport.Clear(w)

	c := recordedCookie(t, w)
	if c.Value != "" {
		t.Errorf("Expected empty value, got %q", c.Value)
	}
	if c.MaxAge != -1 {
		t.Errorf("Expected MaxAge -1, got %d", c.MaxAge)
	}
	// Deletion must mirror the attributes used when setting.
	if !c.HttpOnly || !c.Secure || c.SameSite != http.SameSiteLaxMode || c.Path != "/" {
		t.Errorf("Clear() attributes do not mirror Attach(): %+v", c)
	}
}

func TestTransport_Read(t *testing.T) {
	t.Parallel()

	transport := NewTransport(false, 24*time.Hour)

	r := httptest.NewRequest("GET", "/me", nil)
	if _, ok := transport.Read(r); ok {
		t.Error("Expected Read() to report absent cookie")
	}

	r = httptest.NewRequest("GET", "/me", nil)
	r.AddCookie(&http.Cookie{Name: CookieName, Value: "tok-123"})
	got, ok := transport.Read(r)
	if !ok {
		t.Fatal("Expected Read() to find the cookie")
	}
	if got != "tok-123" {
		t.Errorf("Read() = %q, want 'tok-123'", got)
	}

	r = httptest.NewRequest("GET", "/me", nil)
	r.AddCookie(&http.Cookie{Name: CookieName, Value: ""})
	if _, ok := transport.Read(r); ok {
		t.Error("Expected Read() to treat empty cookie as absent")
	}
}
