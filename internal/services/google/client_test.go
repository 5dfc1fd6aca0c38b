package google

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/lestrrat-go/jwx/v2/jwa"
	"github.com/lestrrat-go/jwx/v2/jwt"
	"golang.org/x/oauth2"
)

func testClient(tokenURL string) *Client {
	return NewClient(ClientConfig{
		ClientID:     "test-client-id",
		ClientSecret: "test-client-secret",
		RedirectURI:  "http://localhost:8080/auth/google/callback",
		Endpoint: oauth2.Endpoint{
			AuthURL:  "https://accounts.google.com/o/oauth2/v2/auth",
			TokenURL: tokenURL,
		},
	})
}

func TestAuthCodeURL(t *testing.T) {
	t.Parallel()

	client := testClient("https://oauth2.googleapis.com/token")
	rawURL := client.AuthCodeURL()

	u, err := url.Parse(rawURL)
	if err != nil {
		t.Fatalf("AuthCodeURL() produced unparseable URL: %v", err)
	}
	if got := u.Scheme + "://" + u.Host + u.Path; got != "https://accounts.google.com/o/oauth2/v2/auth" {
		t.Errorf("Expected Google consent endpoint, got %s", got)
	}

	q := u.Query()
	expected := map[string]string{
		"client_id":     "test-client-id",
		"redirect_uri":  "http://localhost:8080/auth/google/callback",
		"response_type": "code",
		"scope":         "openid email profile",
		"access_type":   "offline",
		"prompt":        "consent",
	}
	for key, want := range expected {
		if got := q.Get(key); got != want {
			t.Errorf("Expected %s=%q, got %q", key, want, got)
		}
	}
	if len(q) != len(expected) {
		t.Errorf("Expected exactly %d query parameters, got %d (%v)", len(expected), len(q), q)
	}
	if q.Get("client_secret") != "" {
		t.Error("Consent URL must not carry the client secret")
	}
}

func TestAuthCodeURL_Deterministic(t *testing.T) {
	t.Parallel()

	client := testClient("https://oauth2.googleapis.com/token")
	if client.AuthCodeURL() != client.AuthCodeURL() {
		t.Error("Expected AuthCodeURL() to be deterministic")
	}
}

// signTestIDToken builds a compact JWT carrying the given claims. The
// signature key is irrelevant: the client decodes without verifying.
func signTestIDToken(t *testing.T, claims map[string]any) string {
	t.Helper()

	builder := jwt.NewBuilder().
		Issuer("https://accounts.google.com").
		IssuedAt(time.Now()).
		Expiration(time.Now().Add(time.Hour))
	for k, v := range claims {
		builder = builder.Claim(k, v)
	}
	token, err := builder.Build()
	if err != nil {
		t.Fatalf("Failed to build test id_token: %v", err)
	}

	signed, err := jwt.Sign(token, jwt.WithKey(jwa.HS256, []byte("not-googles-key")))
	if err != nil {
		t.Fatalf("Failed to sign test id_token: %v", err)
	}
	return string(signed)
}

func tokenEndpoint(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv
}

func TestExchange(t *testing.T) {
	t.Parallel()

	idToken := signTestIDToken(t, map[string]any{
		"sub":     "abc123",
		"name":    "Test User",
		"email":   "test@example.com",
		"picture": "https://example.com/avatar.png",
	})

	var gotForm url.Values
	srv := tokenEndpoint(t, func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			t.Errorf("Failed to parse token request form: %v", err)
		}
		gotForm = r.PostForm
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"access_token": "at-123",
			"token_type":   "Bearer",
			"expires_in":   3600,
			"id_token":     idToken,
		})
	})

	client := testClient(srv.URL)
	claims, err := client.Exchange(context.Background(), "auth-code-1")
	if err != nil {
		t.Fatalf("Exchange() error = %v", err)
	}

	if claims.Sub != "abc123" {
		t.Errorf("Expected sub 'abc123', got '%s'", claims.Sub)
	}
	if claims.Name != "Test User" {
		t.Errorf("Expected name 'Test User', got '%s'", claims.Name)
	}
	if claims.Email != "test@example.com" {
		t.Errorf("Expected email 'test@example.com', got '%s'", claims.Email)
	}
	if claims.Picture != "https://example.com/avatar.png" {
		t.Errorf("Expected picture URL, got '%s'", claims.Picture)
	}

	if gotForm.Get("code") != "auth-code-1" {
		t.Errorf("Expected code 'auth-code-1' in token request, got '%s'", gotForm.Get("code"))
	}
	if gotForm.Get("grant_type") != "authorization_code" {
		t.Errorf("Expected grant_type 'authorization_code', got '%s'", gotForm.Get("grant_type"))
	}
}

func TestExchange_ProviderError(t *testing.T) {
	t.Parallel()

	srv := tokenEndpoint(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"error": "invalid_grant"})
	})

	client := testClient(srv.URL)
	if _, err := client.Exchange(context.Background(), "replayed-code"); err == nil {
		t.Fatal("Expected error for non-2xx token response")
	}
}

func TestExchange_MissingIDToken(t *testing.T) {
	t.Parallel()

	srv := tokenEndpoint(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"access_token": "at-123",
			"token_type":   "Bearer",
		})
	})

	client := testClient(srv.URL)
	_, err := client.Exchange(context.Background(), "auth-code-1")
	if err == nil {
		t.Fatal("Expected error when token response has no id_token")
	}
	if !strings.Contains(err.Error(), "id_token") {
		t.Errorf("Expected id_token error, got: %v", err)
	}
}

func TestExchange_MissingSubClaim(t *testing.T) {
	t.Parallel()

	idToken := signTestIDToken(t, map[string]any{
		"name":  "No Subject",
		"email": "nosub@example.com",
	})

	srv := tokenEndpoint(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"access_token": "at-123",
			"token_type":   "Bearer",
			"id_token":     idToken,
		})
	})

	client := testClient(srv.URL)
	if _, err := client.Exchange(context.Background(), "auth-code-1"); err == nil {
		t.Fatal("Expected error when id_token has no sub claim")
	}
}

func TestExchange_MalformedIDToken(t *testing.T) {
	t.Parallel()

	srv := tokenEndpoint(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"access_token": "at-123",
			"token_type":   "Bearer",
			"id_token":     "not.a.jwt",
		})
	})

	client := testClient(srv.URL)
	if _, err := client.Exchange(context.Background(), "auth-code-1"); err == nil {
		t.Fatal("Expected error for malformed id_token")
	}
}
