package handlers

import (
	"context"
	"net/http"

	"github.com/benvon/google-auth/internal/database"
	"github.com/benvon/google-auth/internal/models"
	"github.com/benvon/google-auth/internal/request"
	"github.com/benvon/google-auth/internal/session"
	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// IdentityProvider is the slice of the Google client the auth flow needs.
type IdentityProvider interface {
	AuthCodeURL() string
	Exchange(ctx context.Context, code string) (*models.IdentityClaims, error)
}

// AuthHandler orchestrates the sign-in flow: consent redirect, callback
// exchange, current-user lookup, and logout.
type AuthHandler struct {
	provider    IdentityProvider
	users       database.UserRepositoryInterface
	codec       *session.Codec
	transport   *session.Transport
	frontendURL string
	logger      *zap.Logger
}

// NewAuthHandler creates the auth flow handler.
func NewAuthHandler(
	provider IdentityProvider,
	users database.UserRepositoryInterface,
	codec *session.Codec,
	transport *session.Transport,
	frontendURL string,
	logger *zap.Logger,
) *AuthHandler {
	return &AuthHandler{
		provider:    provider,
		users:       users,
		codec:       codec,
		transport:   transport,
		frontendURL: frontendURL,
		logger:      logger,
	}
}

// RegisterRoutes registers the auth routes on the given router. The /me
// route goes through the session middleware; everything else is public.
func (h *AuthHandler) RegisterRoutes(r *mux.Router, sessionMW func(http.Handler) http.Handler) {
	r.HandleFunc("/auth/google", h.Login).Methods("GET")
	r.HandleFunc("/auth/google/callback", h.Callback).Methods("GET")
	r.Handle("/me", sessionMW(http.HandlerFunc(h.Me))).Methods("GET")
	r.HandleFunc("/logout", h.Logout).Methods("GET")
}

// Login redirects the browser to Google's consent screen.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, h.provider.AuthCodeURL(), http.StatusFound)
}

// Callback receives the authorization code from Google, exchanges it for
// identity claims, upserts the user, and issues the session cookie. All
// exchange and persistence failures collapse to a generic 500 so provider
// details never leak to the client.
func (h *AuthHandler) Callback(w http.ResponseWriter, r *http.Request) {
	code := r.URL.Query().Get("code")
	if code == "" {
		http.Error(w, "No code provided", http.StatusBadRequest)
		return
	}

	ctx := r.Context()

	claims, err := h.provider.Exchange(ctx, code)
	if err != nil {
		h.logger.Error("oauth_exchange_failed", zap.Error(err))
		http.Error(w, "Authentication Failed", http.StatusInternalServerError)
		return
	}

	user, err := h.users.Upsert(ctx, claims)
	if err != nil {
		h.logger.Error("user_upsert_failed",
			zap.String("google_id", claims.Sub),
			zap.Error(err),
		)
		http.Error(w, "Authentication Failed", http.StatusInternalServerError)
		return
	}

	token, err := h.codec.Issue(user.ID)
	if err != nil {
		h.logger.Error("session_issue_failed",
			zap.String("user_id", user.ID.String()),
			zap.Error(err),
		)
		http.Error(w, "Authentication Failed", http.StatusInternalServerError)
		return
	}

	h.transport.Attach(w, token)

	h.logger.Info("user_logged_in",
		zap.String("user_id", user.ID.String()),
		zap.String("google_id", user.GoogleID),
	)

	http.Redirect(w, r, h.frontendURL, http.StatusFound)
}

// Me returns the authenticated user. The session middleware has already
// resolved the user into the request context.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	user, ok := request.UserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "No token provided")
		return
	}

	writeJSON(w, http.StatusOK, user)
}

// Logout clears the session cookie. It succeeds unconditionally, whether
// or not a session existed.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.transport.Clear(w)
	writeJSON(w, http.StatusOK, map[string]string{"message": "Logged out successfully"})
}
