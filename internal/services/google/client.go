package google

import (
	"context"
	"fmt"

	"github.com/benvon/google-auth/internal/models"
	"github.com/lestrrat-go/jwx/v2/jwt"
	"golang.org/x/oauth2"
)

const (
	authURL  = "https://accounts.google.com/o/oauth2/v2/auth"
	tokenURL = "https://oauth2.googleapis.com/token"
)

// ClientConfig holds the OAuth2 client credentials for Google sign-in.
// Endpoint may be overridden for tests; it defaults to Google's endpoints.
type ClientConfig struct {
	ClientID     string
	ClientSecret string
	RedirectURI  string
	Endpoint     oauth2.Endpoint
}

// Client performs the consent-screen redirect construction and the
// authorization-code-for-token exchange against Google.
type Client struct {
	config *oauth2.Config
}

// NewClient creates a Google OAuth2 client.
func NewClient(cfg ClientConfig) *Client {
	endpoint := cfg.Endpoint
	if endpoint.AuthURL == "" {
		endpoint.AuthURL = authURL
	}
	if endpoint.TokenURL == "" {
		endpoint.TokenURL = tokenURL
	}

	return &Client{
		config: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURI,
			Scopes:       []string{"openid", "email", "profile"},
			Endpoint:     endpoint,
		},
	}
}

// AuthCodeURL returns the consent-screen URL. It is a pure function of the
// configuration: client_id, redirect_uri, response_type=code,
// scope="openid email profile", access_type=offline, prompt=consent.
func (c *Client) AuthCodeURL() string {
	return c.config.AuthCodeURL("",
		oauth2.AccessTypeOffline,
		oauth2.SetAuthURLParam("prompt", "consent"),
	)
}

// Exchange trades the authorization code for Google's token response and
// extracts the identity claims from the ID token it carries.
//
// The ID token's signature is decoded but NOT verified against Google's
// JWKS — the claims come straight off the wire over TLS from the token
// endpoint, but a verification step is still missing.
// TODO: verify the ID token against https://www.googleapis.com/oauth2/v3/certs
// before trusting its claims.
func (c *Client) Exchange(ctx context.Context, code string) (*models.IdentityClaims, error) {
	token, err := c.config.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to exchange authorization code: %w", err)
	}

	rawIDToken, ok := token.Extra("id_token").(string)
	if !ok || rawIDToken == "" {
		return nil, fmt.Errorf("token response missing id_token")
	}

	idToken, err := jwt.ParseInsecure([]byte(rawIDToken))
	if err != nil {
		return nil, fmt.Errorf("failed to decode id_token: %w", err)
	}

	claims := &models.IdentityClaims{
		Sub:     idToken.Subject(),
		Name:    stringClaim(idToken, "name"),
		Email:   stringClaim(idToken, "email"),
		Picture: stringClaim(idToken, "picture"),
	}
	if claims.Sub == "" {
		return nil, fmt.Errorf("id_token missing sub claim")
	}

	return claims, nil
}

func stringClaim(token jwt.Token, name string) string {
	v, ok := token.Get(name)
	if !ok {
		return ""
	}
	s, _ := v.(string)
	return s
}
