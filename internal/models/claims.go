package models

// IdentityClaims are the profile claims extracted from Google's ID token
// after the authorization-code exchange. Sub is the stable subject id;
// the remaining fields are mutable profile data.
type IdentityClaims struct {
	Sub     string `json:"sub"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Picture string `json:"picture"`
}
