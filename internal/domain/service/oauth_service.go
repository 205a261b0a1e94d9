package service

import "context"

// GoogleProfile is the profile DTO returned by the OAuth collaborator after a
// successful authorization-code exchange. The provider protocol itself is a
// black box behind OAuthService.
type GoogleProfile struct {
	GoogleID   string // Google's stable subject identifier.
	Email      string
	Name       string // Display name; becomes the username on sign-up.
	GivenName  string
	FamilyName string
	Picture    string
	Locale     string
}

// OAuthService defines the interface for the external OAuth code exchange.
type OAuthService interface {
	// ExchangeCode hands the authorization code to the provider and returns
	// the authenticated user's profile. Provider rejection propagates as an
	// authentication failure to the caller.
	ExchangeCode(ctx context.Context, code string) (*GoogleProfile, error)
}
