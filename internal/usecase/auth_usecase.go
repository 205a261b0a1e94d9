// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"authd/internal/domain/service"
)

// --- Input DTOs ---

// LoginInput defines the data required for a password login.
type LoginInput struct {
	Username string
	Password string
}

// GoogleLoginInput defines the data required for a Google sign-in.
type GoogleLoginInput struct {
	Code string
}

// --- Output DTOs ---

// TokenPairOutput returns the generated tokens after a successful login.
type TokenPairOutput struct {
	AccessToken  string
	RefreshToken string
}

// RefreshOutput returns the fresh access token minted from a refresh token.
type RefreshOutput struct {
	AccessToken string
}

// AuthUsecase defines the interface for authentication business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AuthUsecase interface {
	// Login authenticates a password credential and returns a new token pair.
	// A missing credential and a wrong password fail identically.
	Login(ctx context.Context, input *LoginInput) (*TokenPairOutput, error)

	// LoginWithGoogle exchanges an authorization code, reconciles the Google
	// identity with the user store (creating an account on first sign-in) and
	// returns a new token pair.
	LoginWithGoogle(ctx context.Context, input *GoogleLoginInput) (*TokenPairOutput, error)

	// Refresh mints a new access token from verified refresh token claims.
	Refresh(ctx context.Context, claims *service.TokenClaims) (*RefreshOutput, error)

	// RevokeToken marks the token behind the verified claims as revoked.
	RevokeToken(ctx context.Context, claims *service.TokenClaims) error

	// IsTokenRevoked reports whether the given jti was explicitly revoked.
	// Consulted by the auth middleware on every authenticated request.
	IsTokenRevoked(ctx context.Context, jti string) (bool, error)
}
