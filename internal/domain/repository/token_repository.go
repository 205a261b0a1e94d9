// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"authd/internal/domain/entity"
)

// TokenRepository is the revocation registry. Every token the service issues
// is recorded here before the response carrying it is written; the auth
// middleware consults IsRevoked on every authenticated request.
type TokenRepository interface {
	// Record inserts a registration for a freshly issued token (revoked=false).
	// JTIs are generated to be unique per token, so a duplicate insert is a
	// programming error surfaced as a database error, not recovered from.
	Record(ctx context.Context, record *entity.TokenRecord) error

	// Revoke flags the token with the given jti as revoked. An unknown jti is
	// a no-op success: the token is already effectively unusable.
	Revoke(ctx context.Context, jti string) error

	// IsRevoked reports whether the given jti has been explicitly revoked.
	// An unknown jti is NOT revoked: every legitimately issued token was
	// recorded at issuance, so unknown means never issued by this service,
	// which signature verification already rejects.
	IsRevoked(ctx context.Context, jti string) (bool, error)

	// DeleteExpired removes registrations past their expiry. Storage hygiene
	// only; expired tokens are already rejected by signature verification.
	DeleteExpired(ctx context.Context) (int64, error)
}
