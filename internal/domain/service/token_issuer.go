package service

import (
	"time"

	"authd/internal/domain/entity"

	"github.com/google/uuid"
)

// TokenClaims holds the verified claims extracted from a signed token.
type TokenClaims struct {
	UserID    int64            // Internal storage key (token subject).
	UUID      uuid.UUID        // The user's public identifier.
	Role      entity.Role      // Only present on access tokens.
	Resources []string         // Only present on access tokens.
	Kind      entity.TokenKind // access or refresh.
	JTI       string           // Revocation key.
	ExpiresAt time.Time
}

// IssuedToken is the result of one token creation: the signed wire string plus
// the registration data the revocation registry needs.
type IssuedToken struct {
	Value     string // The signed, encoded token.
	JTI       string
	Kind      entity.TokenKind
	UserID    int64
	ExpiresAt time.Time
}

// Record converts the issuance into the registry row persisted alongside it.
func (t *IssuedToken) Record() *entity.TokenRecord {
	return &entity.TokenRecord{
		JTI:       t.JTI,
		Kind:      t.Kind,
		UserID:    t.UserID,
		ExpiresAt: t.ExpiresAt,
	}
}

// TokenIssuer defines the interface for creating and verifying signed tokens.
// Lifetimes are role-dependent: tech accounts get their own configured access
// and refresh durations, distinct from the user/admin ones.
type TokenIssuer interface {
	// IssueAccessToken creates a signed access token embedding the user's
	// role, public identifier and resource capabilities.
	IssueAccessToken(user *entity.User) (*IssuedToken, error)

	// IssueRefreshToken creates a signed refresh token carrying identity only.
	IssueRefreshToken(user *entity.User) (*IssuedToken, error)

	// Parse verifies the signature and expiry of a token string and returns
	// its claims. It does not consult the revocation registry.
	Parse(tokenString string) (*TokenClaims, error)
}
