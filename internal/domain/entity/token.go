// Package entity contains the core business objects of the project.
package entity

import "time"

// TokenKind distinguishes the two token classes issued by the service.
type TokenKind string

const (
	// TokenKindAccess is a short-lived token carrying authorization claims.
	TokenKindAccess TokenKind = "access"
	// TokenKindRefresh is a longer-lived token used only to obtain new access tokens.
	TokenKindRefresh TokenKind = "refresh"
)

// String returns the string representation of the TokenKind.
func (k TokenKind) String() string {
	return string(k)
}

// IsValid checks if the TokenKind is a valid value.
func (k TokenKind) IsValid() bool {
	switch k {
	case TokenKindAccess, TokenKindRefresh:
		return true
	default:
		return false
	}
}

// TokenRecord tracks one issued token for later revocation. Every token the
// service signs gets a record at issuance time (revoked=false); an explicit
// revocation flips the flag. Records past their expiry are garbage and only
// matter for storage hygiene.
type TokenRecord struct {
	ID        int64
	JTI       string    // The token's unique identifier; revocation key.
	Kind      TokenKind // access or refresh.
	UserID    int64     // Owning user, kept for audit only.
	ExpiresAt time.Time
	Revoked   bool
	CreatedAt time.Time
}
