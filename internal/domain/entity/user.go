// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the root identity record. It carries only the attributes shared by
// every account regardless of how it authenticates.
type User struct {
	ID         int64     // Internal storage key, never exposed to clients.
	ExternalID uuid.UUID // Stable public identifier; unique and immutable once set.
	Username   string    // Unique display/login name.
	Active     bool      // Inactive accounts keep their rows but cannot act.
	Role       Role      // Coarse permission class carried in token claims.
	Resources  []string  // Capability strings for tech accounts; empty otherwise.
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// InternalUser binds a password credential to a User. A User without one
// (e.g. a Google-only account) cannot use the password login flow.
type InternalUser struct {
	ID           int64
	Login        string // Mirrors the owning User's username; unique.
	Email        string // Unique contact address for the credential.
	PasswordHash string // Self-contained bcrypt hash.
	UserID       int64  // One-to-one with User.
	CreatedAt    time.Time
}

// GoogleUser binds an external Google identity to a User. It is written once
// at first sign-up and treated as read-only on subsequent sign-ins.
type GoogleUser struct {
	ID         int64
	GoogleID   string // Google's stable subject identifier; unique.
	Email      string
	Name       string
	GivenName  string
	FamilyName string
	Picture    string
	Locale     string
	UserID     int64 // One-to-one with User.
	CreatedAt  time.Time
}
