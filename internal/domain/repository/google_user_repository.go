// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"authd/internal/domain/entity"
)

// ErrGoogleUserNotFound is returned when no Google identity binding matches a lookup.
var ErrGoogleUserNotFound = errors.New("google user not found")

// GoogleUserRepository defines persistence operations for linked Google identities.
type GoogleUserRepository interface {
	// FindByGoogleID retrieves an identity binding by Google's subject identifier.
	FindByGoogleID(ctx context.Context, googleID string) (*entity.GoogleUser, error)

	// Create persists a new identity binding.
	Create(ctx context.Context, googleUser *entity.GoogleUser) error

	// DeleteByUserID removes the binding owned by the given user.
	// Missing rows are not an error; deletion is part of a user cascade.
	DeleteByUserID(ctx context.Context, userID int64) error
}
