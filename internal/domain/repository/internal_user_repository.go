// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"authd/internal/domain/entity"
)

// ErrInternalUserNotFound is returned when no password credential exists for a lookup.
var ErrInternalUserNotFound = errors.New("internal user not found")

// InternalUserRepository defines persistence operations for password credentials.
type InternalUserRepository interface {
	// FindByLogin retrieves a credential by its unique login.
	FindByLogin(ctx context.Context, login string) (*entity.InternalUser, error)

	// FindByEmail retrieves a credential by its unique email.
	FindByEmail(ctx context.Context, email string) (*entity.InternalUser, error)

	// FindByUserID retrieves the credential owned by the given user, if any.
	FindByUserID(ctx context.Context, userID int64) (*entity.InternalUser, error)

	// Create persists a new credential binding.
	Create(ctx context.Context, internalUser *entity.InternalUser) error

	// Update modifies an existing credential binding.
	Update(ctx context.Context, internalUser *entity.InternalUser) error

	// DeleteByUserID removes the credential owned by the given user.
	// Missing rows are not an error; deletion is part of a user cascade.
	DeleteByUserID(ctx context.Context, userID int64) error
}
