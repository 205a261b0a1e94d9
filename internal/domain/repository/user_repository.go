// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"authd/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for user persistence.
// The application layer will depend on this interface, not the concrete implementation.
type UserRepository interface {
	// FindByID retrieves a single user by its internal storage key.
	FindByID(ctx context.Context, id int64) (*entity.User, error)

	// FindByExternalID retrieves a single user by its public identifier.
	FindByExternalID(ctx context.Context, externalID uuid.UUID) (*entity.User, error)

	// FindByUsername retrieves a single user by its unique username.
	FindByUsername(ctx context.Context, username string) (*entity.User, error)

	// FindByExternalIDs retrieves the users matching the given public identifiers.
	// Unknown identifiers are silently absent from the result.
	FindByExternalIDs(ctx context.Context, externalIDs []uuid.UUID) ([]*entity.User, error)

	// List returns one page of users ordered by internal id, plus the total count.
	List(ctx context.Context, page, perPage int) ([]*entity.User, int64, error)

	// Create persists a new user entity and fills in its generated fields.
	Create(ctx context.Context, user *entity.User) error

	// Update modifies an existing user entity in the storage.
	Update(ctx context.Context, user *entity.User) error

	// Delete removes a user row. Dependent credential rows are deleted
	// explicitly by the caller within the same transaction.
	Delete(ctx context.Context, id int64) error
}
