// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"
	"time"

	"authd/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// UpsertUserInput carries the PUT payload for a user. Nil fields are left
// untouched on update; on create, missing fields fall back to defaults.
type UpsertUserInput struct {
	Username  *string
	Email     *string
	Password  *string
	Role      *entity.Role
	Active    *bool
	Resources *[]string
}

// ListUsersInput selects one page of the user listing.
type ListUsersInput struct {
	Page    int
	PerPage int
}

// --- Output DTOs ---

// UserOutput is the full management view of a user, assembled from the user
// row and its optional internal credential.
type UserOutput struct {
	UUID      uuid.UUID
	Username  string
	Email     string // Empty when the user has no password credential.
	Active    bool
	Role      entity.Role
	Resources []string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ListUsersOutput is one page of users plus the overall total.
type ListUsersOutput struct {
	Users   []*UserOutput
	Total   int64
	Page    int
	PerPage int
}

// PublicUserInfo is the minimal identity view any authenticated caller may see.
type PublicUserInfo struct {
	UUID     uuid.UUID
	Username string
}

// UserUsecase defines the interface for user management operations.
// Target users are always addressed by their public identifier.
type UserUsecase interface {
	// GetByUUID returns the management view of one user.
	GetByUUID(ctx context.Context, externalID uuid.UUID) (*UserOutput, error)

	// Upsert applies PUT semantics: an unknown identifier creates a user with
	// exactly that identifier, a known one is partially updated. Username and
	// email uniqueness conflicts surface as conflict errors.
	Upsert(ctx context.Context, externalID uuid.UUID, input *UpsertUserInput) (*UserOutput, error)

	// Delete removes a user and its credential bindings in one transaction.
	Delete(ctx context.Context, externalID uuid.UUID) error

	// List returns one page of users.
	List(ctx context.Context, input *ListUsersInput) (*ListUsersOutput, error)

	// ChangePassword rehashes the password credential of the given user.
	// Fails with not-found when the user or its credential is absent.
	ChangePassword(ctx context.Context, externalID uuid.UUID, newPassword string) error

	// GetPublicInfo resolves public identity pairs for the given identifiers.
	// Fails with not-found unless every identifier resolves.
	GetPublicInfo(ctx context.Context, externalIDs []uuid.UUID) ([]*PublicUserInfo, error)
}
