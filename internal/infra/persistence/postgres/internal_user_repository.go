// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"authd/internal/domain/entity"
	domainerrors "authd/internal/domain/errors"
	"authd/internal/domain/repository"
	"authd/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// internalUserRepository implements the domain's InternalUserRepository interface using GORM.
type internalUserRepository struct {
	db *gorm.DB
}

// NewInternalUserRepository is the constructor for internalUserRepository.
func NewInternalUserRepository(db *gorm.DB) repository.InternalUserRepository {
	return &internalUserRepository{db: db}
}

// FindByLogin retrieves a credential by its unique login.
func (repo *internalUserRepository) FindByLogin(ctx context.Context, login string) (*entity.InternalUser, error) {
	return repo.findOne(ctx, "login = ?", login, "failed to find internal user by login")
}

// FindByEmail retrieves a credential by its unique email.
func (repo *internalUserRepository) FindByEmail(ctx context.Context, email string) (*entity.InternalUser, error) {
	return repo.findOne(ctx, "email = ?", email, "failed to find internal user by email")
}

// FindByUserID retrieves the credential owned by the given user, if any.
func (repo *internalUserRepository) FindByUserID(ctx context.Context, userID int64) (*entity.InternalUser, error) {
	return repo.findOne(ctx, "user_id = ?", userID, "failed to find internal user by user id")
}

func (repo *internalUserRepository) findOne(ctx context.Context, cond string, value any, wrapMsg string) (*entity.InternalUser, error) {
	var internalM model.InternalUserModel
	err := repo.db.WithContext(ctx).
		Where(cond, value).
		First(&internalM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrInternalUserNotFound
		}

		return nil, errors.Wrap(err, wrapMsg)
	}

	return toInternalUserDomain(&internalM), nil
}

// Create persists a new credential binding.
func (repo *internalUserRepository) Create(ctx context.Context, internalUser *entity.InternalUser) error {
	internalM := fromInternalUserDomain(internalUser)

	if err := repo.db.WithContext(ctx).Create(internalM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return translateCredentialConflict(err, "create internal user")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create internal user")
	}

	internalUser.ID = internalM.ID
	internalUser.CreatedAt = internalM.CreatedAt

	return nil
}

// Update modifies an existing credential binding.
func (repo *internalUserRepository) Update(ctx context.Context, internalUser *entity.InternalUser) error {
	internalM := fromInternalUserDomain(internalUser)

	if err := repo.db.WithContext(ctx).Save(internalM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return translateCredentialConflict(err, "update internal user")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update internal user")
	}

	return nil
}

// DeleteByUserID removes the credential owned by the given user.
func (repo *internalUserRepository) DeleteByUserID(ctx context.Context, userID int64) error {
	err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&model.InternalUserModel{}).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete internal user")
	}

	return nil
}

// translateCredentialConflict maps a unique violation on the credential table
// to the taken-identity domain error matching the violated column.
func translateCredentialConflict(err error, op string) error {
	if violatedConstraintContains(err, "email") {
		return domainerrors.ErrEmailTaken.WrapMessage(op)
	}

	return domainerrors.ErrUsernameTaken.WrapMessage(op)
}

// toInternalUserDomain converts a GORM InternalUserModel to a domain entity.
func toInternalUserDomain(data *model.InternalUserModel) *entity.InternalUser {
	if data == nil {
		return nil
	}

	return &entity.InternalUser{
		ID:           data.ID,
		Login:        data.Login,
		Email:        data.Email,
		PasswordHash: data.PasswordHash,
		UserID:       data.UserID,
		CreatedAt:    data.CreatedAt,
	}
}

// fromInternalUserDomain converts a domain entity to a GORM InternalUserModel.
func fromInternalUserDomain(data *entity.InternalUser) *model.InternalUserModel {
	if data == nil {
		return nil
	}

	return &model.InternalUserModel{
		ID:           data.ID,
		Login:        data.Login,
		Email:        data.Email,
		PasswordHash: data.PasswordHash,
		UserID:       data.UserID,
		CreatedAt:    data.CreatedAt,
	}
}
