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

// googleUserRepository implements the domain's GoogleUserRepository interface using GORM.
type googleUserRepository struct {
	db *gorm.DB
}

// NewGoogleUserRepository is the constructor for googleUserRepository.
func NewGoogleUserRepository(db *gorm.DB) repository.GoogleUserRepository {
	return &googleUserRepository{db: db}
}

// FindByGoogleID retrieves an identity binding by Google's subject identifier.
func (repo *googleUserRepository) FindByGoogleID(ctx context.Context, googleID string) (*entity.GoogleUser, error) {
	var googleM model.GoogleUserModel
	err := repo.db.WithContext(ctx).
		Where("google_id = ?", googleID).
		First(&googleM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrGoogleUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find google user by google id")
	}

	return toGoogleUserDomain(&googleM), nil
}

// Create persists a new identity binding.
func (repo *googleUserRepository) Create(ctx context.Context, googleUser *entity.GoogleUser) error {
	googleM := fromGoogleUserDomain(googleUser)

	if err := repo.db.WithContext(ctx).Create(googleM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create google user")
	}

	googleUser.ID = googleM.ID
	googleUser.CreatedAt = googleM.CreatedAt

	return nil
}

// DeleteByUserID removes the binding owned by the given user.
func (repo *googleUserRepository) DeleteByUserID(ctx context.Context, userID int64) error {
	err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&model.GoogleUserModel{}).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete google user")
	}

	return nil
}

// toGoogleUserDomain converts a GORM GoogleUserModel to a domain entity.
func toGoogleUserDomain(data *model.GoogleUserModel) *entity.GoogleUser {
	if data == nil {
		return nil
	}

	return &entity.GoogleUser{
		ID:         data.ID,
		GoogleID:   data.GoogleID,
		Email:      data.Email,
		Name:       data.Name,
		GivenName:  data.GivenName,
		FamilyName: data.FamilyName,
		Picture:    data.Picture,
		Locale:     data.Locale,
		UserID:     data.UserID,
		CreatedAt:  data.CreatedAt,
	}
}

// fromGoogleUserDomain converts a domain entity to a GORM GoogleUserModel.
func fromGoogleUserDomain(data *entity.GoogleUser) *model.GoogleUserModel {
	if data == nil {
		return nil
	}

	return &model.GoogleUserModel{
		ID:         data.ID,
		GoogleID:   data.GoogleID,
		Email:      data.Email,
		Name:       data.Name,
		GivenName:  data.GivenName,
		FamilyName: data.FamilyName,
		Picture:    data.Picture,
		Locale:     data.Locale,
		UserID:     data.UserID,
		CreatedAt:  data.CreatedAt,
	}
}
