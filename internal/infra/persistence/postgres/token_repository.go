// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"time"

	"authd/internal/domain/entity"
	domainerrors "authd/internal/domain/errors"
	"authd/internal/domain/repository"
	"authd/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// tokenRepository implements the domain's TokenRepository interface using GORM.
type tokenRepository struct {
	db *gorm.DB
}

// NewTokenRepository is the constructor for tokenRepository.
func NewTokenRepository(db *gorm.DB) repository.TokenRepository {
	return &tokenRepository{db: db}
}

// Record inserts a registration for a freshly issued token.
func (repo *tokenRepository) Record(ctx context.Context, record *entity.TokenRecord) error {
	recordM := fromTokenRecordDomain(record)

	if err := repo.db.WithContext(ctx).Create(recordM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to record token")
	}

	record.ID = recordM.ID
	record.CreatedAt = recordM.CreatedAt

	return nil
}

// Revoke flags the token with the given jti as revoked. An unknown jti is a
// no-op success.
func (repo *tokenRepository) Revoke(ctx context.Context, jti string) error {
	err := repo.db.WithContext(ctx).
		Model(&model.TokenRecordModel{}).
		Where("jti = ?", jti).
		Update("revoked", true).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to revoke token")
	}

	return nil
}

// IsRevoked reports whether the given jti has been explicitly revoked.
// An unknown jti is not revoked.
func (repo *tokenRepository) IsRevoked(ctx context.Context, jti string) (bool, error) {
	var recordM model.TokenRecordModel
	err := repo.db.WithContext(ctx).
		Select("revoked").
		Where("jti = ?", jti).
		First(&recordM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}

		return false, errors.Wrap(err, "failed to check token revocation")
	}

	return recordM.Revoked, nil
}

// DeleteExpired removes registrations past their expiry.
func (repo *tokenRepository) DeleteExpired(ctx context.Context) (int64, error) {
	result := repo.db.WithContext(ctx).
		Where("expires_at < ?", time.Now()).
		Delete(&model.TokenRecordModel{})
	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete expired tokens")
	}

	return result.RowsAffected, nil
}

// fromTokenRecordDomain converts a domain TokenRecord to its GORM model.
func fromTokenRecordDomain(data *entity.TokenRecord) *model.TokenRecordModel {
	if data == nil {
		return nil
	}

	return &model.TokenRecordModel{
		ID:        data.ID,
		JTI:       data.JTI,
		Kind:      data.Kind.String(),
		UserID:    data.UserID,
		ExpiresAt: data.ExpiresAt,
		Revoked:   data.Revoked,
	}
}
