package model

import "time"

// TokenRecordModel mirrors the 'token_blacklist' table. Every issued token is
// recorded here at signing time; the revoked flag is flipped on revocation.
type TokenRecordModel struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	JTI       string    `gorm:"column:jti;type:varchar(36);uniqueIndex;not null"`
	Kind      string    `gorm:"type:varchar(10);not null"`
	UserID    int64     `gorm:"index;not null"`
	ExpiresAt time.Time `gorm:"index;not null"`
	Revoked   bool      `gorm:"not null;default:false"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (TokenRecordModel) TableName() string {
	return "token_blacklist"
}
