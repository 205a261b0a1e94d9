// Package model defines the GORM table mappings for the service.
package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. The integer primary key stays internal;
// the generated UUID is the only identifier exposed outside the service.
// It is an exported type so it can be used by the GORM Gen tool from other packages.
type UserModel struct {
	ID         int64     `gorm:"primaryKey;autoIncrement"`
	ExternalID uuid.UUID `gorm:"type:uuid;uniqueIndex;not null;default:gen_random_uuid()"`
	Username   string    `gorm:"type:varchar(100);unique;not null"`
	Active     bool      `gorm:"not null;default:true"`
	Role       string    `gorm:"type:varchar(20);not null;default:'user'"`
	Resources  []string  `gorm:"serializer:json;type:jsonb"`
	CreatedAt  time.Time
	UpdatedAt  time.Time

	InternalUser *InternalUserModel `gorm:"foreignKey:UserID"`
	GoogleUser   *GoogleUserModel   `gorm:"foreignKey:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// InternalUserModel mirrors the 'internal_users' table holding the password
// credential of an account. Login and email are unique across the table.
type InternalUserModel struct {
	ID           int64  `gorm:"primaryKey;autoIncrement"`
	Login        string `gorm:"type:varchar(100);unique;not null"`
	Email        string `gorm:"type:varchar(255);unique;not null"`
	PasswordHash string `gorm:"type:varchar(255);not null"`
	UserID       int64  `gorm:"uniqueIndex;not null"`
	CreatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (InternalUserModel) TableName() string {
	return "internal_users"
}

// GoogleUserModel mirrors the 'google_users' table holding the linked Google
// identity of an account. GoogleID is the provider's stable subject.
type GoogleUserModel struct {
	ID         int64  `gorm:"primaryKey;autoIncrement"`
	GoogleID   string `gorm:"type:varchar(64);unique;not null"`
	Email      string `gorm:"type:varchar(255);not null"`
	Name       string `gorm:"type:varchar(255)"`
	GivenName  string `gorm:"type:varchar(100)"`
	FamilyName string `gorm:"type:varchar(100)"`
	Picture    string `gorm:"type:text"`
	Locale     string `gorm:"type:varchar(16)"`
	UserID     int64  `gorm:"uniqueIndex;not null"`
	CreatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (GoogleUserModel) TableName() string {
	return "google_users"
}
