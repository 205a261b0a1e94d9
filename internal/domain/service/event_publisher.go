package service

import (
	"context"
	"time"
)

// Auth event types published on the auth lifecycle topic.
const (
	EventUserCreated  = "user.created"
	EventUserDeleted  = "user.deleted"
	EventTokenRevoked = "token.revoked"
)

// AuthEvent describes an account lifecycle or token event emitted after the
// owning transaction commits.
type AuthEvent struct {
	Type       string    `json:"type"`
	UserUUID   string    `json:"user_uuid"`
	Username   string    `json:"username,omitempty"`
	RequestID  string    `json:"request_id,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing auth events.
type EventPublisher interface {
	PublishAuthEvent(ctx context.Context, event *AuthEvent) error
	Close() error
}
