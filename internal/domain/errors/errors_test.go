package errors

import (
	"testing"

	"authd/internal/errors"

	"github.com/stretchr/testify/assert"
)

func TestBaseError_IsMatchesSentinelAfterWithDetails(t *testing.T) {
	err := ErrTokenInvalid.WithDetails("token has been revoked")

	assert.True(t, errors.Is(err, ErrTokenInvalid))
	assert.False(t, errors.Is(err, ErrForbidden))
	assert.Equal(t, ErrTokenInvalid.ErrorCode(), err.ErrorCode())
	assert.Equal(t, "token has been revoked", err.Details())
}

func TestBaseError_IsMatchesSentinelThroughWrapping(t *testing.T) {
	wrapped := ErrValidationFailed.WithDetails("page must be an integer").WrapMessage("list users")

	assert.True(t, errors.Is(wrapped, ErrValidationFailed))
	assert.False(t, errors.Is(wrapped, ErrBadCredentials))

	var appErr AppError
	assert.True(t, errors.As(wrapped, &appErr))
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}

func TestBaseError_IsIgnoresForeignErrors(t *testing.T) {
	assert.False(t, errors.Is(errors.New("plain"), ErrTokenInvalid))
	assert.False(t, ErrTokenInvalid.Is(errors.New("plain")))
}

func TestDatabaseError_UnwrapExposesCause(t *testing.T) {
	cause := errors.New("connection reset")
	err := NewDatabaseExecuteError(cause, "query users")

	assert.True(t, errors.Is(err, cause))
	assert.Equal(t, "DATABASE_ERROR", err.ErrorCode())
}
