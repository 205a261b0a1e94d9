// Package validator adapts go-playground/validator to Echo's Validator interface.
package validator

import (
	domainerrors "authd/internal/domain/errors"

	"github.com/go-playground/validator/v10"
)

// echoValidator wraps a validator instance so Echo can call it on bound payloads.
type echoValidator struct {
	validate *validator.Validate
}

// New creates a validator for Echo using struct tag rules.
func New() *echoValidator {
	return &echoValidator{validate: validator.New()}
}

// Validate runs struct tag validation and maps failures onto the shared
// validation error so the error handler renders them consistently.
func (v *echoValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}
