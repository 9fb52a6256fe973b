// Package validator adapts go-playground/validator to Echo's Validator interface.
package validator

import (
	domainerrors "cryptoinsight/internal/domain/errors"

	"github.com/go-playground/validator/v10"
)

// requestValidator wraps a validator instance for Echo.
type requestValidator struct {
	validate *validator.Validate
}

// New creates the validator used for request structs.
func New() *requestValidator {
	return &requestValidator{
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Validate checks struct tags and maps failures to the domain validation error
// so the error middleware renders them with the right status.
func (v *requestValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}
