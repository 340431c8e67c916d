// Package validator plugs go-playground/validator into echo's Validator hook.
package validator

import (
	domainerrors "courier/internal/domain/errors"

	playground "github.com/go-playground/validator/v10"
)

// EchoValidator adapts a playground validator to echo.Validator.
type EchoValidator struct {
	validate *playground.Validate
}

// New creates the validator used for request payload structs.
func New() *EchoValidator {
	return &EchoValidator{
		validate: playground.New(playground.WithRequiredStructEnabled()),
	}
}

// Validate implements echo.Validator. Violations surface as the domain's
// validation error so the error middleware renders them uniformly.
func (v *EchoValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}
