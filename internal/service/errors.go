package service

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

var (
	ErrUnauthenticated = errors.New("not authenticated")
	ErrIDRequired      = errors.New("id is required")
	ErrNotFound        = errors.New("not found")
	ErrForbidden       = errors.New("access denied")
	ErrInvalidInput    = errors.New("invalid input")
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// invalid wraps a validation failure so callers can match ErrInvalidInput.
func invalid(err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return fmt.Errorf("%w: %s failed on %s", ErrInvalidInput, fe.Namespace(), fe.Tag())
	}
	return fmt.Errorf("%w: %v", ErrInvalidInput, err)
}
