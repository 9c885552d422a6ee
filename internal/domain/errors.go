package domain

import "errors"

var (
	ErrMinisterNotFound = errors.New("minister not found")
	ErrPaymentNotFound  = errors.New("payment not found")
	ErrUserNotFound     = errors.New("user not found")

	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrUnsupportedReportType = errors.New("unsupported report type")
)

// ValidationError marks malformed or out-of-range input on a single field.
type ValidationError struct {
	Field string
	Msg   string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Msg
}

func NewValidationError(field, msg string) error {
	return &ValidationError{Field: field, Msg: msg}
}

func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
