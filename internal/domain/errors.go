package domain

import "errors"

var (
	ErrFlightNotFound     = errors.New("flight not found")
	ErrBookingNotFound    = errors.New("booking not found")
	ErrNotEnoughSeats     = errors.New("not enough seats available")
	ErrDuplicateReference = errors.New("booking reference already exists")
)

// ValidationError marks bad client input so the HTTP layer can answer 400
// instead of treating the failure as a store error.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

func Validation(msg string) error {
	return &ValidationError{Msg: msg}
}

func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
