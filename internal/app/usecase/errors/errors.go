package usecase

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInvalidSignature   = errors.New("token signature is not valid")
	ErrTokenExpired       = errors.New("token is expired")
	ErrMissingSubject     = errors.New("token doesn't contain a subject")
	ErrUnknownSubject     = errors.New("token subject doesn't exist in user directory")

	ErrEmptyLineItems  = errors.New("order doesn't contain line items")
	ErrInvalidQuantity = errors.New("line item quantity must be greater than zero")
	ErrInvalidItemID   = errors.New("line item id contains reserved characters")
	ErrUnknownStatus   = errors.New("unknown order status")
)

// IsAuthError groups every failure token validation can report, so callers
// gating a read can map any of them to a single generic response.
func IsAuthError(err error) bool {
	return errors.Is(err, ErrInvalidCredentials) ||
		errors.Is(err, ErrInvalidSignature) ||
		errors.Is(err, ErrTokenExpired) ||
		errors.Is(err, ErrMissingSubject) ||
		errors.Is(err, ErrUnknownSubject)
}

func IsValidationError(err error) bool {
	return errors.Is(err, ErrEmptyLineItems) ||
		errors.Is(err, ErrInvalidQuantity) ||
		errors.Is(err, ErrInvalidItemID) ||
		errors.Is(err, ErrUnknownStatus)
}
