package card

import (
	"github.com/nkiryanov/cardcheck/internal/apperrors"
)

// ErrorKind tells why a card number was rejected
type ErrorKind int

const (
	// Digit count outside [12, 19] or outside the length required by the matched network
	KindInvalidLength ErrorKind = iota + 1

	// Last digit does not match the Luhn check digit
	KindBadCheckDigit
)

func (k ErrorKind) String() string {
	switch k {
	case KindInvalidLength:
		return "invalid_length"
	case KindBadCheckDigit:
		return "bad_check_digit"
	default:
		return "unknown"
	}
}

// ValidationError is returned by New and Classify.
// Every ValidationError is also apperrors.ErrCardNumberInvalid.
type ValidationError struct {
	Kind ErrorKind
}

var (
	ErrInvalidLength = &ValidationError{Kind: KindInvalidLength}
	ErrBadCheckDigit = &ValidationError{Kind: KindBadCheckDigit}
)

func (e *ValidationError) Error() string {
	switch e.Kind {
	case KindInvalidLength:
		return "card number has invalid length"
	case KindBadCheckDigit:
		return "card number has bad check digit"
	default:
		return apperrors.ErrCardNumberInvalid.Error()
	}
}

// Is makes errors.Is match the general invalid card category and any ValidationError of the same kind
func (e *ValidationError) Is(target error) bool {
	if target == apperrors.ErrCardNumberInvalid {
		return true
	}

	t, ok := target.(*ValidationError)
	return ok && t.Kind == e.Kind
}
