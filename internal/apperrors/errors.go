package apperrors

import (
	"errors"
)

var (
	// General category for every card number rejection.
	// Specific reasons (length, check digit) live in the card package and match this one with errors.Is
	ErrCardNumberInvalid = errors.New("card number is invalid")

	ErrNoDigits = errors.New("input contains no digits")
)
