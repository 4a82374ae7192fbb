// Package card validates credit card numbers: it normalizes the input,
// checks length bounds and the Luhn check digit, and detects the card network.
package card

import (
	"strings"
	"sync"
)

const (
	MinLength = 12
	MaxLength = 19
)

// Number is a normalized card number: digits only, MinLength..MaxLength long.
// It is immutable and safe for concurrent use.
type Number struct {
	digits string

	// Classification is computed once and reused
	once sync.Once
	typ  Type
	err  error
}

// Normalize drops every character that is not an ASCII digit
func Normalize(raw string) string {
	return strings.Map(func(r rune) rune {
		if r < '0' || r > '9' {
			return -1
		}
		return r
	}, raw)
}

// New normalizes raw and returns ErrInvalidLength if the digit count is out of [MinLength, MaxLength].
// Separators like spaces or dashes are allowed: "4111-1111-1111-1111".
func New(raw string) (*Number, error) {
	digits := Normalize(raw)
	if len(digits) < MinLength || len(digits) > MaxLength {
		return nil, ErrInvalidLength
	}

	return &Number{digits: digits}, nil
}

// Validate constructs the number and classifies it at once
func Validate(raw string) (*Number, Type, error) {
	n, err := New(raw)
	if err != nil {
		return nil, Unknown, err
	}

	typ, err := n.Classify()
	if err != nil {
		return nil, Unknown, err
	}

	return n, typ, nil
}

// Digits returns the normalized number
func (n *Number) Digits() string {
	return n.digits
}

func (n *Number) Len() int {
	return len(n.digits)
}

// Classify checks the Luhn check digit and detects the card network.
//
// Rules are applied in order, the first matched prefix wins:
//   - VISA: starts with "4", 13 or 16 digits
//   - DISCOVER_CARD: starts with "6011" or "65", 16 digits
//   - MASTERCARD: starts with "50".."55", 16 digits
//   - AMERICAN_EXPRESS: starts with "34" or "37", 15 digits
//   - UNKNOWN: anything else
//
// A matched prefix with a wrong length gives ErrInvalidLength.
// A wrong check digit gives ErrBadCheckDigit regardless of the network.
func (n *Number) Classify() (Type, error) {
	n.once.Do(func() {
		n.typ, n.err = classify(n.digits)
	})
	return n.typ, n.err
}

func classify(digits string) (Type, error) {
	last := int(digits[len(digits)-1] - '0')
	if last != CheckDigit(digits) {
		return Unknown, ErrBadCheckDigit
	}

	length := len(digits)
	twoDigits := int(digits[0]-'0')*10 + int(digits[1]-'0')

	withLength := func(typ Type, lengths ...int) (Type, error) {
		for _, l := range lengths {
			if l == length {
				return typ, nil
			}
		}
		return Unknown, ErrInvalidLength
	}

	switch {
	case digits[0] == '4':
		return withLength(Visa, 13, 16)
	case strings.HasPrefix(digits, "6011") || twoDigits == 65:
		return withLength(Discover, 16)
	case twoDigits >= 50 && twoDigits <= 55:
		return withLength(MasterCard, 16)
	case twoDigits == 34 || twoDigits == 37:
		return withLength(AmericanExpress, 15)
	default:
		return Unknown, nil
	}
}
