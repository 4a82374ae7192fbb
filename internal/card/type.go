package card

import (
	"fmt"
)

// Type is the card network detected by prefix and length
type Type int

const (
	Unknown Type = iota
	Visa
	MasterCard
	Discover
	AmericanExpress
)

var typeNames = map[Type]string{
	Unknown:         "UNKNOWN",
	Visa:            "VISA",
	MasterCard:      "MASTERCARD",
	Discover:        "DISCOVER_CARD",
	AmericanExpress: "AMERICAN_EXPRESS",
}

func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("Type(%d)", int(t))
}

func (t Type) MarshalText() ([]byte, error) {
	name, ok := typeNames[t]
	if !ok {
		return nil, fmt.Errorf("unknown card type %d", int(t))
	}
	return []byte(name), nil
}

func (t *Type) UnmarshalText(text []byte) error {
	for typ, name := range typeNames {
		if name == string(text) {
			*t = typ
			return nil
		}
	}
	return fmt.Errorf("unknown card type %q", string(text))
}
