package card

import (
	"strings"
)

const (
	maskedPrefix = 6
	maskedSuffix = 4
)

// Masked keeps the first 6 and the last 4 digits, the rest is replaced with '*'.
// Use it whenever the number goes to logs or responses.
func (n *Number) Masked() string {
	d := n.digits
	return d[:maskedPrefix] + strings.Repeat("*", len(d)-maskedPrefix-maskedSuffix) + d[len(d)-maskedSuffix:]
}

// String returns the masked number so it's never printed in full by accident
func (n *Number) String() string {
	return n.Masked()
}
