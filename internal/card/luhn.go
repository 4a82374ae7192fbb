package card

// CheckDigit calculates the Luhn check digit the given number should end with.
// Characters other than ASCII digits are ignored. The last digit itself is not part of the sum:
// digits are walked from the right starting at the second to last one, every odd position is doubled.
//
// The result is 10 - (sum mod 10), which makes it 10 rather than 0 when the sum is a multiple of 10.
// A literal last digit never equals 10, so such numbers never pass Classify.
func CheckDigit(number string) int {
	sum := 0
	position := 0

	// It's ok to work with string as bytes here
	for i := len(number) - 1; i >= 0; i-- {
		n := number[i]
		if n < '0' || n > '9' {
			continue
		}

		digit := int(n - '0')
		switch {
		case position == 0:
			// check digit itself
		case position%2 != 0:
			digit *= 2
			if digit > 9 {
				digit -= 9
			}
			sum += digit
		default:
			sum += digit
		}
		position++
	}

	if sum >= 10 {
		return 10 - sum%10
	}
	return 10 - sum
}
