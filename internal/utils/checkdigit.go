package utils

// CheckDigit computes the verification digit for a payload of decimal digits.
// Weights alternate 1, 2, 1, 2... from the leftmost digit and two-digit products
// are folded into the sum of their digits. ok is false for empty or non-digit payloads.
func CheckDigit(payload string) (digit int, ok bool) {
	if payload == "" {
		return 0, false
	}

	var sum int
	for i := 0; i < len(payload); i++ {
		if payload[i] < '0' || payload[i] > '9' {
			return 0, false
		}
		p := int(payload[i] - '0')
		if i%2 == 1 {
			p *= 2
		}
		if p >= 10 {
			p = p/10 + p%10
		}
		sum += p
	}

	return (10 - sum%10) % 10, true
}
