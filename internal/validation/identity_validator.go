package validation

import (
	"strings"

	"github.com/AlenaMolokova/masterdata/internal/constants"
	"github.com/AlenaMolokova/masterdata/internal/utils"
)

type IdentityValidator interface {
	ValidateIdentityNumber(number string) bool
}

// CedulaValidator checks 11-digit national identity / tax numbers.
// It holds no state and is safe for concurrent use.
type CedulaValidator struct{}

func NewCedulaValidator() *CedulaValidator {
	return &CedulaValidator{}
}

func (v *CedulaValidator) ValidateIdentityNumber(number string) bool {
	return ValidateIdentityNumber(number)
}

// NormalizeIdentityNumber drops hyphens and surrounding whitespace and reports
// whether what is left is exactly 11 ASCII digits.
func NormalizeIdentityNumber(number string) (string, bool) {
	normalized := strings.TrimSpace(strings.ReplaceAll(number, "-", ""))
	if len(normalized) != constants.IdentityNumberLen {
		return "", false
	}
	for i := 0; i < len(normalized); i++ {
		if normalized[i] < '0' || normalized[i] > '9' {
			return "", false
		}
	}
	return normalized, true
}

// ValidateIdentityNumber reports whether the last digit of the normalized number
// is the check digit of the first ten. Malformed input is simply invalid.
func ValidateIdentityNumber(number string) bool {
	normalized, ok := NormalizeIdentityNumber(number)
	if !ok {
		return false
	}

	last := constants.IdentityNumberLen - 1
	expected, ok := utils.CheckDigit(normalized[:last])
	if !ok {
		return false
	}
	return expected == int(normalized[last]-'0')
}
