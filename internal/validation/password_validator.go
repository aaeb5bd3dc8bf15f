package validation

import (
	"unicode"

	"github.com/AlenaMolokova/masterdata/internal/constants"
)

type PasswordValidator interface {
	ValidatePassword(password string) bool
}

type DefaultPasswordValidator struct{}

func NewDefaultPasswordValidator() *DefaultPasswordValidator {
	return &DefaultPasswordValidator{}
}

// ValidatePassword requires the minimum length and at least one letter.
func (v *DefaultPasswordValidator) ValidatePassword(password string) bool {
	if len(password) < constants.MinPasswordLen {
		return false
	}
	for _, c := range password {
		if unicode.IsLetter(c) {
			return true
		}
	}
	return false
}
