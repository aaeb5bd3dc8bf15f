package usecase

import (
	"errors"
	"fmt"
	"strings"

	"github.com/AlenaMolokova/masterdata/internal/constants"
)

var (
	ErrInvalidInput          = errors.New("invalid input")
	ErrInvalidStatus         = errors.New("status must be Activo or Inactivo")
	ErrInvalidIdentityNumber = errors.New("invalid identity number")
	ErrInvalidCredentials    = errors.New("invalid login or password")
	ErrLoginExists           = errors.New("login already exists")
	ErrWeakPassword          = errors.New("password must be at least 8 characters long and contain letters")
	ErrAccountingDisabled    = errors.New("accounting API is not configured")
)

func invalidInput(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}

// normalizeStatus defaults an empty status to Activo and accepts any letter case.
func normalizeStatus(status string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(status)) {
	case "":
		return constants.StatusActive, nil
	case strings.ToLower(constants.StatusActive):
		return constants.StatusActive, nil
	case strings.ToLower(constants.StatusInactive):
		return constants.StatusInactive, nil
	default:
		return "", ErrInvalidStatus
	}
}

func requireText(field, value string, maxLen int) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", invalidInput("%s is required", field)
	}
	if len([]rune(value)) > maxLen {
		return "", invalidInput("%s must be at most %d characters", field, maxLen)
	}
	return value, nil
}
