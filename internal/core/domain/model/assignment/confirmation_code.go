package assignment

import (
	"crypto/subtle"
	"strings"

	"mealflow/internal/pkg/errs"
)

// ConfirmationCode is the one-time code a returning customer reads out to the
// driver at drop-off. Codes are stored upper-case without surrounding spaces.
type ConfirmationCode struct {
	value string
}

func NewConfirmationCode(raw string) (ConfirmationCode, error) {
	normalized := normalizeCode(raw)
	if normalized == "" {
		return ConfirmationCode{}, errs.NewValueIsRequiredError("confirmationCode")
	}
	return ConfirmationCode{value: normalized}, nil
}

func (c ConfirmationCode) String() string {
	return c.value
}

// Matches compares candidate after trimming and upper-casing it.
func (c ConfirmationCode) Matches(candidate string) bool {
	if c.value == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(c.value), []byte(normalizeCode(candidate))) == 1
}

func normalizeCode(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}
