package services

import (
	"crypto/rand"
	"fmt"
	"io"

	"mealflow/internal/core/domain/model/assignment"
	"mealflow/internal/pkg/errs"
)

const (
	DefaultCodeLength = 6

	// codeAlphabet leaves out 0/O and 1/I/L, which customers misread.
	codeAlphabet = "ABCDEFGHJKMNPQRSTUVWXYZ23456789"
	// maxUnbiasedByte is the largest multiple of len(codeAlphabet) that fits
	// in a byte; bytes at or above it are discarded.
	maxUnbiasedByte = 256 - 256%len(codeAlphabet)
)

// ConfirmationCodeIssuer generates one-time delivery codes.
type ConfirmationCodeIssuer struct {
	length int
	random io.Reader
}

// NewConfirmationCodeIssuer uses crypto/rand when random is nil.
func NewConfirmationCodeIssuer(length int, random io.Reader) (*ConfirmationCodeIssuer, error) {
	if length <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("codeLength", fmt.Errorf("%d is not greater than 0", length))
	}
	if random == nil {
		random = rand.Reader
	}
	return &ConfirmationCodeIssuer{length: length, random: random}, nil
}

// IssueFor returns nil for first-time customers; they get no code.
func (i *ConfirmationCodeIssuer) IssueFor(returningCustomer bool) (*assignment.ConfirmationCode, error) {
	if !returningCustomer {
		return nil, nil //nolint:nilnil // no code is a valid outcome
	}
	code, err := i.Issue()
	if err != nil {
		return nil, err
	}
	return &code, nil
}

func (i *ConfirmationCodeIssuer) Issue() (assignment.ConfirmationCode, error) {
	out := make([]byte, 0, i.length)
	buf := make([]byte, i.length*2)

	for len(out) < i.length {
		if _, err := io.ReadFull(i.random, buf); err != nil {
			return assignment.ConfirmationCode{}, fmt.Errorf("read random source: %w", err)
		}
		for _, b := range buf {
			if int(b) >= maxUnbiasedByte {
				continue
			}
			out = append(out, codeAlphabet[int(b)%len(codeAlphabet)])
			if len(out) == i.length {
				break
			}
		}
	}

	return assignment.NewConfirmationCode(string(out))
}

// Verify compares a candidate with the issued code.
func (i *ConfirmationCodeIssuer) Verify(code assignment.ConfirmationCode, candidate string) bool {
	return code.Matches(candidate)
}
