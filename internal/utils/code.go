package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
)

// codeAlphabet excludes visually ambiguous characters (0/O, 1/I/L) so
// codes survive being read out loud over a phone line.
const codeAlphabet = "23456789ABCDEFGHJKMNPQRSTUVWXYZ"

// GenerateValidationCode generates a short human-transcribable code of the
// given length
func GenerateValidationCode(length int) (string, error) {
	if length < 6 || length > 8 {
		return "", fmt.Errorf("validation code length must be between 6 and 8, got %d", length)
	}

	max := big.NewInt(int64(len(codeAlphabet)))
	var sb strings.Builder
	sb.Grow(length)
	for i := 0; i < length; i++ {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("failed to generate random code: %w", err)
		}
		sb.WriteByte(codeAlphabet[n.Int64()])
	}
	return sb.String(), nil
}

// NormalizeCode trims surrounding whitespace and upper-cases a submitted
// code so comparisons are insensitive to transcription noise
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// CodesMatch compares a submitted code against the issued one after
// normalization
func CodesMatch(submitted, issued string) bool {
	return NormalizeCode(submitted) == NormalizeCode(issued)
}
