package utils

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"regexp"
	"strings"
)

// GenerateRandomString generates a URL-safe random string of the specified length
func GenerateRandomString(length int) (string, error) {
	bytes := make([]byte, length)
	_, err := rand.Read(bytes)
	if err != nil {
		return "", fmt.Errorf("failed to generate random bytes: %w", err)
	}
	return base64.URLEncoding.EncodeToString(bytes)[:length], nil
}

// SanitizeString removes control characters and normalizes whitespace.
// Free-text fields like incident summaries pass through here before storage.
func SanitizeString(s string) string {
	result := regexp.MustCompile(`[\p{Cc}\p{Cf}\p{Co}\p{Cs}]`).ReplaceAllString(s, " ")
	result = regexp.MustCompile(`\s+`).ReplaceAllString(result, " ")
	return strings.TrimSpace(result)
}

// MaskString masks a portion of a string (useful for PII)
func MaskString(s string, start, end int, maskChar string) string {
	if start < 0 || end > len(s) || start > end {
		return s
	}

	prefix := s[:start]
	middle := strings.Repeat(maskChar, end-start)
	suffix := s[end:]

	return prefix + middle + suffix
}

// MaskPhoneNumber masks a phone number, keeping only the last 4 digits visible
func MaskPhoneNumber(phone string) string {
	cleanPhone := regexp.MustCompile(`[^0-9]`).ReplaceAllString(phone, "")
	if len(cleanPhone) <= 4 {
		return cleanPhone
	}

	return strings.Repeat("*", len(cleanPhone)-4) + cleanPhone[len(cleanPhone)-4:]
}

// MaskPlate masks a vehicle plate, keeping the first and last character.
// Delegated observers only ever see the masked form.
func MaskPlate(plate string) string {
	trimmed := strings.TrimSpace(plate)
	if len(trimmed) <= 3 {
		return trimmed
	}
	return trimmed[:3] + strings.Repeat("*", len(trimmed)-3)
}
