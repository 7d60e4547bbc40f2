package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateRandomString(t *testing.T) {
	s1, err := GenerateRandomString(32)
	require.NoError(t, err)
	assert.Len(t, s1, 32)

	s2, err := GenerateRandomString(32)
	require.NoError(t, err)
	assert.NotEqual(t, s1, s2)
}

func TestSanitizeString(t *testing.T) {
	assert.Equal(t, "hello world", SanitizeString("  hello\tworld  "))
	assert.Equal(t, "left the area", SanitizeString("left\x00 the\n area"))
	assert.Equal(t, "", SanitizeString("   "))
}

func TestMaskString(t *testing.T) {
	assert.Equal(t, "ab****gh", MaskString("abcdefgh", 2, 6, "*"))
	assert.Equal(t, "abcdefgh", MaskString("abcdefgh", -1, 6, "*"))
	assert.Equal(t, "abcdefgh", MaskString("abcdefgh", 6, 2, "*"))
}

func TestMaskPhoneNumber(t *testing.T) {
	assert.Equal(t, "*******4321", MaskPhoneNumber("119-8765-4321"))
	assert.Equal(t, "1234", MaskPhoneNumber("1234"))
}

func TestMaskPlate(t *testing.T) {
	assert.Equal(t, "ABC*****", MaskPlate("ABC-1D23"))
	assert.Equal(t, "ABC****", MaskPlate("ABC1D23"))
	assert.Equal(t, "AB", MaskPlate(" AB "))
	assert.Equal(t, "", MaskPlate(""))
}
