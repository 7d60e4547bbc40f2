package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateValidationCode(t *testing.T) {
	for _, length := range []int{6, 7, 8} {
		code, err := GenerateValidationCode(length)
		require.NoError(t, err)
		assert.Len(t, code, length)
		for _, ch := range code {
			assert.Contains(t, codeAlphabet, string(ch))
		}
	}
}

func TestGenerateValidationCodeRejectsBadLength(t *testing.T) {
	_, err := GenerateValidationCode(4)
	assert.Error(t, err)

	_, err = GenerateValidationCode(12)
	assert.Error(t, err)
}

func TestGenerateValidationCodeAvoidsAmbiguousCharacters(t *testing.T) {
	for i := 0; i < 50; i++ {
		code, err := GenerateValidationCode(8)
		require.NoError(t, err)
		assert.False(t, strings.ContainsAny(code, "01OIL"), "code %q contains ambiguous characters", code)
	}
}

func TestNormalizeCode(t *testing.T) {
	assert.Equal(t, "ABC234", NormalizeCode("  abc234 "))
	assert.Equal(t, "XYZ789", NormalizeCode("xyz789"))
}

func TestCodesMatch(t *testing.T) {
	assert.True(t, CodesMatch(" kx7m2p ", "KX7M2P"))
	assert.True(t, CodesMatch("KX7M2P", "kx7m2p"))
	assert.False(t, CodesMatch("KX7M2P", "KX7M2Q"))
	assert.False(t, CodesMatch("", "KX7M2P"))
}
