package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetEnv(t *testing.T) {
	os.Setenv("TEST_CONFIG_KEY", "value")
	defer os.Unsetenv("TEST_CONFIG_KEY")

	assert.Equal(t, "value", GetEnv("TEST_CONFIG_KEY", "fallback"))
	assert.Equal(t, "fallback", GetEnv("TEST_CONFIG_MISSING", "fallback"))
}

func TestGetEnvAsInt(t *testing.T) {
	os.Setenv("TEST_CONFIG_INT", "42")
	os.Setenv("TEST_CONFIG_BAD_INT", "not-a-number")
	defer os.Unsetenv("TEST_CONFIG_INT")
	defer os.Unsetenv("TEST_CONFIG_BAD_INT")

	assert.Equal(t, 42, GetEnvAsInt("TEST_CONFIG_INT", 7))
	assert.Equal(t, 7, GetEnvAsInt("TEST_CONFIG_BAD_INT", 7))
	assert.Equal(t, 7, GetEnvAsInt("TEST_CONFIG_MISSING", 7))
}

func TestGetEnvAsFloat(t *testing.T) {
	os.Setenv("TEST_CONFIG_FLOAT", "-15.79")
	defer os.Unsetenv("TEST_CONFIG_FLOAT")

	assert.InDelta(t, -15.79, GetEnvAsFloat("TEST_CONFIG_FLOAT", 0), 0.0001)
	assert.InDelta(t, 1.5, GetEnvAsFloat("TEST_CONFIG_MISSING", 1.5), 0.0001)
}

func TestLoadConfigFromEnv_Defaults(t *testing.T) {
	cfg := loadConfigFromEnv()

	// Token policy defaults: 45-minute termination window, longer
	// read-only delegation window.
	assert.Equal(t, 45, cfg.Tokens.TerminationTTLMinutes)
	assert.Equal(t, 240, cfg.Tokens.DelegationTTLMinutes)

	// Geolocation fallback must always be present.
	assert.NotZero(t, cfg.Alerts.DefaultLatitude)
	assert.NotZero(t, cfg.Alerts.DefaultLongitude)
}
