package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnvHelpers(t *testing.T) {
	t.Run("Default when unset", func(t *testing.T) {
		assert.Equal(t, "fallback", getEnvWithDefault("VINOM_PCG_UNSET_KEY", "fallback"))
		assert.Equal(t, 7, getEnvAsIntWithDefault("VINOM_PCG_UNSET_KEY", 7))
	})

	t.Run("Value when set", func(t *testing.T) {
		t.Setenv("VINOM_PCG_TTL", "120")
		assert.Equal(t, 120, getEnvAsIntWithDefault("VINOM_PCG_TTL", 7))
		assert.Equal(t, "120", mustGetEnv("VINOM_PCG_TTL"))
		assert.Equal(t, 120, mustGetEnvAsInt("VINOM_PCG_TTL"))
	})

	t.Run("Unparsable integer falls back", func(t *testing.T) {
		t.Setenv("VINOM_PCG_TTL", "soon")
		assert.Equal(t, 7, getEnvAsIntWithDefault("VINOM_PCG_TTL", 7))
	})
}
