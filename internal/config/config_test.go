package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func TestDefaults(t *testing.T) {
	cfg := Defaults()
	assert.Equal(t, "www.botlibre.com", cfg.Host)
	assert.Equal(t, "https", cfg.Scheme)
	assert.Empty(t, cfg.ApplicationID)
	assert.False(t, cfg.Debug)
}

func TestLoadConfigOverrides(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	viper.Set("host", "chat.example.org")
	viper.Set("application_id", "1234")
	viper.Set("user", "alice")
	viper.Set("debug", true)

	cfg := LoadConfig()
	assert.Equal(t, "chat.example.org", cfg.Host)
	assert.Equal(t, "1234", cfg.ApplicationID)
	assert.Equal(t, "alice", cfg.User)
	assert.True(t, cfg.Debug)
	// Untouched values keep their defaults.
	assert.Equal(t, "https", cfg.Scheme)
}

func TestLoadConfigEnv(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	t.Setenv("BOTLIBRE_TOKEN", "9999")
	t.Setenv("BOTLIBRE_DOMAIN", "7")

	cfg := LoadConfig()
	assert.Equal(t, "9999", cfg.Token)
	assert.Equal(t, "7", cfg.Domain)
}
