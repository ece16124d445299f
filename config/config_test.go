package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Setenv("FIREBASE_CREDENTIALS_PATH", "/etc/secrets/firebase.json")
	t.Setenv("FIREBASE_STORAGE_BUCKET", "demo-app.appspot.com")
}

func TestLoadDefaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, "", cfg.Cache.Addr)
	assert.Equal(t, 300, cfg.Cache.TTLSeconds)
	assert.Equal(t, "development", cfg.App.Environment)
}

func TestLoadFromEnvironment(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("PORT", "9090")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://example.com, https://www.example.com ,")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("PROJECTS_CACHE_TTL_SECONDS", "60")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, []string{"https://example.com", "https://www.example.com"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, "localhost:6379", cfg.Cache.Addr)
	assert.Equal(t, 60, cfg.Cache.TTLSeconds)
}

func TestLoadInvalidIntFallsBack(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("PROJECTS_CACHE_TTL_SECONDS", "not-a-number")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 300, cfg.Cache.TTLSeconds)
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		return &Config{
			Server:   ServerConfig{Port: "8080"},
			Firebase: FirebaseConfig{CredentialsPath: "/etc/secrets/firebase.json", StorageBucket: "demo-app.appspot.com"},
		}
	}

	t.Run("accepts a minimal config", func(t *testing.T) {
		assert.NoError(t, base().Validate())
	})

	t.Run("rejects missing credentials path", func(t *testing.T) {
		cfg := base()
		cfg.Firebase.CredentialsPath = ""
		assert.Error(t, cfg.Validate())
	})

	t.Run("rejects missing storage bucket", func(t *testing.T) {
		cfg := base()
		cfg.Firebase.StorageBucket = ""
		assert.Error(t, cfg.Validate())
	})

	t.Run("notifications need a recipient", func(t *testing.T) {
		cfg := base()
		cfg.Notify.ResendAPIKey = "re_123"
		assert.Error(t, cfg.Validate())

		cfg.Notify.OwnerAddress = "owner@example.com"
		assert.NoError(t, cfg.Validate())
	})
}
