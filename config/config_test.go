package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfig_IsDevelopment(t *testing.T) {
	tests := []struct {
		name     string
		config   *Config
		expected bool
	}{
		{
			name: "development environment",
			config: &Config{
				Server: ServerConfig{AppEnv: "development"},
			},
			expected: true,
		},
		{
			name: "debug gin mode",
			config: &Config{
				Server: ServerConfig{GinMode: "debug"},
			},
			expected: true,
		},
		{
			name: "production environment",
			config: &Config{
				Server: ServerConfig{AppEnv: "production"},
			},
			expected: false,
		},
		{
			name: "release mode",
			config: &Config{
				Server: ServerConfig{GinMode: "release", AppEnv: "production"},
			},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.config.IsDevelopment()
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestConfig_Validate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Server: ServerConfig{
				Port:           "8081",
				AllowedOrigins: []string{"http://localhost:3000"},
			},
			Storage: StorageConfig{
				AccessKeyID:     "key",
				SecretAccessKey: "secret",
				BucketName:      "avatars-bucket",
			},
			Session: SessionConfig{TTLMinutes: 30},
		}
	}

	t.Run("valid config", func(t *testing.T) {
		assert.NoError(t, valid().Validate())
	})

	t.Run("missing storage credentials", func(t *testing.T) {
		cfg := valid()
		cfg.Storage.SecretAccessKey = ""
		err := cfg.Validate()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "STORAGE_ACCESS_KEY_ID")
	})

	t.Run("missing bucket name", func(t *testing.T) {
		cfg := valid()
		cfg.Storage.BucketName = ""
		assert.Error(t, cfg.Validate())
	})

	t.Run("missing port", func(t *testing.T) {
		cfg := valid()
		cfg.Server.Port = ""
		assert.Error(t, cfg.Validate())
	})

	t.Run("missing origins", func(t *testing.T) {
		cfg := valid()
		cfg.Server.AllowedOrigins = nil
		assert.Error(t, cfg.Validate())
	})

	t.Run("zero session ttl", func(t *testing.T) {
		cfg := valid()
		cfg.Session.TTLMinutes = 0
		assert.Error(t, cfg.Validate())
	})

	t.Run("profiling enabled without endpoint", func(t *testing.T) {
		cfg := valid()
		cfg.Profiling.Enabled = true
		err := cfg.Validate()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "O11Y_PROFILING_ENDPOINT")
	})
}
