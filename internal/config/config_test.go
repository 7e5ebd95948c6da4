package config

import (
	"os"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name        string
		config      Config
		expectError bool
	}{
		{
			name: "valid development config",
			config: Config{
				Env:       "development",
				Port:      "8460",
				JWTSecret: "dev-secret",
			},
			expectError: false,
		},
		{
			name: "missing port",
			config: Config{
				Env:       "development",
				JWTSecret: "dev-secret",
			},
			expectError: true,
		},
		{
			name: "missing JWT secret",
			config: Config{
				Env:  "development",
				Port: "8460",
			},
			expectError: true,
		},
		{
			name: "production with default JWT secret",
			config: Config{
				Env:        "production",
				Port:       "8460",
				JWTSecret:  "your-secret-key-change-in-production",
				DBPassword: "strong-password",
			},
			expectError: true,
		},
		{
			name: "production with short JWT secret",
			config: Config{
				Env:        "production",
				Port:       "8460",
				JWTSecret:  "short",
				DBPassword: "strong-password",
			},
			expectError: true,
		},
		{
			name: "production with default DB password",
			config: Config{
				Env:        "production",
				Port:       "8460",
				JWTSecret:  "secure-secret-at-least-32-chars-long",
				DBPassword: "password",
			},
			expectError: true,
		},
		{
			name: "valid production config",
			config: Config{
				Env:        "production",
				Port:       "8460",
				JWTSecret:  "secure-secret-at-least-32-chars-long",
				DBPassword: "strong-password",
				DBSSLMode:  "require",
			},
			expectError: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	defer os.Unsetenv("APP_ENV")
	defer viper.Reset()

	os.Setenv("APP_ENV", "test")

	c, err := LoadConfig()
	assert.NoError(t, err)
	assert.Equal(t, "8460", c.Port)
	assert.Equal(t, "finlit", c.DBName)
	assert.Equal(t, "quiz=on", c.FeatureFlags)
	assert.Equal(t, 5, c.AvatarMaxUploadSizeMB)
	assert.Equal(t, "test", c.Env)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	defer os.Unsetenv("APP_ENV")
	defer os.Unsetenv("FEATURE_FLAGS")
	defer os.Unsetenv("PORT")
	defer viper.Reset()

	os.Setenv("APP_ENV", "test")
	os.Setenv("FEATURE_FLAGS", "quiz=off")
	os.Setenv("PORT", "9000")

	c, err := LoadConfig()
	assert.NoError(t, err)
	assert.Equal(t, "quiz=off", c.FeatureFlags)
	assert.Equal(t, "9000", c.Port)
}
