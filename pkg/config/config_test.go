package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setAllEnv(t *testing.T) {
	t.Helper()
	t.Setenv(EnvCaptchaSiteKey, "site-key")
	t.Setenv(EnvCaptchaSecretKey, "secret-key")
	t.Setenv(EnvCaptchaTimeout, "10")
	t.Setenv(EnvMailAddress, "offers@example.com")
	t.Setenv(EnvMailPassword, "hunter2")
	t.Setenv(EnvMailServer, "smtp.example.com")
	t.Setenv(EnvMailTo, "owner@example.com")
	t.Setenv(EnvMailTimeout, "5")
	t.Setenv(EnvWebAddress, "127.0.0.1:8080")
}

func TestFromEnv(t *testing.T) {
	setAllEnv(t)

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, "site-key", cfg.Captcha.SiteKey)
	assert.Equal(t, "secret-key", cfg.Captcha.SecretKey)
	assert.Equal(t, 10, cfg.Captcha.TimeoutSeconds)
	assert.Equal(t, "offers@example.com", cfg.Mail.Address)
	assert.Equal(t, "hunter2", cfg.Mail.Password)
	assert.Equal(t, "smtp.example.com", cfg.Mail.Server)
	assert.Equal(t, "owner@example.com", cfg.Mail.To)
	assert.Equal(t, 5, cfg.Mail.TimeoutSeconds)
	assert.Equal(t, "127.0.0.1:8080", cfg.Web.Address)
}

func TestFromEnvMissingVariable(t *testing.T) {
	required := []string{
		EnvCaptchaSiteKey,
		EnvCaptchaSecretKey,
		EnvCaptchaTimeout,
		EnvMailAddress,
		EnvMailPassword,
		EnvMailServer,
		EnvMailTo,
		EnvMailTimeout,
		EnvWebAddress,
	}

	for _, name := range required {
		t.Run(name, func(t *testing.T) {
			setAllEnv(t)
			t.Setenv(name, "")

			_, err := FromEnv()
			require.Error(t, err)
			assert.Contains(t, err.Error(), name)
		})
	}
}

func TestFromEnvMalformedTimeout(t *testing.T) {
	tests := []struct {
		name  string
		value string
	}{
		{"not a number", "soon"},
		{"zero", "0"},
		{"negative", "-3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setAllEnv(t)
			t.Setenv(EnvMailTimeout, tt.value)

			_, err := FromEnv()
			require.Error(t, err)
			assert.Contains(t, err.Error(), EnvMailTimeout)
		})
	}
}
