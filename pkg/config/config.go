// Package config loads the process configuration from environment
// variables once at startup. The resulting Config is read-only and shared
// by reference across all request handlers.
package config

import (
	"fmt"
	"os"
	"strconv"
)

// Captcha holds the human-verification provider settings.
type Captcha struct {
	// SiteKey is the public key embedded in the front-end widget.
	SiteKey string
	// SecretKey authenticates siteverify calls to the provider.
	SecretKey string
	// TimeoutSeconds bounds the connect phase of a verify call.
	TimeoutSeconds int
}

// Mail holds the SMTP relay settings for offer notifications.
type Mail struct {
	// Address is both the From header and the relay login user.
	Address  string
	Password string
	// Server is the relay host, optionally "host:port". Port 465 (SMTPS)
	// is assumed when no port is given.
	Server string
	// To is the operator mailbox that receives submissions.
	To string
	// TimeoutSeconds bounds how long a request waits on the send.
	TimeoutSeconds int
}

// Web holds the HTTP listener settings.
type Web struct {
	Address string
}

type Config struct {
	Captcha Captcha
	Mail    Mail
	Web     Web
}

// Environment variable names recognized by FromEnv.
const (
	EnvCaptchaSiteKey   = "HCAPTCHA_SITE_KEY"
	EnvCaptchaSecretKey = "HCAPTCHA_SECRET_KEY"
	EnvCaptchaTimeout   = "HCAPTCHA_TIMEOUT"
	EnvMailAddress      = "MAIL_ADDRESS"
	EnvMailPassword     = "MAIL_PASSWORD"
	EnvMailServer       = "MAIL_SERVER"
	EnvMailTo           = "MAIL_TO"
	EnvMailTimeout      = "MAIL_TIMEOUT"
	EnvWebAddress       = "WEB_ADDRESS"
)

// FromEnv builds a Config from the process environment. Every variable is
// required; a missing or unparsable value fails startup.
func FromEnv() (Config, error) {
	var cfg Config
	var err error

	if cfg.Captcha.SiteKey, err = requireEnv(EnvCaptchaSiteKey); err != nil {
		return cfg, err
	}
	if cfg.Captcha.SecretKey, err = requireEnv(EnvCaptchaSecretKey); err != nil {
		return cfg, err
	}
	if cfg.Captcha.TimeoutSeconds, err = requireEnvSeconds(EnvCaptchaTimeout); err != nil {
		return cfg, err
	}
	if cfg.Mail.Address, err = requireEnv(EnvMailAddress); err != nil {
		return cfg, err
	}
	if cfg.Mail.Password, err = requireEnv(EnvMailPassword); err != nil {
		return cfg, err
	}
	if cfg.Mail.Server, err = requireEnv(EnvMailServer); err != nil {
		return cfg, err
	}
	if cfg.Mail.To, err = requireEnv(EnvMailTo); err != nil {
		return cfg, err
	}
	if cfg.Mail.TimeoutSeconds, err = requireEnvSeconds(EnvMailTimeout); err != nil {
		return cfg, err
	}
	if cfg.Web.Address, err = requireEnv(EnvWebAddress); err != nil {
		return cfg, err
	}

	return cfg, nil
}

func requireEnv(name string) (string, error) {
	v := os.Getenv(name)
	if v == "" {
		return "", fmt.Errorf("missing required environment variable %s", name)
	}
	return v, nil
}

func requireEnvSeconds(name string) (int, error) {
	raw, err := requireEnv(name)
	if err != nil {
		return 0, err
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("parsing %s=%q as seconds: %v", name, raw, err)
	}
	if v <= 0 {
		return 0, fmt.Errorf("%s must be a positive number of seconds, got %d", name, v)
	}
	return v, nil
}
