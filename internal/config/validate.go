package config

import (
	"fmt"
	"net/url"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if len(c.Credentials.EncryptionSecret) < 32 {
		return fmt.Errorf("credentials.encryption_secret must be at least 32 characters (got %d)", len(c.Credentials.EncryptionSecret))
	}

	if err := c.LinkedIn.validate(); err != nil {
		return fmt.Errorf("linkedin: %w", err)
	}

	if c.Cache.Enabled && c.Cache.Addr == "" {
		return fmt.Errorf("cache.addr is required when the cache is enabled")
	}

	if c.RateLimit.RequestsPerMinute <= 0 {
		return fmt.Errorf("rate_limit.requests_per_minute must be > 0 (got %d)", c.RateLimit.RequestsPerMinute)
	}
	if c.RateLimit.SharesPerMinute <= 0 {
		return fmt.Errorf("rate_limit.shares_per_minute must be > 0 (got %d)", c.RateLimit.SharesPerMinute)
	}

	return nil
}

// validate accepts either a fully configured client or none at all.
func (l *LinkedInConfig) validate() error {
	partial := l.ClientID != "" || l.ClientSecret != "" || l.RedirectURI != ""
	if partial && !l.Enabled() {
		return fmt.Errorf("client_id, client_secret and redirect_uri must be set together")
	}

	for name, raw := range map[string]string{
		"auth_base_url": l.AuthBaseURL,
		"api_base_url":  l.APIBaseURL,
	} {
		if raw == "" {
			continue
		}
		u, err := url.Parse(raw)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("%s must be an absolute URL (got %q)", name, raw)
		}
	}

	if l.Timeout < 0 {
		return fmt.Errorf("timeout must be >= 0 (got %v)", l.Timeout)
	}

	return nil
}
