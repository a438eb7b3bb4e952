package config

import (
	"fmt"
	"net/url"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if c.TextServices.Timeout <= 0 {
		return fmt.Errorf("text_services.timeout must be > 0 (got %v)", c.TextServices.Timeout)
	}
	for name, raw := range map[string]string{
		"hesudhar_url":  c.TextServices.HesudharURL,
		"romanizer_url": c.TextServices.RomanizerURL,
		"translate_url": c.TextServices.TranslateURL,
	} {
		if raw == "" {
			continue
		}
		if err := validateHTTPURL(raw); err != nil {
			return fmt.Errorf("text_services.%s: %w", name, err)
		}
	}

	if c.Cache.Enabled && strings.TrimSpace(c.Cache.RedisURL) == "" {
		return fmt.Errorf("cache.redis_url is required when cache is enabled")
	}

	if err := c.Artifact.validate(); err != nil {
		return fmt.Errorf("dictionary_artifact: %w", err)
	}

	return nil
}

// Validate checks the CLI configuration.
func (c *ClientConfig) Validate() error {
	if err := validateHTTPURL(c.API.BaseURL); err != nil {
		return fmt.Errorf("api.base_url: %w", err)
	}
	if c.API.Timeout <= 0 {
		return fmt.Errorf("api.timeout must be > 0 (got %v)", c.API.Timeout)
	}
	if c.Workflow.RedirectDelay < 0 {
		return fmt.Errorf("workflow.redirect_delay must be >= 0 (got %v)", c.Workflow.RedirectDelay)
	}
	return nil
}

func (a *ArtifactConfig) validate() error {
	switch a.Backend {
	case ArtifactBackendFile:
		if strings.TrimSpace(a.Path) == "" {
			return fmt.Errorf("path is required for the file backend")
		}
	case ArtifactBackendS3:
		if a.Bucket == "" || a.Region == "" || a.Key == "" {
			return fmt.Errorf("bucket, region and key are required for the s3 backend")
		}
		if a.Endpoint != "" {
			if err := validateHTTPURL(a.Endpoint); err != nil {
				return fmt.Errorf("endpoint: %w", err)
			}
		}
	default:
		return fmt.Errorf("unknown backend %q (want %q or %q)", a.Backend, ArtifactBackendFile, ArtifactBackendS3)
	}
	return nil
}

func validateHTTPURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("invalid url %q: %w", raw, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("invalid url %q: want http(s)://host", raw)
	}
	return nil
}
