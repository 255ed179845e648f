package config

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Validate performs business-rule validation on the loaded configuration.
// Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}
	if c.Auth.SessionTTL <= 0 {
		return fmt.Errorf("auth.session_ttl must be > 0 (got %v)", c.Auth.SessionTTL)
	}
	if c.Auth.PasswordHashCost < bcrypt.MinCost || c.Auth.PasswordHashCost > bcrypt.MaxCost {
		return fmt.Errorf("auth.password_hash_cost must be within [%d, %d] (got %d)",
			bcrypt.MinCost, bcrypt.MaxCost, c.Auth.PasswordHashCost)
	}

	if err := c.Whisper.validate(); err != nil {
		return fmt.Errorf("whisper: %w", err)
	}

	if c.RateLimit.AuthPerMinute <= 0 || c.RateLimit.APIPerMinute <= 0 {
		return fmt.Errorf("rate_limit: limits must be > 0")
	}

	return nil
}

func (w *WhisperConfig) validate() error {
	if w.Window <= 0 {
		return fmt.Errorf("window must be > 0 (got %v)", w.Window)
	}
	if w.CandidateLimit <= 0 {
		return fmt.Errorf("candidate_limit must be > 0 (got %d)", w.CandidateLimit)
	}
	if w.BreakerFailures == 0 {
		return fmt.Errorf("breaker_failures must be > 0")
	}
	return nil
}
