package config

import (
	"fmt"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}
	if c.Auth.BcryptCost < 4 || c.Auth.BcryptCost > 31 {
		return fmt.Errorf("auth.bcrypt_cost must be between 4 and 31 (got %d)", c.Auth.BcryptCost)
	}

	if c.Database.StatementTimeout < 0 {
		return fmt.Errorf("database.statement_timeout must be >= 0 (got %v)", c.Database.StatementTimeout)
	}

	if err := c.Reputation.validate(); err != nil {
		return fmt.Errorf("reputation: %w", err)
	}

	if c.Redis.Enabled && strings.TrimSpace(c.Redis.Addr) == "" {
		return fmt.Errorf("redis.addr is required when redis is enabled")
	}

	if c.Metrics.Enabled && !strings.HasPrefix(c.Metrics.Path, "/") {
		return fmt.Errorf("metrics.path must start with '/' (got %q)", c.Metrics.Path)
	}

	return nil
}

func (r *ReputationConfig) validate() error {
	if r.EventPoints < 0 {
		return fmt.Errorf("event_points must be >= 0 (got %d)", r.EventPoints)
	}
	if r.SayingPoints < 0 {
		return fmt.Errorf("saying_points must be >= 0 (got %d)", r.SayingPoints)
	}
	if r.BookmarkMilestone < 0 {
		return fmt.Errorf("bookmark_milestone must be >= 0 (got %d)", r.BookmarkMilestone)
	}
	if r.BookmarkPoints < 0 {
		return fmt.Errorf("bookmark_points must be >= 0 (got %d)", r.BookmarkPoints)
	}
	return nil
}
