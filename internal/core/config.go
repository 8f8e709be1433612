package core

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/fokus-app/fokus/pkg/models"
)

// Policy bundles the behavioral constants the components enforce. Values
// come from configuration but default to the contract numbers: three today
// slots, a 25-minute default estimate, five-character stop reasons, a
// one-hour lockout after the third same-day failure.
type Policy struct {
	TodayCap               int
	DefaultEstimateMinutes int
	MinStopReasonLength    int
	FailureThreshold       int
	LockoutDuration        time.Duration
	TaskIDPrefix           string
	TaskIDPadWidth         int
}

// NotificationsConfig configures the optional accountability-partner
// webhook that receives lockout alerts.
type NotificationsConfig struct {
	Enabled    bool
	WebhookURL string
}

// Config is the merged application configuration read from .fokusconfig.
type Config struct {
	TodayCap               int
	DefaultEstimateMinutes int
	MinStopReasonLength    int
	FailureThreshold       int
	LockoutMinutes         int
	TaskIDPrefix           string
	TaskIDPadWidth         int
	Notifications          NotificationsConfig
}

// DefaultConfig returns the built-in behavioral contract.
func DefaultConfig() *Config {
	return &Config{
		TodayCap:               models.MaxTodayTasks,
		DefaultEstimateMinutes: 25,
		MinStopReasonLength:    5,
		FailureThreshold:       3,
		LockoutMinutes:         60,
		TaskIDPrefix:           "IDE",
		TaskIDPadWidth:         4,
	}
}

// LoadConfig reads .fokusconfig from basePath using Viper. A missing file
// yields the defaults; a malformed file is an error.
func LoadConfig(basePath string) (*Config, error) {
	cfg := DefaultConfig()

	v := viper.New()
	v.SetConfigName(".fokusconfig")
	v.SetConfigType("yaml")
	v.AddConfigPath(basePath)

	v.SetDefault("focus.today_cap", cfg.TodayCap)
	v.SetDefault("focus.default_estimate_minutes", cfg.DefaultEstimateMinutes)
	v.SetDefault("focus.min_stop_reason_length", cfg.MinStopReasonLength)
	v.SetDefault("accountability.failure_threshold", cfg.FailureThreshold)
	v.SetDefault("accountability.lockout_minutes", cfg.LockoutMinutes)
	v.SetDefault("task_id.prefix", cfg.TaskIDPrefix)
	v.SetDefault("task_id.pad_width", cfg.TaskIDPadWidth)
	v.SetDefault("notifications.enabled", false)
	v.SetDefault("notifications.webhook_url", "")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading .fokusconfig: %w", err)
	}

	cfg.TodayCap = v.GetInt("focus.today_cap")
	cfg.DefaultEstimateMinutes = v.GetInt("focus.default_estimate_minutes")
	cfg.MinStopReasonLength = v.GetInt("focus.min_stop_reason_length")
	cfg.FailureThreshold = v.GetInt("accountability.failure_threshold")
	cfg.LockoutMinutes = v.GetInt("accountability.lockout_minutes")
	cfg.TaskIDPrefix = v.GetString("task_id.prefix")
	if v.IsSet("task_id.pad_width") {
		cfg.TaskIDPadWidth = v.GetInt("task_id.pad_width")
	}
	cfg.Notifications.Enabled = v.GetBool("notifications.enabled")
	cfg.Notifications.WebhookURL = v.GetString("notifications.webhook_url")

	return cfg, nil
}

// Validate checks the configuration for values that would break the
// behavioral contract and returns a clear message naming every problem.
func (c *Config) Validate() error {
	var errs []string

	if c.TodayCap < 1 {
		errs = append(errs, fmt.Sprintf("focus.today_cap must be at least 1, got %d", c.TodayCap))
	}
	if c.DefaultEstimateMinutes < 1 {
		errs = append(errs, fmt.Sprintf("focus.default_estimate_minutes must be positive, got %d", c.DefaultEstimateMinutes))
	}
	if c.MinStopReasonLength < 1 {
		errs = append(errs, fmt.Sprintf("focus.min_stop_reason_length must be positive, got %d", c.MinStopReasonLength))
	}
	if c.FailureThreshold < 2 {
		errs = append(errs, fmt.Sprintf("accountability.failure_threshold must be at least 2, got %d", c.FailureThreshold))
	}
	if c.LockoutMinutes < 1 {
		errs = append(errs, fmt.Sprintf("accountability.lockout_minutes must be positive, got %d", c.LockoutMinutes))
	}
	if c.TaskIDPrefix == "" {
		errs = append(errs, "task_id.prefix must not be empty")
	}
	if c.TaskIDPadWidth < 0 || c.TaskIDPadWidth > 10 {
		errs = append(errs, fmt.Sprintf("task_id.pad_width %d is invalid, must be between 0 and 10", c.TaskIDPadWidth))
	}
	if c.Notifications.Enabled && c.Notifications.WebhookURL == "" {
		errs = append(errs, "notifications.webhook_url must be set when notifications are enabled")
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(errs, "\n  - "))
	}
	return nil
}

// Policy derives the enforcement constants from the configuration.
func (c *Config) Policy() Policy {
	return Policy{
		TodayCap:               c.TodayCap,
		DefaultEstimateMinutes: c.DefaultEstimateMinutes,
		MinStopReasonLength:    c.MinStopReasonLength,
		FailureThreshold:       c.FailureThreshold,
		LockoutDuration:        time.Duration(c.LockoutMinutes) * time.Minute,
		TaskIDPrefix:           c.TaskIDPrefix,
		TaskIDPadWidth:         c.TaskIDPadWidth,
	}
}
