package config

import (
	"fmt"
	"strings"
)

// LoggingConfig defines how diagnostic logs are written.
type LoggingConfig struct {
	// Level is one of trace, debug, info, warn, error, fatal, panic, disabled.
	Level string `json:"level"`
	// Console enables human readable output instead of JSON lines.
	Console bool `json:"console"`
}

// SetDefaults applies sane defaults.
func (c *LoggingConfig) SetDefaults() {
	if c.Level == "" {
		c.Level = "info"
	}
}

// Validate checks the level name.
func (c LoggingConfig) Validate() error {
	switch strings.ToLower(c.Level) {
	case "trace", "debug", "info", "warn", "error", "fatal", "panic", "disabled":
		return nil
	default:
		return fmt.Errorf("unknown log level %s", c.Level)
	}
}
