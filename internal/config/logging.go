package config

import (
	"fmt"
	"strings"

	"go.uber.org/zap/zapcore"
)

// LoggingConfig configures logging.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // json, console
	File   string `yaml:"file"`   // used when the terminal UI owns stdout/stderr
}

// ZapLevel parses Level into a zap level. An empty level means info.
func (c *LoggingConfig) ZapLevel() (zapcore.Level, error) {
	if c.Level == "" {
		return zapcore.InfoLevel, nil
	}
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(strings.ToLower(c.Level))); err != nil {
		return zapcore.InfoLevel, fmt.Errorf("invalid logging.level %q: %w", c.Level, err)
	}
	return lvl, nil
}

// IsJSON reports whether structured JSON output was requested.
func (c *LoggingConfig) IsJSON() bool {
	return strings.EqualFold(c.Format, "json")
}
