// Package logging builds the zap logger shared by the CLI, the terminal UI and
// the listings core. Subsystems log through named child loggers, one per
// Category, so their lines can be told apart in a single stream.
package logging

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"homefinder/internal/config"
)

// Category represents a log category/system
type Category string

const (
	CategoryBoot     Category = "boot"     // Startup, config and data loading
	CategoryStore    Category = "store"    // Repository construction and lookups
	CategorySearch   Category = "search"   // Filter evaluation
	CategoryListings Category = "listings" // State container recomputation
	CategoryUI       Category = "ui"       // Terminal UI intents and navigation
	CategoryCLI      Category = "cli"      // Non-interactive commands
)

// Options selects where log output goes.
type Options struct {
	// Verbose forces debug level regardless of the configured level.
	Verbose bool

	// ToFile sends output to cfg.File instead of stderr. The terminal UI sets
	// this because it owns the screen.
	ToFile bool
}

// New builds a zap logger from the logging section of the config.
func New(cfg config.LoggingConfig, opts Options) (*zap.Logger, error) {
	level, err := cfg.ZapLevel()
	if err != nil {
		return nil, err
	}
	if opts.Verbose {
		level = zapcore.DebugLevel
	}

	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(level)
	zc.Sampling = nil
	zc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	if !cfg.IsJSON() {
		zc.Encoding = "console"
		zc.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	}

	zc.OutputPaths = []string{"stderr"}
	zc.ErrorOutputPaths = []string{"stderr"}
	if opts.ToFile {
		if cfg.File == "" {
			return zap.NewNop(), nil
		}
		if dir := filepath.Dir(cfg.File); dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return nil, fmt.Errorf("failed to create log directory: %w", err)
			}
		}
		zc.OutputPaths = []string{cfg.File}
		zc.ErrorOutputPaths = []string{cfg.File}
	}

	logger, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}

// For returns the child logger for a category. A nil parent yields a no-op
// logger so library code never has to nil-check.
func For(parent *zap.Logger, category Category) *zap.Logger {
	if parent == nil {
		return zap.NewNop()
	}
	return parent.Named(string(category))
}
