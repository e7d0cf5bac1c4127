package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"homefinder/cmd/homes/ui"
	"homefinder/internal/config"
	"homefinder/internal/listing"
	"homefinder/internal/listings"
	"homefinder/internal/logging"
	"homefinder/internal/store"
)

var (
	// Global flags
	verbose     bool
	configPath  string
	latencyFlag time.Duration
	openID      string

	cfg    *config.Config
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "homes",
	Short: "homes - browse rental listings",
	Long: `homes is a terminal browser for rental property listings.

Listings are grouped into three tabs (Verified, Near you, New) and can be
narrowed with a free-text search over title, street and city.

Run without arguments to start the interactive browser.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load(configPath)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("latency") {
			loaded.Listings.Latency = latencyFlag.String()
		}
		if err := loaded.Validate(); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}
		cfg = loaded

		// The browser owns the terminal, so it logs to a file.
		logger, err = logging.New(cfg.Logging, logging.Options{
			Verbose: verbose,
			ToFile:  cmd == cmd.Root(),
		})
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		logging.For(logger, logging.CategoryBoot).Debug("configuration loaded",
			zap.String("config", configPath),
			zap.Duration("latency", cfg.GetLatency()),
			zap.String("data_file", cfg.Listings.DataFile))
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: runBrowser,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "homes.yaml", "Config file")
	rootCmd.PersistentFlags().DurationVar(&latencyFlag, "latency", 600*time.Millisecond, "Simulated fetch latency (overrides config)")
	rootCmd.Flags().StringVar(&openID, "open", "", "Open the detail page of this listing id on start")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(categoriesCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(configCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// runBrowser launches the interactive browser.
func runBrowser(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmdContext(cmd), os.Interrupt, syscall.SIGTERM)
	defer stop()

	c, err := openContainer(cfg.GetDefaultCategory(), "")
	if err != nil {
		return err
	}
	defer c.Close()

	return ui.Run(ctx, c, ui.Options{
		Theme:          cfg.UI.Theme,
		SearchDebounce: cfg.GetSearchDebounce(),
		AltScreen:      cfg.UI.AltScreen,
		StartListingID: openID,
		Logger:         logger,
	})
}

// loadRepository loads the configured data file, or the embedded seed.
func loadRepository() (*store.Repository, error) {
	repo, err := store.Load(cfg.Listings.DataFile)
	if err != nil {
		return nil, err
	}
	source := cfg.Listings.DataFile
	if source == "" {
		source = "embedded"
	}
	logging.For(logger, logging.CategoryStore).Info("listings loaded",
		zap.Int("count", repo.Len()),
		zap.String("source", source))
	return repo, nil
}

// openContainer builds a container with the given starting criteria.
func openContainer(category listing.Category, query string) (*listings.Container, error) {
	repo, err := loadRepository()
	if err != nil {
		return nil, err
	}
	c := listings.New(listings.NewMockSource(repo).WithLogger(logger), listings.Config{
		Latency:         cfg.GetLatency(),
		InitialCategory: category,
	}, logger)
	if query != "" {
		c.SetSearchQuery(query)
	}
	return c, nil
}

// resolveCategory parses a --category flag, falling back to the configured
// default when empty.
func resolveCategory(flag string) (listing.Category, error) {
	if flag == "" {
		return cfg.GetDefaultCategory(), nil
	}
	return listing.ParseCategory(flag)
}

func cmdContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
