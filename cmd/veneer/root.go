package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/veneer-web/veneer/internal/cache"
	"github.com/veneer-web/veneer/internal/config"
	"github.com/veneer-web/veneer/internal/confstore"
	"github.com/veneer-web/veneer/internal/theme"
	"github.com/veneer-web/veneer/internal/view"
)

// Build-time variables (set via ldflags)
var (
	version   = "dev"
	commit    = "unknown"
	buildTime = "unknown"
)

// Global configuration and state
var (
	cfg        *config.Config
	globalOpts struct {
		verbose    bool
		configPath string
		themesRoot string
		publicRoot string
	}
	logger *slog.Logger

	// registry and its collaborators, built once per invocation
	registry  *theme.Registry
	finder    *view.Finder
	confStore *confstore.Store
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "veneer",
	Short: "Single-active-theme manager for web applications",
	Long: `veneer manages the themes of a web application: directories holding
templates, an optional theme.json descriptor, an optional config.json
and an optional assets/ folder.

Activating a theme registers its template directory ahead of the
application defaults, merges its configuration under the "theme."
namespace, and publishes its assets into the web-servable public root
via a filesystem link.`,
	Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, buildTime),
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Setup logging
		setupLogger()

		// Load configuration
		var err error
		cfg, err = config.LoadConfig(globalOpts.configPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		// Flag overrides
		if globalOpts.themesRoot != "" {
			cfg.Themes.Root = globalOpts.themesRoot
		}
		if globalOpts.publicRoot != "" {
			cfg.Themes.PublicRoot = globalOpts.publicRoot
		}

		ttl, err := cfg.Themes.TTL()
		if err != nil {
			return fmt.Errorf("invalid themes.config_ttl: %w", err)
		}

		finder = view.NewFinder()
		confStore = confstore.New()
		registry = theme.NewRegistry(finder, confStore, cache.NewMemory(), theme.Options{
			ThemesRoot: cfg.Themes.Root,
			PublicRoot: cfg.Themes.PublicRoot,
			ConfigTTL:  ttl,
		})

		logger.Debug("registry ready",
			"themes_root", cfg.Themes.Root,
			"public_root", cfg.Themes.PublicRoot,
			"config_ttl", ttl)
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&globalOpts.verbose, "verbose", "v", false,
		"Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&globalOpts.configPath, "config", "",
		"Path to config file (default: ~/.config/veneer/config.toml)")
	rootCmd.PersistentFlags().StringVar(&globalOpts.themesRoot, "themes-root", "",
		"Themes source directory (overrides config)")
	rootCmd.PersistentFlags().StringVar(&globalOpts.publicRoot, "public-root", "",
		"Web-servable directory for published assets (overrides config)")
}

// setupLogger configures the global slog logger.
func setupLogger() {
	level := slog.LevelWarn
	if globalOpts.verbose {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	// Log to stderr so stdout is clean for output
	handler := slog.NewTextHandler(os.Stderr, opts)
	logger = slog.New(handler)
	slog.SetDefault(logger)
}
