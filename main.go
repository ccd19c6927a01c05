package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"navtitle/internal/logger"
	"navtitle/models"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
)

// globalFlags are the persistent flags shared by every subcommand.
type globalFlags struct {
	configPath   string
	logLevel     string
	noAnimations bool
}

func main() {
	flags := &globalFlags{}

	rootCmd := &cobra.Command{
		Use:   "navtitle",
		Short: "Title view with a queued, animated status subtitle",
		Long: `navtitle shows a navigation title with a transient subtitle line.

Status messages are queued, faded in, held and faded out one at a time.
Run without a subcommand to open the desktop demo window.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGUI(flags)
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&flags.configPath, "config", "c", "", "Config file (default $NAVTITLE_CONFIG or ~/.config/navtitle/config.toml)")
	pf.StringVar(&flags.logLevel, "log-level", "", "Log level: debug, info, warn, error")
	pf.BoolVar(&flags.noAnimations, "no-animations", false, "Use near-instant transitions")

	rootCmd.AddCommand(
		guiCmd(flags),
		tuiCmd(flags),
		configCmd(flags),
		versionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

// loadConfig reads the config file and applies command line overrides.
func loadConfig(flags *globalFlags) (*models.Config, error) {
	cfg, err := models.LoadConfig(flags.configPath)
	if err != nil {
		return nil, err
	}

	if flags.logLevel != "" {
		cfg.LogLevel = flags.logLevel
	}
	if flags.noAnimations {
		cfg.AnimationsEnabled = false
	}

	level, err := logger.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	logger.SetLevel(level)

	return cfg, nil
}
