package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/spf13/cobra"

	"navtitle/internal/logger"
	"navtitle/internal/subtitle"
	"navtitle/internal/tui"
	"navtitle/models"
	"navtitle/ui"
	apptheme "navtitle/ui/theme"
)

func guiCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "gui",
		Short: "Open the desktop demo window",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGUI(flags)
		},
	}
}

func runGUI(flags *globalFlags) error {
	cfg, err := loadConfig(flags)
	if err != nil {
		return err
	}

	metrics, stop, err := startMetrics(cfg.MetricsAddr)
	if err != nil {
		return err
	}
	defer stop()

	a := app.NewWithID("io.navtitle.demo")
	a.Settings().SetTheme(&apptheme.NavTitleTheme{})

	w := a.NewWindow("navtitle")
	w.Resize(fyne.NewSize(420, 380))

	demoUI := ui.NewDemoUI(w, cfg, metrics)
	w.SetContent(demoUI.Build())

	w.ShowAndRun()
	return nil
}

func tuiCmd(flags *globalFlags) *cobra.Command {
	var logFile string

	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Run the terminal demo",
		Long: `Run the title view in the terminal.

Keys:
  1-4  standard, success, warning, failure status
  i    failure that clears the queue
  c    clear the subtitle
  b    burst of events from concurrent producers
  d    open the title dropdown
  q    quit`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(flags, logFile)
		},
	}

	cmd.Flags().StringVar(&logFile, "log-file", "", "Write logs here instead of discarding them")

	return cmd
}

func runTUI(flags *globalFlags, logFile string) error {
	cfg, err := loadConfig(flags)
	if err != nil {
		return err
	}

	// stdout belongs to the terminal UI
	var out io.Writer = io.Discard
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
		out = f
	}
	logger.SetOutput(out)

	metrics, stop, err := startMetrics(cfg.MetricsAddr)
	if err != nil {
		return err
	}
	defer stop()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	opts := subtitle.OptionsFromConfig(cfg)
	opts.Metrics = metrics
	return tui.Run(ctx, cfg, opts)
}

func configCmd(flags *globalFlags) *cobra.Command {
	var write bool

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(flags)
			if err != nil {
				return err
			}
			printConfig(cmd.OutOrStdout(), cfg)

			if write {
				path := flags.configPath
				if path == "" {
					path = models.ConfigPath()
				}
				if err := cfg.Save(path); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "\nwritten to %s\n", path)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&write, "write", "w", false, "Save the effective configuration to the config file")

	return cmd
}

func printConfig(w io.Writer, cfg *models.Config) {
	fmt.Fprintf(w, "title               %s\n", cfg.Title)
	fmt.Fprintf(w, "show_dropdown       %t\n", cfg.ShowDropdown)
	fmt.Fprintf(w, "animations_enabled  %t\n", cfg.AnimationsEnabled)
	fmt.Fprintf(w, "animation_duration  %s\n", cfg.AnimationDuration)
	fmt.Fprintf(w, "hide_after          %s\n", cfg.HideAfter)
	fmt.Fprintf(w, "notify_on_failure   %t\n", cfg.NotifyOnFailure)
	fmt.Fprintf(w, "log_level           %s\n", cfg.LogLevel)
	fmt.Fprintf(w, "metrics_addr        %s\n", cfg.MetricsAddr)
}

func versionCmd() *cobra.Command {
	var short bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			if short {
				fmt.Fprintln(cmd.OutOrStdout(), version)
				return
			}
			fmt.Fprintf(cmd.OutOrStdout(), "navtitle %s (%s)\n", version, commit)
			fmt.Fprintf(cmd.OutOrStdout(), "Go version: %s\n", runtime.Version())
			fmt.Fprintf(cmd.OutOrStdout(), "OS/Arch:    %s/%s\n", runtime.GOOS, runtime.GOARCH)
		},
	}

	cmd.Flags().BoolVarP(&short, "short", "s", false, "Print only version number")

	return cmd
}
