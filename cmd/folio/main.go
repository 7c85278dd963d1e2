package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/tinytelemetry/folio/internal/content"
	"github.com/tinytelemetry/folio/internal/logging"
	"github.com/tinytelemetry/folio/internal/reveal"
	"github.com/tinytelemetry/folio/internal/tui"

	tea "github.com/charmbracelet/bubbletea"
	_ "github.com/joho/godotenv/autoload"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	version   = "dev"
	commit    = "unknown"
	buildTime = "unknown"
	goVersion = "unknown"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "folio",
		Short:         "Terminal portfolio",
		Long:          "folio renders a portfolio as a single scrolling page in the terminal.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfigFromFlags(cmd)
			if err != nil {
				return err
			}
			return runTUI(cmd.Context(), cfg)
		},
	}

	root.PersistentFlags().String("config", "", "config file (default is $HOME/.config/folio/config.yml)")
	root.PersistentFlags().String("content", "", "portfolio YAML file or directory (default is the built-in portfolio)")
	root.Flags().String("skin", "", "skin name: dark, light, or a file in $HOME/.config/folio/skins")
	root.Flags().String("category", "", "initial projects category")
	root.Flags().Bool("debug", false, "log at debug level")

	root.AddCommand(newSectionsCmd(), newValidateCmd(), newVersionCmd())
	return root
}

func loadConfigFromFlags(cmd *cobra.Command) (cliConfig, error) {
	configPath, _ := cmd.Flags().GetString("config")
	cfg, err := loadConfig(configPath, cmd)
	if err != nil {
		return cfg, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

func runTUI(ctx context.Context, cfg cliConfig) error {
	logger, err := logging.New(logging.Config{File: cfg.LogFile, Level: cfg.LogLevel, Debug: cfg.Debug})
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("starting",
		zap.String("version", version),
		zap.String("content", cfg.Content),
		zap.String("skin", cfg.Skin),
		zap.Bool("muted", cfg.Muted),
		zap.Float64("reveal_threshold", cfg.RevealThreshold),
		zap.String("reveal_root_margin", cfg.RevealRootMargin),
	)

	portfolio, err := content.Load(ctx, cfg.Content)
	if err != nil {
		return err
	}

	skin, err := tui.InitializeSkin(cfg.Skin, configDir())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Failed to load skin '%s': %v (using default)\n", cfg.Skin, err)
		logger.Warn("skin fallback", zap.String("skin", cfg.Skin), zap.Error(err))
	}

	margin, err := reveal.ParseMargin(cfg.RevealRootMargin)
	if err != nil {
		return fmt.Errorf("reveal-root-margin: %w", err)
	}

	page, err := tui.NewModel(tui.Config{
		Portfolio:          portfolio,
		Skin:               skin,
		Muted:              cfg.Muted,
		Reveal:             reveal.Options{Threshold: cfg.RevealThreshold, RootMargin: margin},
		ReverseScrollWheel: cfg.ReverseScrollWheel,
		AnimationInterval:  cfg.AnimationInterval,
		Category:           cfg.Category,
		Logger:             logger,
		Chime:              tui.NewBellChime(os.Stderr),
	})
	if err != nil {
		return err
	}
	defer page.Close()

	p := tea.NewProgram(page, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		if strings.Contains(err.Error(), "TTY") || strings.Contains(err.Error(), "/dev/tty") {
			return fmt.Errorf("TUI requires a real terminal")
		}
		return fmt.Errorf("error running TUI: %w", err)
	}

	return nil
}
