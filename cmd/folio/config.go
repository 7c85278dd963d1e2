package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/tinytelemetry/folio/internal/logging"
	"github.com/tinytelemetry/folio/internal/model"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// cliConfig holds everything the CLI reads from flags, env and the config file.
type cliConfig struct {
	Content            string        `mapstructure:"content"`
	Skin               string        `mapstructure:"skin"`
	Muted              bool          `mapstructure:"muted"`
	Category           string        `mapstructure:"category"`
	RevealThreshold    float64       `mapstructure:"reveal-threshold"`
	RevealRootMargin   string        `mapstructure:"reveal-root-margin"`
	ReverseScrollWheel bool          `mapstructure:"reverse-scroll-wheel"`
	AnimationInterval  time.Duration `mapstructure:"animation-interval"`
	LogFile            string        `mapstructure:"log-file"`
	LogLevel           string        `mapstructure:"log-level"`
	Debug              bool          `mapstructure:"debug"`
}

// configDir is $HOME/.config/folio; skins live under it.
func configDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "folio")
}

// loadConfig layers flags over FOLIO_* env vars over the config file over
// defaults. cmd may be nil when there are no flags to bind.
func loadConfig(configPath string, cmd *cobra.Command) (cliConfig, error) {
	var cfg cliConfig

	v := viper.New()
	v.SetEnvPrefix("FOLIO")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	v.SetDefault("content", "")
	v.SetDefault("skin", model.DefaultSkin)
	v.SetDefault("muted", model.DefaultMuted)
	v.SetDefault("category", "")
	v.SetDefault("reveal-threshold", model.DefaultRevealThreshold)
	v.SetDefault("reveal-root-margin", model.DefaultRevealRootMargin)
	v.SetDefault("reverse-scroll-wheel", false)
	v.SetDefault("animation-interval", model.DefaultAnimationInterval)
	v.SetDefault("log-file", logging.DefaultFile())
	v.SetDefault("log-level", model.DefaultLogLevel)
	v.SetDefault("debug", false)

	if cmd != nil {
		for _, name := range []string{"content", "skin", "category", "debug"} {
			if f := cmd.Flags().Lookup(name); f != nil {
				if err := v.BindPFlag(name, f); err != nil {
					return cfg, fmt.Errorf("binding --%s: %w", name, err)
				}
			}
		}
	}

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else if dir := configDir(); dir != "" {
		v.SetConfigFile(filepath.Join(dir, "config.yml"))
	}

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFound) && !os.IsNotExist(err) {
			return cfg, err
		}
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, err
	}

	return cfg, nil
}
