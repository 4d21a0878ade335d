package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/phanxgames/unitrates"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// loadConfig sets defaults, reads the optional config file, applies
// UNITRATES_* environment overrides, and binds command flags.
func loadConfig(cmd *cobra.Command) error {
	viper.SetDefault("logLevel", "info")
	viper.SetDefault("scene", "apples")
	viper.SetDefault("scenes", "")
	viper.SetDefault("showAnswers", false)
	viper.SetDefault("debug", false)
	viper.SetDefault("screenshotDir", "screenshots")
	viper.SetDefault("window.width", 1024)
	viper.SetDefault("window.height", 768)
	viper.SetDefault("script.dt", 1.0/60)
	viper.SetDefault("script.maxFrames", 100000)

	viper.SetEnvPrefix("UNITRATES")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	flags := map[string]string{
		"logLevel":    "log-level",
		"scene":       "scene",
		"scenes":      "scenes",
		"showAnswers": "show-answers",
		"debug":       "debug",
	}
	for key, flag := range flags {
		if err := bindFlag(cmd, key, flag); err != nil {
			return err
		}
	}

	configFile, _ := cmd.Flags().GetString("config")
	if configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		viper.SetConfigName("unitrates")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
	}
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return fmt.Errorf("error reading config file: %w", err)
		}
	}
	return nil
}

// bindFlag binds key to the named flag if the command defines it.
func bindFlag(cmd *cobra.Command, key, flag string) error {
	f := cmd.Flags().Lookup(flag)
	if f == nil {
		return nil
	}
	if err := viper.BindPFlag(key, f); err != nil {
		return fmt.Errorf("bind flag %s: %w", flag, err)
	}
	return nil
}

// newLogger builds a console logger at the configured level.
func newLogger(out io.Writer) zerolog.Logger {
	var level zerolog.Level
	switch strings.ToUpper(viper.GetString("logLevel")) {
	case "TRACE":
		level = zerolog.TraceLevel
	case "DEBUG":
		level = zerolog.DebugLevel
	case "WARN":
		level = zerolog.WarnLevel
	case "ERROR":
		level = zerolog.ErrorLevel
	default:
		level = zerolog.InfoLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: time.RFC3339,
	}).Level(level).With().Timestamp().Logger()
}

// loadCatalog returns the scene catalog named by the "scenes" setting, or
// the built-in one.
func loadCatalog() (*unitrates.Catalog, error) {
	path := viper.GetString("scenes")
	if path == "" {
		return unitrates.DefaultCatalog(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenes: %w", err)
	}
	return unitrates.LoadCatalog(data)
}

// sceneDef looks up the configured scene.
func sceneDef() (unitrates.SceneDef, error) {
	catalog, err := loadCatalog()
	if err != nil {
		return unitrates.SceneDef{}, err
	}
	name := viper.GetString("scene")
	def, ok := catalog.Scene(name)
	if !ok {
		return unitrates.SceneDef{}, fmt.Errorf("unknown scene %q (see 'unitrates scenes')", name)
	}
	return def, nil
}
