package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/zjrosen/pgtail/internal/app"
	"github.com/zjrosen/pgtail/internal/config"
	"github.com/zjrosen/pgtail/internal/log"
)

var (
	version    = "dev"
	cfgFile    string
	themeFlag  string
	debug      bool
	logStderr  bool
	logFile    string
	cfg        config.Config
	configPath string
	logCleanup func()
)

var rootCmd = &cobra.Command{
	Use:   "pgtail",
	Short: "Semantic highlighting for PostgreSQL logs",
	Long: `pgtail colors PostgreSQL server logs by meaning: severities, SQLSTATE codes,
durations graded against thresholds, WAL positions, lock modes, relation names
and the SQL statements embedded in log messages.`,
	Version:           version,
	SilenceUsage:      true,
	PersistentPreRunE: setupLogging,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logCleanup != nil {
			logCleanup()
			logCleanup = nil
		}
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config file (default: .pgtail/config.yaml, then ~/.config/pgtail/config.yaml)")
	rootCmd.PersistentFlags().StringVarP(&themeFlag, "theme", "t", "",
		"theme preset, overrides the config file")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false,
		"write a debug log (also enabled by PGTAIL_DEBUG)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "pgtail-debug.log",
		"debug log path")
	rootCmd.PersistentFlags().BoolVar(&logStderr, "log-stderr", false,
		"also copy debug log entries to stderr (implies --debug)")
}

func initConfig() {
	defaults := config.Defaults()
	viper.SetDefault("display.strip_ansi", defaults.Display.StripANSI)
	viper.SetDefault("display.max_width", defaults.Display.MaxWidth)
	viper.SetDefault("tail.lines", defaults.Tail.Lines)

	userPath, homeErr := config.UserConfigPath()

	if cfgFile != "" {
		path, err := config.ExpandPath(cfgFile)
		if err != nil {
			path = cfgFile
		}
		viper.SetConfigFile(path)
	} else {
		// Config lookup order:
		// 1. .pgtail/config.yaml (current directory)
		// 2. ~/.config/pgtail/config.yaml (user config)
		if _, err := os.Stat(config.LocalConfigPath); err == nil {
			viper.SetConfigFile(config.LocalConfigPath)
		} else if homeErr == nil {
			viper.SetConfigFile(userPath)
		}
	}

	cfg = defaults
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		missing := errors.As(err, &notFound) || errors.Is(err, os.ErrNotExist)
		if missing && cfgFile == "" && homeErr == nil {
			// First run: leave a commented template behind, best effort.
			if writeErr := config.WriteDefaultConfig(afero.NewOsFs(), userPath); writeErr == nil {
				viper.SetConfigFile(userPath)
				_ = viper.ReadInConfig()
			}
		}
	}

	_ = viper.Unmarshal(&cfg)
	if themeFlag != "" {
		cfg.Theme.Preset = themeFlag
	}

	configPath = viper.ConfigFileUsed()
	if configPath == "" && homeErr == nil {
		configPath = userPath
	}
}

func setupLogging(cmd *cobra.Command, args []string) error {
	if !debug && !logStderr && os.Getenv("PGTAIL_DEBUG") == "" {
		return nil
	}
	cleanup, err := log.Init(logFile)
	if err != nil {
		return fmt.Errorf("opening debug log: %w", err)
	}
	logCleanup = cleanup
	if logStderr {
		ctx, cancel := context.WithCancel(context.Background())
		mirrored := log.Mirror(ctx, cmd.ErrOrStderr())
		logCleanup = func() {
			cancel()
			<-mirrored
			cleanup()
		}
	}
	log.Info(log.CatCLI, "command started", "command", cmd.CommandPath(), "config", configPath)
	return nil
}

// newApp validates the loaded configuration and builds the application.
func newApp() (*app.App, error) {
	if err := config.Validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration in %s: %w", configPath, err)
	}
	return app.New(cfg, app.WithConfigPath(configPath))
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion sets the version string (called from main with ldflags)
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}
