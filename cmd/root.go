package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/zjrosen/roster/internal/config"
	"github.com/zjrosen/roster/internal/domain/roster"
	"github.com/zjrosen/roster/internal/log"
	approster "github.com/zjrosen/roster/internal/roster/application"
)

var (
	version    = "dev"
	cfgFile    string
	rosterFile string
	debugFlag  bool
	cfg        config.Config
	cfgErr     error

	logCleanup func()
)

var rootCmd = &cobra.Command{
	Use:   "roster",
	Short: "Manage a capacity-bounded register of names",
	Long: `Load a register of names or a list of players from a roster YAML file,
query and reorder the register, and generate player listings and email addresses.`,
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
		"config file (default: ~/.config/roster/config.yaml)")
	rootCmd.PersistentFlags().StringVarP(&rosterFile, "file", "f", "",
		"roster YAML file (default: register.file from config)")
	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false,
		"write a debug log (also enabled by ROSTER_DEBUG)")
}

func initConfig() {
	cfgErr = nil
	defaults := config.Defaults()
	viper.SetDefault("register.capacity", defaults.Register.Capacity)
	viper.SetDefault("register.file", defaults.Register.File)
	viper.SetDefault("log.path", defaults.Log.Path)
	viper.SetDefault("log.level", defaults.Log.Level)

	// Bind flags to viper
	_ = viper.BindPFlag("register.file", rootCmd.PersistentFlags().Lookup("file"))

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		// Config lookup order:
		// 1. .roster/config.yaml (current directory)
		// 2. ~/.config/roster/config.yaml (user config)
		if _, err := os.Stat(config.DefaultConfigPath); err == nil {
			viper.SetConfigFile(config.DefaultConfigPath)
		} else {
			home, _ := os.UserHomeDir()
			viper.AddConfigPath(filepath.Join(home, ".config", "roster"))
			viper.SetConfigName("config")
			viper.SetConfigType("yaml")
		}
	}

	if err := viper.ReadInConfig(); err != nil {
		// No config file found anywhere - create default at .roster/config.yaml
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			if writeErr := config.WriteDefaultConfig(config.DefaultConfigPath); writeErr == nil {
				viper.SetConfigFile(config.DefaultConfigPath)
				_ = viper.ReadInConfig()
			}
			// If write fails, just continue with defaults (no config file)
		}
	}

	if err := viper.Unmarshal(&cfg); err != nil {
		cfgErr = fmt.Errorf("decoding config: %w", err)
	}
}

func setupLogging(cmd *cobra.Command, args []string) error {
	if cfgErr != nil {
		return fmt.Errorf("invalid configuration: %w", cfgErr)
	}
	if err := config.Validate(cfg); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	if os.Getenv("ROSTER_DEBUG") == "" && !debugFlag {
		return nil
	}

	cleanup, err := log.Init(cfg.Log.Path)
	if err != nil {
		return fmt.Errorf("opening debug log: %w", err)
	}
	logCleanup = cleanup

	level, _ := log.ParseLevel(cfg.Log.Level)
	log.SetMinLevel(level)
	log.Info(log.CatCLI, "Command starting", "cmd", cmd.Name(), "config", viper.ConfigFileUsed())
	return nil
}

// loadRegister builds the register described by the selected roster file.
func loadRegister() (*roster.Register, error) {
	file, err := approster.LoadRosterFile(cfg.Register.File)
	if err != nil {
		return nil, fmt.Errorf("loading roster: %w", err)
	}
	return file.BuildRegister(cfg.Register.Capacity), nil
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
