// Root command for the nextis CLI.
package main

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/BasharMawase/Nextis-Admin/internal/paths"
	"github.com/BasharMawase/Nextis-Admin/internal/sqlite"
	"github.com/BasharMawase/Nextis-Admin/pkg/types"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// Global flag values.
var (
	flagConfigDir string
	flagDataDir   string
	flagUploadDir string
	flagVerbose   bool
)

// Config values loaded from config.yaml by PersistentPreRunE so all
// subcommands can use them.
var (
	configDataDir   string
	configUploadDir string
	configListen    string
	configPageSize  int
)

var rootCmd = &cobra.Command{
	Use:     "nextis",
	Short:   "Nextis is a business-contact dashboard backend",
	Version: version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		configDir, err := resolveConfigDir()
		if err != nil {
			return err
		}

		cfg, err := loadConfig(configDir)
		if err != nil {
			return err
		}

		configDataDir = cfg.GetString(cfgKeyDataDir)
		configUploadDir = cfg.GetString(cfgKeyUploadDir)
		configListen = cfg.GetString(cfgKeyListen)
		configPageSize = cfg.GetInt(cfgKeyPageSize)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: platform config dir)")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "data directory (default: $(CWD)/.nextis-db)")
	rootCmd.PersistentFlags().StringVar(&flagUploadDir, "upload-dir", "", "upload storage directory (default: <data-dir>/uploads)")
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "debug logging")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(importCmd)
}

func resolveConfigDir() (string, error) {
	return paths.ResolveConfigDir(flagConfigDir)
}

// buildConfig resolves the effective directories and listen address
// following the flag > config.yaml > env > default precedence.
func buildConfig() (types.Config, error) {
	dataDir, err := paths.ResolveDataDir(flagDataDir, configDataDir)
	if err != nil {
		return types.Config{}, err
	}
	uploadDir, err := paths.ResolveUploadDir(flagUploadDir, configUploadDir, dataDir)
	if err != nil {
		return types.Config{}, err
	}

	cfg := types.Config{
		DataDir:    dataDir,
		UploadDir:  uploadDir,
		ListenAddr: configListen,
		PageSize:   configPageSize,
	}
	if cfg.ListenAddr == "" {
		cfg.ListenAddr = defaultListenAddr
	}
	if cfg.PageSize <= 0 {
		cfg.PageSize = types.DefaultPageSize
	}
	return cfg, cfg.Validate()
}

// attachStore opens the database under the resolved data directory.
func attachStore() (*sqlite.Store, types.Config, error) {
	cfg, err := buildConfig()
	if err != nil {
		return nil, types.Config{}, err
	}
	store := sqlite.NewStore()
	if err := store.Attach(cfg); err != nil {
		return nil, types.Config{}, err
	}
	return store, cfg, nil
}

// newLogger builds the process logger. Console output, debug level
// behind --verbose.
func newLogger() zerolog.Logger {
	level := zerolog.InfoLevel
	if flagVerbose {
		level = zerolog.DebugLevel
	}
	out := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	return zerolog.New(out).Level(level).With().Timestamp().Logger()
}
