// Root command for the formsource CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/fieldstudy/formsource/internal/l10n"
	"github.com/fieldstudy/formsource/internal/paths"
	"github.com/fieldstudy/formsource/pkg/formsource"
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
	flagJSON      bool
	flagVerbose   bool
)

// logger is initialized by PersistentPreRunE before any subcommand runs.
var logger *zap.Logger

// strTable holds the active strings table: builtin entries plus any
// strings_file overrides from config.yaml.
var strTable *l10n.Table

var rootCmd = &cobra.Command{
	Use:     "formsource",
	Short:   "Formsource validates and inspects survey task definitions",
	Version: formsource.Version,
	Long: `Formsource is the data layer for survey tasks: steps, form questions,
answers, and async action configurations. The CLI loads task definition
documents, validates them, and inspects their structure.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: platform config dir)")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "output as JSON")
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "enable debug logging")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(inspectCmd)
	rootCmd.AddCommand(templateCmd)
}

// setup initializes logging, loads config.yaml, and builds the strings
// table. Runs before every subcommand.
func setup(cmd *cobra.Command, args []string) error {
	config := zap.NewProductionConfig()
	if flagVerbose {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	var err error
	logger, err = config.Build()
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}

	configDir, err := paths.ResolveConfigDir(flagConfigDir)
	if err != nil {
		return fmt.Errorf("resolve config dir: %w", err)
	}

	cfg, err := loadConfig(configDir)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	logger.Debug("Loaded configuration", zap.String("config_dir", configDir))

	if !flagJSON && cfg.GetString(cfgKeyOutput) == outputJSON {
		flagJSON = true
	}

	strTable = l10n.NewTable()
	if stringsFile := cfg.GetString(cfgKeyStringsFile); stringsFile != "" {
		if err := strTable.LoadFile(stringsFile); err != nil {
			return fmt.Errorf("load strings file: %w", err)
		}
		logger.Debug("Merged strings table", zap.String("path", stringsFile))
	}
	return nil
}
