package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/papapumpkin/loadout/internal/config"
)

var (
	cfg    config.Config
	logger = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "loadout",
	Short: "Assemble skills into a validated loadout",
	Long: `Loadout assembles skills from a catalog into a selection, honouring the
catalog's conflicts, requirements, recommendations, discouragements, and
category rules.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		logger, err = newLogger(cfg)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "config file (default .loadout.yaml)")
	flags.String("catalog", "skills", "catalog directory")
	flags.String("selection", "loadout.toml", "selection file")
	flags.Bool("expert", false, "expert mode: do not block conflicting or unmet skills")
	flags.BoolP("verbose", "v", false, "verbose output")

	_ = viper.BindPFlag("catalog_dir", flags.Lookup("catalog"))
	_ = viper.BindPFlag("selection_file", flags.Lookup("selection"))
	_ = viper.BindPFlag("expert_mode", flags.Lookup("expert"))
	_ = viper.BindPFlag("verbose", flags.Lookup("verbose"))
}

func initConfig() {
	if cfgFile, _ := rootCmd.Flags().GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(".loadout")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
		}
	}

	viper.SetEnvPrefix("LOADOUT")
	viper.AutomaticEnv()

	// It's fine if no config file is found; we use defaults.
	_ = viper.ReadInConfig()
}

// newLogger builds the process logger. Only warnings and errors are shown
// unless verbose is set.
func newLogger(c config.Config) (*zap.Logger, error) {
	zc := zap.NewProductionConfig()
	zc.Encoding = c.LogFormat
	if c.LogFormat == "console" {
		zc.EncoderConfig = zap.NewDevelopmentEncoderConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	if c.Verbose {
		zc.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	zc.DisableStacktrace = true
	return zc.Build()
}
