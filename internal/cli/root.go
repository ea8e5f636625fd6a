// internal/cli/root.go
package ortbench

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/signal"

	"github.com/mwiater/ortbench/internal/appconfig"
	"github.com/mwiater/ortbench/internal/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile       string
	loadedFile    string
	currentConfig *appconfig.Config
	appVersion    = "dev"
	appCommit     = "none"
	appDate       = "unknown"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:          "ortbench",
	Short:        "ortbench: ONNX Runtime latency across thread and graph-optimization settings",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := ensureConfigLoaded(); err != nil {
			return err
		}

		var cfg appconfig.Config
		if err := viper.Unmarshal(&cfg); err != nil {
			return fmt.Errorf("unmarshal config: %w", err)
		}
		cfg.ConfigPath = loadedFile
		if err := cfg.Validate(); err != nil {
			return err
		}
		currentConfig = &cfg

		if err := logging.Init(currentConfig.LogFilePath(), currentConfig.Debug); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}

		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", appVersion, appCommit, appDate)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	_ = logging.Close()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	for key, value := range appconfig.Defaults() {
		viper.SetDefault(key, value)
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&cfgFile, "config", "c", appconfig.DefaultConfigPath, "config file (e.g., config/config.json)")

	flags.StringP("model", "m", appconfig.DefaultModelPath, "path to the ONNX model")
	flags.IntP("iterations", "n", appconfig.DefaultIterations, "timed inferences per scenario")
	flags.Int("warmup", appconfig.DefaultWarmup, "untimed inferences per scenario")
	flags.String("library", "", "path to the onnxruntime shared library")
	flags.Uint64("seed", 0, "seed for input generation (0 = entropy)")
	flags.Int("threads", 0, "intra-op threads for multicore scenarios (0 = hardware concurrency)")
	flags.StringSlice("scenario", nil, "only run scenarios whose names contain one of these values")
	flags.String("logFile", "", "path to the log file")
	flags.Bool("debug", false, "echo the run log to stdout")

	_ = viper.BindPFlag("modelPath", flags.Lookup("model"))
	_ = viper.BindPFlag("iterations", flags.Lookup("iterations"))
	_ = viper.BindPFlag("warmup", flags.Lookup("warmup"))
	_ = viper.BindPFlag("sharedLibraryPath", flags.Lookup("library"))
	_ = viper.BindPFlag("seed", flags.Lookup("seed"))
	_ = viper.BindPFlag("threads", flags.Lookup("threads"))
	_ = viper.BindPFlag("scenarios", flags.Lookup("scenario"))
	_ = viper.BindPFlag("logFile", flags.Lookup("logFile"))
	_ = viper.BindPFlag("debug", flags.Lookup("debug"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	}
}

// ensureConfigLoaded reads the config file and validates it against the
// schema. A missing file at the default path means defaults.
func ensureConfigLoaded() error {
	loadedFile = ""
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		missing := errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist)
		if missing && (cfgFile == "" || cfgFile == appconfig.DefaultConfigPath) {
			return nil
		}
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := appconfig.ValidateFile(viper.ConfigFileUsed()); err != nil {
		return err
	}
	loadedFile = viper.ConfigFileUsed()
	return nil
}

// GetConfig returns the loaded application configuration for other packages.
func GetConfig() *appconfig.Config {
	return currentConfig
}

// DebugEnabled returns true if debug mode is enabled.
func DebugEnabled() bool { return viper.GetBool("debug") }

// SetVersionInfo allows the main package to inject build-time variables.
func SetVersionInfo(version, commit, date string) {
	appVersion = version
	appCommit = commit
	appDate = date
}
