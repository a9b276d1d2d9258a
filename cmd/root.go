package cmd

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/papapumpkin/orrery/internal/ui"
)

var rootCmd = &cobra.Command{
	Use:   "orrery",
	Short: "Plot the planets around the Sun in the terminal",
	Long: `Orrery resolves where the eight planets are at a moment in time and draws
them on a polar plot centred on the Sun: angle is right ascension, radius is
distance in AU. Without a subcommand it behaves like "orrery show".`,
	Args:          cobra.NoArgs,
	PreRunE:       bindShowFlags,
	RunE:          runShow,
	SilenceErrors: true,
	SilenceUsage:  true,
}

// Execute runs the root command with a context cancelled on SIGINT/SIGTERM.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		if !errors.Is(err, context.Canceled) {
			ui.New().Error(err.Error())
		}
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "config file (default .orrery.yaml)")
	pf.BoolP("verbose", "v", false, "verbose output")
	pf.String("at", "", "observation time, RFC 3339 (default now)")
	pf.String("ephemeris", "", "ephemeris model: builtin or elements")
	pf.String("elements-file", "", "orbital elements TOML for the elements model")
	pf.String("telemetry", "", "append JSONL telemetry events to this file")
	pf.String("log-level", "", "log level: debug, info, warn, error")

	addShowFlags(rootCmd)
}

// persistentKeys maps config keys to the persistent flags that set them.
var persistentKeys = map[string]string{
	"verbose":        "verbose",
	"at":             "at",
	"ephemeris":      "ephemeris",
	"elements_file":  "elements-file",
	"telemetry_path": "telemetry",
	"log_level":      "log-level",
}

func initConfig() {
	pf := rootCmd.PersistentFlags()
	for key, flag := range persistentKeys {
		_ = viper.BindPFlag(key, pf.Lookup(flag))
	}

	// A missing .env is the common case.
	_ = godotenv.Load()

	if cfgFile, _ := pf.GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(".orrery")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
		}
	}

	viper.SetEnvPrefix("ORRERY")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// It's fine if no config file is found; we use defaults.
	_ = viper.ReadInConfig()
}
