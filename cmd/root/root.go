// Package root contains the root command for the application
package root

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"payplan/bnpl-csv/internal/common"
	"payplan/bnpl-csv/internal/config"
	"payplan/bnpl-csv/internal/logging"
	"payplan/bnpl-csv/internal/provider"
)

// CommonFlags are the flags shared by the subcommands.
type CommonFlags struct {
	Input    string
	Output   string
	Timezone string
	Risks    bool
}

var (
	// Log is the shared logrus instance for commands.
	Log = logrus.New()

	// Cfg is the loaded application configuration, set in PersistentPreRun.
	Cfg *config.Config

	// SharedFlags holds flag values common to multiple commands.
	SharedFlags = CommonFlags{}

	// Cmd is the root command.
	Cmd = &cobra.Command{
		Use:   "payplan-csv",
		Short: "Extract BNPL payment reminders into CSV and detect scheduling risks.",
		Long: `payplan-csv converts pasted BNPL (Buy-Now-Pay-Later) payment reminder
emails into structured installment records with confidence scores, and flags
scheduling risks such as same-day payment collisions and weekend autopay.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to payplan-csv!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config.LoadEnv()

			cfg, err := config.InitializeConfig()
			if err != nil {
				Log.Fatalf("Failed to load configuration: %v", err)
			}
			Cfg = cfg
			Log = config.ConfigureLoggingFromConfig(cfg)
			common.SetDelimiter([]rune(cfg.CSV.Delimiter)[0])
		},
	}
)

// Init registers the persistent flags on the root command.
func Init() {
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Input, "input", "i", "", "Input file")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Output, "output", "o", "", "Output file")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Timezone, "timezone", "t", "", "IANA timezone for due dates (default from config)")
	Cmd.PersistentFlags().BoolVar(&SharedFlags.Risks, "risks", false, "Also report scheduling risks")
}

// Logger returns the shared logger wrapped in the logging abstraction.
func Logger() logging.Logger {
	return logging.NewLogrusAdapterFromLogger(Log)
}

// Timezone resolves the effective timezone: the flag when set, otherwise
// the configured default.
func Timezone() string {
	if SharedFlags.Timezone != "" {
		return SharedFlags.Timezone
	}
	if Cfg != nil {
		return Cfg.Extraction.Timezone
	}
	return ""
}

// Registry builds the provider registry, honoring a configured signature
// override file when present.
func Registry() *provider.Registry {
	if Cfg != nil && Cfg.Extraction.ProviderFile != "" {
		registry, err := provider.LoadRegistryFromFile(Cfg.Extraction.ProviderFile)
		if err != nil {
			Log.Fatalf("Failed to load provider override file: %v", err)
		}
		return registry
	}
	return provider.DefaultRegistry()
}
