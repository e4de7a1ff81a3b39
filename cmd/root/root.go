// Package root contains the root command for the application
package root

import (
	"eventpay/sepa-refunds/internal/config"
	"eventpay/sepa-refunds/internal/encoder"
	"eventpay/sepa-refunds/internal/records"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// CommonFlags represents the flags that are common to multiple commands
type CommonFlags struct {
	Input  string
	Output string
}

var (
	// Log is the shared logger instance for commands
	Log = logrus.New()

	// Cfg is the effective configuration, resolved before any command runs
	Cfg *config.Config

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "sepa-refunds",
		Short: "A CLI tool to turn cashless-card refund records into SEPA payment files.",
		Long: `sepa-refunds reads candidate refund records exported by the event
cashless platform and generates a bank-consumable SEPA Credit Transfer
Initiation file (ISO 20022 pain.001.001.03).`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to sepa-refunds!")
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

			// Propagate the configured logger to the pipeline packages.
			encoder.SetLogger(Log)
			records.SetLogger(Log)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if !WriteConfig || Cfg == nil {
				return
			}
			if err := Cfg.Save("config.yaml"); err != nil {
				Log.Warnf("Failed to write config file: %v", err)
				return
			}
			Log.Info("Wrote effective configuration to config.yaml")
		},
	}

	// SharedFlags holds common flags accessible to all commands
	SharedFlags = CommonFlags{}

	// WriteConfig saves the effective configuration after the command runs
	WriteConfig bool
)

// Init initializes the root command and all flags
func Init() {
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Input, "input", "i", "", "Input records file (.csv or .xlsx)")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Output, "output", "o", "", "Output XML file")
	Cmd.PersistentFlags().BoolVar(&WriteConfig, "write-config", false, "Write the effective configuration to config.yaml")
}

// Delimiter resolves the configured CSV delimiter, defaulting to a comma.
func Delimiter() rune {
	if Cfg == nil || Cfg.Records.Delimiter == "" {
		return ','
	}
	return []rune(Cfg.Records.Delimiter)[0]
}
