package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"eventpay/sepa-refunds/internal/dateutils"
	"eventpay/sepa-refunds/internal/logging"
)

// Config is the complete file/environment configuration for the CLI.
type Config struct {
	Log struct {
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"log" yaml:"log"`

	Debtor DebtorConfig `mapstructure:"debtor" yaml:"debtor"`

	Options struct {
		GenerationOptions `mapstructure:",squash" yaml:",inline"`
		// ExecutionDate is carried as a string in files and parsed into
		// the options on demand.
		ExecutionDate string `mapstructure:"execution_date" yaml:"execution_date,omitempty"`
	} `mapstructure:"options" yaml:"options"`

	Records struct {
		Delimiter string `mapstructure:"delimiter" yaml:"delimiter"`
	} `mapstructure:"records" yaml:"records"`
}

// InitializeConfig initializes Viper configuration with hierarchical
// loading: defaults, then an optional YAML config file, then SEPA_-prefixed
// environment variables.
func InitializeConfig() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME/.sepa-refunds")
	v.AddConfigPath(".sepa-refunds")
	v.AddConfigPath(".")

	v.SetEnvPrefix("SEPA")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// Continue with defaults and env vars, the file is optional.
			fmt.Printf("Warning: error reading config file %s: %v\n", v.ConfigFileUsed(), err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values.
func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("options.instruction_priority", PriorityNormal)
	v.SetDefault("options.service_level", ServiceLevelSEPA)
	v.SetDefault("options.category_purpose", DefaultCategoryPurpose)
	v.SetDefault("options.charge_bearer", DefaultChargeBearer)
	v.SetDefault("options.batch_booking", true)

	v.SetDefault("records.delimiter", ",")
}

// validateConfig runs struct-tag validation on the unmarshalled config.
// Domain checks (IBAN checksum, character set) happen separately through
// DebtorConfig.Validate when the encoder is constructed.
func validateConfig(config *Config) error {
	validate := validator.New()

	if err := validate.Var(config.Log.Level, "oneof=debug info warn error"); err != nil {
		return fmt.Errorf("log.level must be one of debug, info, warn, error")
	}
	if err := validate.Var(config.Options.InstructionPriority, "omitempty,oneof=NORM HIGH"); err != nil {
		return fmt.Errorf("options.instruction_priority must be NORM or HIGH")
	}
	if err := validate.Var(config.Options.ServiceLevel, "omitempty,oneof=SEPA PRPT"); err != nil {
		return fmt.Errorf("options.service_level must be SEPA or PRPT")
	}
	return nil
}

// GenerationOptions resolves the file-level options into the options the
// encoder consumes, parsing the execution date if one was configured.
func (c *Config) GenerationOptions() (GenerationOptions, error) {
	opts := c.Options.GenerationOptions
	if c.Options.ExecutionDate != "" {
		date, err := dateutils.ParseDate(c.Options.ExecutionDate)
		if err != nil {
			return GenerationOptions{}, fmt.Errorf("invalid options.execution_date: %w", err)
		}
		opts.ExecutionDate = &date
	}
	return opts.Normalized(), nil
}

// ConfigureLoggingFromConfig applies the configured level and format to the
// shared logger.
func ConfigureLoggingFromConfig(config *Config) *logrus.Logger {
	Logger = logging.NewLogger(config.Log.Level, config.Log.Format)
	return Logger
}

// Save writes the configuration to path as YAML. Used by `--write-config`
// to bootstrap a config file from the current effective settings.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}
