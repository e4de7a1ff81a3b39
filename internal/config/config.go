// Package config provides the debtor configuration, generation options,
// and Viper-based file configuration for the encoder and CLI.
package config

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"eventpay/sepa-refunds/internal/logging"
)

var (
	once sync.Once
	// Logger is the logger shared by the CLI commands until configuration
	// replaces it.
	Logger = logrus.New()
)

func init() {
	logging.Register(Logger)
}

// ConfigureLogging sets up logging based on the LOG_LEVEL and LOG_FORMAT
// environment variables and returns the configured logger.
func ConfigureLogging() *logrus.Logger {
	Logger = logging.NewLogger(os.Getenv("LOG_LEVEL"), os.Getenv("LOG_FORMAT"))
	return Logger
}

// LoadEnv loads environment variables from a .env file if one exists.
func LoadEnv() {
	once.Do(func() {
		envFile := ".env"
		if _, err := os.Stat(envFile); os.IsNotExist(err) {
			envFile = filepath.Join("..", ".env")
			if _, err := os.Stat(envFile); os.IsNotExist(err) {
				return
			}
		}

		if err := godotenv.Load(envFile); err != nil {
			Logger.Warnf("Error loading .env file: %v", err)
			return
		}
		ConfigureLogging()
	})
}
