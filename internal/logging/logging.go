// Package logging tracks the logrus instances handed out across the
// application so the global log level can be changed in one place.
package logging

import (
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
)

var (
	mu      sync.Mutex
	loggers []*logrus.Logger
)

// NewLogger builds a configured logger and registers it for global level
// changes. Unknown levels fall back to info; any format other than "json"
// selects the full-timestamp text formatter.
func NewLogger(level, format string) *logrus.Logger {
	logger := logrus.New()

	logLevel, err := logrus.ParseLevel(strings.ToLower(level))
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	if strings.EqualFold(format, "json") {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	Register(logger)
	return logger
}

// Register adds a logger to the set affected by SetAllLogLevels.
func Register(logger *logrus.Logger) {
	if logger == nil {
		return
	}
	mu.Lock()
	defer mu.Unlock()
	loggers = append(loggers, logger)
}

// SetAllLogLevels applies the level to the standard logger and every
// registered logger.
func SetAllLogLevels(level logrus.Level) {
	logrus.SetLevel(level)

	mu.Lock()
	defer mu.Unlock()
	for _, logger := range loggers {
		logger.SetLevel(level)
	}
}
