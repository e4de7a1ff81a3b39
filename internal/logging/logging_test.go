package logging

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestNewLogger(t *testing.T) {
	tests := []struct {
		name      string
		level     string
		format    string
		wantLevel logrus.Level
		wantJSON  bool
	}{
		{name: "Defaults", level: "", format: "", wantLevel: logrus.InfoLevel},
		{name: "Debug", level: "debug", format: "text", wantLevel: logrus.DebugLevel},
		{name: "JSONFormat", level: "warn", format: "json", wantLevel: logrus.WarnLevel, wantJSON: true},
		{name: "UnknownLevelFallsBack", level: "chatty", format: "", wantLevel: logrus.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := NewLogger(tt.level, tt.format)
			assert.Equal(t, tt.wantLevel, logger.GetLevel())

			_, isJSON := logger.Formatter.(*logrus.JSONFormatter)
			assert.Equal(t, tt.wantJSON, isJSON)
		})
	}
}

func TestSetAllLogLevels(t *testing.T) {
	first := NewLogger("info", "text")
	second := NewLogger("debug", "text")

	SetAllLogLevels(logrus.ErrorLevel)

	assert.Equal(t, logrus.ErrorLevel, first.GetLevel())
	assert.Equal(t, logrus.ErrorLevel, second.GetLevel())
}
