package logging

import (
	"testing"

	"github.com/sirupsen/logrus"
)

func TestNew(t *testing.T) {
	tests := []struct {
		level      string
		jsonFormat bool
		wantLevel  logrus.Level
	}{
		{level: "debug", wantLevel: logrus.DebugLevel},
		{level: "warn", jsonFormat: true, wantLevel: logrus.WarnLevel},
		{level: "nonsense", wantLevel: logrus.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			logger := New(tt.level, tt.jsonFormat)
			if logger.GetLevel() != tt.wantLevel {
				t.Errorf("level = %v, want %v", logger.GetLevel(), tt.wantLevel)
			}
			_, isJSON := logger.Formatter.(*logrus.JSONFormatter)
			if isJSON != tt.jsonFormat {
				t.Errorf("JSON formatter = %v, want %v", isJSON, tt.jsonFormat)
			}
		})
	}
}
