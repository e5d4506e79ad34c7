package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"health-automation-backend/config"

	"github.com/sirupsen/logrus"
)

func TestNewParsesLevel(t *testing.T) {
	log := New(config.LogConfig{Level: "debug"})
	if log.GetLevel() != logrus.DebugLevel {
		t.Errorf("expected debug level, got %s", log.GetLevel())
	}

	log = New(config.LogConfig{Level: "loud"})
	if log.GetLevel() != logrus.InfoLevel {
		t.Errorf("expected fallback to info, got %s", log.GetLevel())
	}
}

func TestNewWritesJSONToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	log := New(config.LogConfig{Level: "info", File: path, MaxSizeMB: 1})

	log.WithField("user_id", 7).Info("user registered")

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}
	line := string(data)
	if !strings.Contains(line, `"msg":"user registered"`) || !strings.Contains(line, `"user_id":7`) {
		t.Errorf("unexpected log line: %s", line)
	}
}
