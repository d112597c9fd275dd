package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewWritesToFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "minefield.log")

	log, err := New("debug", file)
	if err != nil {
		t.Fatal(err)
	}
	log.WithField("x", 3).Debug("cell revealed")

	data, err := os.ReadFile(file)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "cell revealed") || !strings.Contains(string(data), "x=3") {
		t.Errorf("log file missing entry: %q", data)
	}
}

func TestNewRespectsLevel(t *testing.T) {
	file := filepath.Join(t.TempDir(), "minefield.log")

	log, err := New("warn", file)
	if err != nil {
		t.Fatal(err)
	}
	log.Info("quiet")
	log.Warn("loud")

	data, err := os.ReadFile(file)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(data), "quiet") {
		t.Error("info entry written at warn level")
	}
	if !strings.Contains(string(data), "loud") {
		t.Error("warn entry missing")
	}
}

func TestNewInvalidLevel(t *testing.T) {
	if _, err := New("loud", filepath.Join(t.TempDir(), "x.log")); err == nil {
		t.Error("expected an error for an unknown level")
	}
	if log := NewOrDiscard("loud", ""); log == nil {
		t.Error("NewOrDiscard returned nil")
	}
}
