package config

import (
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestLoadConfig_Defaults(t *testing.T) {
	for key := range defaults {
		t.Setenv(key, "")
	}

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	if cfg.Storage.DataDir != "datos" || cfg.Storage.AppointmentsFile != "citas.json" {
		t.Errorf("storage = %+v", cfg.Storage)
	}
	if !cfg.Storage.BackupEnabled || !cfg.Audit.Enabled {
		t.Errorf("backup/audit should default on: %+v %+v", cfg.Storage, cfg.Audit)
	}
	if cfg.Log.Level != logrus.InfoLevel || cfg.Log.Format != "json" {
		t.Errorf("log = %+v", cfg.Log)
	}
	if got := cfg.Storage.Path(cfg.Storage.PatientsFile); got != filepath.Join("datos", "pacientes.json") {
		t.Errorf("Path = %s", got)
	}
}

func TestLoadConfig_Environment(t *testing.T) {
	t.Setenv("DATA_DIR", "/tmp/clinica")
	t.Setenv("BACKUP_ENABLED", "false")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "text")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Storage.DataDir != "/tmp/clinica" || cfg.Storage.BackupEnabled {
		t.Errorf("storage = %+v", cfg.Storage)
	}
	if cfg.Log.Level != logrus.DebugLevel || cfg.Log.Format != "text" {
		t.Errorf("log = %+v", cfg.Log)
	}
}

func TestLoadConfig_InvalidLogSettings(t *testing.T) {
	tests := []struct {
		name, key, value string
	}{
		{"level", "LOG_LEVEL", "loud"},
		{"format", "LOG_FORMAT", "xml"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			if _, err := LoadConfig(); err == nil {
				t.Errorf("%s=%s accepted", tt.key, tt.value)
			}
		})
	}
}
