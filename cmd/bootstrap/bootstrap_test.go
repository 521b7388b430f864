package bootstrap

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"go-clinic-records/config"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

func TestSetupLogger(t *testing.T) {
	var buf bytes.Buffer
	log := setupLogger(config.LogConfig{Level: logrus.WarnLevel, Format: "json"}, &buf)

	log.Info("hidden")
	log.Warn("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") || !strings.Contains(out, `"msg":"shown"`) {
		t.Errorf("log output = %q", out)
	}
}

func TestInitializeCommands_WritesConfiguredFiles(t *testing.T) {
	fs := afero.NewMemMapFs()
	cfg := &config.Config{
		Storage: config.StorageConfig{
			DataDir:          "clinica",
			PatientsFile:     "p.json",
			DoctorsFile:      "m.json",
			SpecialtiesFile:  "e.json",
			AppointmentsFile: "c.json",
			DiagnosesFile:    "d.json",
			BackupEnabled:    true,
		},
		Audit: config.AuditConfig{Enabled: true, File: "a.json"},
		Log:   config.LogConfig{Level: logrus.PanicLevel, Format: "json"},
	}
	log := setupLogger(cfg.Log, io.Discard)

	root := initializeCommands(context.Background(), cfg, log, fs, io.Discard)
	root.SetArgs([]string{"specialty", "add", "--name", "Pediatría", "--description", "Niños"})
	if err := root.Execute(); err != nil {
		t.Fatalf("Execute: %v", err)
	}

	for _, path := range []string{"clinica/e.json", "clinica/a.json"} {
		if ok, _ := afero.Exists(fs, path); !ok {
			t.Errorf("%s was not written", path)
		}
	}
}
