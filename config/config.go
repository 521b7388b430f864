package config

import (
	"fmt"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App     AppConfig
	Storage StorageConfig
	Audit   AuditConfig
	Log     LogConfig
}

type AppConfig struct {
	Env string
}

// StorageConfig locates the collection files. File names are relative to DataDir.
type StorageConfig struct {
	DataDir          string
	PatientsFile     string
	DoctorsFile      string
	SpecialtiesFile  string
	AppointmentsFile string
	DiagnosesFile    string
	BackupEnabled    bool
}

type AuditConfig struct {
	Enabled bool
	File    string
}

type LogConfig struct {
	Level  logrus.Level
	Format string
}

var defaults = map[string]interface{}{
	"APP_ENV":           "development",
	"DATA_DIR":          "datos",
	"PATIENTS_FILE":     "pacientes.json",
	"DOCTORS_FILE":      "medicos.json",
	"SPECIALTIES_FILE":  "especialidades.json",
	"APPOINTMENTS_FILE": "citas.json",
	"DIAGNOSES_FILE":    "diagnosticos.json",
	"AUDIT_FILE":        "auditoria.json",
	"BACKUP_ENABLED":    true,
	"AUDIT_ENABLED":     true,
	"LOG_LEVEL":         "info",
	"LOG_FORMAT":        "json",
}

// LoadConfig reads settings from the environment, after loading an optional .env file.
func LoadConfig() (*Config, error) {
	// A missing .env is fine; real environment variables take precedence.
	_ = godotenv.Load()

	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
		_ = v.BindEnv(key)
	}

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	level, err := logrus.ParseLevel(v.GetString("LOG_LEVEL"))
	if err != nil {
		return nil, fmt.Errorf("invalid LOG_LEVEL: %w", err)
	}

	format := v.GetString("LOG_FORMAT")
	if format != "json" && format != "text" {
		return nil, fmt.Errorf("invalid LOG_FORMAT %q: want json or text", format)
	}

	config := &Config{
		App: AppConfig{
			Env: v.GetString("APP_ENV"),
		},
		Storage: StorageConfig{
			DataDir:          v.GetString("DATA_DIR"),
			PatientsFile:     v.GetString("PATIENTS_FILE"),
			DoctorsFile:      v.GetString("DOCTORS_FILE"),
			SpecialtiesFile:  v.GetString("SPECIALTIES_FILE"),
			AppointmentsFile: v.GetString("APPOINTMENTS_FILE"),
			DiagnosesFile:    v.GetString("DIAGNOSES_FILE"),
			BackupEnabled:    v.GetBool("BACKUP_ENABLED"),
		},
		Audit: AuditConfig{
			Enabled: v.GetBool("AUDIT_ENABLED"),
			File:    v.GetString("AUDIT_FILE"),
		},
		Log: LogConfig{
			Level:  level,
			Format: format,
		},
	}

	return config, nil
}

// Path joins a collection file name onto the data directory.
func (c StorageConfig) Path(file string) string {
	return filepath.Join(c.DataDir, file)
}
