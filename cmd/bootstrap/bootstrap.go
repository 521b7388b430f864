package bootstrap

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"go-clinic-records/config"
	"go-clinic-records/internal/delivery/cli"
	"go-clinic-records/internal/domain/entity"
	"go-clinic-records/internal/infrastructure/storage"
	"go-clinic-records/internal/repository"
	"go-clinic-records/internal/seeder"
	"go-clinic-records/internal/service"
	"go-clinic-records/internal/usecase"
	"go-clinic-records/pkg/validator"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// App holds all dependencies for the application
type App struct {
	Config *config.Config
	Log    *logrus.Logger
	Fs     afero.Fs
	Root   *cobra.Command
}

// New creates a new App instance with all dependencies initialized
func New(ctx context.Context) (*App, error) {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	// Setup logger
	log := setupLogger(cfg.Log, os.Stderr)
	log.Debugf("Configuration loaded, data directory %s", cfg.Storage.DataDir)

	app := &App{
		Config: cfg,
		Log:    log,
		Fs:     afero.NewOsFs(),
	}
	app.Root = initializeCommands(ctx, cfg, log, app.Fs, os.Stdout)

	return app, nil
}

// setupLogger configures a logrus logger. Logs go to stderr so that command
// output on stdout stays parseable.
func setupLogger(cfg config.LogConfig, out io.Writer) *logrus.Logger {
	log := logrus.New()
	if cfg.Format == "text" {
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	} else {
		log.SetFormatter(&logrus.JSONFormatter{})
	}
	log.SetOutput(out)
	log.SetLevel(cfg.Level)
	return log
}

// initializeCommands loads every registry in dependency order and builds the command tree
func initializeCommands(ctx context.Context, cfg *config.Config, log *logrus.Logger, fs afero.Fs, stdout io.Writer) *cobra.Command {
	st := cfg.Storage

	// Initialize validator
	customValidator := validator.NewValidator(nil)

	// Initialize repositories
	specialtyRepo := repository.NewSpecialtyRepository(storage.NewJSONStore[entity.Specialty](fs, st.Path(st.SpecialtiesFile), st.BackupEnabled))
	patientRepo := repository.NewPatientRepository(storage.NewJSONStore[entity.Patient](fs, st.Path(st.PatientsFile), st.BackupEnabled))
	doctorRepo := repository.NewDoctorRepository(storage.NewJSONStore[entity.Doctor](fs, st.Path(st.DoctorsFile), st.BackupEnabled))
	appointmentRepo := repository.NewAppointmentRepository(storage.NewJSONStore[entity.Appointment](fs, st.Path(st.AppointmentsFile), st.BackupEnabled))
	diagnosisRepo := repository.NewDiagnosisRepository(storage.NewJSONStore[entity.Diagnosis](fs, st.Path(st.DiagnosesFile), st.BackupEnabled))
	auditLogRepo := repository.NewAuditLogRepository(storage.NewJSONStore[entity.AuditLog](fs, st.Path(cfg.Audit.File), false))

	// Initialize services
	auditService := service.NewNoopAuditService()
	if cfg.Audit.Enabled {
		auditService = service.NewAuditService(log, auditLogRepo)
	}

	// Initialize usecases; each registry must be loaded before the ones that reference it
	uc := cli.Usecases{}
	uc.Specialty = usecase.NewSpecialtyUsecase(ctx, log, specialtyRepo, customValidator, auditService)
	uc.Patient = usecase.NewPatientUsecase(ctx, log, patientRepo, customValidator, auditService)
	uc.Doctor = usecase.NewDoctorUsecase(ctx, log, doctorRepo, uc.Specialty, customValidator, auditService)
	uc.Appointment = usecase.NewAppointmentUsecase(ctx, log, appointmentRepo, uc.Patient, uc.Doctor, customValidator, auditService)
	uc.Diagnosis = usecase.NewDiagnosisUsecase(ctx, log, diagnosisRepo, uc.Appointment, uc.Patient, uc.Doctor, customValidator, auditService)
	uc.Statistics = usecase.NewStatisticsUsecase(log, uc.Appointment, uc.Doctor, uc.Patient)
	uc.AuditLog = usecase.NewAuditLogUsecase(log, auditLogRepo)

	dataSeeder := seeder.New(log, gofakeit.New(0), nil, uc.Specialty, uc.Doctor, uc.Patient, uc.Appointment)

	// Initialize handler
	handler := cli.NewHandler(log, uc, dataSeeder, stdout)
	return handler.RootCommand()
}

// Run executes the command line and stops on SIGINT/SIGTERM
func (app *App) Run(args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app.Log.Debugf("Environment: %s", app.Config.App.Env)
	app.Root.SetArgs(args)
	return app.Root.ExecuteContext(ctx)
}
