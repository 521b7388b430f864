package usecase

import (
	"go-clinic-records/internal/domain/entity"
	"go-clinic-records/pkg/validator"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// AppointmentLister is the read side of the appointment registry.
type AppointmentLister interface {
	List() []entity.Appointment
}

type StatisticsUsecase interface {
	ConsultationsBySpecialty() map[string]int
	MostRequestedDoctor() (entity.Doctor, int, bool)
	MostFrequentPatient() (entity.Patient, int, bool)
	MonthlyAverage() decimal.Decimal
	Summary() entity.Report
}

type statisticsUsecase struct {
	log          *logrus.Logger
	appointments AppointmentLister
	doctors      DoctorLookup
	patients     PatientLookup
}

func NewStatisticsUsecase(
	log *logrus.Logger,
	appointments AppointmentLister,
	doctors DoctorLookup,
	patients PatientLookup,
) StatisticsUsecase {
	return &statisticsUsecase{
		log:          log,
		appointments: appointments,
		doctors:      doctors,
		patients:     patients,
	}
}

// ConsultationsBySpecialty counts appointments per specialty of the attending doctor.
func (u *statisticsUsecase) ConsultationsBySpecialty() map[string]int {
	counts := make(map[string]int)
	for _, a := range u.appointments.List() {
		doctor, ok := u.doctors.Find(a.DoctorID)
		if !ok {
			continue
		}
		counts[doctor.Specialty]++
	}
	return counts
}

// MostRequestedDoctor returns the doctor with the most appointments. Ties go
// to the doctor seen first.
func (u *statisticsUsecase) MostRequestedDoctor() (entity.Doctor, int, bool) {
	id, count := mostFrequent(u.appointments.List(), func(a entity.Appointment) string { return a.DoctorID })
	if id == "" {
		return entity.Doctor{}, 0, false
	}
	doctor, ok := u.doctors.Find(id)
	if !ok {
		u.log.Warnf("Most requested doctor %s is not registered", id)
		return entity.Doctor{}, 0, false
	}
	return doctor, count, true
}

func (u *statisticsUsecase) MostFrequentPatient() (entity.Patient, int, bool) {
	id, count := mostFrequent(u.appointments.List(), func(a entity.Appointment) string { return a.PatientID })
	if id == "" {
		return entity.Patient{}, 0, false
	}
	patient, ok := u.patients.Find(id)
	if !ok {
		u.log.Warnf("Most frequent patient %s is not registered", id)
		return entity.Patient{}, 0, false
	}
	return patient, count, true
}

// MonthlyAverage is the number of completed or pending appointments divided
// by the number of distinct months they fall in, rounded to two decimals.
func (u *statisticsUsecase) MonthlyAverage() decimal.Decimal {
	type month struct {
		year  int
		month int
	}

	buckets := make(map[month]int)
	total := 0
	for _, a := range u.appointments.List() {
		if a.IsCancelled() {
			continue
		}
		d, err := validator.ParseDate(a.Date)
		if err != nil {
			u.log.Warnf("Skipping appointment %s with unreadable date %q", a.ID, a.Date)
			continue
		}
		buckets[month{d.Year(), int(d.Month())}]++
		total++
	}

	if len(buckets) == 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(int64(total)).
		Div(decimal.NewFromInt(int64(len(buckets)))).
		Round(2)
}

func (u *statisticsUsecase) Summary() entity.Report {
	report := entity.Report{
		BySpecialty:    u.ConsultationsBySpecialty(),
		MonthlyAverage: u.MonthlyAverage(),
	}
	if d, n, ok := u.MostRequestedDoctor(); ok {
		report.MostRequestedDoctor = &entity.DoctorCount{Doctor: d, Count: n}
	}
	if p, n, ok := u.MostFrequentPatient(); ok {
		report.MostFrequentPatient = &entity.PatientCount{Patient: p, Count: n}
	}
	return report
}

// mostFrequent returns the most common key and its count, preferring the key
// that appeared first on ties.
func mostFrequent(appointments []entity.Appointment, key func(entity.Appointment) string) (string, int) {
	counts := make(map[string]int)
	var order []string
	for _, a := range appointments {
		k := key(a)
		if counts[k] == 0 {
			order = append(order, k)
		}
		counts[k]++
	}

	best, bestCount := "", 0
	for _, k := range order {
		if counts[k] > bestCount {
			best, bestCount = k, counts[k]
		}
	}
	return best, bestCount
}
