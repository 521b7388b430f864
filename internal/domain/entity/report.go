package entity

import "github.com/shopspring/decimal"

// DoctorCount pairs a doctor with the number of appointments they hold.
type DoctorCount struct {
	Doctor Doctor
	Count  int
}

// PatientCount pairs a patient with the number of appointments they booked.
type PatientCount struct {
	Patient Patient
	Count   int
}

// Report is the statistics summary over all appointments.
type Report struct {
	BySpecialty         map[string]int
	MostRequestedDoctor *DoctorCount
	MostFrequentPatient *PatientCount
	MonthlyAverage      decimal.Decimal
}
