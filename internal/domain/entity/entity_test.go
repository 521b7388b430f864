package entity

import (
	"errors"
	"testing"
)

func TestIsDuplicatePerson(t *testing.T) {
	existing := []Person{
		{FirstName: "Ana", LastName: "Diaz", BirthDate: "01/01/1990", Phone: "5551234567"},
		{FirstName: "Luis", LastName: "Mora", BirthDate: "02/02/1980", Phone: "5550000000"},
	}

	tests := []struct {
		name      string
		candidate Person
		want      bool
	}{
		{
			name:      "case and whitespace normalized",
			candidate: Person{FirstName: " ana ", LastName: "DIAZ", BirthDate: "01/01/1990", Phone: "5551234567"},
			want:      true,
		},
		{
			name:      "different phone",
			candidate: Person{FirstName: "Ana", LastName: "Diaz", BirthDate: "01/01/1990", Phone: "5551234568"},
			want:      false,
		},
		{
			name:      "different birth date",
			candidate: Person{FirstName: "Luis", LastName: "Mora", BirthDate: "03/02/1980", Phone: "5550000000"},
			want:      false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsDuplicatePerson(existing, tt.candidate); got != tt.want {
				t.Errorf("IsDuplicatePerson = %v, want %v", got, tt.want)
			}
		})
	}

	if IsDuplicatePerson(nil, existing[0]) {
		t.Error("empty registry reported a duplicate")
	}
}

func TestFullName(t *testing.T) {
	if got := FullName(Person{FirstName: "Ana", LastName: "Diaz"}); got != "Diaz, Ana" {
		t.Errorf("FullName = %q", got)
	}
}

func TestAppointmentTransitions(t *testing.T) {
	type step func(a *Appointment) error
	cancel := func(a *Appointment) error { return a.Cancel() }
	complete := func(a *Appointment) error { return a.Complete() }
	move := func(a *Appointment) error { return a.Reschedule("10/10/2027", "10:00") }

	tests := []struct {
		name    string
		from    AppointmentStatus
		op      step
		wantErr bool
		want    AppointmentStatus
	}{
		{"pending cancel", AppointmentStatusPending, cancel, false, AppointmentStatusCancelled},
		{"pending complete", AppointmentStatusPending, complete, false, AppointmentStatusCompleted},
		{"pending reschedule", AppointmentStatusPending, move, false, AppointmentStatusPending},
		{"cancelled cancel", AppointmentStatusCancelled, cancel, true, AppointmentStatusCancelled},
		{"cancelled complete", AppointmentStatusCancelled, complete, true, AppointmentStatusCancelled},
		{"cancelled reschedule", AppointmentStatusCancelled, move, true, AppointmentStatusCancelled},
		{"completed cancel", AppointmentStatusCompleted, cancel, true, AppointmentStatusCompleted},
		{"completed complete", AppointmentStatusCompleted, complete, true, AppointmentStatusCompleted},
		{"completed reschedule", AppointmentStatusCompleted, move, true, AppointmentStatusCompleted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := &Appointment{ID: "CIT001", Date: "01/01/2027", Time: "09:00", Status: tt.from}
			err := tt.op(a)
			if tt.wantErr != (err != nil) {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidStatusTransition) {
				t.Errorf("err = %v, want ErrInvalidStatusTransition", err)
			}
			if a.Status != tt.want {
				t.Errorf("status = %q, want %q", a.Status, tt.want)
			}
			if tt.wantErr && (a.Date != "01/01/2027" || a.Time != "09:00") {
				t.Error("rejected transition mutated date/time")
			}
		})
	}
}
