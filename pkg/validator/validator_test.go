package validator

import (
	"errors"
	"testing"
	"time"
)

type personForm struct {
	FirstName string `json:"nombre" validate:"required,clinic_name"`
	Phone     string `json:"telefono" validate:"required,clinic_phone"`
	BirthDate string `json:"fecha_nacimiento" validate:"required,doctor_birthdate"`
}

func TestCustomValidator_Validate(t *testing.T) {
	cv := NewValidator(func() time.Time { return fixedNow })

	ok := personForm{FirstName: "Ana", Phone: "5551234567", BirthDate: "01/01/1980"}
	if err := cv.Validate(&ok); err != nil {
		t.Fatalf("Validate(valid) = %v, want nil", err)
	}

	bad := personForm{FirstName: "A1", Phone: "123", BirthDate: "01/01/2020"}
	err := cv.Validate(&bad)

	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("Validate(invalid) error = %T, want *ValidationError", err)
	}
	for _, field := range []string{"nombre", "telefono", "fecha_nacimiento"} {
		if _, ok := verr.Fields[field]; !ok {
			t.Errorf("missing field %q in %v", field, verr.Fields)
		}
	}
}

func TestCustomValidator_UsesInjectedClock(t *testing.T) {
	type form struct {
		Date string `json:"fecha" validate:"appointment_date"`
	}

	cv := NewValidator(func() time.Time { return fixedNow })
	if err := cv.Validate(&form{Date: "19/10/2026"}); err != nil {
		t.Errorf("next day relative to injected clock rejected: %v", err)
	}
	if err := cv.Validate(&form{Date: "18/10/2026"}); err == nil {
		t.Error("same day relative to injected clock accepted")
	}
}
