package validator

import (
	"reflect"
	"sort"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// Clock returns the current time. Date rules are evaluated against it.
type Clock func() time.Time

type CustomValidator struct {
	validator *validator.Validate
	now       Clock
}

// ValidationError carries one message per offending field.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, e.Fields[k])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func NewValidator(now Clock) *CustomValidator {
	if now == nil {
		now = time.Now
	}

	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})

	cv := &CustomValidator{validator: v, now: now}
	cv.register("clinic_name", ValidName)
	cv.register("clinic_phone", ValidPhone)
	cv.register("clinic_time", ValidTime)
	cv.register("clinic_date", ValidDate)
	cv.registerDated("appointment_date", ValidAppointmentDate)
	cv.registerDated("patient_birthdate", ValidPatientBirthdate)
	cv.registerDated("doctor_birthdate", ValidDoctorBirthdate)

	return cv
}

func (cv *CustomValidator) register(tag string, rule func(string) bool) {
	_ = cv.validator.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
		return rule(fl.Field().String())
	})
}

func (cv *CustomValidator) registerDated(tag string, rule func(string, time.Time) bool) {
	_ = cv.validator.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
		return rule(fl.Field().String(), cv.now())
	})
}

// Validate checks struct tags and returns a *ValidationError on failure.
func (cv *CustomValidator) Validate(i interface{}) error {
	err := cv.validator.Struct(i)
	if err == nil {
		return nil
	}
	if _, ok := err.(validator.ValidationErrors); !ok {
		return err
	}
	return &ValidationError{Fields: cv.FormatValidationErrors(err)}
}

func (cv *CustomValidator) FormatValidationErrors(err error) map[string]string {
	errors := make(map[string]string)

	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		for _, e := range validationErrors {
			field := e.Field()
			switch e.Tag() {
			case "required":
				errors[field] = field + " is required"
			case "min":
				errors[field] = field + " must be at least " + e.Param() + " characters"
			case "max":
				errors[field] = field + " must be at most " + e.Param() + " characters"
			case "clinic_name":
				errors[field] = field + " must contain only letters and spaces (at least 2)"
			case "clinic_phone":
				errors[field] = field + " must be 10 digits, optionally prefixed with +"
			case "clinic_time":
				errors[field] = field + " must be a valid HH:MM time"
			case "clinic_date":
				errors[field] = field + " must be a DD/MM/YYYY date"
			case "appointment_date":
				errors[field] = field + " must be a DD/MM/YYYY date after now and within one year"
			case "patient_birthdate":
				errors[field] = field + " must be a DD/MM/YYYY date not in the future and within 200 years"
			case "doctor_birthdate":
				errors[field] = field + " must be a DD/MM/YYYY date giving an age between 25 and 70"
			default:
				errors[field] = field + " is invalid"
			}
		}
	}

	return errors
}
