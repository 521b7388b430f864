package validator

import (
	"regexp"
	"strings"
	"time"
)

// DateLayout is the day/month/year format used for every date in the system.
const DateLayout = "02/01/2006"

var (
	nameRegex  = regexp.MustCompile(`^[a-zA-ZáéíóúÁÉÍÓÚñÑüÜ\s]{2,}$`)
	phoneRegex = regexp.MustCompile(`^\+?\d{10}$`)
	timeRegex  = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)
)

// ValidName accepts letters (Spanish accented set included) and spaces, with
// at least two letters.
func ValidName(s string) bool {
	if len([]rune(strings.ReplaceAll(strings.TrimSpace(s), " ", ""))) < 2 {
		return false
	}
	return nameRegex.MatchString(s)
}

// ValidPhone accepts exactly 10 digits with an optional leading '+'.
func ValidPhone(s string) bool {
	return phoneRegex.MatchString(s)
}

// ValidTime accepts HH:MM on a 24h clock.
func ValidTime(s string) bool {
	return timeRegex.MatchString(s)
}

// ParseDate parses a DD/MM/YYYY date at local midnight.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, s, time.Local)
}

// ValidDate accepts any calendar date in DD/MM/YYYY form.
func ValidDate(s string) bool {
	_, err := ParseDate(s)
	return err == nil
}

func parseDateIn(s string, loc *time.Location) (time.Time, bool) {
	d, err := time.ParseInLocation(DateLayout, s, loc)
	if err != nil {
		return time.Time{}, false
	}
	return d, true
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// yearsBefore returns the same calendar day n years before t. A 29 February
// with no counterpart maps to 28 February instead of rolling into March.
func yearsBefore(t time.Time, n int) time.Time {
	year := t.Year() - n
	day := t.Day()
	if last := time.Date(year, t.Month()+1, 0, 0, 0, 0, 0, t.Location()).Day(); day > last {
		day = last
	}
	return time.Date(year, t.Month(), day, 0, 0, 0, 0, t.Location())
}

// ValidAppointmentDate reports whether s is strictly after now and at most
// 365 days after today.
func ValidAppointmentDate(s string, now time.Time) bool {
	d, ok := parseDateIn(s, now.Location())
	if !ok {
		return false
	}
	limit := startOfDay(now).AddDate(0, 0, 365)
	return d.After(now) && !d.After(limit)
}

// ValidPatientBirthdate reports whether s is not in the future and no more
// than 200 years ago.
func ValidPatientBirthdate(s string, now time.Time) bool {
	d, ok := parseDateIn(s, now.Location())
	if !ok {
		return false
	}
	today := startOfDay(now)
	return !d.After(today) && !d.Before(yearsBefore(today, 200))
}

// ValidDoctorBirthdate reports whether s gives an age between 25 and 70
// inclusive, using calendar arithmetic.
func ValidDoctorBirthdate(s string, now time.Time) bool {
	d, ok := parseDateIn(s, now.Location())
	if !ok {
		return false
	}
	today := startOfDay(now)
	oldest := yearsBefore(today, 70)
	youngest := yearsBefore(today, 25)
	return !d.Before(oldest) && !d.After(youngest)
}
