package entity

import "strings"

// Person is the identity field set shared by patients and doctors.
type Person struct {
	FirstName string `json:"nombre"`
	LastName  string `json:"apellido"`
	BirthDate string `json:"fecha_nacimiento"`
	Phone     string `json:"telefono"`
}

// FullName renders "LastName, FirstName".
func FullName(p Person) string {
	return p.LastName + ", " + p.FirstName
}

func (p Person) identityKey() [4]string {
	norm := func(s string) string { return strings.ToLower(strings.TrimSpace(s)) }
	return [4]string{norm(p.FirstName), norm(p.LastName), norm(p.BirthDate), norm(p.Phone)}
}

// IsDuplicatePerson reports whether candidate matches any existing record on
// first name, last name, birth date and phone, ignoring case and surrounding
// whitespace.
func IsDuplicatePerson(existing []Person, candidate Person) bool {
	key := candidate.identityKey()
	for _, p := range existing {
		if p.identityKey() == key {
			return true
		}
	}
	return false
}
