package entity

// Doctor is a registered doctor. Specialty holds the name of a registered
// specialty; its description is looked up from the specialty registry.
type Doctor struct {
	ID string `json:"id_medico"`
	Person
	Specialty string `json:"especialidad"`
}

// DoctorIDPrefix prefixes every doctor id (MED001).
const DoctorIDPrefix = "MED"
