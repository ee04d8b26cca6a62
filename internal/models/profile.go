package models

// Profile is the health record as returned by the remote service.
// Numeric fields arrive as JSON numbers when set and are absent otherwise,
// so they are pointers; list fields may be missing entirely for accounts
// that never saved a profile.
type Profile struct {
	Email         string         `json:"email"`
	FirstName     string         `json:"first_name"`
	LastName      string         `json:"last_name"`
	Age           *float64       `json:"age,omitempty"`
	Gender        string         `json:"gender"`
	WeightKg      *float64       `json:"weight_kg,omitempty"`
	HeightCm      *float64       `json:"height_cm,omitempty"`
	ContactNumber string         `json:"contact_number"`
	Address       string         `json:"address"`
	Allergies     []string       `json:"allergies"`
	FamilyHistory []string       `json:"family_history"`
	Surgeries     []Surgery      `json:"surgeries"`
	Prescriptions []Prescription `json:"prescriptions"`
}

// Surgery is one past procedure. Dates travel as YYYY-MM-DD strings.
type Surgery struct {
	Procedure string `json:"procedure"`
	Date      string `json:"date"`
}

// Prescription is one current medication entry.
type Prescription struct {
	Drug      string `json:"drug"`
	Dosage    string `json:"dosage"`
	Frequency string `json:"frequency"`
	Reason    string `json:"reason"`
}

// ProfilePayload is the outbound save body. It deliberately has no email or
// credential fields, so they can never leak into a save regardless of what
// the form posted.
type ProfilePayload struct {
	FirstName     string         `json:"first_name"`
	LastName      string         `json:"last_name"`
	Age           *int           `json:"age,omitempty"`
	Gender        string         `json:"gender"`
	WeightKg      *float64       `json:"weight_kg,omitempty"`
	HeightCm      *float64       `json:"height_cm,omitempty"`
	ContactNumber string         `json:"contact_number"`
	Address       string         `json:"address"`
	Allergies     []string       `json:"allergies"`
	FamilyHistory []string       `json:"family_history"`
	Surgeries     []Surgery      `json:"surgeries"`
	Prescriptions []Prescription `json:"prescriptions"`
}
