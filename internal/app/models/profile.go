package models

// Profile is the free-form personal data attached one-to-one to a student.
// All fields are optional; the PDF cover page renders whatever is present.
type Profile struct {
	FirstName   string `json:"firstName,omitempty"`
	LastName    string `json:"lastName,omitempty"`
	Email       string `json:"email,omitempty"`
	Phone       string `json:"phone,omitempty"`
	DateOfBirth string `json:"dateOfBirth,omitempty"`
	Gender      string `json:"gender,omitempty"`
	Institution string `json:"institution,omitempty"`
	Program     string `json:"program,omitempty"`
	About       string `json:"about,omitempty"`
	Vision      string `json:"vision,omitempty"`
	Photo       string `json:"photo,omitempty"`
}

// FullName joins the name parts, falling back to whichever is set.
func (p Profile) FullName() string {
	switch {
	case p.FirstName != "" && p.LastName != "":
		return p.FirstName + " " + p.LastName
	case p.FirstName != "":
		return p.FirstName
	default:
		return p.LastName
	}
}
