package models

// ItemStatus is the review state of a portfolio item.
type ItemStatus string

const (
	StatusPending  ItemStatus = "Pending"
	StatusApproved ItemStatus = "Approved"
	StatusRejected ItemStatus = "Rejected"
)

// Item is one portfolio entry. Every section shares this shape; sections
// differ only in which fields they require (see Category.Required).
type Item struct {
	ID           string     `json:"_id"`
	Title        string     `json:"title"`
	Organization string     `json:"organization,omitempty"`
	Date         string     `json:"date,omitempty"`
	StartDate    string     `json:"startDate,omitempty"`
	EndDate      string     `json:"endDate,omitempty"`
	Description  string     `json:"description,omitempty"`
	Status       ItemStatus `json:"status,omitempty"`
	Feedback     string     `json:"feedback,omitempty"`
}

// EffectiveStatus treats a missing status as Pending, which is what the
// upstream API defaults new items to.
func (i Item) EffectiveStatus() ItemStatus {
	if i.Status == "" {
		return StatusPending
	}
	return i.Status
}

// Portfolio holds the twelve section arrays of a student record. A section
// that is absent on the upstream document is simply a nil slice and
// contributes zero everywhere.
type Portfolio struct {
	ResearchPublications []Item `json:"researchPublications,omitempty"`
	Conferences          []Item `json:"conferences,omitempty"`
	Seminars             []Item `json:"seminars,omitempty"`
	Workshops            []Item `json:"workshops,omitempty"`
	Projects             []Item `json:"projects,omitempty"`
	Internships          []Item `json:"internships,omitempty"`
	Certifications       []Item `json:"certifications,omitempty"`
	Achievements         []Item `json:"achievements,omitempty"`
	Extracurricular      []Item `json:"extracurricular,omitempty"`
	CommunityService     []Item `json:"communityService,omitempty"`
	Reflections          []Item `json:"reflections,omitempty"`
	CareerObjectives     []Item `json:"careerObjectives,omitempty"`
}

// Section returns the items of the named section, nil for unknown keys.
func (p Portfolio) Section(key string) []Item {
	switch key {
	case "researchPublications":
		return p.ResearchPublications
	case "conferences":
		return p.Conferences
	case "seminars":
		return p.Seminars
	case "workshops":
		return p.Workshops
	case "projects":
		return p.Projects
	case "internships":
		return p.Internships
	case "certifications":
		return p.Certifications
	case "achievements":
		return p.Achievements
	case "extracurricular":
		return p.Extracurricular
	case "communityService":
		return p.CommunityService
	case "reflections":
		return p.Reflections
	case "careerObjectives":
		return p.CareerObjectives
	}
	return nil
}

// Column describes one table column in the PDF export.
type Column struct {
	Field  string
	Header string
	Width  float64
}

// Category is the schema of one portfolio section. All twelve editors are
// driven by this table instead of being twelve copies of the same code.
type Category struct {
	Key      string
	Label    string
	Path     string
	Required []string
	Columns  []Column
}

// Categories is the fixed list of portfolio sections, in export order.
var Categories = []Category{
	{
		Key: "researchPublications", Label: "Research & Publications", Path: "research-publications",
		Required: []string{"title", "date"},
		Columns: []Column{
			{Field: "title", Header: "Title", Width: 70},
			{Field: "organization", Header: "Journal / Publisher", Width: 55},
			{Field: "date", Header: "Date", Width: 25},
			{Field: "description", Header: "Summary", Width: 40},
		},
	},
	{
		Key: "conferences", Label: "Conferences", Path: "conferences",
		Required: []string{"title", "organization", "date"},
		Columns: []Column{
			{Field: "title", Header: "Title", Width: 70},
			{Field: "organization", Header: "Organizer", Width: 55},
			{Field: "date", Header: "Date", Width: 25},
			{Field: "description", Header: "Role", Width: 40},
		},
	},
	{
		Key: "seminars", Label: "Seminars & Webinars", Path: "seminars",
		Required: []string{"title", "date"},
		Columns: []Column{
			{Field: "title", Header: "Title", Width: 70},
			{Field: "organization", Header: "Organizer", Width: 55},
			{Field: "date", Header: "Date", Width: 25},
			{Field: "description", Header: "Notes", Width: 40},
		},
	},
	{
		Key: "workshops", Label: "Workshops", Path: "workshops",
		Required: []string{"title", "date"},
		Columns: []Column{
			{Field: "title", Header: "Title", Width: 70},
			{Field: "organization", Header: "Organizer", Width: 55},
			{Field: "date", Header: "Date", Width: 25},
			{Field: "description", Header: "Notes", Width: 40},
		},
	},
	{
		Key: "projects", Label: "Projects", Path: "projects",
		Required: []string{"title", "startDate"},
		Columns: []Column{
			{Field: "title", Header: "Title", Width: 60},
			{Field: "startDate", Header: "From", Width: 25},
			{Field: "endDate", Header: "To", Width: 25},
			{Field: "description", Header: "Description", Width: 80},
		},
	},
	{
		Key: "internships", Label: "Internships", Path: "internships",
		Required: []string{"title", "organization", "startDate"},
		Columns: []Column{
			{Field: "title", Header: "Role", Width: 50},
			{Field: "organization", Header: "Organization", Width: 55},
			{Field: "startDate", Header: "From", Width: 25},
			{Field: "endDate", Header: "To", Width: 25},
			{Field: "description", Header: "Work", Width: 35},
		},
	},
	{
		Key: "certifications", Label: "Certifications", Path: "certifications",
		Required: []string{"title", "organization"},
		Columns: []Column{
			{Field: "title", Header: "Certification", Width: 70},
			{Field: "organization", Header: "Issued By", Width: 55},
			{Field: "date", Header: "Date", Width: 25},
			{Field: "description", Header: "Notes", Width: 40},
		},
	},
	{
		Key: "achievements", Label: "Achievements & Awards", Path: "achievements",
		Required: []string{"title"},
		Columns: []Column{
			{Field: "title", Header: "Achievement", Width: 70},
			{Field: "organization", Header: "Awarded By", Width: 55},
			{Field: "date", Header: "Date", Width: 25},
			{Field: "description", Header: "Details", Width: 40},
		},
	},
	{
		Key: "extracurricular", Label: "Extracurricular Activities", Path: "extracurricular",
		Required: []string{"title"},
		Columns: []Column{
			{Field: "title", Header: "Activity", Width: 70},
			{Field: "organization", Header: "Organization", Width: 55},
			{Field: "date", Header: "Date", Width: 25},
			{Field: "description", Header: "Role", Width: 40},
		},
	},
	{
		Key: "communityService", Label: "Community Service", Path: "community-service",
		Required: []string{"title"},
		Columns: []Column{
			{Field: "title", Header: "Activity", Width: 70},
			{Field: "organization", Header: "Organization", Width: 55},
			{Field: "date", Header: "Date", Width: 25},
			{Field: "description", Header: "Impact", Width: 40},
		},
	},
	{
		Key: "reflections", Label: "Reflections", Path: "reflections",
		Required: []string{"title", "description"},
		Columns: []Column{
			{Field: "title", Header: "Title", Width: 55},
			{Field: "date", Header: "Date", Width: 25},
			{Field: "description", Header: "Reflection", Width: 110},
		},
	},
	{
		Key: "careerObjectives", Label: "Career Objectives", Path: "career-objectives",
		Required: []string{"title", "description"},
		Columns: []Column{
			{Field: "title", Header: "Objective", Width: 55},
			{Field: "date", Header: "Target", Width: 25},
			{Field: "description", Header: "Plan", Width: 110},
		},
	},
}

// CategoryByKey looks up a section schema by its key.
func CategoryByKey(key string) (Category, bool) {
	for _, c := range Categories {
		if c.Key == key {
			return c, true
		}
	}
	return Category{}, false
}

// Field returns the named common field of an item, used when laying out
// export tables from the column schema.
func (i Item) Field(name string) string {
	switch name {
	case "title":
		return i.Title
	case "organization":
		return i.Organization
	case "date":
		return i.Date
	case "startDate":
		return i.StartDate
	case "endDate":
		return i.EndDate
	case "description":
		return i.Description
	}
	return ""
}
