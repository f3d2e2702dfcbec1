package dto

// CreateCollegeRequest registers a new college.
type CreateCollegeRequest struct {
	Name     string `json:"name" binding:"required" example:"St. Mary's College"`
	Location string `json:"location" example:"Bengaluru"`
}

// OnboardUserRequest registers a new account. College is required for lead
// faculties; AssignedTo names the supervising lead (for faculties) or
// faculty (for students).
type OnboardUserRequest struct {
	Name       string `json:"name" binding:"required"`
	Email      string `json:"email" binding:"required,email"`
	College    string `json:"college,omitempty"`
	AssignedTo string `json:"assignedTo,omitempty"`
}

// ReassignLeadRequest names the new supervising lead.
type ReassignLeadRequest struct {
	LeadFacultyID string `json:"leadFacultyId" binding:"required"`
}
