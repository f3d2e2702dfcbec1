package models

import "encoding/json"

// Role identifies the position of a user inside the organization tree.
type Role string

const (
	RoleSuperAdmin  Role = "superadmin"
	RoleAdmin       Role = "admin"
	RoleLeadFaculty Role = "leadfaculty"
	RoleFaculty     Role = "faculty"
	RoleStudent     Role = "student"
)

// Ref is a reference to another document. The upstream API historically
// serialized these two ways: as a bare id string, or as an embedded object
// with at least an "_id" field. Both shapes must keep working, so Ref
// normalizes them in UnmarshalJSON and all relationship matching goes
// through Matches.
type Ref struct {
	ID    string `json:"_id"`
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
}

// UnmarshalJSON accepts either a bare id string or an embedded object.
func (r *Ref) UnmarshalJSON(data []byte) error {
	if len(data) == 0 || string(data) == "null" {
		*r = Ref{}
		return nil
	}
	if data[0] == '"' {
		var id string
		if err := json.Unmarshal(data, &id); err != nil {
			return err
		}
		*r = Ref{ID: id}
		return nil
	}
	type plain Ref
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*r = Ref(p)
	return nil
}

// MarshalJSON writes the bare id when no other fields are set, matching
// what the upstream API expects on writes.
func (r Ref) MarshalJSON() ([]byte, error) {
	if r.Name == "" && r.Email == "" {
		return json.Marshal(r.ID)
	}
	type plain Ref
	return json.Marshal(plain(r))
}

// Matches reports whether the reference points at the given id.
func (r Ref) Matches(id string) bool {
	return id != "" && r.ID == id
}

// IsZero reports whether the reference is unset.
func (r Ref) IsZero() bool {
	return r.ID == ""
}

// College is an institution in the organization tree.
type College struct {
	ID       string `json:"_id"`
	Name     string `json:"name"`
	Location string `json:"location,omitempty"`
}

// User is any account in the system. The parent references are
// role-dependent: a lead faculty references a college, a faculty references
// its lead faculty, a student references its faculty. AssignedBy is a
// denormalized duplicate of the parent reference kept by older upstream
// records; relationship matching must accept either.
type User struct {
	ID          string `json:"_id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Role        Role   `json:"role"`
	College     Ref    `json:"college,omitempty"`
	LeadFaculty Ref    `json:"leadFaculty,omitempty"`
	Faculty     Ref    `json:"faculty,omitempty"`
	AssignedBy  Ref    `json:"assignedBy,omitempty"`
}

// BelongsTo reports whether the user's direct parent reference or its
// denormalized assignedBy points at the given id. The OR is a
// compatibility shim for the two historical record shapes.
func (u User) BelongsTo(parent Ref, id string) bool {
	return parent.Matches(id) || u.AssignedBy.Matches(id)
}

// StudentRecord is the full student document as returned by the upstream
// API: the account fields plus the twelve portfolio section arrays and the
// optional profile, all at the top level of the JSON object.
type StudentRecord struct {
	User
	Portfolio
	Profile *Profile `json:"profile,omitempty"`
}
