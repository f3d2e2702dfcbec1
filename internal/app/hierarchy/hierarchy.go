// Package hierarchy derives the organization tree from the flat user and
// college lists served by the upstream API. The tree is strict:
// College -> Lead Faculty -> Faculty -> Student. Levels with no children
// are valid empty states, not errors.
//
// Nothing here caches: every query re-filters the full list. Data volume
// is institutional scale, so the simplicity is worth more than the speed.
package hierarchy

import (
	"math"

	"github.com/emrekaya/folio-gateway/internal/app/models"
)

// LeadsOf returns the lead faculties of a college. A lead belongs to a
// college when its college reference (object or bare id) or its
// denormalized assignedBy matches the college id.
func LeadsOf(users []models.StudentRecord, collegeID string) []models.StudentRecord {
	return filter(users, models.RoleLeadFaculty, func(u models.User) models.Ref { return u.College }, collegeID)
}

// FacultiesOf returns the faculties supervised by a lead faculty.
func FacultiesOf(users []models.StudentRecord, leadID string) []models.StudentRecord {
	return filter(users, models.RoleFaculty, func(u models.User) models.Ref { return u.LeadFaculty }, leadID)
}

// StudentsOf returns the students supervised by a faculty.
func StudentsOf(users []models.StudentRecord, facultyID string) []models.StudentRecord {
	return filter(users, models.RoleStudent, func(u models.User) models.Ref { return u.Faculty }, facultyID)
}

func filter(users []models.StudentRecord, role models.Role, parent func(models.User) models.Ref, id string) []models.StudentRecord {
	out := []models.StudentRecord{}
	if id == "" {
		return out
	}
	for _, u := range users {
		if u.Role != role {
			continue
		}
		if u.BelongsTo(parent(u.User), id) {
			out = append(out, u)
		}
	}
	return out
}

// WithRole returns all users holding the given role.
func WithRole(users []models.StudentRecord, role models.Role) []models.StudentRecord {
	out := []models.StudentRecord{}
	for _, u := range users {
		if u.Role == role {
			out = append(out, u)
		}
	}
	return out
}

// ByID finds a user by id.
func ByID(users []models.StudentRecord, id string) (models.StudentRecord, bool) {
	for _, u := range users {
		if u.ID == id {
			return u, true
		}
	}
	return models.StudentRecord{}, false
}

// Stats are the per-student submission aggregates shown next to each node.
type Stats struct {
	Total      int `json:"total"`
	Approved   int `json:"approved"`
	Completion int `json:"completion"`
}

// StatsFor sums item counts and approved counts across all twelve sections.
// Completion is approved/total as a rounded percentage, defined as 0 for an
// empty portfolio.
func StatsFor(p models.Portfolio) Stats {
	var s Stats
	for _, cat := range models.Categories {
		for _, item := range p.Section(cat.Key) {
			s.Total++
			if item.EffectiveStatus() == models.StatusApproved {
				s.Approved++
			}
		}
	}
	if s.Total > 0 {
		s.Completion = int(math.Round(float64(s.Approved) / float64(s.Total) * 100))
	}
	return s
}
