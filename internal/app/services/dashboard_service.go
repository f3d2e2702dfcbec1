package services

import (
	"github.com/emrekaya/folio-gateway/internal/app/hierarchy"
	"github.com/emrekaya/folio-gateway/internal/app/models"
)

// DashboardFilter narrows the dashboard to one college and optionally one
// faculty. Empty strings mean "all".
type DashboardFilter struct {
	CollegeID string `form:"college"`
	FacultyID string `form:"faculty"`
}

// Normalize applies the cascading reset: choosing "all colleges" disables
// the faculty filter and resets it to "all". Required behavior, not an
// optimization.
func (f DashboardFilter) Normalize() DashboardFilter {
	if f.CollegeID == "" {
		f.FacultyID = ""
	}
	return f
}

// CategoryTotals are the per-section submission counters.
type CategoryTotals struct {
	Key         string `json:"key"`
	Label       string `json:"label"`
	Submissions int    `json:"submissions"`
	Approved    int    `json:"approved"`
	Rejected    int    `json:"rejected"`
	Pending     int    `json:"pending"`
}

// DashboardSummary is the cross-tabulation shown on the admin dashboard.
type DashboardSummary struct {
	Leads      int `json:"leadFaculties"`
	Faculties  int `json:"faculties"`
	Admins     int `json:"admins"`
	Students   int `json:"students"`
	Categories []CategoryTotals `json:"categories"`
	Totals     CategoryTotals   `json:"totals"`
}

// FacultyOptions lists the faculties selectable for a college filter: those
// referencing the college directly and those whose lead sits in it. With no
// college selected the faculty filter is disabled, so this returns nil.
func FacultyOptions(snap *OrgSnapshot, collegeID string) []models.StudentRecord {
	if collegeID == "" {
		return nil
	}
	out := []models.StudentRecord{}
	for _, u := range snap.Users {
		if u.Role != models.RoleFaculty {
			continue
		}
		if inCollege(snap, u, collegeID) {
			out = append(out, u)
		}
	}
	return out
}

// Summarize computes role counts and per-section totals for the filtered
// population. Pending is derived as total minus approved minus rejected and
// clamped at zero.
func Summarize(snap *OrgSnapshot, filter DashboardFilter) DashboardSummary {
	filter = filter.Normalize()

	summary := DashboardSummary{}
	students := filteredStudents(snap, filter)

	for _, u := range snap.Users {
		switch u.Role {
		case models.RoleLeadFaculty:
			if filter.CollegeID == "" || u.BelongsTo(u.College, filter.CollegeID) {
				summary.Leads++
			}
		case models.RoleFaculty:
			if filter.CollegeID == "" || inCollege(snap, u, filter.CollegeID) {
				summary.Faculties++
			}
		case models.RoleAdmin:
			summary.Admins++
		}
	}
	summary.Students = len(students)

	summary.Categories = make([]CategoryTotals, 0, len(models.Categories))
	for _, cat := range models.Categories {
		totals := CategoryTotals{Key: cat.Key, Label: cat.Label}
		for _, student := range students {
			for _, item := range student.Section(cat.Key) {
				totals.Submissions++
				switch item.EffectiveStatus() {
				case models.StatusApproved:
					totals.Approved++
				case models.StatusRejected:
					totals.Rejected++
				}
			}
		}
		totals.Pending = totals.Submissions - totals.Approved - totals.Rejected
		if totals.Pending < 0 {
			totals.Pending = 0
		}
		summary.Categories = append(summary.Categories, totals)

		summary.Totals.Submissions += totals.Submissions
		summary.Totals.Approved += totals.Approved
		summary.Totals.Rejected += totals.Rejected
		summary.Totals.Pending += totals.Pending
	}

	return summary
}

// filteredStudents resolves the student population under the filter. With a
// faculty selected, only that faculty's students; with only a college,
// every student reachable from it (own reference or through a faculty of
// the college); otherwise all students.
func filteredStudents(snap *OrgSnapshot, filter DashboardFilter) []models.StudentRecord {
	if filter.FacultyID != "" {
		return hierarchy.StudentsOf(snap.Users, filter.FacultyID)
	}
	if filter.CollegeID == "" {
		return hierarchy.WithRole(snap.Users, models.RoleStudent)
	}

	facultyIDs := map[string]bool{}
	for _, f := range FacultyOptions(snap, filter.CollegeID) {
		facultyIDs[f.ID] = true
	}

	out := []models.StudentRecord{}
	for _, u := range snap.Users {
		if u.Role != models.RoleStudent {
			continue
		}
		if u.BelongsTo(u.College, filter.CollegeID) || facultyIDs[u.Faculty.ID] || facultyIDs[u.AssignedBy.ID] {
			out = append(out, u)
		}
	}
	return out
}
