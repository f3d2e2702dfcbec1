package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emrekaya/folio-gateway/internal/app/models"
)

func dashboardSnapshot() *OrgSnapshot {
	return &OrgSnapshot{
		Colleges: []models.College{{ID: "C1", Name: "Engineering"}, {ID: "C2", Name: "Arts"}},
		Users: []models.StudentRecord{
			{User: models.User{ID: "A1", Role: models.RoleAdmin}},
			{User: models.User{ID: "L1", Role: models.RoleLeadFaculty, College: models.Ref{ID: "C1"}}},
			{User: models.User{ID: "L2", Role: models.RoleLeadFaculty, College: models.Ref{ID: "C2"}}},
			{User: models.User{ID: "F1", Role: models.RoleFaculty, College: models.Ref{ID: "C1"}, LeadFaculty: models.Ref{ID: "L1"}}},
			// F2 has no college of its own; it reaches C2 through its lead.
			{User: models.User{ID: "F2", Role: models.RoleFaculty, LeadFaculty: models.Ref{ID: "L2"}}},
			{
				User: models.User{ID: "S1", Role: models.RoleStudent, Faculty: models.Ref{ID: "F1"}},
				Portfolio: models.Portfolio{
					Projects: []models.Item{
						{Status: models.StatusApproved},
						{Status: models.StatusRejected},
						{},
					},
				},
			},
			{
				User: models.User{ID: "S2", Role: models.RoleStudent, Faculty: models.Ref{ID: "F2"}},
				Portfolio: models.Portfolio{
					Seminars: []models.Item{{Status: models.StatusApproved}},
				},
			},
		},
	}
}

func TestNormalizeResetsFacultyWithoutCollege(t *testing.T) {
	f := DashboardFilter{CollegeID: "", FacultyID: "F1"}.Normalize()
	assert.Empty(t, f.FacultyID)

	f = DashboardFilter{CollegeID: "C1", FacultyID: "F1"}.Normalize()
	assert.Equal(t, "F1", f.FacultyID)
}

func TestSummarizeUnfiltered(t *testing.T) {
	s := Summarize(dashboardSnapshot(), DashboardFilter{})

	assert.Equal(t, 2, s.Leads)
	assert.Equal(t, 2, s.Faculties)
	assert.Equal(t, 1, s.Admins)
	assert.Equal(t, 2, s.Students)

	require.Len(t, s.Categories, len(models.Categories))
	assert.Equal(t, CategoryTotals{Key: "projects", Label: "Projects", Submissions: 3, Approved: 1, Rejected: 1, Pending: 1}, categoryTotals(t, s, "projects"))
	assert.Equal(t, 4, s.Totals.Submissions)
	assert.Equal(t, 2, s.Totals.Approved)
	assert.Equal(t, 1, s.Totals.Rejected)
	assert.Equal(t, 1, s.Totals.Pending)
}

func TestSummarizeCollegeFilter(t *testing.T) {
	s := Summarize(dashboardSnapshot(), DashboardFilter{CollegeID: "C1"})

	assert.Equal(t, 1, s.Leads)
	assert.Equal(t, 1, s.Faculties)
	assert.Equal(t, 1, s.Students)
	assert.Equal(t, 3, s.Totals.Submissions)
}

func TestSummarizeFacultyFilterIgnoredWithoutCollege(t *testing.T) {
	// The cascading reset: a stale faculty filter with "all colleges"
	// selected must not narrow the population.
	s := Summarize(dashboardSnapshot(), DashboardFilter{FacultyID: "F1"})
	assert.Equal(t, 2, s.Students)
	assert.Equal(t, 4, s.Totals.Submissions)
}

func TestSummarizeFacultyFilter(t *testing.T) {
	s := Summarize(dashboardSnapshot(), DashboardFilter{CollegeID: "C2", FacultyID: "F2"})
	assert.Equal(t, 1, s.Students)
	assert.Equal(t, 1, s.Totals.Submissions)
	assert.Equal(t, 1, s.Totals.Approved)
}

func TestSummarizeEmptyOrg(t *testing.T) {
	s := Summarize(&OrgSnapshot{}, DashboardFilter{})
	assert.Zero(t, s.Students)
	assert.Zero(t, s.Totals.Submissions)
	require.Len(t, s.Categories, len(models.Categories))
	for _, cat := range s.Categories {
		assert.Zero(t, cat.Submissions)
	}
}

func TestFacultyOptions(t *testing.T) {
	snap := dashboardSnapshot()

	assert.Nil(t, FacultyOptions(snap, ""))

	c1 := FacultyOptions(snap, "C1")
	require.Len(t, c1, 1)
	assert.Equal(t, "F1", c1[0].ID)

	// F2 reaches C2 only through its lead's college.
	c2 := FacultyOptions(snap, "C2")
	require.Len(t, c2, 1)
	assert.Equal(t, "F2", c2[0].ID)
}

func categoryTotals(t *testing.T, s DashboardSummary, key string) CategoryTotals {
	t.Helper()
	for _, cat := range s.Categories {
		if cat.Key == key {
			return cat
		}
	}
	t.Fatalf("category %s not in summary", key)
	return CategoryTotals{}
}
