package hierarchy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emrekaya/folio-gateway/internal/app/models"
)

// A small organization: college C with lead L, faculties F1 and F2 under L,
// and student S1 under F1 with one approved and one pending publication.
func sampleOrg() []models.StudentRecord {
	return []models.StudentRecord{
		{User: models.User{ID: "L", Role: models.RoleLeadFaculty, College: models.Ref{ID: "C"}}},
		{User: models.User{ID: "F1", Role: models.RoleFaculty, LeadFaculty: models.Ref{ID: "L"}}},
		{User: models.User{ID: "F2", Role: models.RoleFaculty, AssignedBy: models.Ref{ID: "L"}}},
		{
			User: models.User{ID: "S1", Role: models.RoleStudent, Faculty: models.Ref{ID: "F1"}},
			Portfolio: models.Portfolio{
				ResearchPublications: []models.Item{
					{ID: "r1", Title: "A", Status: models.StatusApproved},
					{ID: "r2", Title: "B"},
				},
			},
		},
	}
}

func ids(users []models.StudentRecord) []string {
	out := []string{}
	for _, u := range users {
		out = append(out, u.ID)
	}
	return out
}

func TestLeadsOf(t *testing.T) {
	assert.Equal(t, []string{"L"}, ids(LeadsOf(sampleOrg(), "C")))
	assert.Empty(t, LeadsOf(sampleOrg(), "other"))
}

func TestFacultiesOfMatchesBothRecordShapes(t *testing.T) {
	// F1 references its lead directly, F2 only through assignedBy; both
	// must land under L.
	assert.Equal(t, []string{"F1", "F2"}, ids(FacultiesOf(sampleOrg(), "L")))
}

func TestStudentsOf(t *testing.T) {
	assert.Equal(t, []string{"S1"}, ids(StudentsOf(sampleOrg(), "F1")))
	assert.Empty(t, StudentsOf(sampleOrg(), "F2"))
}

func TestEmptyIDReturnsEmptyNotAll(t *testing.T) {
	assert.Empty(t, LeadsOf(sampleOrg(), ""))
	assert.Empty(t, FacultiesOf(sampleOrg(), ""))
	assert.Empty(t, StudentsOf(sampleOrg(), ""))
}

func TestWithRoleAndByID(t *testing.T) {
	users := sampleOrg()
	assert.Len(t, WithRole(users, models.RoleFaculty), 2)
	assert.Empty(t, WithRole(users, models.RoleAdmin))

	u, ok := ByID(users, "S1")
	require.True(t, ok)
	assert.Equal(t, models.RoleStudent, u.Role)

	_, ok = ByID(users, "nope")
	assert.False(t, ok)
}

func TestStatsForCountsAcrossSections(t *testing.T) {
	s1, ok := ByID(sampleOrg(), "S1")
	require.True(t, ok)

	stats := StatsFor(s1.Portfolio)
	assert.Equal(t, Stats{Total: 2, Approved: 1, Completion: 50}, stats)
}

func TestStatsForEmptyPortfolio(t *testing.T) {
	assert.Equal(t, Stats{}, StatsFor(models.Portfolio{}))
}

func TestStatsForRoundsCompletion(t *testing.T) {
	p := models.Portfolio{Projects: []models.Item{
		{Status: models.StatusApproved},
		{Status: models.StatusApproved},
		{},
	}}
	// 2/3 rounds to 67, not truncates to 66.
	assert.Equal(t, 67, StatsFor(p).Completion)
}

func TestStatsForTreatsMissingStatusAsPending(t *testing.T) {
	p := models.Portfolio{Seminars: []models.Item{{Title: "no status"}}}
	stats := StatsFor(p)
	assert.Equal(t, 1, stats.Total)
	assert.Equal(t, 0, stats.Approved)
}
