package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emrekaya/folio-gateway/internal/app/models"
	"github.com/emrekaya/folio-gateway/internal/pkg/apperrors"
	"github.com/emrekaya/folio-gateway/internal/upstream"
)

// fakeUpstream is an httptest stub of the portfolio API serving a fixed
// organization and recording every mutating request it receives.
type fakeUpstream struct {
	server   *http.ServeMux
	mu       sync.Mutex
	requests []string
	users    []models.StudentRecord
	colleges []models.College
}

func newFakeUpstream(colleges []models.College, users []models.StudentRecord) *fakeUpstream {
	f := &fakeUpstream{colleges: colleges, users: users}
	mux := http.NewServeMux()
	mux.HandleFunc("/api/admin/colleges", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(f.colleges)
	})
	mux.HandleFunc("/api/admin/users", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(f.users)
	})
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		f.requests = append(f.requests, r.Method+" "+r.URL.Path)
		f.mu.Unlock()
		json.NewEncoder(w).Encode(map[string]string{"message": "ok"})
	})
	f.server = mux
	return f
}

func (f *fakeUpstream) recorded() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string{}, f.requests...)
}

func orgFixture() ([]models.College, []models.StudentRecord) {
	colleges := []models.College{{ID: "C1", Name: "Engineering"}}
	users := []models.StudentRecord{
		{User: models.User{ID: "L1", Role: models.RoleLeadFaculty, College: models.Ref{ID: "C1"}}},
		{User: models.User{ID: "L2", Role: models.RoleLeadFaculty, College: models.Ref{ID: "C2"}}},
		{User: models.User{ID: "F1", Role: models.RoleFaculty, College: models.Ref{ID: "C1"}, LeadFaculty: models.Ref{ID: "L1"}}},
		{User: models.User{ID: "F2", Role: models.RoleFaculty, LeadFaculty: models.Ref{ID: "L2"}}},
		{User: models.User{ID: "S1", Role: models.RoleStudent, Faculty: models.Ref{ID: "F1"}}},
	}
	return colleges, users
}

func newTestOrgService(t *testing.T) (OrgService, *fakeUpstream) {
	t.Helper()
	colleges, users := orgFixture()
	fake := newFakeUpstream(colleges, users)
	srv := httptest.NewServer(fake.server)
	t.Cleanup(srv.Close)

	client := upstream.NewClient(srv.URL, 5*time.Second, zerolog.Nop())
	return NewOrgService(client, zerolog.Nop()), fake
}

func TestSnapshotFetchesCollegesAndUsers(t *testing.T) {
	svc, _ := newTestOrgService(t)

	snap, err := svc.Snapshot(context.Background(), "tok")
	require.NoError(t, err)
	assert.Len(t, snap.Colleges, 1)
	assert.Len(t, snap.Users, 5)
}

func TestDeleteUserRefetchesSnapshot(t *testing.T) {
	svc, fake := newTestOrgService(t)

	snap, err := svc.DeleteUser(context.Background(), "tok", "S1")
	require.NoError(t, err)
	require.NotNil(t, snap)
	assert.Equal(t, []string{"DELETE /api/admin/user/S1"}, fake.recorded())
}

func TestPromoteIssuesCollegeLeadChange(t *testing.T) {
	svc, fake := newTestOrgService(t)

	snap, err := svc.Promote(context.Background(), "tok", "F1")
	require.NoError(t, err)
	require.NotNil(t, snap)
	assert.Equal(t, []string{"PUT /api/admin/college/C1/lead"}, fake.recorded())
}

func TestPromoteResolvesCollegeThroughLead(t *testing.T) {
	// F2 carries no college reference of its own; promotion must target
	// the college of its supervising lead.
	svc, fake := newTestOrgService(t)

	_, err := svc.Promote(context.Background(), "tok", "F2")
	require.NoError(t, err)
	assert.Equal(t, []string{"PUT /api/admin/college/C2/lead"}, fake.recorded())
}

func TestPromoteRejectsNonFaculty(t *testing.T) {
	svc, fake := newTestOrgService(t)

	_, err := svc.Promote(context.Background(), "tok", "S1")
	assert.ErrorIs(t, err, apperrors.ErrNotAFaculty)

	_, err = svc.Promote(context.Background(), "tok", "nope")
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)

	assert.Empty(t, fake.recorded())
}

func TestReassignCollegeLead(t *testing.T) {
	svc, fake := newTestOrgService(t)

	_, err := svc.ReassignCollegeLead(context.Background(), "tok", "C1", "L2")
	require.NoError(t, err)
	assert.Equal(t, []string{"PUT /api/admin/college/C1/lead"}, fake.recorded())
}

func TestCollegeLeadCandidates(t *testing.T) {
	colleges, users := orgFixture()
	snap := &OrgSnapshot{Colleges: colleges, Users: users}

	// For C1: L2 (a lead elsewhere) plus F1 (faculty inside the college).
	// L1 is the incumbent and F2 sits under another college's lead.
	got := CollegeLeadCandidates(snap, "C1")
	assert.ElementsMatch(t, []string{"L2", "F1"}, candidateIDs(got))
}

func TestFacultyLeadCandidatesAreLeadsOnly(t *testing.T) {
	colleges, users := orgFixture()
	snap := &OrgSnapshot{Colleges: colleges, Users: users}

	// For F1: every lead except its current one. Faculties are never
	// candidates here, unlike the college case.
	got := FacultyLeadCandidates(snap, "F1")
	assert.Equal(t, []string{"L2"}, candidateIDs(got))
}

func TestFacultyLeadCandidatesLegacyAssignedBy(t *testing.T) {
	snap := &OrgSnapshot{Users: []models.StudentRecord{
		{User: models.User{ID: "L1", Role: models.RoleLeadFaculty}},
		{User: models.User{ID: "L2", Role: models.RoleLeadFaculty}},
		{User: models.User{ID: "F1", Role: models.RoleFaculty, AssignedBy: models.Ref{ID: "L1"}}},
	}}

	got := FacultyLeadCandidates(snap, "F1")
	assert.Equal(t, []string{"L2"}, candidateIDs(got))
}

func candidateIDs(users []models.StudentRecord) []string {
	out := []string{}
	for _, u := range users {
		out = append(out, u.ID)
	}
	return out
}
