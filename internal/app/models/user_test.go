package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRefUnmarshalBareID(t *testing.T) {
	var r Ref
	require.NoError(t, json.Unmarshal([]byte(`"64a1"`), &r))
	assert.Equal(t, "64a1", r.ID)
	assert.Empty(t, r.Name)
}

func TestRefUnmarshalEmbeddedObject(t *testing.T) {
	var r Ref
	require.NoError(t, json.Unmarshal([]byte(`{"_id":"64a1","name":"Dr. Rao","email":"rao@example.edu"}`), &r))
	assert.Equal(t, "64a1", r.ID)
	assert.Equal(t, "Dr. Rao", r.Name)
	assert.Equal(t, "rao@example.edu", r.Email)
}

func TestRefUnmarshalNull(t *testing.T) {
	r := Ref{ID: "stale"}
	require.NoError(t, json.Unmarshal([]byte(`null`), &r))
	assert.True(t, r.IsZero())
}

func TestRefMarshalBareIDWhenOnlyID(t *testing.T) {
	data, err := json.Marshal(Ref{ID: "64a1"})
	require.NoError(t, err)
	assert.Equal(t, `"64a1"`, string(data))
}

func TestRefMarshalObjectWhenPopulated(t *testing.T) {
	data, err := json.Marshal(Ref{ID: "64a1", Name: "Dr. Rao"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"_id":"64a1","name":"Dr. Rao"}`, string(data))
}

func TestRefMatchesRejectsEmptyID(t *testing.T) {
	assert.False(t, Ref{}.Matches(""))
	assert.False(t, Ref{ID: "x"}.Matches(""))
	assert.True(t, Ref{ID: "x"}.Matches("x"))
}

func TestBelongsToAcceptsEitherRecordShape(t *testing.T) {
	direct := User{Role: RoleFaculty, LeadFaculty: Ref{ID: "lead1"}}
	legacy := User{Role: RoleFaculty, AssignedBy: Ref{ID: "lead1"}}
	other := User{Role: RoleFaculty, LeadFaculty: Ref{ID: "lead2"}}

	assert.True(t, direct.BelongsTo(direct.LeadFaculty, "lead1"))
	assert.True(t, legacy.BelongsTo(legacy.LeadFaculty, "lead1"))
	assert.False(t, other.BelongsTo(other.LeadFaculty, "lead1"))
}

func TestStudentRecordUnmarshalInlineSections(t *testing.T) {
	payload := `{
		"_id": "s1",
		"name": "Asha",
		"role": "student",
		"faculty": "f1",
		"projects": [{"_id": "p1", "title": "Solar tracker", "status": "Approved"}],
		"profile": {"firstName": "Asha", "lastName": "Verma"}
	}`

	var rec StudentRecord
	require.NoError(t, json.Unmarshal([]byte(payload), &rec))
	assert.Equal(t, "s1", rec.ID)
	assert.Equal(t, RoleStudent, rec.Role)
	assert.Equal(t, "f1", rec.Faculty.ID)
	require.Len(t, rec.Projects, 1)
	assert.Equal(t, StatusApproved, rec.Projects[0].Status)
	require.NotNil(t, rec.Profile)
	assert.Equal(t, "Asha Verma", rec.Profile.FullName())
}
