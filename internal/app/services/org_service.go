package services

import (
	"context"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/emrekaya/folio-gateway/internal/app/hierarchy"
	"github.com/emrekaya/folio-gateway/internal/app/models"
	"github.com/emrekaya/folio-gateway/internal/pkg/apperrors"
	"github.com/emrekaya/folio-gateway/internal/upstream"
)

// OrgSnapshot is the full organization state: every college and every user.
// Mutations never patch a snapshot in place; they re-fetch a fresh one so
// the gateway's answer always matches the upstream.
type OrgSnapshot struct {
	Colleges []models.College       `json:"colleges"`
	Users    []models.StudentRecord `json:"users"`
}

// OrgService exposes the organization tree and its mutation flows.
type OrgService interface {
	Snapshot(ctx context.Context, token string) (*OrgSnapshot, error)
	DeleteCollege(ctx context.Context, token, id string) (*OrgSnapshot, error)
	DeleteUser(ctx context.Context, token, id string) (*OrgSnapshot, error)
	ReassignCollegeLead(ctx context.Context, token, collegeID, newLeadID string) (*OrgSnapshot, error)
	ReassignFacultyLead(ctx context.Context, token, facultyID, newLeadID string) (*OrgSnapshot, error)
	Promote(ctx context.Context, token, facultyID string) (*OrgSnapshot, error)
	CreateCollege(ctx context.Context, token, name, location string) (*upstream.CreateResult, error)
	OnboardUser(ctx context.Context, token string, role models.Role, in upstream.OnboardUserInput) (*upstream.CreateResult, error)
}

type orgService struct {
	client *upstream.Client
	logger zerolog.Logger
}

// NewOrgService creates an OrgService backed by the upstream API.
func NewOrgService(client *upstream.Client, logger zerolog.Logger) OrgService {
	return &orgService{client: client, logger: logger}
}

// Snapshot fetches colleges and users concurrently.
func (s *orgService) Snapshot(ctx context.Context, token string) (*OrgSnapshot, error) {
	snap := &OrgSnapshot{}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		colleges, err := s.client.Colleges(gctx, token)
		if err != nil {
			return err
		}
		snap.Colleges = colleges
		return nil
	})
	g.Go(func() error {
		users, err := s.client.Users(gctx, token)
		if err != nil {
			return err
		}
		snap.Users = users
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return snap, nil
}

// DeleteCollege removes a college and returns the refreshed snapshot.
// On failure local state is untouched: no snapshot is returned and the
// upstream message propagates.
func (s *orgService) DeleteCollege(ctx context.Context, token, id string) (*OrgSnapshot, error) {
	if err := s.client.DeleteCollege(ctx, token, id); err != nil {
		return nil, err
	}
	s.logger.Info().Str("collegeId", id).Msg("College deleted")
	return s.Snapshot(ctx, token)
}

// DeleteUser removes a user and returns the refreshed snapshot.
func (s *orgService) DeleteUser(ctx context.Context, token, id string) (*OrgSnapshot, error) {
	if err := s.client.DeleteUser(ctx, token, id); err != nil {
		return nil, err
	}
	s.logger.Info().Str("userId", id).Msg("User deleted")
	return s.Snapshot(ctx, token)
}

// ReassignCollegeLead installs a new lead for a college. The upstream
// demotes any incumbent; the gateway only re-fetches.
func (s *orgService) ReassignCollegeLead(ctx context.Context, token, collegeID, newLeadID string) (*OrgSnapshot, error) {
	if err := s.client.SetCollegeLead(ctx, token, collegeID, newLeadID); err != nil {
		return nil, err
	}
	s.logger.Info().Str("collegeId", collegeID).Str("leadId", newLeadID).Msg("College lead reassigned")
	return s.Snapshot(ctx, token)
}

// ReassignFacultyLead moves a faculty member under a different lead.
func (s *orgService) ReassignFacultyLead(ctx context.Context, token, facultyID, newLeadID string) (*OrgSnapshot, error) {
	if err := s.client.SetUserLead(ctx, token, facultyID, newLeadID); err != nil {
		return nil, err
	}
	s.logger.Info().Str("facultyId", facultyID).Str("leadId", newLeadID).Msg("Faculty lead reassigned")
	return s.Snapshot(ctx, token)
}

// Promote elevates a faculty member to lead of their own college. The
// incumbent demotion happens upstream; the gateway resolves the college,
// issues the lead change and re-fetches.
func (s *orgService) Promote(ctx context.Context, token, facultyID string) (*OrgSnapshot, error) {
	snap, err := s.Snapshot(ctx, token)
	if err != nil {
		return nil, err
	}

	faculty, ok := hierarchy.ByID(snap.Users, facultyID)
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	if faculty.Role != models.RoleFaculty {
		return nil, apperrors.ErrNotAFaculty
	}

	collegeID := collegeOf(snap, faculty)
	if collegeID == "" {
		return nil, apperrors.ErrNoCollege
	}

	if err := s.client.SetCollegeLead(ctx, token, collegeID, facultyID); err != nil {
		return nil, err
	}
	s.logger.Info().Str("facultyId", facultyID).Str("collegeId", collegeID).Msg("Faculty promoted to lead")
	return s.Snapshot(ctx, token)
}

// CreateCollege registers a new college upstream.
func (s *orgService) CreateCollege(ctx context.Context, token, name, location string) (*upstream.CreateResult, error) {
	return s.client.CreateCollege(ctx, token, name, location)
}

// OnboardUser registers a new account upstream.
func (s *orgService) OnboardUser(ctx context.Context, token string, role models.Role, in upstream.OnboardUserInput) (*upstream.CreateResult, error) {
	return s.client.CreateUser(ctx, token, role, in)
}

// collegeOf resolves the college a user sits under: directly, or through
// the college of their supervising lead.
func collegeOf(snap *OrgSnapshot, u models.StudentRecord) string {
	if !u.College.IsZero() {
		return u.College.ID
	}
	leadID := u.LeadFaculty.ID
	if leadID == "" {
		leadID = u.AssignedBy.ID
	}
	if lead, ok := hierarchy.ByID(snap.Users, leadID); ok {
		return lead.College.ID
	}
	return ""
}

// CollegeLeadCandidates lists who may become the lead of a college: every
// lead faculty elsewhere in the system, plus every faculty currently inside
// the college (promotion candidates). The asymmetry against
// FacultyLeadCandidates is deliberate — a college may acquire its first
// lead by promotion, a faculty member's lead may only be swapped among
// existing leads.
func CollegeLeadCandidates(snap *OrgSnapshot, collegeID string) []models.StudentRecord {
	currentLeadIDs := map[string]bool{}
	for _, lead := range hierarchy.LeadsOf(snap.Users, collegeID) {
		currentLeadIDs[lead.ID] = true
	}

	out := []models.StudentRecord{}
	for _, u := range snap.Users {
		switch u.Role {
		case models.RoleLeadFaculty:
			if !currentLeadIDs[u.ID] {
				out = append(out, u)
			}
		case models.RoleFaculty:
			if inCollege(snap, u, collegeID) {
				out = append(out, u)
			}
		}
	}
	return out
}

// FacultyLeadCandidates lists the leads a faculty member may be moved
// under: every lead except the current one.
func FacultyLeadCandidates(snap *OrgSnapshot, facultyID string) []models.StudentRecord {
	currentLeadID := ""
	if faculty, ok := hierarchy.ByID(snap.Users, facultyID); ok {
		currentLeadID = faculty.LeadFaculty.ID
		if currentLeadID == "" {
			currentLeadID = faculty.AssignedBy.ID
		}
	}

	out := []models.StudentRecord{}
	for _, u := range snap.Users {
		if u.Role == models.RoleLeadFaculty && u.ID != currentLeadID {
			out = append(out, u)
		}
	}
	return out
}

// inCollege reports whether a faculty sits in the college, directly or
// through its lead's college.
func inCollege(snap *OrgSnapshot, u models.StudentRecord, collegeID string) bool {
	if u.BelongsTo(u.College, collegeID) {
		return true
	}
	return collegeOf(snap, u) == collegeID
}
