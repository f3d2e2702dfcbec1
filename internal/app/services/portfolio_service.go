package services

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"

	"github.com/emrekaya/folio-gateway/internal/app/models"
	"github.com/emrekaya/folio-gateway/internal/pkg/apperrors"
	"github.com/emrekaya/folio-gateway/internal/upstream"
)

// PortfolioService is the one parameterized editor behind all twelve
// portfolio sections. Section differences live entirely in the
// models.Categories schema table.
type PortfolioService interface {
	List(ctx context.Context, token, sectionKey string) ([]models.Item, error)
	Create(ctx context.Context, token, sectionKey string, fields map[string]any) error
	Update(ctx context.Context, token, sectionKey, itemID string, fields map[string]any) error
	Delete(ctx context.Context, token, sectionKey, itemID string) error
	Review(ctx context.Context, token string, in upstream.ReviewInput) error
	Me(ctx context.Context, token string) (*models.StudentRecord, error)
	Student(ctx context.Context, token, id string) (*models.StudentRecord, error)
	UpdateProfile(ctx context.Context, token string, profile models.Profile) error
	UploadPhoto(ctx context.Context, token, filename string, content io.Reader) (string, error)
}

type portfolioService struct {
	client *upstream.Client
	logger zerolog.Logger
}

// NewPortfolioService creates a PortfolioService backed by the upstream API.
func NewPortfolioService(client *upstream.Client, logger zerolog.Logger) PortfolioService {
	return &portfolioService{client: client, logger: logger}
}

func category(sectionKey string) (models.Category, error) {
	cat, ok := models.CategoryByKey(sectionKey)
	if !ok {
		return models.Category{}, apperrors.ErrUnknownSection
	}
	return cat, nil
}

// missingRequired returns the required fields absent or blank in the
// payload. Presence-only checks: there is no cross-field validation.
func missingRequired(cat models.Category, fields map[string]any) []string {
	var missing []string
	for _, name := range cat.Required {
		v, ok := fields[name]
		if !ok {
			missing = append(missing, name)
			continue
		}
		if s, isString := v.(string); isString && strings.TrimSpace(s) == "" {
			missing = append(missing, name)
		}
	}
	return missing
}

// List fetches the authenticated student's items in one section.
func (s *portfolioService) List(ctx context.Context, token, sectionKey string) ([]models.Item, error) {
	cat, err := category(sectionKey)
	if err != nil {
		return nil, err
	}
	return s.client.ListSection(ctx, token, cat)
}

// Create validates required fields from the section schema and forwards
// the payload upstream.
func (s *portfolioService) Create(ctx context.Context, token, sectionKey string, fields map[string]any) error {
	cat, err := category(sectionKey)
	if err != nil {
		return err
	}
	if missing := missingRequired(cat, fields); len(missing) > 0 {
		return apperrors.NewValidationError(fmt.Sprintf("missing required fields: %s", strings.Join(missing, ", ")))
	}
	return s.client.CreateItem(ctx, token, cat, fields)
}

// Update rewrites an item, applying the same required-field check.
func (s *portfolioService) Update(ctx context.Context, token, sectionKey, itemID string, fields map[string]any) error {
	cat, err := category(sectionKey)
	if err != nil {
		return err
	}
	if missing := missingRequired(cat, fields); len(missing) > 0 {
		return apperrors.NewValidationError(fmt.Sprintf("missing required fields: %s", strings.Join(missing, ", ")))
	}
	return s.client.UpdateItem(ctx, token, cat, itemID, fields)
}

// Delete removes an item.
func (s *portfolioService) Delete(ctx context.Context, token, sectionKey, itemID string) error {
	cat, err := category(sectionKey)
	if err != nil {
		return err
	}
	return s.client.DeleteItem(ctx, token, cat, itemID)
}

// Review records a faculty decision. Rejecting with empty feedback is
// refused here — the request never reaches the upstream. Approving with
// empty feedback is fine.
func (s *portfolioService) Review(ctx context.Context, token string, in upstream.ReviewInput) error {
	if _, err := category(in.Section); err != nil {
		return err
	}
	switch in.Status {
	case models.StatusApproved:
	case models.StatusRejected:
		if strings.TrimSpace(in.Feedback) == "" {
			return apperrors.ErrFeedbackRequired
		}
	default:
		return apperrors.ErrInvalidStatus
	}
	if err := s.client.Review(ctx, token, in); err != nil {
		return err
	}
	s.logger.Info().Str("studentId", in.StudentID).Str("section", in.Section).Str("status", string(in.Status)).Msg("Item reviewed")
	return nil
}

// Me fetches the caller's own student record.
func (s *portfolioService) Me(ctx context.Context, token string) (*models.StudentRecord, error) {
	return s.client.Me(ctx, token)
}

// Student fetches one student's record for the faculty view.
func (s *portfolioService) Student(ctx context.Context, token, id string) (*models.StudentRecord, error) {
	return s.client.Student(ctx, token, id)
}

// UpdateProfile writes the caller's profile fields.
func (s *portfolioService) UpdateProfile(ctx context.Context, token string, profile models.Profile) error {
	return s.client.UpdateProfile(ctx, token, profile)
}

// UploadPhoto stores a profile image and returns the stored path.
func (s *portfolioService) UploadPhoto(ctx context.Context, token, filename string, content io.Reader) (string, error) {
	return s.client.Upload(ctx, token, filename, content)
}
