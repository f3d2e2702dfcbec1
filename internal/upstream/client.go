// Package upstream is the data access layer of the gateway: a typed,
// bearer-authenticated HTTP client for the external portfolio API. All
// persistence, credential checks and email dispatch happen on the other
// side of these calls.
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/emrekaya/folio-gateway/internal/app/models"
	"github.com/emrekaya/folio-gateway/internal/pkg/apperrors"
)

// Client talks to the portfolio API.
type Client struct {
	baseURL string
	http    *http.Client
	logger  zerolog.Logger
}

// NewClient creates a Client for the given base URL.
func NewClient(baseURL string, timeout time.Duration, logger zerolog.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		logger:  logger.With().Str("component", "upstream").Logger(),
	}
}

// CloseIdleConnections releases kept-alive connections to the upstream.
func (c *Client) CloseIdleConnections() {
	c.http.CloseIdleConnections()
}

// messageEnvelope is the error/confirmation body shape of the upstream API.
type messageEnvelope struct {
	Message   string `json:"message"`
	EmailSent *bool  `json:"emailSent,omitempty"`
}

// do issues one request. A non-2xx response is turned into an
// UpstreamError carrying the body's message field when present.
func (c *Client) do(ctx context.Context, token, method, path string, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("upstream request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var env messageEnvelope
		// Decode errors are ignored here: a missing message falls back to
		// the caller's generic per-action message.
		_ = json.NewDecoder(resp.Body).Decode(&env)
		c.logger.Debug().Int("status", resp.StatusCode).Str("path", path).Str("message", env.Message).Msg("Upstream returned an error")
		return apperrors.NewUpstreamError(resp.StatusCode, env.Message)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode upstream response: %w", err)
	}
	return nil
}

// --- Auth ---

// LoginResult is the upstream login response.
type LoginResult struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

// Login exchanges credentials for a session token.
func (c *Client) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	var out LoginResult
	body := map[string]string{"email": email, "password": password}
	if err := c.do(ctx, "", http.MethodPost, epLogin, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ChangePassword changes the authenticated user's password.
func (c *Client) ChangePassword(ctx context.Context, token, oldPassword, newPassword string) (string, error) {
	var out messageEnvelope
	body := map[string]string{"oldPassword": oldPassword, "newPassword": newPassword}
	if err := c.do(ctx, token, http.MethodPost, epChangePassword, body, &out); err != nil {
		return "", err
	}
	return out.Message, nil
}

// ForgotPassword asks the upstream to email a reset OTP.
func (c *Client) ForgotPassword(ctx context.Context, email string) (string, error) {
	var out messageEnvelope
	if err := c.do(ctx, "", http.MethodPost, epForgotPassword, map[string]string{"email": email}, &out); err != nil {
		return "", err
	}
	return out.Message, nil
}

// ResetPassword redeems an OTP for a new password.
func (c *Client) ResetPassword(ctx context.Context, email, otp, newPassword string) (string, error) {
	var out messageEnvelope
	body := map[string]string{"email": email, "otp": otp, "newPassword": newPassword}
	if err := c.do(ctx, "", http.MethodPost, epResetPassword, body, &out); err != nil {
		return "", err
	}
	return out.Message, nil
}

// --- Organization ---

// Colleges fetches the full college list.
func (c *Client) Colleges(ctx context.Context, token string) ([]models.College, error) {
	var out []models.College
	if err := c.do(ctx, token, http.MethodGet, epColleges, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Users fetches the full user list. Student entries carry their portfolio
// section arrays inline.
func (c *Client) Users(ctx context.Context, token string) ([]models.StudentRecord, error) {
	var out []models.StudentRecord
	if err := c.do(ctx, token, http.MethodGet, epUsers, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateResult is the upstream echo for onboarding calls.
type CreateResult struct {
	Message   string `json:"message"`
	EmailSent *bool  `json:"emailSent,omitempty"`
}

// CreateCollege registers a new college.
func (c *Client) CreateCollege(ctx context.Context, token, name, location string) (*CreateResult, error) {
	var out CreateResult
	body := map[string]string{"name": name, "location": location}
	if err := c.do(ctx, token, http.MethodPost, epAddCollege, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// OnboardUserInput is the payload for creating any user account.
type OnboardUserInput struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	CollegeID string `json:"college,omitempty"`
	ParentID  string `json:"assignedTo,omitempty"`
}

// onboardPath maps a role to its creation endpoint.
func onboardPath(role models.Role) (string, error) {
	switch role {
	case models.RoleLeadFaculty:
		return epAddLeadFaculty, nil
	case models.RoleFaculty:
		return epAddFaculty, nil
	case models.RoleStudent:
		return epAddStudent, nil
	case models.RoleAdmin:
		return epAddAdmin, nil
	}
	return "", fmt.Errorf("no onboarding endpoint for role %q", role)
}

// CreateUser registers a new account with the given role.
func (c *Client) CreateUser(ctx context.Context, token string, role models.Role, in OnboardUserInput) (*CreateResult, error) {
	path, err := onboardPath(role)
	if err != nil {
		return nil, err
	}
	var out CreateResult
	if err := c.do(ctx, token, http.MethodPost, path, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteCollege removes a college; the upstream cascades relationships.
func (c *Client) DeleteCollege(ctx context.Context, token, id string) error {
	return c.do(ctx, token, http.MethodDelete, epCollege(id), nil, nil)
}

// DeleteUser removes a user account.
func (c *Client) DeleteUser(ctx context.Context, token, id string) error {
	return c.do(ctx, token, http.MethodDelete, epUser(id), nil, nil)
}

// SetCollegeLead assigns a new lead faculty to a college. The upstream
// demotes any incumbent lead atomically.
func (c *Client) SetCollegeLead(ctx context.Context, token, collegeID, leadFacultyID string) error {
	body := map[string]string{"leadFacultyId": leadFacultyID}
	return c.do(ctx, token, http.MethodPut, epCollegeLead(collegeID), body, nil)
}

// SetUserLead changes the supervising lead of a faculty member.
func (c *Client) SetUserLead(ctx context.Context, token, userID, leadFacultyID string) error {
	body := map[string]string{"leadFacultyId": leadFacultyID}
	return c.do(ctx, token, http.MethodPut, epUserLead(userID), body, nil)
}

// --- Profile and portfolio ---

// Me fetches the authenticated student's full record.
func (c *Client) Me(ctx context.Context, token string) (*models.StudentRecord, error) {
	var out models.StudentRecord
	if err := c.do(ctx, token, http.MethodGet, epProfile, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateProfile writes the student's profile fields.
func (c *Client) UpdateProfile(ctx context.Context, token string, profile models.Profile) error {
	return c.do(ctx, token, http.MethodPut, epProfile, profile, nil)
}

// Student fetches one student's full record for faculty review or export.
func (c *Client) Student(ctx context.Context, token, id string) (*models.StudentRecord, error) {
	var out models.StudentRecord
	if err := c.do(ctx, token, http.MethodGet, epStudent(id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListSection fetches the authenticated student's items in one section.
func (c *Client) ListSection(ctx context.Context, token string, cat models.Category) ([]models.Item, error) {
	var out []models.Item
	if err := c.do(ctx, token, http.MethodGet, epSection(cat.Path), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateItem adds an item to a section. Fields are forwarded as-is; the
// section schemas differ, so the payload stays generic.
func (c *Client) CreateItem(ctx context.Context, token string, cat models.Category, fields map[string]any) error {
	return c.do(ctx, token, http.MethodPost, epSection(cat.Path), fields, nil)
}

// UpdateItem rewrites an item's fields.
func (c *Client) UpdateItem(ctx context.Context, token string, cat models.Category, id string, fields map[string]any) error {
	return c.do(ctx, token, http.MethodPut, epSectionItem(cat.Path, id), fields, nil)
}

// DeleteItem removes an item.
func (c *Client) DeleteItem(ctx context.Context, token string, cat models.Category, id string) error {
	return c.do(ctx, token, http.MethodDelete, epSectionItem(cat.Path, id), nil, nil)
}

// ReviewInput is the faculty review payload.
type ReviewInput struct {
	StudentID string            `json:"studentId"`
	Section   string            `json:"section"`
	ItemID    string            `json:"itemId"`
	Status    models.ItemStatus `json:"status"`
	Feedback  string            `json:"feedback,omitempty"`
}

// Review records a faculty approval or rejection.
func (c *Client) Review(ctx context.Context, token string, in ReviewInput) error {
	return c.do(ctx, token, http.MethodPut, epReview, in, nil)
}

// Upload sends an image as multipart form data and returns the stored path.
func (c *Client) Upload(ctx context.Context, token, filename string, content io.Reader) (string, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return "", fmt.Errorf("failed to build multipart body: %w", err)
	}
	if _, err := io.Copy(part, content); err != nil {
		return "", fmt.Errorf("failed to read upload content: %w", err)
	}
	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("failed to finalize multipart body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+epUpload, &buf)
	if err != nil {
		return "", fmt.Errorf("failed to build upload request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("upload request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var env messageEnvelope
		_ = json.NewDecoder(resp.Body).Decode(&env)
		return "", apperrors.NewUpstreamError(resp.StatusCode, env.Message)
	}

	var out struct {
		Path string `json:"path"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("failed to decode upload response: %w", err)
	}
	return out.Path, nil
}

// FetchAsset downloads a stored file (e.g. a profile photo) by its path.
func (c *Client) FetchAsset(ctx context.Context, token, path string) ([]byte, error) {
	url := path
	if !strings.HasPrefix(path, "http://") && !strings.HasPrefix(path, "https://") {
		url = c.baseURL + "/" + strings.TrimLeft(path, "/")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build asset request: %w", err)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("asset request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, apperrors.NewUpstreamError(resp.StatusCode, "")
	}
	return io.ReadAll(resp.Body)
}
