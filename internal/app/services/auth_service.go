package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/emrekaya/folio-gateway/internal/upstream"
)

// AuthService proxies credential operations to the upstream API. The
// gateway never stores credentials or issues its own tokens.
type AuthService interface {
	Login(ctx context.Context, email, password string) (*upstream.LoginResult, error)
	ChangePassword(ctx context.Context, token, oldPassword, newPassword string) (string, error)
	ForgotPassword(ctx context.Context, email string) (string, error)
	ResetPassword(ctx context.Context, email, otp, newPassword string) (string, error)
}

type authService struct {
	client *upstream.Client
	logger zerolog.Logger
}

// NewAuthService creates an AuthService backed by the upstream API.
func NewAuthService(client *upstream.Client, logger zerolog.Logger) AuthService {
	return &authService{client: client, logger: logger}
}

// Login exchanges credentials for an upstream session token.
func (s *authService) Login(ctx context.Context, email, password string) (*upstream.LoginResult, error) {
	result, err := s.client.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Str("email", email).Str("role", string(result.User.Role)).Msg("User logged in")
	return result, nil
}

// ChangePassword changes the authenticated user's password.
func (s *authService) ChangePassword(ctx context.Context, token, oldPassword, newPassword string) (string, error) {
	return s.client.ChangePassword(ctx, token, oldPassword, newPassword)
}

// ForgotPassword triggers the upstream OTP email.
func (s *authService) ForgotPassword(ctx context.Context, email string) (string, error) {
	return s.client.ForgotPassword(ctx, email)
}

// ResetPassword redeems an OTP for a new password.
func (s *authService) ResetPassword(ctx context.Context, email, otp, newPassword string) (string, error) {
	return s.client.ResetPassword(ctx, email, otp, newPassword)
}
