package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/mxradar/mxradar/internal/session"
)

// SessionClient is the slice of the API client the auth service depends on:
// the generic call surface plus the session lifecycle.
type SessionClient interface {
	Caller
	Login(ctx context.Context, email, password string) (*session.Profile, error)
	Logout(ctx context.Context) error
	IsAuthenticated() bool
	Profile() *session.Profile
	TokenExpiry() (time.Time, bool)
	ReplaceProfile(ctx context.Context, p session.Profile) error
}

// AuthService covers account lifecycle: sign in/out, registration,
// e-mail verification, password reset, and profile edits.
type AuthService struct {
	c SessionClient
}

func NewAuthService(c SessionClient) *AuthService {
	return &AuthService{c: c}
}

// Login delegates to the client, which stores the issued session atomically.
func (s *AuthService) Login(ctx context.Context, email, password string) (*session.Profile, error) {
	return s.c.Login(ctx, email, password)
}

// Logout clears the local session. Local only; bearer tokens are stateless.
func (s *AuthService) Logout(ctx context.Context) error {
	return s.c.Logout(ctx)
}

func (s *AuthService) IsAuthenticated() bool {
	return s.c.IsAuthenticated()
}

func (s *AuthService) Profile() *session.Profile {
	return s.c.Profile()
}

func (s *AuthService) TokenExpiry() (time.Time, bool) {
	return s.c.TokenExpiry()
}

// Register creates a new account. The account stays unusable until the
// e-mail verification from the confirmation message is completed.
func (s *AuthService) Register(ctx context.Context, email, password, name, company string) (json.RawMessage, error) {
	return s.c.Post(ctx, "/auth/register", map[string]string{
		"email":    email,
		"password": password,
		"name":     name,
		"company":  company,
	})
}

// VerifyEmail confirms a registration with the token from the e-mail.
func (s *AuthService) VerifyEmail(ctx context.Context, token string) (json.RawMessage, error) {
	return s.c.Post(ctx, "/auth/verify", map[string]string{"token": token})
}

// RequestPasswordReset asks the backend to mail a reset token.
func (s *AuthService) RequestPasswordReset(ctx context.Context, email string) (json.RawMessage, error) {
	return s.c.Post(ctx, "/auth/password-reset", map[string]string{"email": email})
}

// ConfirmPasswordReset sets a new password using a mailed reset token.
func (s *AuthService) ConfirmPasswordReset(ctx context.Context, token, newPassword string) (json.RawMessage, error) {
	return s.c.Post(ctx, "/auth/password-reset/confirm", map[string]string{
		"token":    token,
		"password": newPassword,
	})
}

// UpdateProfile sends the edited profile to the backend and, on success,
// replaces the locally stored profile. The token is not touched.
func (s *AuthService) UpdateProfile(ctx context.Context, p session.Profile) (*session.Profile, error) {
	raw, err := s.c.Put(ctx, "/auth/profile", p)
	if err != nil {
		return nil, err
	}

	var updated session.Profile
	if err := json.Unmarshal(raw, &updated); err != nil {
		return nil, fmt.Errorf("decode updated profile: %w", err)
	}
	if err := s.c.ReplaceProfile(ctx, updated); err != nil {
		return nil, err
	}
	return &updated, nil
}
