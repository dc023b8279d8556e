package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/msomdec/user-admin/internal/domain"
	"github.com/msomdec/user-admin/internal/token"
)

// AuthService handles login and the stages of the request auth gate.
type AuthService struct {
	users  domain.UserRepository
	tokens *token.Service
	hasher *PasswordHasher
}

// NewAuthService creates a new AuthService.
func NewAuthService(users domain.UserRepository, tokens *token.Service, hasher *PasswordHasher) *AuthService {
	return &AuthService{
		users:  users,
		tokens: tokens,
		hasher: hasher,
	}
}

// Login verifies credentials and returns a signed token. Unknown emails and
// wrong passwords both yield domain.ErrAuthenticationFailed.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	if email == "" || password == "" {
		return "", fmt.Errorf("%w: email and password are required", domain.ErrInvalidInput)
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			s.hasher.Burn(password)
			return "", domain.ErrAuthenticationFailed
		}
		return "", fmt.Errorf("get user: %w", err)
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		return "", domain.ErrAuthenticationFailed
	}

	tok, err := s.tokens.Issue(user.ID)
	if err != nil {
		return "", fmt.Errorf("issue token: %w", err)
	}
	return tok, nil
}

// VerifyToken checks a bearer token and returns its subject user ID.
func (s *AuthService) VerifyToken(tokenString string) (int64, error) {
	return s.tokens.Verify(tokenString)
}

// LoadPrincipal resolves the user a verified token refers to.
func (s *AuthService) LoadPrincipal(ctx context.Context, userID int64) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrPrincipalNotFound
		}
		return nil, fmt.Errorf("load principal: %w", err)
	}
	return user, nil
}

// Authenticate runs the token stages of the gate in order: extract the bearer
// token from the Authorization header, verify it, and load the principal.
func (s *AuthService) Authenticate(ctx context.Context, authorization string) (*domain.User, error) {
	tok, err := token.FromAuthorizationHeader(authorization)
	if err != nil {
		return nil, err
	}

	userID, err := s.VerifyToken(tok)
	if err != nil {
		return nil, err
	}

	return s.LoadPrincipal(ctx, userID)
}

// RequireAdmin returns domain.ErrForbidden unless principal is an admin.
func (s *AuthService) RequireAdmin(principal *domain.User) error {
	if principal == nil || !principal.IsAdmin {
		return domain.ErrForbidden
	}
	return nil
}
