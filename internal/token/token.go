// Package token issues and verifies the signed bearer tokens handed out at
// login. Tokens are stateless HS256 JWTs whose subject is the user ID.
package token

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/msomdec/user-admin/internal/domain"
)

// TTL is the lifetime of every issued token.
const TTL = time.Hour

// Service signs and verifies tokens with a process-wide secret.
type Service struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewService creates a token Service for the given signing secret.
func NewService(secret string) *Service {
	return &Service{
		secret: []byte(secret),
		ttl:    TTL,
		now:    time.Now,
	}
}

// Issue creates a signed token for the given user ID that expires after TTL.
func (s *Service) Issue(userID int64) (string, error) {
	now := s.now()
	claims := jwt.RegisteredClaims{
		ID:        uuid.NewString(),
		Subject:   strconv.FormatInt(userID, 10),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify checks the signature and expiry of tokenString and returns the
// subject user ID. Expired tokens yield domain.ErrExpiredToken; every other
// failure yields domain.ErrInvalidToken.
func (s *Service) Verify(tokenString string) (int64, error) {
	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims,
		func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
			}
			return s.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return 0, domain.ErrExpiredToken
		}
		return 0, domain.ErrInvalidToken
	}

	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil || userID <= 0 {
		return 0, domain.ErrInvalidToken
	}
	return userID, nil
}

// FromAuthorizationHeader extracts the token from an "Authorization: Bearer
// <token>" header value. The scheme is matched case-insensitively.
func FromAuthorizationHeader(header string) (string, error) {
	header = strings.TrimSpace(header)
	if header == "" {
		return "", domain.ErrMissingToken
	}

	scheme, tok, found := strings.Cut(header, " ")
	if !strings.EqualFold(scheme, "Bearer") {
		return "", domain.ErrInvalidToken
	}
	tok = strings.TrimSpace(tok)
	if !found || tok == "" {
		return "", domain.ErrMissingToken
	}
	return tok, nil
}
