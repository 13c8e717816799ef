package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrBadCredentials = errors.New("bad credentials")
	ErrInvalidToken   = errors.New("invalid token")
)

// Service issues and verifies the signed bearer tokens that replace a
// server-side login session. Credentials are a single admin account
// configured via the environment.
type Service struct {
	secret       []byte
	user         string
	passwordHash []byte
	tokenTTL     time.Duration
	now          func() time.Time
}

func NewService(secret, user, passwordHash string, tokenTTL time.Duration) *Service {
	return &Service{
		secret:       []byte(secret),
		user:         user,
		passwordHash: []byte(passwordHash),
		tokenTTL:     tokenTTL,
		now:          time.Now,
	}
}

// Login checks the credentials and returns a signed HS256 token.
func (s *Service) Login(user, password string) (string, error) {
	if len(s.secret) == 0 {
		return "", errors.New("signing key is not configured")
	}

	if user != s.user {
		return "", ErrBadCredentials
	}

	if err := bcrypt.CompareHashAndPassword(s.passwordHash, []byte(password)); err != nil {
		return "", ErrBadCredentials
	}

	now := s.now()

	claims := jwt.RegisteredClaims{
		Subject:   user,
		ID:        uuid.NewString(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}

	return token, nil
}

// Verify parses the token and returns the subject it was issued to.
func (s *Service) Verify(tokenStr string) (string, error) {
	// An empty key would verify tokens signed with an empty key.
	if len(s.secret) == 0 {
		return "", ErrInvalidToken
	}

	var claims jwt.RegisteredClaims

	token, err := jwt.ParseWithClaims(tokenStr, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %q", t.Method.Alg())
		}

		return s.secret, nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil || !token.Valid {
		return "", ErrInvalidToken
	}

	return claims.Subject, nil
}
