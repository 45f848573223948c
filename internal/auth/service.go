package auth

import (
	"context"
	"errors"
	"fmt"
	"time"
	"unicode"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"journal-scribe/editorial-portal/editorial-portal-backend/internal/people"
)

const minPasswordLen = 8

var (
	ErrWeakPassword = errors.New("password must be at least 8 characters with a letter and a digit")
	ErrBadLogin     = errors.New("incorrect password")
)

type Service struct {
	repo     Repository
	jwtKey   []byte
	tokenTTL time.Duration
	logger   *zap.Logger
}

func NewService(repo Repository, jwtSecret string, tokenTTL time.Duration, logger *zap.Logger) *Service {
	return &Service{
		repo:     repo,
		jwtKey:   []byte(jwtSecret),
		tokenTTL: tokenTTL,
		logger:   logger,
	}
}

// validatePassword enforces the journal's password rules: at least
// eight characters, one letter, one digit.
func validatePassword(password string) error {
	if len(password) < minPasswordLen {
		return ErrWeakPassword
	}
	var hasLetter, hasDigit bool
	for _, ch := range password {
		switch {
		case unicode.IsLetter(ch):
			hasLetter = true
		case unicode.IsDigit(ch):
			hasDigit = true
		}
	}
	if !hasLetter || !hasDigit {
		return ErrWeakPassword
	}
	return nil
}

func (s *Service) Register(ctx context.Context, email, password string) (*Account, error) {
	if !people.IsValidEmail(email) {
		return nil, fmt.Errorf("%w: %s", people.ErrBadEmail, email)
	}
	if err := validatePassword(password); err != nil {
		return nil, err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	a := &Account{Email: email, PasswordHash: string(hash)}
	if err := s.repo.Create(ctx, a); err != nil {
		return nil, err
	}
	s.logger.Info("account registered", zap.String("email", email))
	return a, nil
}

// Login verifies the credentials and returns a signed JWT.
func (s *Service) Login(ctx context.Context, email, password string) (string, error) {
	a, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(password)); err != nil {
		return "", ErrBadLogin
	}
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   email,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtKey)
}

// VerifyToken parses a JWT and returns the subject email.
func (s *Service) VerifyToken(tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.jwtKey, nil
	})
	if err != nil {
		return "", err
	}
	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || !token.Valid {
		return "", errors.New("invalid token")
	}
	return claims.Subject, nil
}

func (s *Service) Delete(ctx context.Context, email string) error {
	if err := s.repo.Delete(ctx, email); err != nil {
		return err
	}
	s.logger.Info("account deleted", zap.String("email", email))
	return nil
}
