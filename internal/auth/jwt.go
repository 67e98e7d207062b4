// Package auth issues and validates the HS256 bearer tokens that identify API callers.
package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"resumeapi/internal/config"
)

var (
	ErrEmptyToken  = errors.New("token string is empty")
	ErrMissingUser = errors.New("token has no subject")
	ErrNoSecret    = errors.New("JWT_SECRET is not configured")
)

// Claims carries the caller's user id in the standard "sub" claim.
type Claims struct {
	jwt.RegisteredClaims
}

func (c *Claims) UserID() string { return c.Subject }

// JWTService mints and checks tokens signed with a shared secret.
type JWTService struct {
	secret []byte
	issuer string
	ttl    time.Duration
	now    func() time.Time
}

func NewJWTService(cfg config.JWTConfig) (*JWTService, error) {
	if strings.TrimSpace(cfg.Secret) == "" {
		return nil, ErrNoSecret
	}
	hours := cfg.ExpirationHours
	if hours <= 0 {
		hours = 24
	}
	return &JWTService{
		secret: []byte(cfg.Secret),
		issuer: cfg.Issuer,
		ttl:    time.Duration(hours) * time.Hour,
		now:    time.Now,
	}, nil
}

// GenerateToken signs a token whose subject is userID.
func (s *JWTService) GenerateToken(userID string) (string, error) {
	if userID == "" {
		return "", ErrMissingUser
	}
	now := s.now()
	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			Issuer:    s.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// ValidateToken parses and verifies a token, returning its claims.
func (s *JWTService) ValidateToken(tokenString string) (*Claims, error) {
	if tokenString == "" {
		return nil, ErrEmptyToken
	}

	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.now),
	}
	if s.issuer != "" {
		opts = append(opts, jwt.WithIssuer(s.issuer))
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(*jwt.Token) (interface{}, error) {
		return s.secret, nil
	}, opts...)
	if err != nil {
		return nil, fmt.Errorf("parse token: %w", err)
	}
	if !token.Valid {
		return nil, errors.New("token is not valid")
	}
	if claims.Subject == "" {
		return nil, ErrMissingUser
	}
	return claims, nil
}
