// Package services: services/auth_service.go
package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"academy-admin/config"
	"academy-admin/logger"
)

// RoleAdmin is the only role a session token can carry.
const RoleAdmin = "admin"

const defaultTokenTTL = time.Hour

// Guard and issuer outcomes.
var (
	ErrUnauthenticated    = errors.New("no session token")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrForbidden          = errors.New("forbidden")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// AdminPrincipal is attached to a request once its token has been verified.
type AdminPrincipal struct {
	Role      string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// AdminClaims is the token body: the role plus iat/exp.
type AdminClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// AuthConfig is the immutable input of NewAuthService.
type AuthConfig struct {
	SigningKey   []byte
	PasswordHash string
	TTL          time.Duration
	Now          func() time.Time // nil means time.Now
}

type AuthServiceInterface interface {
	Issue(password string) (string, error)
	Authorize(token string) (*AdminPrincipal, error)
	TTL() time.Duration
}

// AuthService checks the admin password and mints/verifies session tokens.
// It holds no per-session state and is safe for concurrent use.
type AuthService struct {
	key  []byte
	hash []byte
	ttl  time.Duration
	now  func() time.Time
}

// NewAuthService fails when the signing key or the password hash is missing.
func NewAuthService(cfg AuthConfig) (*AuthService, error) {
	if len(cfg.SigningKey) == 0 {
		return nil, fmt.Errorf("signing key: %w", config.ErrMissingConfig)
	}
	if cfg.PasswordHash == "" {
		return nil, fmt.Errorf("admin password hash: %w", config.ErrMissingConfig)
	}
	if cfg.TTL <= 0 {
		cfg.TTL = defaultTokenTTL
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return &AuthService{
		key:  cfg.SigningKey,
		hash: []byte(cfg.PasswordHash),
		ttl:  cfg.TTL,
		now:  cfg.Now,
	}, nil
}

// TTL is the lifetime of issued tokens.
func (s *AuthService) TTL() time.Duration {
	return s.ttl
}

// Issue verifies password against the stored bcrypt hash and returns a signed
// admin token. A wrong password yields ErrInvalidCredentials and no token.
func (s *AuthService) Issue(password string) (string, error) {
	if err := bcrypt.CompareHashAndPassword(s.hash, []byte(password)); err != nil {
		logger.Warn.Println("Issue: password check failed")
		return "", ErrInvalidCredentials
	}

	now := s.now()
	claims := AdminClaims{
		Role: RoleAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.key)
	if err != nil {
		return "", fmt.Errorf("sign admin token: %w", err)
	}

	logger.Info.Printf("Issue: admin token issued, expires %s", claims.ExpiresAt.Time.Format(time.RFC3339))
	return signed, nil
}

// Authorize verifies token and returns the admin principal it carries.
func (s *AuthService) Authorize(token string) (*AdminPrincipal, error) {
	if token == "" {
		return nil, ErrUnauthenticated
	}

	claims := &AdminClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.key, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil || !parsed.Valid {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	if claims.Role != RoleAdmin {
		return nil, ErrForbidden
	}

	principal := &AdminPrincipal{Role: claims.Role, ExpiresAt: claims.ExpiresAt.Time}
	if claims.IssuedAt != nil {
		principal.IssuedAt = claims.IssuedAt.Time
	}
	return principal, nil
}
