package services

//go:generate mockgen -source=auth.go -destination=auth_mock.go -package=services

import (
	"context"
	"errors"

	"github.com/sbilibin2017/gw-topup-wallet/internal/logger"
	"golang.org/x/crypto/bcrypt"
)

// Error variables
var (
	ErrAdminLoginDisabled = errors.New("admin login is not configured")
	ErrInvalidAdminKey    = errors.New("invalid admin key")
)

// AdminSubject is the token subject issued to operators.
const AdminSubject = "admin"

// JWTGenerator defines an interface for generating JWT tokens.
type JWTGenerator interface {
	Generate(ctx context.Context, subject string) (string, error)
}

// AdminAuthService exchanges the admin key for a token.
type AdminAuthService struct {
	keyHash []byte
	jwt     JWTGenerator
}

// NewAdminAuthService creates a new AdminAuthService. An empty keyHash disables login.
func NewAdminAuthService(keyHash string, jwt JWTGenerator) *AdminAuthService {
	return &AdminAuthService{
		keyHash: []byte(keyHash),
		jwt:     jwt,
	}
}

// Enabled reports whether an admin key hash is configured.
func (svc *AdminAuthService) Enabled() bool {
	return len(svc.keyHash) > 0
}

// Login checks key against the configured bcrypt hash and returns a JWT token.
func (svc *AdminAuthService) Login(ctx context.Context, key string) (string, error) {
	if !svc.Enabled() {
		return "", ErrAdminLoginDisabled
	}

	if err := bcrypt.CompareHashAndPassword(svc.keyHash, []byte(key)); err != nil {
		logger.Log.Errorw("invalid admin key")
		return "", ErrInvalidAdminKey
	}

	token, err := svc.jwt.Generate(ctx, AdminSubject)
	if err != nil {
		logger.Log.Errorw("failed to generate JWT", "err", err)
		return "", err
	}

	return token, nil
}
