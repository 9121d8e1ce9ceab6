package services

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/bharatpay/upi-wallet/internal/logger"
	"github.com/bharatpay/upi-wallet/internal/models"
)

// ErrInvalidCredentials is returned when the UPI address or PIN is wrong.
var ErrInvalidCredentials = errors.New("invalid upi address or pin")

// CredentialVerifier resolves the active identity and checks its PIN.
type CredentialVerifier interface {
	User() models.User
	VerifyPIN(candidate string) bool
}

// TokenGenerator issues session tokens.
type TokenGenerator interface {
	Generate(ctx context.Context, userID uuid.UUID) (string, error)
}

// AuthService opens a session for the active identity: the session handle
// makes the identity an explicit parameter of every protected request
// instead of ambient state.
type AuthService struct {
	identity CredentialVerifier
	jwt      TokenGenerator
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(identity CredentialVerifier, jwt TokenGenerator) *AuthService {
	return &AuthService{
		identity: identity,
		jwt:      jwt,
	}
}

// Login verifies the UPI address and PIN and returns a session token.
func (svc *AuthService) Login(ctx context.Context, upiID, pin string) (string, error) {
	user := svc.identity.User()
	if upiID != user.UPIID {
		logger.Log.Warnw("login for unknown upi address", "upi_id", upiID)
		return "", ErrInvalidCredentials
	}

	if !svc.identity.VerifyPIN(pin) {
		logger.Log.Warnw("login with bad pin", "upi_id", upiID)
		return "", ErrInvalidCredentials
	}

	token, err := svc.jwt.Generate(ctx, user.ID)
	if err != nil {
		logger.Log.Errorw("failed to generate session token", "err", err)
		return "", err
	}

	return token, nil
}
