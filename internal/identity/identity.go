// Package identity holds the active identity of the session: the user
// profile, the linked accounts, and the payment credential.
package identity

import (
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/bharatpay/upi-wallet/internal/logger"
	"github.com/bharatpay/upi-wallet/internal/models"
)

const pinLength = 4

var (
	// ErrInvalidPIN is returned when the seeded credential is not a 4-digit number.
	ErrInvalidPIN = errors.New("pin must be a 4-digit number")

	// ErrPrimaryAccount is returned when the linked accounts do not contain
	// exactly one primary account.
	ErrPrimaryAccount = errors.New("exactly one account must be primary")
)

// Store holds one identity and verifies presented credentials. Accounts are
// fixed for the session; their live balances belong to the ledger.
type Store struct {
	user     models.User
	accounts []models.Account
	pinHash  []byte
}

// New creates a store for the given identity. The PIN is kept only as a
// bcrypt hash. The account collection must contain exactly one primary
// account.
func New(user models.User, accounts []models.Account, pin string) (*Store, error) {
	if !validPIN(pin) {
		return nil, ErrInvalidPIN
	}

	primaries := 0
	for _, acc := range accounts {
		if acc.Primary {
			primaries++
		}
	}
	if primaries != 1 {
		return nil, ErrPrimaryAccount
	}

	pinHash, err := bcrypt.GenerateFromPassword([]byte(pin), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash pin", "err", err)
		return nil, err
	}

	owned := make([]models.Account, len(accounts))
	copy(owned, accounts)

	return &Store{
		user:     user,
		accounts: owned,
		pinHash:  pinHash,
	}, nil
}

func validPIN(pin string) bool {
	if len(pin) != pinLength {
		return false
	}
	for _, r := range pin {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// User returns the identity profile.
func (s *Store) User() models.User {
	return s.user
}

// VerifyPIN reports whether the candidate matches the stored credential.
// The comparison is constant-time via bcrypt. There is no lockout or
// attempt counting; callers may retry.
func (s *Store) VerifyPIN(candidate string) bool {
	return bcrypt.CompareHashAndPassword(s.pinHash, []byte(candidate)) == nil
}

// PrimaryAccount returns the account flagged primary. The second return is
// false when none exists; callers must treat that as a hard failure for any
// payment, not a silent default.
func (s *Store) PrimaryAccount() (models.Account, bool) {
	for _, acc := range s.accounts {
		if acc.Primary {
			return acc, true
		}
	}
	return models.Account{}, false
}

// AccountByID returns the linked account with the given id.
func (s *Store) AccountByID(id string) (models.Account, bool) {
	for _, acc := range s.accounts {
		if acc.ID == id {
			return acc, true
		}
	}
	return models.Account{}, false
}

// Accounts returns the linked accounts in their seeded order.
func (s *Store) Accounts() []models.Account {
	out := make([]models.Account, len(s.accounts))
	copy(out, s.accounts)
	return out
}
