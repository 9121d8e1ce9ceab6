package handlers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/bharatpay/upi-wallet/internal/contacts"
	"github.com/bharatpay/upi-wallet/internal/identity"
	"github.com/bharatpay/upi-wallet/internal/jwt"
	"github.com/bharatpay/upi-wallet/internal/ledger"
	"github.com/bharatpay/upi-wallet/internal/seed"
	"github.com/bharatpay/upi-wallet/internal/services"
	"github.com/bharatpay/upi-wallet/internal/txlog"
)

// testEnv wires the demo data through real components the way main does.
type testEnv struct {
	data     seed.Data
	payments *services.PaymentService
	auth     *services.AuthService
	contacts *contacts.Store
	tokenSvc *jwt.JWT
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	data := seed.Demo()

	identityStore, err := identity.New(data.User, data.Accounts, data.PIN)
	require.NoError(t, err)

	transactionLog := txlog.New()
	for i := len(data.Transactions) - 1; i >= 0; i-- {
		transactionLog.Append(data.Transactions[i])
	}

	tokenSvc := jwt.New("test-secret", time.Hour)

	return &testEnv{
		data:     data,
		payments: services.NewPaymentService(identityStore, ledger.New(data.Balances()), transactionLog, nil),
		auth:     services.NewAuthService(identityStore, tokenSvc),
		contacts: contacts.New(data.Contacts),
		tokenSvc: tokenSvc,
	}
}
