package identity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bharatpay/upi-wallet/internal/models"
)

func testUser() models.User {
	return models.User{
		ID:          uuid.New(),
		PhoneNumber: "9876543210",
		UPIID:       "rahul@bharatpay",
		Name:        "Rahul Sharma",
	}
}

func testAccounts() []models.Account {
	return []models.Account{
		{ID: "acc1", BankName: "State Bank of India", AccountNumber: "XXXX XXXX 4521", IFSC: "SBIN0001234", Balance: 4575050, Primary: true},
		{ID: "acc2", BankName: "HDFC Bank", AccountNumber: "XXXX XXXX 7832", IFSC: "HDFC0001234", Balance: 2340000},
	}
}

func TestNew_ValidatesPIN(t *testing.T) {
	for _, pin := range []string{"", "12", "12345", "12a4", "abcd"} {
		_, err := New(testUser(), testAccounts(), pin)
		assert.ErrorIs(t, err, ErrInvalidPIN, "pin %q", pin)
	}
}

func TestNew_RequiresExactlyOnePrimary(t *testing.T) {
	accounts := testAccounts()
	accounts[0].Primary = false
	_, err := New(testUser(), accounts, "1234")
	assert.ErrorIs(t, err, ErrPrimaryAccount)

	accounts[0].Primary = true
	accounts[1].Primary = true
	_, err = New(testUser(), accounts, "1234")
	assert.ErrorIs(t, err, ErrPrimaryAccount)
}

func TestStore_VerifyPIN(t *testing.T) {
	s, err := New(testUser(), testAccounts(), "1234")
	require.NoError(t, err)

	assert.True(t, s.VerifyPIN("1234"))
	assert.False(t, s.VerifyPIN("0000"))
	assert.False(t, s.VerifyPIN("123"))
	assert.False(t, s.VerifyPIN("12345"))

	// Retry after a mismatch is allowed.
	assert.False(t, s.VerifyPIN("9999"))
	assert.True(t, s.VerifyPIN("1234"))
}

func TestStore_PrimaryAccount(t *testing.T) {
	s, err := New(testUser(), testAccounts(), "1234")
	require.NoError(t, err)

	primary, ok := s.PrimaryAccount()
	require.True(t, ok)
	assert.Equal(t, "acc1", primary.ID)
}

func TestStore_AccountByID(t *testing.T) {
	s, err := New(testUser(), testAccounts(), "1234")
	require.NoError(t, err)

	acc, ok := s.AccountByID("acc2")
	require.True(t, ok)
	assert.Equal(t, "HDFC Bank", acc.BankName)

	_, ok = s.AccountByID("missing")
	assert.False(t, ok)
}

func TestStore_Accounts_Copy(t *testing.T) {
	s, err := New(testUser(), testAccounts(), "1234")
	require.NoError(t, err)

	accounts := s.Accounts()
	require.Len(t, accounts, 2)
	accounts[0].BankName = "mutated"

	again := s.Accounts()
	assert.Equal(t, "State Bank of India", again[0].BankName)
}
