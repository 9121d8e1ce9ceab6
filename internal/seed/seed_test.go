package seed

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bharatpay/upi-wallet/internal/models"
)

func TestDemo(t *testing.T) {
	data := Demo()

	assert.Equal(t, "rahul@bharatpay", data.User.UPIID)
	assert.Len(t, data.PIN, 4)
	require.Len(t, data.Accounts, 3)
	assert.Len(t, data.Contacts, 5)
	require.Len(t, data.Transactions, 4)

	// Exactly one primary account.
	primaries := 0
	for _, acc := range data.Accounts {
		if acc.Primary {
			primaries++
		}
	}
	assert.Equal(t, 1, primaries)

	// Seed history is newest first and every entry is terminal and positive.
	for i, txn := range data.Transactions {
		assert.Equal(t, models.StatusSuccess, txn.Status, "txn %d", i)
		assert.Positive(t, txn.Amount, "txn %d", i)
		if i > 0 {
			assert.True(t, data.Transactions[i-1].Timestamp.After(txn.Timestamp), "txn %d out of order", i)
		}
	}
}

func TestData_Balances(t *testing.T) {
	data := Demo()
	balances := data.Balances()

	require.Len(t, balances, 3)
	assert.Equal(t, int64(4575050), balances["acc1"])

	var total int64
	for _, balance := range balances {
		total += balance
	}
	assert.Equal(t, int64(4575050+2340000+1285075), total)
}
