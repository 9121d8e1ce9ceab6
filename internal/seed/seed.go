// Package seed provides the demo identity, contacts, and history the app
// boots with. Balances and amounts are in paise.
package seed

import (
	"time"

	"github.com/google/uuid"

	"github.com/bharatpay/upi-wallet/internal/models"
)

// Data is everything needed to bootstrap a session.
type Data struct {
	User         models.User
	PIN          string
	Accounts     []models.Account
	Contacts     []models.Contact
	Transactions []models.Transaction // newest first
}

// Demo returns the demo session data.
func Demo() Data {
	user := models.User{
		ID:          uuid.New(),
		PhoneNumber: "9876543210",
		UPIID:       "rahul@bharatpay",
		Name:        "Rahul Sharma",
	}

	now := time.Now()

	return Data{
		User: user,
		PIN:  "1234",
		Accounts: []models.Account{
			{
				ID:            "acc1",
				BankName:      "State Bank of India",
				AccountNumber: "XXXX XXXX 4521",
				IFSC:          "SBIN0001234",
				Balance:       4575050,
				Primary:       true,
			},
			{
				ID:            "acc2",
				BankName:      "HDFC Bank",
				AccountNumber: "XXXX XXXX 7832",
				IFSC:          "HDFC0001234",
				Balance:       2340000,
			},
			{
				ID:            "acc3",
				BankName:      "ICICI Bank",
				AccountNumber: "XXXX XXXX 9156",
				IFSC:          "ICIC0001234",
				Balance:       1285075,
			},
		},
		Contacts: []models.Contact{
			{ID: "1", Name: "Priya Singh", UPIID: "priya@upi", PhoneNumber: "9876543211"},
			{ID: "2", Name: "Amit Kumar", UPIID: "amit.kumar@upi", PhoneNumber: "9876543212"},
			{ID: "3", Name: "Neha Patel", UPIID: "neha.p@upi", PhoneNumber: "9876543213"},
			{ID: "4", Name: "Vikram Reddy", UPIID: "vikram.r@upi", PhoneNumber: "9876543214"},
			{ID: "5", Name: "Anjali Gupta", UPIID: "anjali@upi", PhoneNumber: "9876543215"},
		},
		Transactions: []models.Transaction{
			{
				Reference:    "TXN2024A1B2C3",
				SenderUPI:    user.UPIID,
				SenderName:   user.Name,
				ReceiverUPI:  "priya@upi",
				ReceiverName: "Priya Singh",
				Amount:       250000,
				Status:       models.StatusSuccess,
				Timestamp:    now.Add(-2 * time.Hour),
				Direction:    models.DirectionSent,
				Note:         "Dinner bill split",
			},
			{
				Reference:    "TXN2024D4E5F6",
				SenderUPI:    "amit.kumar@upi",
				SenderName:   "Amit Kumar",
				ReceiverUPI:  user.UPIID,
				ReceiverName: user.Name,
				Amount:       500000,
				Status:       models.StatusSuccess,
				Timestamp:    now.Add(-24 * time.Hour),
				Direction:    models.DirectionReceived,
				Note:         "Rent share",
			},
			{
				Reference:    "TXN2024G7H8I9",
				SenderUPI:    user.UPIID,
				SenderName:   user.Name,
				ReceiverUPI:  "neha.p@upi",
				ReceiverName: "Neha Patel",
				Amount:       120000,
				Status:       models.StatusSuccess,
				Timestamp:    now.Add(-3 * 24 * time.Hour),
				Direction:    models.DirectionSent,
				Note:         "Movie tickets",
			},
			{
				Reference:    "TXN2024J1K2L3",
				SenderUPI:    "vikram.r@upi",
				SenderName:   "Vikram Reddy",
				ReceiverUPI:  user.UPIID,
				ReceiverName: user.Name,
				Amount:       75000,
				Status:       models.StatusSuccess,
				Timestamp:    now.Add(-5 * 24 * time.Hour),
				Direction:    models.DirectionReceived,
			},
		},
	}
}

// Balances returns the initial ledger balances keyed by account id.
func (d Data) Balances() map[string]int64 {
	balances := make(map[string]int64, len(d.Accounts))
	for _, acc := range d.Accounts {
		balances[acc.ID] = acc.Balance
	}
	return balances
}
