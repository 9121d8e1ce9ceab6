package handlers

import (
	"time"

	"github.com/bharatpay/upi-wallet/internal/models"
)

// Amounts cross the wire in rupees; the core keeps paise.

// TransactionPayload represents a transaction on the wire
// swagger:model TransactionPayload
type TransactionPayload struct {
	// Local sequence id
	ID int64 `json:"id"`

	// Human-facing transaction reference
	// example: TXN2024A1B2C3
	Reference string `json:"reference"`

	// Sender payment address
	SenderUPI string `json:"sender_upi"`

	// Sender display name
	SenderName string `json:"sender_name"`

	// Receiver payment address
	ReceiverUPI string `json:"receiver_upi"`

	// Receiver display name
	ReceiverName string `json:"receiver_name"`

	// Amount in rupees
	// example: 2500.0
	Amount float64 `json:"amount"`

	// Terminal status
	// example: success
	Status string `json:"status"`

	// Commit time
	Timestamp time.Time `json:"timestamp"`

	// Direction relative to the local user
	// example: sent
	Direction string `json:"direction"`

	// Optional note
	Note string `json:"note,omitempty"`
}

func newTransactionPayload(txn models.Transaction) TransactionPayload {
	return TransactionPayload{
		ID:           txn.ID,
		Reference:    txn.Reference,
		SenderUPI:    txn.SenderUPI,
		SenderName:   txn.SenderName,
		ReceiverUPI:  txn.ReceiverUPI,
		ReceiverName: txn.ReceiverName,
		Amount:       models.ToRupees(txn.Amount),
		Status:       string(txn.Status),
		Timestamp:    txn.Timestamp,
		Direction:    string(txn.Direction),
		Note:         txn.Note,
	}
}

func newTransactionPayloads(txns []models.Transaction) []TransactionPayload {
	out := make([]TransactionPayload, len(txns))
	for i, txn := range txns {
		out[i] = newTransactionPayload(txn)
	}
	return out
}

// AccountPayload represents a linked account on the wire
// swagger:model AccountPayload
type AccountPayload struct {
	// Account identifier
	// example: acc1
	ID string `json:"id"`

	// Owning institution name
	// example: State Bank of India
	BankName string `json:"bank_name"`

	// Masked display number
	// example: XXXX XXXX 4521
	AccountNumber string `json:"account_number"`

	// Routing code
	// example: SBIN0001234
	IFSC string `json:"ifsc"`

	// Balance in rupees
	// example: 45750.50
	Balance float64 `json:"balance"`

	// Default funding source flag
	Primary bool `json:"primary"`
}

func newAccountPayloads(accounts []models.Account) []AccountPayload {
	out := make([]AccountPayload, len(accounts))
	for i, acc := range accounts {
		out[i] = AccountPayload{
			ID:            acc.ID,
			BankName:      acc.BankName,
			AccountNumber: acc.AccountNumber,
			IFSC:          acc.IFSC,
			Balance:       models.ToRupees(acc.Balance),
			Primary:       acc.Primary,
		}
	}
	return out
}
