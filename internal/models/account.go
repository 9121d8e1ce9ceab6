package models

// Account represents a linked bank account
type Account struct {
	ID            string `json:"id"`             // Account identifier
	BankName      string `json:"bank_name"`      // Owning institution name
	AccountNumber string `json:"account_number"` // Masked display number
	IFSC          string `json:"ifsc"`           // Routing code
	Balance       int64  `json:"balance"`        // Balance in paise; mutated only by the ledger
	Primary       bool   `json:"primary"`        // Default funding source flag
}
