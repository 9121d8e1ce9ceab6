// Package ledger owns account balances and applies balance mutations.
// Balances are held in paise (int64 minor units) and guarded by a single
// mutex, so every mutation is atomic and serialized: no reader observes a
// debit without its matching credit, and two payments cannot both pass the
// solvency check against a stale balance.
package ledger

import (
	"errors"
	"fmt"
	"sync"
)

var (
	// ErrInsufficientFunds is returned when a debit exceeds the current balance.
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrSameAccount is returned when a transfer names the same account twice.
	ErrSameAccount = errors.New("source and destination accounts are the same")
)

// Ledger holds the balances of all accounts owned by the active identity.
type Ledger struct {
	mu       sync.Mutex
	balances map[string]int64
}

// New creates a ledger seeded with the given balances.
func New(initial map[string]int64) *Ledger {
	balances := make(map[string]int64, len(initial))
	for id, balance := range initial {
		balances[id] = balance
	}
	return &Ledger{balances: balances}
}

// mustBalance returns the balance of an account that is required to exist.
// An unknown account id is a programming error, not a recoverable failure:
// account ids are validated before the ledger is reached.
func (l *Ledger) mustBalance(id string) int64 {
	balance, ok := l.balances[id]
	if !ok {
		panic(fmt.Sprintf("ledger: unknown account %q", id))
	}
	return balance
}

func mustPositive(amount int64) {
	if amount <= 0 {
		panic(fmt.Sprintf("ledger: amount must be positive, got %d", amount))
	}
}

// Balance returns the current balance of an account.
func (l *Ledger) Balance(id string) (int64, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	balance, ok := l.balances[id]
	return balance, ok
}

// Balances returns a snapshot of all balances.
func (l *Ledger) Balances() map[string]int64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make(map[string]int64, len(l.balances))
	for id, balance := range l.balances {
		out[id] = balance
	}
	return out
}

// Debit subtracts amount from the account and returns the new balance.
// Fails with ErrInsufficientFunds when amount exceeds the balance; the
// balance never goes negative.
func (l *Ledger) Debit(id string, amount int64) (int64, error) {
	mustPositive(amount)
	l.mu.Lock()
	defer l.mu.Unlock()

	balance := l.mustBalance(id)
	if amount > balance {
		return 0, ErrInsufficientFunds
	}
	l.balances[id] = balance - amount
	return l.balances[id], nil
}

// Credit adds amount to the account and returns the new balance.
// Cannot fail for valid input.
func (l *Ledger) Credit(id string, amount int64) int64 {
	mustPositive(amount)
	l.mu.Lock()
	defer l.mu.Unlock()

	balance := l.mustBalance(id)
	l.balances[id] = balance + amount
	return l.balances[id]
}

// Transfer moves amount between two accounts of the same owner as one
// atomic unit: the debit and credit happen under a single lock acquisition,
// and a failed solvency check leaves both balances untouched.
func (l *Ledger) Transfer(fromID, toID string, amount int64) (fromBalance, toBalance int64, err error) {
	mustPositive(amount)
	if fromID == toID {
		return 0, 0, ErrSameAccount
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	from := l.mustBalance(fromID)
	to := l.mustBalance(toID)
	if amount > from {
		return 0, 0, ErrInsufficientFunds
	}

	l.balances[fromID] = from - amount
	l.balances[toID] = to + amount
	return l.balances[fromID], l.balances[toID], nil
}
