package services

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/bharatpay/upi-wallet/internal/ledger"
	"github.com/bharatpay/upi-wallet/internal/logger"
	"github.com/bharatpay/upi-wallet/internal/models"
	"github.com/bharatpay/upi-wallet/internal/txlog"
)

// maxPayOutAmount is the per-transaction ceiling for pay-outs: 1,00,000 rupees.
const maxPayOutAmount int64 = 100_000 * 100

// maxNoteLength bounds the optional free-text note.
const maxNoteLength = 50

var (
	// ErrInvalidAmount is returned for non-positive amounts or amounts over the ceiling.
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrNoteTooLong is returned when the note exceeds its length bound.
	ErrNoteTooLong = errors.New("note is too long")

	// ErrNoPrimaryAccount is returned when no account is flagged primary.
	ErrNoPrimaryAccount = errors.New("no primary account linked")

	// ErrInsufficientFunds is returned when the amount exceeds the funding account's balance.
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrSelfPayment is returned when the payee address is the user's own address.
	ErrSelfPayment = errors.New("cannot pay to own address")

	// ErrSameAccount is returned when a self-transfer names one account twice.
	ErrSameAccount = errors.New("source and destination accounts are the same")

	// ErrAccountNotFound is returned when a self-transfer names an unlinked account.
	ErrAccountNotFound = errors.New("account not found")

	// ErrBadCredential is returned when the presented PIN does not match.
	// The caller may retry without limit.
	ErrBadCredential = errors.New("incorrect pin")
)

// IdentityStore resolves the active identity and verifies credentials.
type IdentityStore interface {
	User() models.User                           // Returns the identity profile
	VerifyPIN(candidate string) bool             // Verifies a presented PIN
	PrimaryAccount() (models.Account, bool)      // Returns the primary account, if any
	AccountByID(id string) (models.Account, bool) // Returns a linked account by id
	Accounts() []models.Account                  // Returns all linked accounts
}

// BalanceLedger applies balance mutations with a solvency guarantee.
type BalanceLedger interface {
	Balance(id string) (int64, bool)                                            // Current balance of an account
	Balances() map[string]int64                                                 // Snapshot of all balances
	Debit(id string, amount int64) (int64, error)                               // Atomic debit
	Transfer(fromID, toID string, amount int64) (fromBal, toBal int64, err error) // Atomic debit+credit pair
}

// TransactionLog records committed transactions.
type TransactionLog interface {
	Append(txn models.Transaction) models.Transaction // Appends and assigns id/reference
	Filter(direction models.Direction) []models.Transaction
	Recent(n int) []models.Transaction
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// PaymentService is the payment coordinator: the sole entry point that
// turns a payment intent into a committed transaction or a typed failure.
// The commit mutex serializes the mutating sequence (debit/transfer plus
// log append) so no reader observes a debited balance without its log
// entry; credential verification stays outside the lock.
type PaymentService struct {
	identity    IdentityStore
	ledger      BalanceLedger
	txlog       TransactionLog
	kafkaWriter KafkaWriter
	commitMu    sync.Mutex
}

// NewPaymentService creates a new PaymentService. The Kafka writer may be
// nil; committed transactions are then not published.
func NewPaymentService(
	identity IdentityStore,
	balanceLedger BalanceLedger,
	transactionLog TransactionLog,
	kafkaWriter KafkaWriter,
) *PaymentService {
	return &PaymentService{
		identity:    identity,
		ledger:      balanceLedger,
		txlog:       transactionLog,
		kafkaWriter: kafkaWriter,
	}
}

// publishTransaction publishes a committed transaction to Kafka. Publishing
// is best-effort: a failure never affects the already-committed payment.
func (s *PaymentService) publishTransaction(ctx context.Context, txn models.Transaction) {
	if s.kafkaWriter == nil {
		logger.Log.Debugw("Kafka writer not configured, skipping publishing", "reference", txn.Reference)
		return
	}

	data, err := json.Marshal(txn)
	if err != nil {
		logger.Log.Errorw("failed to marshal transaction for Kafka", "reference", txn.Reference, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(txn.Reference),
		Value: data,
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("failed to publish transaction to Kafka", "reference", txn.Reference, "error", err)
	} else {
		logger.Log.Infow("transaction published to Kafka", "reference", txn.Reference, "amount", txn.Amount)
	}
}

// PayOut sends amount (paise) from the primary account to an external payee.
// Validation and the solvency pre-check run before the PIN is checked, so an
// invalid or unfundable request never reaches authorization. Any failure
// leaves balances and the log unchanged.
func (s *PaymentService) PayOut(ctx context.Context, receiverUPI, receiverName string, amount int64, note, pin string) (models.Transaction, int64, error) {
	if amount <= 0 || amount > maxPayOutAmount {
		return models.Transaction{}, 0, ErrInvalidAmount
	}
	if len(note) > maxNoteLength {
		return models.Transaction{}, 0, ErrNoteTooLong
	}

	user := s.identity.User()
	if receiverUPI == user.UPIID {
		return models.Transaction{}, 0, ErrSelfPayment
	}

	primary, ok := s.identity.PrimaryAccount()
	if !ok {
		logger.Log.Errorw("pay-out without a primary account", "receiver", receiverUPI)
		return models.Transaction{}, 0, ErrNoPrimaryAccount
	}

	balance, ok := s.ledger.Balance(primary.ID)
	if !ok || amount > balance {
		return models.Transaction{}, 0, ErrInsufficientFunds
	}

	if !s.identity.VerifyPIN(pin) {
		logger.Log.Warnw("pay-out rejected: bad credential", "receiver", receiverUPI)
		return models.Transaction{}, 0, ErrBadCredential
	}

	s.commitMu.Lock()
	newBalance, err := s.ledger.Debit(primary.ID, amount)
	if err != nil {
		s.commitMu.Unlock()
		if errors.Is(err, ledger.ErrInsufficientFunds) {
			return models.Transaction{}, 0, ErrInsufficientFunds
		}
		return models.Transaction{}, 0, err
	}

	txn := s.txlog.Append(models.Transaction{
		SenderUPI:    user.UPIID,
		SenderName:   user.Name,
		ReceiverUPI:  receiverUPI,
		ReceiverName: receiverName,
		Amount:       amount,
		Status:       models.StatusSuccess,
		Timestamp:    time.Now(),
		Direction:    models.DirectionSent,
		Note:         note,
	})
	s.commitMu.Unlock()

	logger.Log.Infow("pay-out committed",
		"reference", txn.Reference,
		"receiver", receiverUPI,
		"amount", amount,
		"new_balance", newBalance,
	)
	s.publishTransaction(ctx, txn)

	return txn, newBalance, nil
}

// SelfTransfer moves amount (paise) between two accounts owned by the
// active identity. The transfer is always logged, with the distinct
// direction "self".
func (s *PaymentService) SelfTransfer(ctx context.Context, fromID, toID string, amount int64, pin string) (models.Transaction, int64, int64, error) {
	if amount <= 0 {
		return models.Transaction{}, 0, 0, ErrInvalidAmount
	}
	if fromID == toID {
		return models.Transaction{}, 0, 0, ErrSameAccount
	}

	from, ok := s.identity.AccountByID(fromID)
	if !ok {
		return models.Transaction{}, 0, 0, ErrAccountNotFound
	}
	to, ok := s.identity.AccountByID(toID)
	if !ok {
		return models.Transaction{}, 0, 0, ErrAccountNotFound
	}

	balance, ok := s.ledger.Balance(from.ID)
	if !ok || amount > balance {
		return models.Transaction{}, 0, 0, ErrInsufficientFunds
	}

	if !s.identity.VerifyPIN(pin) {
		logger.Log.Warnw("self-transfer rejected: bad credential", "from", fromID, "to", toID)
		return models.Transaction{}, 0, 0, ErrBadCredential
	}

	user := s.identity.User()

	s.commitMu.Lock()
	fromBalance, toBalance, err := s.ledger.Transfer(from.ID, to.ID, amount)
	if err != nil {
		s.commitMu.Unlock()
		switch {
		case errors.Is(err, ledger.ErrInsufficientFunds):
			return models.Transaction{}, 0, 0, ErrInsufficientFunds
		case errors.Is(err, ledger.ErrSameAccount):
			return models.Transaction{}, 0, 0, ErrSameAccount
		}
		return models.Transaction{}, 0, 0, err
	}

	txn := s.txlog.Append(models.Transaction{
		SenderUPI:    user.UPIID,
		SenderName:   from.BankName,
		ReceiverUPI:  user.UPIID,
		ReceiverName: to.BankName,
		Amount:       amount,
		Status:       models.StatusSuccess,
		Timestamp:    time.Now(),
		Direction:    models.DirectionSelf,
	})
	s.commitMu.Unlock()

	logger.Log.Infow("self-transfer committed",
		"reference", txn.Reference,
		"from", fromID,
		"to", toID,
		"amount", amount,
	)
	s.publishTransaction(ctx, txn)

	return txn, fromBalance, toBalance, nil
}

// Profile returns the identity profile and its accounts with live balances.
func (s *PaymentService) Profile() (models.User, []models.Account) {
	return s.identity.User(), s.AccountBalances()
}

// AccountBalances returns the linked accounts with their current balances.
func (s *PaymentService) AccountBalances() []models.Account {
	balances := s.ledger.Balances()
	accounts := s.identity.Accounts()
	for i := range accounts {
		accounts[i].Balance = balances[accounts[i].ID]
	}
	return accounts
}

// TotalBalance returns the sum of all account balances in paise.
func (s *PaymentService) TotalBalance() int64 {
	var total int64
	for _, balance := range s.ledger.Balances() {
		total += balance
	}
	return total
}

// History returns logged transactions, newest first, optionally filtered by
// direction (empty means all).
func (s *PaymentService) History(direction models.Direction) []models.Transaction {
	return s.txlog.Filter(direction)
}

// HistoryGrouped returns the filtered history bucketed by calendar date.
func (s *PaymentService) HistoryGrouped(direction models.Direction) []txlog.DateGroup {
	return txlog.GroupByDate(s.txlog.Filter(direction))
}

// Recent returns the n most recent transactions.
func (s *PaymentService) Recent(n int) []models.Transaction {
	return s.txlog.Recent(n)
}
