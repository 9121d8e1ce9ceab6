// Package txlog keeps the append-only record of committed transactions.
// The newest entry is always first; entries are immutable once appended.
package txlog

import (
	"math/rand"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/bharatpay/upi-wallet/internal/models"
)

const base36 = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// dateLabelFormat renders calendar-date bucket labels, e.g. "2 January 2006".
const dateLabelFormat = "2 January 2006"

// DateGroup is one calendar-date bucket of the history view.
type DateGroup struct {
	Label        string               `json:"label"`
	Transactions []models.Transaction `json:"transactions"`
}

// Log is the mutex-guarded transaction record.
type Log struct {
	mu      sync.Mutex
	entries []models.Transaction // newest first
	nextID  int64
	refs    map[string]struct{}
}

// New creates an empty log.
func New() *Log {
	return &Log{refs: make(map[string]struct{})}
}

// Append inserts a transaction at the head of the log, assigning its local
// sequence id. A missing reference is generated; a generated reference is
// guaranteed unique within the log. The stored transaction is returned.
func (l *Log) Append(txn models.Transaction) models.Transaction {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.nextID++
	txn.ID = l.nextID
	if txn.Reference == "" {
		txn.Reference = l.newReference()
	}
	l.refs[txn.Reference] = struct{}{}
	l.entries = append([]models.Transaction{txn}, l.entries...)
	return txn
}

// newReference builds a reference from a base-36 encoded timestamp plus
// random base-36 characters, uppercased and prefixed TXN. Regenerates on
// the (unlikely) collision with an existing reference. Caller holds l.mu.
func (l *Log) newReference() string {
	for {
		var b strings.Builder
		b.WriteString("TXN")
		b.WriteString(strings.ToUpper(strconv.FormatInt(time.Now().UnixMilli(), 36)))
		for i := 0; i < 6; i++ {
			b.WriteByte(base36[rand.Intn(len(base36))])
		}
		ref := b.String()
		if _, taken := l.refs[ref]; !taken {
			return ref
		}
	}
}

// All returns a snapshot of the log, newest first.
func (l *Log) All() []models.Transaction {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]models.Transaction, len(l.entries))
	copy(out, l.entries)
	return out
}

// Filter returns the transactions matching the given direction, newest
// first. An empty direction matches everything.
func (l *Log) Filter(direction models.Direction) []models.Transaction {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]models.Transaction, 0, len(l.entries))
	for _, txn := range l.entries {
		if direction == "" || txn.Direction == direction {
			out = append(out, txn)
		}
	}
	return out
}

// Recent returns the n most recent transactions.
func (l *Log) Recent(n int) []models.Transaction {
	l.mu.Lock()
	defer l.mu.Unlock()
	if n > len(l.entries) {
		n = len(l.entries)
	}
	out := make([]models.Transaction, n)
	copy(out, l.entries[:n])
	return out
}

// GroupByDate buckets transactions by calendar date, preserving the given
// relative order within each bucket. Buckets appear in order of their first
// transaction, so a newest-first input yields newest-first groups.
func GroupByDate(txns []models.Transaction) []DateGroup {
	var groups []DateGroup
	index := make(map[string]int)
	for _, txn := range txns {
		label := txn.Timestamp.Format(dateLabelFormat)
		i, ok := index[label]
		if !ok {
			i = len(groups)
			index[label] = i
			groups = append(groups, DateGroup{Label: label})
		}
		groups[i].Transactions = append(groups[i].Transactions, txn)
	}
	return groups
}
