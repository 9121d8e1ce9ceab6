// Package contacts serves the immutable contact reference data.
package contacts

import (
	"strings"

	"github.com/bharatpay/upi-wallet/internal/models"
)

// Store holds the seeded contact list.
type Store struct {
	contacts []models.Contact
}

// New creates a store over the given contacts.
func New(list []models.Contact) *Store {
	contacts := make([]models.Contact, len(list))
	copy(contacts, list)
	return &Store{contacts: contacts}
}

// List returns all contacts in their seeded order.
func (s *Store) List() []models.Contact {
	out := make([]models.Contact, len(s.contacts))
	copy(out, s.contacts)
	return out
}

// Search returns the contacts whose name or UPI address contains the query,
// case-insensitively. An empty query matches everything.
func (s *Store) Search(query string) []models.Contact {
	if query == "" {
		return s.List()
	}
	q := strings.ToLower(query)
	out := make([]models.Contact, 0, len(s.contacts))
	for _, c := range s.contacts {
		if strings.Contains(strings.ToLower(c.Name), q) ||
			strings.Contains(strings.ToLower(c.UPIID), q) {
			out = append(out, c)
		}
	}
	return out
}

// ByUPI returns the contact with the given UPI address.
func (s *Store) ByUPI(upiID string) (models.Contact, bool) {
	for _, c := range s.contacts {
		if c.UPIID == upiID {
			return c, true
		}
	}
	return models.Contact{}, false
}
