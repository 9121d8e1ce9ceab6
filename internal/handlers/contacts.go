package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/bharatpay/upi-wallet/internal/models"
)

// ContactSearcher defines the interface that the contact store must implement.
type ContactSearcher interface {
	Search(query string) []models.Contact
}

// ContactsResponse represents the contact list
// swagger:model ContactsResponse
type ContactsResponse struct {
	// Contacts matching the query
	Contacts []models.Contact `json:"contacts"`
}

// NewContactsHandler returns an HTTP handler for the contact list.
// @Summary List contacts
// @Description List contacts, optionally filtered by a name or UPI address substring.
// @Tags contacts
// @Produce json
// @Param q query string false "Search query"
// @Success 200 {object} handlers.ContactsResponse "Contacts returned"
// @Failure 401 "Unauthorized"
// @Router /contacts [get]
// @Security BearerAuth
func NewContactsHandler(store ContactSearcher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(ContactsResponse{
			Contacts: store.Search(r.URL.Query().Get("q")),
		})
	}
}
