package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/bharatpay/upi-wallet/internal/models"
)

// ProfileReader defines the interface that the coordinator must implement.
type ProfileReader interface {
	Profile() (models.User, []models.Account)
}

// ProfileResponse represents the user profile
// swagger:model ProfileResponse
type ProfileResponse struct {
	// The identity profile
	User models.User `json:"user"`

	// Linked accounts with current balances
	Accounts []AccountPayload `json:"accounts"`
}

// NewProfileHandler returns an HTTP handler for the profile view.
// @Summary User profile
// @Description Return the active identity and its linked accounts.
// @Tags profile
// @Produce json
// @Success 200 {object} handlers.ProfileResponse "Profile returned"
// @Failure 401 "Unauthorized"
// @Router /profile [get]
// @Security BearerAuth
func NewProfileHandler(svc ProfileReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, accounts := svc.Profile()

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(ProfileResponse{
			User:     user,
			Accounts: newAccountPayloads(accounts),
		})
	}
}
