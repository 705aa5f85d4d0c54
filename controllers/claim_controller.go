package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"wedding_server/services"

	"github.com/rs/zerolog/log"
)

// ClaimController handles HTTP requests for the gift registry
type ClaimController struct {
	ClaimService *services.ClaimService
}

func NewClaimController(claimService *services.ClaimService) *ClaimController {
	return &ClaimController{ClaimService: claimService}
}

// GetClaimedGiftsHandler returns the ids of all claimed items
func (c *ClaimController) GetClaimedGiftsHandler(w http.ResponseWriter, r *http.Request) {
	ids, err := c.ClaimService.ListClaimed(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("failed to list claimed items")
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{"claimedGifts": ids})
}

// ClaimGiftHandler attempts to claim an item for the named claimant.
// A lost race is a 409, not a server error.
func (c *ClaimController) ClaimGiftHandler(w http.ResponseWriter, r *http.Request) {
	var request struct {
		ItemID    string `json:"itemId"`
		ClaimedBy string `json:"claimedBy"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if request.ItemID == "" || request.ClaimedBy == "" {
		http.Error(w, "Missing required fields", http.StatusBadRequest)
		return
	}

	err := c.ClaimService.TryClaim(r.Context(), request.ItemID, request.ClaimedBy)
	if errors.Is(err, services.ErrAlreadyClaimed) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusConflict)
		json.NewEncoder(w).Encode(map[string]interface{}{"error": "Gift already claimed", "claimed": true})
		return
	}
	if err != nil {
		log.Error().Err(err).Str("itemId", request.ItemID).Msg("claim failed")
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]interface{}{"success": true, "message": "Gift claimed successfully"})
}

// GetAllClaimsHandler returns every claim with claimant and time, for
// the admin dashboard
func (c *ClaimController) GetAllClaimsHandler(w http.ResponseWriter, r *http.Request) {
	claims, err := c.ClaimService.AllClaims(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("failed to fetch claims")
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{"claims": claims})
}
