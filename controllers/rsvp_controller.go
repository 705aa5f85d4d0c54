package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"wedding_server/models"
	"wedding_server/services"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"
)

// RSVPController handles HTTP requests for guest responses
type RSVPController struct {
	RSVPService *services.RSVPService
}

func NewRSVPController(rsvpService *services.RSVPService) *RSVPController {
	return &RSVPController{RSVPService: rsvpService}
}

// SubmitRSVPHandler records a guest response
func (c *RSVPController) SubmitRSVPHandler(w http.ResponseWriter, r *http.Request) {
	var entry models.RSVPEntry
	if err := json.NewDecoder(r.Body).Decode(&entry); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	id, err := c.RSVPService.Append(r.Context(), entry)
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		http.Error(w, "Missing required fields", http.StatusBadRequest)
		return
	}
	if err != nil {
		log.Error().Err(err).Msg("failed to record rsvp")
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{"success": true, "id": id})
}

// AdminListRSVPsHandler returns all responses, or the aggregate stats
// when ?stats=true
func (c *RSVPController) AdminListRSVPsHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if r.URL.Query().Get("stats") == "true" {
		stats, err := c.RSVPService.Stats(r.Context())
		if err != nil {
			log.Error().Err(err).Msg("failed to compute rsvp stats")
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}
		json.NewEncoder(w).Encode(stats)
		return
	}

	entries, err := c.RSVPService.ListAll(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("failed to list rsvps")
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(map[string]interface{}{"rsvps": entries})
}

// ExportRSVPsHandler streams all responses as a CSV download
func (c *RSVPController) ExportRSVPsHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="rsvps.csv"`)

	if err := c.RSVPService.ExportCSV(r.Context(), w); err != nil {
		log.Error().Err(err).Msg("failed to export rsvps")
	}
}

// BookedRoomsHandler returns the room ids referenced by any RSVP so the
// booking form can grey them out. Availability here is advisory.
func (c *RSVPController) BookedRoomsHandler(w http.ResponseWriter, r *http.Request) {
	booked, err := c.RSVPService.BookedRoomIDs(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("failed to list booked rooms")
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{"bookedRooms": booked})
}

// AdminRoomBookingsHandler returns booked dates per room
func (c *RSVPController) AdminRoomBookingsHandler(w http.ResponseWriter, r *http.Request) {
	bookings, err := c.RSVPService.RoomDateBookings(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("failed to list room bookings")
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{"bookings": bookings})
}
