package routes

import (
	"wedding_server/controllers"
	"wedding_server/services"
	"wedding_server/utils"

	"github.com/gorilla/mux"
)

// RegisterRSVPRoutes sets up the RSVP and room-booking routes
func RegisterRSVPRoutes(r *mux.Router, rsvpService *services.RSVPService, adminPassword string) {
	controller := controllers.NewRSVPController(rsvpService)

	rsvpRouter := r.PathPrefix("/api/rsvp").Subrouter()
	rsvpRouter.HandleFunc("", controller.SubmitRSVPHandler).Methods("POST")
	rsvpRouter.HandleFunc("/rooms", controller.BookedRoomsHandler).Methods("GET")
	rsvpRouter.HandleFunc("/admin", utils.RequireAdmin(adminPassword, controller.AdminListRSVPsHandler)).Methods("GET")
	rsvpRouter.HandleFunc("/admin/export", utils.RequireAdmin(adminPassword, controller.ExportRSVPsHandler)).Methods("GET")

	r.HandleFunc("/api/rooms/admin", utils.RequireAdmin(adminPassword, controller.AdminRoomBookingsHandler)).Methods("GET")
}
