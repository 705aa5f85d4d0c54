package routes

import (
	"wedding_server/controllers"
	"wedding_server/services"
	"wedding_server/utils"

	"github.com/gorilla/mux"
)

// RegisterGiftRoutes sets up the gift registry routes under /api/gifts
func RegisterGiftRoutes(r *mux.Router, claimService *services.ClaimService, adminPassword string) {
	controller := controllers.NewClaimController(claimService)

	giftRouter := r.PathPrefix("/api/gifts").Subrouter()
	giftRouter.HandleFunc("", controller.GetClaimedGiftsHandler).Methods("GET")
	giftRouter.HandleFunc("", controller.ClaimGiftHandler).Methods("POST")
	giftRouter.HandleFunc("/admin", utils.RequireAdmin(adminPassword, controller.GetAllClaimsHandler)).Methods("GET")
}
