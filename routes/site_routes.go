package routes

import (
	"wedding_server/config"
	"wedding_server/controllers"

	"github.com/gorilla/mux"
)

// RegisterSiteRoutes sets up the static site data routes
func RegisterSiteRoutes(r *mux.Router, cfg *config.Config) {
	controller := controllers.NewSiteController(cfg)

	r.HandleFunc("/api/catalog", controller.CatalogHandler).Methods("GET")
	r.HandleFunc("/api/calendar", controller.CalendarHandler).Methods("GET")
}
