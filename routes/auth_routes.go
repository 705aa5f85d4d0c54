package routes

import (
	"wedding_server/config"
	"wedding_server/controllers"

	"github.com/gorilla/mux"
)

// RegisterAuthRoutes sets up the password gates
func RegisterAuthRoutes(r *mux.Router, cfg *config.Config) {
	controller := controllers.NewAuthController(cfg)

	r.HandleFunc("/api/login", controller.SiteLoginHandler).Methods("POST")
	r.HandleFunc("/api/admin/auth", controller.AdminAuthHandler).Methods("POST")
}
