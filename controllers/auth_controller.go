package controllers

import (
	"encoding/json"
	"net/http"

	"wedding_server/config"
)

const (
	// SiteAuthCookie gates the whole site behind the shared guest password
	SiteAuthCookie = "site-auth"
	// AdminAuthCookie carries the admin secret after a dashboard login
	AdminAuthCookie = "admin-auth"

	cookieMaxAge = 60 * 60 * 24 * 365 // 1 year
)

// AuthController handles the two shared-secret gates: the site password
// every guest receives with the invitation, and the admin password for
// the dashboard.
type AuthController struct {
	Config *config.Config
}

func NewAuthController(cfg *config.Config) *AuthController {
	return &AuthController{Config: cfg}
}

// SiteLoginHandler checks the guest password and sets the long-lived
// site cookie
func (c *AuthController) SiteLoginHandler(w http.ResponseWriter, r *http.Request) {
	var request struct {
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if c.Config.SitePassword == "" {
		http.Error(w, "Password not configured", http.StatusInternalServerError)
		return
	}

	if request.Password != c.Config.SitePassword {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]interface{}{"error": "Wrong password"})
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     SiteAuthCookie,
		Value:    "authenticated",
		Path:     "/",
		MaxAge:   cookieMaxAge,
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteLaxMode,
	})
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{"success": true})
}

// AdminAuthHandler checks the admin password and sets the admin cookie,
// so the dashboard does not have to resend the header on every call
func (c *AuthController) AdminAuthHandler(w http.ResponseWriter, r *http.Request) {
	var request struct {
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if c.Config.AdminPassword == "" || request.Password != c.Config.AdminPassword {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]interface{}{"error": "unauthorized"})
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     AdminAuthCookie,
		Value:    request.Password,
		Path:     "/",
		MaxAge:   cookieMaxAge,
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteLaxMode,
	})
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{"success": true})
}
