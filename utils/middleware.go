package utils

import (
	"encoding/json"
	"net/http"
)

const (
	adminHeader = "x-admin-password"
	adminCookie = "admin-auth"
)

// RequireAdmin wraps a handler with the shared-secret admin gate. The
// secret may arrive as the x-admin-password header or the admin-auth
// cookie. An empty configured password locks every admin route.
func RequireAdmin(password string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if password != "" {
			if r.Header.Get(adminHeader) == password {
				next(w, r)
				return
			}
			if cookie, err := r.Cookie(adminCookie); err == nil && cookie.Value == password {
				next(w, r)
				return
			}
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]interface{}{"error": "unauthorized"})
	}
}
