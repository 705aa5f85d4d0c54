package controllers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"wedding_server/config"
	"wedding_server/models"
)

// SiteController serves the static site data: the gift and room
// catalogs and the calendar file for the wedding day
type SiteController struct {
	Config *config.Config
}

func NewSiteController(cfg *config.Config) *SiteController {
	return &SiteController{Config: cfg}
}

// CatalogHandler returns the hardcoded gift and room catalogs so every
// client renders the same list
func (c *SiteController) CatalogHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"gifts": models.Gifts,
		"rooms": models.Rooms,
	})
}

// CalendarHandler serves the wedding event as an .ics download
func (c *SiteController) CalendarHandler(w http.ResponseWriter, r *http.Request) {
	day, err := time.Parse("2006-01-02", c.Config.WeddingDate)
	if err != nil {
		http.Error(w, "Calendar not configured", http.StatusInternalServerError)
		return
	}

	summary := fmt.Sprintf("Wedding: %s & %s", c.Config.BrideName, c.Config.GroomName)
	ics := strings.Join([]string{
		"BEGIN:VCALENDAR",
		"VERSION:2.0",
		fmt.Sprintf("PRODID:-//%s & %s Wedding//EN", c.Config.BrideName, c.Config.GroomName),
		"BEGIN:VEVENT",
		"DTSTART:" + day.Format("20060102") + "T100000Z",
		"DTEND:" + day.AddDate(0, 0, 1).Format("20060102") + "T000000Z",
		"SUMMARY:" + escapeICS(summary),
		"LOCATION:" + escapeICS(c.Config.WeddingLocation),
		"DESCRIPTION:Church ceremony at 12:00\\, followed by reception at the venue",
		"END:VEVENT",
		"END:VCALENDAR",
	}, "\r\n")

	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="wedding.ics"`)
	fmt.Fprint(w, ics)
}

// escapeICS escapes the characters RFC 5545 reserves in text values
func escapeICS(s string) string {
	r := strings.NewReplacer("\\", "\\\\", ",", "\\,", ";", "\\;", "\n", "\\n")
	return r.Replace(s)
}
