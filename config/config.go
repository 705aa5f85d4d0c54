package config

import (
	"os"
)

// Config holds the application configuration
type Config struct {
	Port            string
	Env             string
	AWSRegion       string
	TableName       string
	SitePassword    string
	AdminPassword   string
	BrideName       string
	GroomName       string
	WeddingDate     string
	WeddingLocation string
}

// Load reads configuration from environment variables with defaults
// suitable for local development. Passwords have no defaults; the
// matching endpoints reject everything until they are set.
func Load() *Config {
	return &Config{
		Port:            getEnv("PORT", "8080"),
		Env:             getEnv("APP_ENV", "local"),
		AWSRegion:       getEnv("AWS_REGION", "eu-central-1"),
		TableName:       getEnv("WEDDING_TABLE", "WeddingStore"),
		SitePassword:    os.Getenv("SITE_PASSWORD"),
		AdminPassword:   os.Getenv("ADMIN_PASSWORD"),
		BrideName:       getEnv("BRIDE_NAME", "Amalie"),
		GroomName:       getEnv("GROOM_NAME", "Pierre"),
		WeddingDate:     getEnv("WEDDING_DATE", "2026-10-03"),
		WeddingLocation: getEnv("WEDDING_LOCATION", "Burg Schwarzenstein, Rosengasse 32, 65366 Geisenheim, Germany"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
