package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"wedding_server/config"
	"wedding_server/routes"
	"wedding_server/services"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	// .env is optional; real deployments set the environment directly
	godotenv.Load()
	cfg := config.Load()
	setupLogger(cfg.Env)

	log.Info().Str("table", cfg.TableName).Msg("initializing DynamoDB client")
	dynamoClient := services.InitializeDynamoDBClient()
	store := &services.DynamoService{Client: dynamoClient, TableName: cfg.TableName}

	claimService := &services.ClaimService{Store: store}
	rsvpService := &services.RSVPService{Store: store, Claims: claimService}

	r := mux.NewRouter()

	r.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, "Welcome to the %s & %s wedding server\n", cfg.BrideName, cfg.GroomName)
	}).Methods("GET")

	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"status": "healthy"})
	}).Methods("GET")

	routes.RegisterGiftRoutes(r, claimService, cfg.AdminPassword)
	routes.RegisterRSVPRoutes(r, rsvpService, cfg.AdminPassword)
	routes.RegisterAuthRoutes(r, cfg)
	routes.RegisterSiteRoutes(r, cfg)

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "x-admin-password"},
		AllowCredentials: true,
	}).Handler(r)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      corsHandler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	log.Info().Str("port", cfg.Port).Msg("starting server")
	if err := server.ListenAndServe(); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

func setupLogger(env string) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	if env == "local" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}
}
