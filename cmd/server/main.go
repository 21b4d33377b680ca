package main

import (
	"log"

	"go-pos-backend/internal/auth"
	"go-pos-backend/internal/config"
	"go-pos-backend/internal/database"
	"go-pos-backend/internal/handlers"
)

func main() {
	cfg := config.Load()

	db, err := database.Connect(cfg.DBDSN)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal("Migration failed:", err)
	}
	log.Println("✅ Database Schema Synced!")

	issuer := auth.NewTokenIssuer(cfg.JWTSecret)
	r := handlers.NewRouter(db, issuer, cfg.CORSOrigins)

	log.Println("🚀 Server starting on " + cfg.ListenAddr)
	if err := r.Run(cfg.ListenAddr); err != nil {
		log.Fatal("Server failed to start:", err)
	}
}
