package main

import (
	"log"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"newspulse/api"
	"newspulse/config"
)

func main() {
	// Load environment variables from .env if present (non-fatal if missing)
	_ = godotenv.Load()

	addr := ":8080"
	if v := os.Getenv("PORT"); v != "" {
		addr = ":" + v
	}

	cfg := config.FromEnv()
	r := api.NewRouter(cfg)
	log.Printf("Starting API server on %s", addr)
	log.Println("API endpoints available:")
	log.Println("  GET  /api/health")
	log.Println("  GET  /api/headlines")
	log.Println("  GET  /api/headlines/analyzed")
	log.Println("  POST /api/pipeline/fetch")
	log.Println("  POST /api/pipeline/analyze")
	log.Println("  POST /api/pipeline/run")

	if err := http.ListenAndServe(addr, r); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
