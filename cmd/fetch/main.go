package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"

	"newspulse/config"
	"newspulse/pipeline"
)

func main() {
	// Load environment variables from .env if present (non-fatal if missing)
	_ = godotenv.Load()

	cfg := config.FromEnv()
	if err := pipeline.RunFetch(context.Background(), cfg, pipeline.NewSource(cfg)); err != nil {
		log.Fatalf("Could not fetch or save articles: %v", err)
	}

	log.Println("Fetching complete!")
}
