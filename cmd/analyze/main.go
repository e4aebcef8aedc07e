package main

import (
	"context"
	"io"
	"log"

	"github.com/joho/godotenv"

	"newspulse/config"
	"newspulse/pipeline"
)

func main() {
	// Load environment variables from .env if present (non-fatal if missing)
	_ = godotenv.Load()

	cfg := config.FromEnv()

	log.Println("Initializing the sentiment classifier")
	classifier, err := pipeline.NewClassifier(cfg)
	if err != nil {
		log.Fatalf("Could not initialize classifier: %v", err)
	}
	if closer, ok := classifier.(io.Closer); ok {
		defer closer.Close()
	}
	log.Printf("Classifier ready (model: %s)", classifier.ModelName())

	if err := pipeline.RunAnalyze(context.Background(), cfg, classifier); err != nil {
		log.Fatalf("Could not analyze articles: %v", err)
	}
}
