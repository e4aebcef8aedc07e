package main

import (
	"log"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"newspulse/config"
	"newspulse/storage"
	"newspulse/tui"
	"newspulse/types"
)

func main() {
	// Load environment variables from .env if present (non-fatal if missing)
	_ = godotenv.Load()

	cfg := config.FromEnv()

	articles, err := storage.ReadArticles(cfg.AnalyzedPath)
	if err != nil {
		// Start with an empty list so the TUI can explain what to run
		articles = []types.Article{}
	}

	p := tea.NewProgram(tui.NewModel(cfg.AnalyzedPath, articles))
	if _, err := p.Run(); err != nil {
		log.Fatalf("review TUI error: %v", err)
	}
}
