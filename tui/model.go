package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"newspulse/types"
)

// pageSize is how many headlines fit in one screen of the list.
const pageSize = 10

// Model represents the headline review TUI state: a cursor over the
// analyzed article collection.
type Model struct {
	Articles []types.Article
	Cursor   int
	Path     string
}

// NewModel creates a review model over an analyzed collection.
func NewModel(path string, articles []types.Article) Model {
	return Model{
		Articles: articles,
		Path:     path,
	}
}

// Init implements tea.Model interface
func (m Model) Init() tea.Cmd {
	return nil
}
