package tui

import (
	"fmt"
	"strings"
)

// View implements tea.Model interface
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(TitleStyle.Render("Analyzed Headlines"))
	b.WriteString("\n")
	b.WriteString(InfoStyle.Render(fmt.Sprintf("%s — %d headlines", m.Path, len(m.Articles))))
	b.WriteString("\n\n")

	if len(m.Articles) == 0 {
		b.WriteString(InfoStyle.Render("No analyzed headlines found. Run the analyze stage first."))
		b.WriteString("\n\n")
		b.WriteString(InfoStyle.Render("Press 'q' or Ctrl+C to quit"))
		return b.String()
	}

	// Window the list around the cursor
	start := m.Cursor - m.Cursor%pageSize
	end := start + pageSize
	if end > len(m.Articles) {
		end = len(m.Articles)
	}

	for i := start; i < end; i++ {
		article := m.Articles[i]
		label, score, _ := article.Sentiment()

		line := fmt.Sprintf("%s %s",
			LabelStyle(label).Render(fmt.Sprintf("%-8s %.2f", label, score)),
			article.Title(),
		)
		if i == m.Cursor {
			line = CursorStyle.Render(">") + " " + line
		} else {
			line = "  " + line
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if url, ok := m.Articles[m.Cursor]["url"].(string); ok && url != "" {
		b.WriteString(InfoStyle.Render(url))
		b.WriteString("\n")
	}
	b.WriteString(InfoStyle.Render("↑/↓ move | g/G first/last | q quit"))

	return b.String()
}
