package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"newspulse/types"
)

// ReadArticles loads an article collection from a JSON file. A missing
// file or malformed content is reported as an error; nothing panics.
func ReadArticles(path string) ([]types.Article, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var articles []types.Article
	if err := json.Unmarshal(data, &articles); err != nil {
		return nil, fmt.Errorf("invalid JSON in %s: %w", path, err)
	}
	return articles, nil
}

// WriteArticles persists an article collection as indented JSON,
// creating the containing directory if absent and overwriting any prior
// file. Non-ASCII text is written as-is, not escaped.
func WriteArticles(path string, articles []types.Article) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create directory for %s: %w", path, err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	// An empty collection is still a JSON array, not null
	if articles == nil {
		articles = []types.Article{}
	}

	enc := json.NewEncoder(f)
	enc.SetIndent("", "    ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(articles); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
