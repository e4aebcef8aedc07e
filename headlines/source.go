package headlines

import (
	"context"

	"newspulse/types"
)

// Query narrows a headline request to a topic and language.
type Query struct {
	Category string
	Language string
	PageSize int
}

// Source abstracts a headline provider so the pipeline can be tested
// with substitute implementations.
type Source interface {
	TopHeadlines(ctx context.Context, q Query) ([]types.Article, error)
}
