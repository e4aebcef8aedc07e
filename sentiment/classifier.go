package sentiment

import "context"

// Result is a single classification: a label from the model's closed
// label set and a confidence score in [0,1].
type Result struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

// Classifier abstracts a sentiment inference service: text in,
// (label, score) out. Implementations are stateless after construction,
// so one instance serves a whole run.
type Classifier interface {
	Classify(ctx context.Context, text string) (Result, error)
	ModelName() string
}
