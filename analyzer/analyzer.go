package analyzer

import (
	"context"
	"fmt"
	"log"

	"newspulse/sentiment"
	"newspulse/types"
)

// Analyze classifies each headline and attaches sentiment and
// sentiment_score to the record. Records without a usable title are
// dropped; everything else passes through with its fields unchanged and
// input order preserved.
func Analyze(ctx context.Context, articles []types.Article, classifier sentiment.Classifier) ([]types.Article, error) {
	analyzed := make([]types.Article, 0, len(articles))

	for _, article := range articles {
		title := article.Title()
		if title == "" {
			continue
		}

		result, err := classifier.Classify(ctx, title)
		if err != nil {
			return nil, fmt.Errorf("failed to classify %q: %w", title, err)
		}

		article.SetSentiment(result.Label, result.Score)
		analyzed = append(analyzed, article)
	}

	return analyzed, nil
}

// PrintSamples logs up to n analyzed headlines with their label and
// score formatted to 2 decimal places.
func PrintSamples(articles []types.Article, n int) {
	if n > len(articles) {
		n = len(articles)
	}
	if n == 0 {
		return
	}

	log.Println("--- Sample of Analyzed Headlines ---")
	for _, article := range articles[:n] {
		label, score, _ := article.Sentiment()
		log.Printf("Headline: %s", article.Title())
		log.Printf("Sentiment: %s (Score: %.2f)", label, score)
	}
}
