package pipeline

import (
	"context"
	"fmt"
	"io"
	"log"

	"newspulse/analyzer"
	"newspulse/config"
	"newspulse/headlines"
	"newspulse/sentiment"
	"newspulse/storage"
)

// NewSource builds the headline source selected by the config.
func NewSource(cfg config.Config) headlines.Source {
	if cfg.Source == "rss" {
		return headlines.NewRSSSource(cfg.FeedURL)
	}
	return headlines.NewNewsAPIClient(cfg.NewsAPIKey, cfg.NewsAPIBaseURL)
}

// NewClassifier builds the sentiment classifier selected by the config,
// wrapped in a Redis result cache when one is configured. Callers should
// close the returned classifier if it implements io.Closer.
func NewClassifier(cfg config.Config) (sentiment.Classifier, error) {
	var clf sentiment.Classifier
	switch cfg.Classifier {
	case "cohere":
		if cfg.CohereAPIKey == "" {
			return nil, fmt.Errorf("cohere classifier selected but COHERE_API_KEY is not set")
		}
		clf = sentiment.NewCohereClassifier(cfg.CohereAPIKey)
	default:
		clf = sentiment.NewHuggingFaceClassifier(cfg.HuggingFaceToken, cfg.HuggingFaceModel)
	}

	if cfg.RedisAddr != "" {
		clf = sentiment.NewCachedClassifier(clf, sentiment.CacheConfig{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
		})
	}
	return clf, nil
}

// RunFetch executes the fetch stage: retrieve headlines from the source
// and persist them to the configured path.
func RunFetch(ctx context.Context, cfg config.Config, source headlines.Source) error {
	log.Printf("Fetching %q headlines...", cfg.Category)

	articles, err := source.TopHeadlines(ctx, headlines.Query{
		Category: cfg.Category,
		Language: cfg.Language,
		PageSize: cfg.PageSize,
	})
	if err != nil {
		return fmt.Errorf("failed to fetch headlines: %w", err)
	}

	if err := storage.WriteArticles(cfg.HeadlinesPath, articles); err != nil {
		return err
	}
	log.Printf("Successfully saved %d articles to %s", len(articles), cfg.HeadlinesPath)
	return nil
}

// RunAnalyze executes the analyze stage: read the fetched headlines,
// classify each one, persist the augmented collection, and print a few
// samples. No output file is written on failure.
func RunAnalyze(ctx context.Context, cfg config.Config, classifier sentiment.Classifier) error {
	articles, err := storage.ReadArticles(cfg.HeadlinesPath)
	if err != nil {
		return err
	}

	log.Printf("Analyzing sentiment for %d articles...", len(articles))
	analyzed, err := analyzer.Analyze(ctx, articles, classifier)
	if err != nil {
		return err
	}
	log.Println("Analysis complete.")

	if err := storage.WriteArticles(cfg.AnalyzedPath, analyzed); err != nil {
		return err
	}
	log.Printf("Successfully saved analyzed data to %s", cfg.AnalyzedPath)

	analyzer.PrintSamples(analyzed, cfg.SampleCount)
	return nil
}

// RunOnce executes a single end-to-end cycle: fetch headlines, then
// classify and persist them.
func RunOnce(ctx context.Context, cfg config.Config) error {
	if err := RunFetch(ctx, cfg, NewSource(cfg)); err != nil {
		return err
	}

	classifier, err := NewClassifier(cfg)
	if err != nil {
		return err
	}
	if closer, ok := classifier.(io.Closer); ok {
		defer closer.Close()
	}

	return RunAnalyze(ctx, cfg, classifier)
}
