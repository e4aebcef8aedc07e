package sentiment

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"net/http"
	"time"

	cohere "github.com/cohere-ai/cohere-go/v2"
	cohereclient "github.com/cohere-ai/cohere-go/v2/client"
)

// CohereClassifier implements Classifier using the Cohere Classify API.
// Docs: https://docs.cohere.com/reference/classify
// SDK: github.com/cohere-ai/cohere-go/v2
// Classify is few-shot: the request carries a small set of labeled
// example headlines so no fine-tuned model is required.
type CohereClassifier struct {
	client *cohereclient.Client
	model  string
}

// classifyExamples seed the few-shot request with the same closed label
// set the default HuggingFace checkpoint uses.
var classifyExamples = []struct {
	text  string
	label string
}{
	{"Markets rally on strong earnings", "POSITIVE"},
	{"Breakthrough treatment gives patients new hope", "POSITIVE"},
	{"Local team clinches championship in dramatic final", "POSITIVE"},
	{"Economy shrinks for third straight quarter", "NEGATIVE"},
	{"Storm leaves thousands without power", "NEGATIVE"},
	{"Company lays off a fifth of its workforce", "NEGATIVE"},
}

// NewCohereClassifier creates a classifier using the given API key.
func NewCohereClassifier(apiKey string) *CohereClassifier {
	// Force HTTP/1.1 to avoid HTTP/2 protocol errors against the API
	httpClient := &http.Client{
		Timeout: 60 * time.Second,
		Transport: &http.Transport{
			TLSNextProto:      make(map[string]func(authority string, c *tls.Conn) http.RoundTripper),
			ForceAttemptHTTP2: false,
		},
	}
	client := cohereclient.NewClient(
		cohereclient.WithToken(apiKey),
		cohereclient.WithHTTPClient(httpClient),
	)
	return &CohereClassifier{client: client, model: "cohere-classify"}
}

func (c *CohereClassifier) ModelName() string { return c.model }

// Classify runs the text through the Classify endpoint and returns the
// predicted label with its confidence.
func (c *CohereClassifier) Classify(ctx context.Context, text string) (Result, error) {
	examples := make([]*cohere.ClassifyExample, 0, len(classifyExamples))
	for _, ex := range classifyExamples {
		examples = append(examples, &cohere.ClassifyExample{
			Text:  cohere.String(ex.text),
			Label: cohere.String(ex.label),
		})
	}

	resp, err := c.client.Classify(ctx, &cohere.ClassifyRequest{
		Inputs:   []string{text},
		Examples: examples,
	})
	if err != nil {
		return Result{}, fmt.Errorf("cohere classify error: %w", err)
	}
	if resp == nil || len(resp.Classifications) == 0 {
		return Result{}, errors.New("cohere classify returned no classifications")
	}

	item := resp.Classifications[0]
	if item.Prediction == nil || item.Confidence == nil {
		return Result{}, errors.New("cohere classify returned no prediction")
	}

	return Result{Label: *item.Prediction, Score: *item.Confidence}, nil
}
