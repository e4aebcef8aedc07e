package sentiment

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// DefaultHuggingFaceModel is the standard sentiment-analysis checkpoint,
// emitting POSITIVE/NEGATIVE labels.
const DefaultHuggingFaceModel = "distilbert-base-uncased-finetuned-sst-2-english"

const huggingFaceBaseURL = "https://api-inference.huggingface.co/models/"

// HuggingFaceClassifier implements Classifier against the HuggingFace
// Inference API for text-classification models.
// Docs: https://huggingface.co/docs/api-inference
// Endpoint: POST https://api-inference.huggingface.co/models/{model}
// Request: {"inputs": "text"}
// Response: [[{"label": "POSITIVE", "score": 0.99}, ...]]
type HuggingFaceClassifier struct {
	token    string
	model    string
	endpoint string
	client   *http.Client
}

// NewHuggingFaceClassifier creates a classifier for the given model.
// An empty model selects DefaultHuggingFaceModel. The token may be empty
// for public models, at the cost of stricter rate limits.
func NewHuggingFaceClassifier(token, model string) *HuggingFaceClassifier {
	if model == "" {
		model = DefaultHuggingFaceModel
	}
	return &HuggingFaceClassifier{
		token:  token,
		model:  model,
		client: http.DefaultClient,
	}
}

func (h *HuggingFaceClassifier) ModelName() string { return h.model }

// Classify sends the text for inference and returns the top-scoring
// label from the model's candidate set.
func (h *HuggingFaceClassifier) Classify(ctx context.Context, text string) (Result, error) {
	endpoint := h.endpoint
	if endpoint == "" {
		endpoint = huggingFaceBaseURL + h.model
	}

	payload := map[string]interface{}{
		"inputs": text,
	}
	b, err := json.Marshal(payload)
	if err != nil {
		return Result{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewBuffer(b))
	if err != nil {
		return Result{}, err
	}
	req.Header.Set("Content-Type", "application/json")
	if h.token != "" {
		req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", h.token))
	}

	resp, err := h.client.Do(req)
	if err != nil {
		return Result{}, fmt.Errorf("inference request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var body map[string]interface{}
		_ = json.NewDecoder(resp.Body).Decode(&body)
		return Result{}, fmt.Errorf("inference error: status %d: %v", resp.StatusCode, body)
	}

	// The API nests one candidate list per input; we send one input.
	var parsed [][]Result
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return Result{}, fmt.Errorf("failed to decode inference response: %w", err)
	}
	if len(parsed) == 0 || len(parsed[0]) == 0 {
		return Result{}, errors.New("inference returned no candidates")
	}

	best := parsed[0][0]
	for _, candidate := range parsed[0][1:] {
		if candidate.Score > best.Score {
			best = candidate
		}
	}
	return best, nil
}
