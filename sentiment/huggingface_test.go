package sentiment

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newTestClassifier(server *httptest.Server, token string) *HuggingFaceClassifier {
	c := NewHuggingFaceClassifier(token, "")
	c.endpoint = server.URL
	return c
}

func TestClassifyPicksTopLabel(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s; want POST", r.Method)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-token" {
			t.Errorf("Authorization = %q; want Bearer test-token", got)
		}
		w.Write([]byte(`[[{"label": "NEGATIVE", "score": 0.12}, {"label": "POSITIVE", "score": 0.88}]]`))
	}))
	defer server.Close()

	c := newTestClassifier(server, "test-token")
	result, err := c.Classify(context.Background(), "Markets rally on strong earnings")
	if err != nil {
		t.Fatalf("Classify error: %v", err)
	}
	if result.Label != "POSITIVE" {
		t.Fatalf("Label = %q; want POSITIVE", result.Label)
	}
	if result.Score != 0.88 {
		t.Fatalf("Score = %v; want 0.88", result.Score)
	}
}

func TestClassifyHTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte(`{"error": "model is loading"}`))
	}))
	defer server.Close()

	c := newTestClassifier(server, "")
	if _, err := c.Classify(context.Background(), "any headline"); err == nil {
		t.Fatal("expected error for 503 response")
	}
}

func TestClassifyEmptyCandidates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	c := newTestClassifier(server, "")
	if _, err := c.Classify(context.Background(), "any headline"); err == nil {
		t.Fatal("expected error for empty candidate list")
	}
}
