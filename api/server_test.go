package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"

	"newspulse/config"
	"newspulse/storage"
	"newspulse/types"
)

func testRouter(t *testing.T) (*gin.Engine, config.Config) {
	gin.SetMode(gin.TestMode)
	dir := t.TempDir()
	cfg := config.Config{
		HeadlinesPath: filepath.Join(dir, "global_headlines.json"),
		AnalyzedPath:  filepath.Join(dir, "analyzed_headlines.json"),
	}
	return NewRouter(cfg), cfg
}

func TestHealthEndpoint(t *testing.T) {
	router, _ := testRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d; want 200", w.Code)
	}
}

func TestHeadlinesEndpoint(t *testing.T) {
	router, cfg := testRouter(t)

	articles := []types.Article{
		{"title": "First", "url": "https://example.com/1"},
		{"title": "Second"},
	}
	if err := storage.WriteArticles(cfg.HeadlinesPath, articles); err != nil {
		t.Fatal(err)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/headlines", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d; want 200", w.Code)
	}

	var body struct {
		Count    int             `json:"count"`
		Articles []types.Article `json:"articles"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body.Count != 2 || len(body.Articles) != 2 {
		t.Fatalf("count = %d, len = %d; want 2, 2", body.Count, len(body.Articles))
	}
	if body.Articles[0].Title() != "First" {
		t.Fatalf("articles[0].Title() = %q; want First", body.Articles[0].Title())
	}
}

func TestHeadlinesEndpointNoData(t *testing.T) {
	router, _ := testRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/headlines/analyzed", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d; want 404 before any pipeline run", w.Code)
	}
}
