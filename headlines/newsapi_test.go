package headlines

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestTopHeadlinesMissingKey(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
	}))
	defer server.Close()

	client := NewNewsAPIClient("", server.URL)
	articles, err := client.TopHeadlines(context.Background(), Query{Category: "general", Language: "en"})
	if !errors.Is(err, ErrMissingAPIKey) {
		t.Fatalf("err = %v; want ErrMissingAPIKey", err)
	}
	if articles != nil {
		t.Fatalf("articles = %v; want nil", articles)
	}
	if calls != 0 {
		t.Fatalf("server received %d calls; want 0", calls)
	}
}

func TestTopHeadlinesRetainsFields(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("category") != "technology" {
			t.Errorf("category = %q; want technology", q.Get("category"))
		}
		if q.Get("language") != "en" {
			t.Errorf("language = %q; want en", q.Get("language"))
		}
		if q.Get("apiKey") != "test-key" {
			t.Errorf("apiKey = %q; want test-key", q.Get("apiKey"))
		}
		if q.Get("pageSize") != "100" {
			t.Errorf("pageSize = %q; want 100", q.Get("pageSize"))
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"status": "ok",
			"totalResults": 3,
			"articles": [
				{"title": "First", "url": "https://example.com/1", "source": {"id": null, "name": "Example"}},
				{"title": "Second", "author": "A. Writer", "publishedAt": "2026-08-27T09:00:00Z"},
				{"title": "Third", "customField": "kept"}
			]
		}`))
	}))
	defer server.Close()

	client := NewNewsAPIClient("test-key", server.URL)
	articles, err := client.TopHeadlines(context.Background(), Query{Category: "technology", Language: "en"})
	if err != nil {
		t.Fatalf("TopHeadlines error: %v", err)
	}
	if len(articles) != 3 {
		t.Fatalf("len(articles) = %d; want 3", len(articles))
	}

	if articles[0].Title() != "First" {
		t.Fatalf("articles[0].Title() = %q; want First", articles[0].Title())
	}
	if articles[0]["url"] != "https://example.com/1" {
		t.Fatalf("articles[0][url] = %v; want https://example.com/1", articles[0]["url"])
	}
	if articles[1]["author"] != "A. Writer" {
		t.Fatalf("articles[1][author] = %v; want A. Writer", articles[1]["author"])
	}
	// Fields outside the known schema must survive decoding
	if articles[2]["customField"] != "kept" {
		t.Fatalf("articles[2][customField] = %v; want kept", articles[2]["customField"])
	}
}

func TestTopHeadlinesEmptyResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status": "ok", "totalResults": 0, "articles": []}`))
	}))
	defer server.Close()

	client := NewNewsAPIClient("test-key", server.URL)
	articles, err := client.TopHeadlines(context.Background(), Query{Category: "general", Language: "en"})
	if err != nil {
		t.Fatalf("TopHeadlines error: %v", err)
	}
	if len(articles) != 0 {
		t.Fatalf("len(articles) = %d; want 0", len(articles))
	}
}

func TestTopHeadlinesHTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"status": "error", "code": "apiKeyInvalid"}`))
	}))
	defer server.Close()

	client := NewNewsAPIClient("bad-key", server.URL)
	if _, err := client.TopHeadlines(context.Background(), Query{Category: "general", Language: "en"}); err == nil {
		t.Fatal("expected error for 401 response")
	}
}

func TestTopHeadlinesPageSizeCap(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("pageSize"); got != "100" {
			t.Errorf("pageSize = %q; want 100 for out-of-range request", got)
		}
		w.Write([]byte(`{"status": "ok", "totalResults": 0, "articles": []}`))
	}))
	defer server.Close()

	client := NewNewsAPIClient("test-key", server.URL)
	if _, err := client.TopHeadlines(context.Background(), Query{Category: "general", Language: "en", PageSize: 500}); err != nil {
		t.Fatalf("TopHeadlines error: %v", err)
	}
}
