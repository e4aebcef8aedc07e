package headlines

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"newspulse/types"
)

// DefaultBaseURL is the NewsAPI top-headlines endpoint.
// Docs: https://newsapi.org/docs/endpoints/top-headlines
const DefaultBaseURL = "https://newsapi.org/v2/top-headlines"

// MaxPageSize is the largest page the API serves in one request.
const MaxPageSize = 100

// ErrMissingAPIKey is returned before any network call when the client
// was constructed without a credential.
var ErrMissingAPIKey = errors.New("news API key is not set (NEWS_API_KEY)")

// NewsAPIClient implements Source against the NewsAPI top-headlines
// endpoint over plain HTTP.
type NewsAPIClient struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// NewNewsAPIClient creates a client for the real API. An empty baseURL
// selects DefaultBaseURL; tests point it at a local server.
func NewNewsAPIClient(apiKey, baseURL string) *NewsAPIClient {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &NewsAPIClient{
		apiKey:     apiKey,
		baseURL:    baseURL,
		httpClient: http.DefaultClient,
	}
}

// topHeadlinesResponse mirrors the API's response envelope. Articles are
// decoded as raw maps so every field survives the round trip.
type topHeadlinesResponse struct {
	Status       string          `json:"status"`
	TotalResults int             `json:"totalResults"`
	Articles     []types.Article `json:"articles"`
}

// TopHeadlines fetches up to q.PageSize articles (capped at MaxPageSize)
// for the query's category and language. A missing credential fails fast
// without touching the network.
func (c *NewsAPIClient) TopHeadlines(ctx context.Context, q Query) ([]types.Article, error) {
	if c.apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	pageSize := q.PageSize
	if pageSize <= 0 || pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}

	params := url.Values{}
	params.Set("category", q.Category)
	params.Set("language", q.Language)
	params.Set("apiKey", c.apiKey)
	params.Set("pageSize", strconv.Itoa(pageSize))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch headlines: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var body map[string]interface{}
		_ = json.NewDecoder(resp.Body).Decode(&body)
		return nil, fmt.Errorf("news API error: status %d: %v", resp.StatusCode, body)
	}

	var parsed topHeadlinesResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("failed to decode headlines response: %w", err)
	}

	return parsed.Articles, nil
}
