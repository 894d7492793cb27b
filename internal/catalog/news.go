package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strings"
)

const defaultNewsAPIURL = "https://newsapi.org/v2"

// NewsClient proxies NewsAPI top headlines for the fitness news page.
type NewsClient struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// NewNewsClient creates a NewsAPI client.
func NewNewsClient(apiKey, baseURL string) (*NewsClient, error) {
	if apiKey == "" {
		return nil, errors.New("news: API key must be set")
	}
	if baseURL == "" {
		baseURL = defaultNewsAPIURL
	}
	return &NewsClient{
		apiKey:     apiKey,
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: newHTTPClient(),
	}, nil
}

// TopHeadlines returns US top headlines for the category (default "health").
func (c *NewsClient) TopHeadlines(ctx context.Context, category string) (json.RawMessage, error) {
	if category == "" {
		category = "health"
	}
	endpoint := c.baseURL + "/top-headlines?" + url.Values{
		"category": {category},
		"country":  {"us"},
		"pageSize": {"10"},
		"apiKey":   {c.apiKey},
	}.Encode()
	return getJSON(ctx, c.httpClient, endpoint, nil)
}
