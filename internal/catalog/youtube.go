package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strings"
)

const defaultYouTubeSearchURL = "https://youtube-search-and-download.p.rapidapi.com"

// YouTubeClient proxies the YouTube search-and-download API on RapidAPI,
// used to surface tutorial videos for an exercise.
type YouTubeClient struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// NewYouTubeClient creates a YouTube search client.
func NewYouTubeClient(apiKey, baseURL string) (*YouTubeClient, error) {
	if apiKey == "" {
		return nil, errors.New("youtube: RapidAPI key must be set")
	}
	if baseURL == "" {
		baseURL = defaultYouTubeSearchURL
	}
	return &YouTubeClient{
		apiKey:     apiKey,
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: newHTTPClient(),
	}, nil
}

// Search returns raw search results for the query.
func (c *YouTubeClient) Search(ctx context.Context, query string) (json.RawMessage, error) {
	if query == "" {
		return nil, errors.New("youtube: search query must be set")
	}
	endpoint := c.baseURL + "/search?query=" + url.QueryEscape(query)
	return getJSON(ctx, c.httpClient, endpoint, map[string]string{
		"X-RapidAPI-Key":  c.apiKey,
		"X-RapidAPI-Host": "youtube-search-and-download.p.rapidapi.com",
	})
}
