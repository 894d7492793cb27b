package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

const defaultExerciseDBURL = "https://exercisedb.p.rapidapi.com"

// ExerciseDBClient proxies the ExerciseDB catalog on RapidAPI.
type ExerciseDBClient struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// NewExerciseDBClient creates an ExerciseDB client. An empty baseURL falls
// back to the RapidAPI host.
func NewExerciseDBClient(apiKey, baseURL string) (*ExerciseDBClient, error) {
	if apiKey == "" {
		return nil, errors.New("exercisedb: RapidAPI key must be set")
	}
	if baseURL == "" {
		baseURL = defaultExerciseDBURL
	}
	return &ExerciseDBClient{
		apiKey:     apiKey,
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: newHTTPClient(),
	}, nil
}

func (c *ExerciseDBClient) headers() map[string]string {
	return map[string]string{
		"X-RapidAPI-Key":  c.apiKey,
		"X-RapidAPI-Host": "exercisedb.p.rapidapi.com",
	}
}

// List returns exercises, optionally filtered by name or body part. The
// filters map onto ExerciseDB's own search routes; limit 0 means the
// provider default.
func (c *ExerciseDBClient) List(ctx context.Context, name, bodyPart string, limit int) (json.RawMessage, error) {
	path := "/exercises"
	switch {
	case name != "":
		path = "/exercises/name/" + url.PathEscape(strings.ToLower(name))
	case bodyPart != "":
		path = "/exercises/bodyPart/" + url.PathEscape(strings.ToLower(bodyPart))
	}

	endpoint := c.baseURL + path
	if limit > 0 {
		endpoint += "?limit=" + strconv.Itoa(limit)
	}

	return getJSON(ctx, c.httpClient, endpoint, c.headers())
}

// Get returns a single exercise by its catalog ID.
func (c *ExerciseDBClient) Get(ctx context.Context, id string) (json.RawMessage, error) {
	if id == "" {
		return nil, errors.New("exercisedb: exercise id must be set")
	}
	endpoint := c.baseURL + "/exercises/exercise/" + url.PathEscape(id)
	return getJSON(ctx, c.httpClient, endpoint, c.headers())
}

// GetName resolves an exercise's display name, used to build the video
// search query.
func (c *ExerciseDBClient) GetName(ctx context.Context, id string) (string, error) {
	raw, err := c.Get(ctx, id)
	if err != nil {
		return "", err
	}
	var exercise struct {
		Name string `json:"name"`
	}
	if err := json.Unmarshal(raw, &exercise); err != nil {
		return "", err
	}
	return exercise.Name, nil
}
