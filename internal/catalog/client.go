// Package catalog proxies the third-party SaaS catalogs the UI consumes:
// the ExerciseDB exercise catalog and YouTube search (both via RapidAPI),
// and NewsAPI top headlines. Responses are relayed as opaque JSON; these
// APIs are external collaborators, not contracts this service owns.
package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// ErrUpstream is returned when a catalog provider rejects the request or is
// unreachable after the single retry.
var ErrUpstream = errors.New("catalog provider error")

func newHTTPClient() *http.Client {
	return &http.Client{Timeout: 15 * time.Second}
}

// getJSON performs a GET with the given headers and returns the raw response
// body. Network errors and 5xx responses are retried exactly once; 4xx
// responses propagate immediately.
func getJSON(ctx context.Context, client *http.Client, url string, headers map[string]string) (json.RawMessage, error) {
	var lastErr error
	for attempt := 0; attempt < 2; attempt++ {
		body, retryable, err := doGetJSON(ctx, client, url, headers)
		if err == nil {
			return body, nil
		}
		lastErr = err
		if !retryable || ctx.Err() != nil {
			break
		}
	}
	return nil, lastErr
}

func doGetJSON(ctx context.Context, client *http.Client, url string, headers map[string]string) (body json.RawMessage, retryable bool, err error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, false, fmt.Errorf("catalog: failed to build request: %w", err)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, true, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, true, fmt.Errorf("%w: reading response: %v", ErrUpstream, err)
	}

	if resp.StatusCode >= http.StatusInternalServerError {
		return nil, true, fmt.Errorf("%w: provider returned status %d", ErrUpstream, resp.StatusCode)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, false, fmt.Errorf("%w: provider returned status %d", ErrUpstream, resp.StatusCode)
	}

	return json.RawMessage(raw), false, nil
}
