package catalog

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startServer(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return server
}

func TestExerciseDBList_RoutesAndHeaders(t *testing.T) {
	var gotPath, gotQuery, gotKey, gotHost string
	server := startServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		gotKey = r.Header.Get("X-RapidAPI-Key")
		gotHost = r.Header.Get("X-RapidAPI-Host")
		w.Write([]byte(`[{"name":"push up"}]`))
	})

	client, err := NewExerciseDBClient("rapid-key", server.URL)
	require.NoError(t, err)

	raw, err := client.List(context.Background(), "", "", 0)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"name":"push up"}]`, string(raw))
	assert.Equal(t, "/exercises", gotPath)
	assert.Equal(t, "rapid-key", gotKey)
	assert.Equal(t, "exercisedb.p.rapidapi.com", gotHost)

	_, err = client.List(context.Background(), "Push Up", "", 5)
	require.NoError(t, err)
	assert.Equal(t, "/exercises/name/push up", gotPath)
	assert.Equal(t, "limit=5", gotQuery)

	_, err = client.List(context.Background(), "", "Back", 0)
	require.NoError(t, err)
	assert.Equal(t, "/exercises/bodyPart/back", gotPath)
}

func TestExerciseDBGet(t *testing.T) {
	server := startServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/exercises/exercise/0001", r.URL.Path)
		w.Write([]byte(`{"id":"0001","name":"barbell squat"}`))
	})

	client, err := NewExerciseDBClient("rapid-key", server.URL)
	require.NoError(t, err)

	name, err := client.GetName(context.Background(), "0001")
	require.NoError(t, err)
	assert.Equal(t, "barbell squat", name)

	_, err = client.Get(context.Background(), "")
	assert.Error(t, err)
}

func TestYouTubeSearch(t *testing.T) {
	server := startServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search", r.URL.Path)
		assert.Equal(t, "barbell squat", r.URL.Query().Get("query"))
		assert.Equal(t, "rapid-key", r.Header.Get("X-RapidAPI-Key"))
		w.Write([]byte(`{"contents":[]}`))
	})

	client, err := NewYouTubeClient("rapid-key", server.URL)
	require.NoError(t, err)

	raw, err := client.Search(context.Background(), "barbell squat")
	require.NoError(t, err)
	assert.JSONEq(t, `{"contents":[]}`, string(raw))

	_, err = client.Search(context.Background(), "")
	assert.Error(t, err)
}

func TestNewsTopHeadlines(t *testing.T) {
	server := startServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/top-headlines", r.URL.Path)
		assert.Equal(t, "health", r.URL.Query().Get("category"))
		assert.Equal(t, "us", r.URL.Query().Get("country"))
		assert.Equal(t, "10", r.URL.Query().Get("pageSize"))
		assert.Equal(t, "news-key", r.URL.Query().Get("apiKey"))
		w.Write([]byte(`{"status":"ok","articles":[]}`))
	})

	client, err := NewNewsClient("news-key", server.URL)
	require.NoError(t, err)

	raw, err := client.TopHeadlines(context.Background(), "")
	require.NoError(t, err)
	assert.JSONEq(t, `{"status":"ok","articles":[]}`, string(raw))
}

func TestGetJSON_RetriesOn5xx(t *testing.T) {
	var calls atomic.Int32
	server := startServer(t, func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.Write([]byte(`{"ok":true}`))
	})

	raw, err := getJSON(context.Background(), newHTTPClient(), server.URL, nil)

	require.NoError(t, err)
	assert.JSONEq(t, `{"ok":true}`, string(raw))
	assert.Equal(t, int32(2), calls.Load())
}

func TestGetJSON_DoesNotRetry4xx(t *testing.T) {
	var calls atomic.Int32
	server := startServer(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusForbidden)
	})

	_, err := getJSON(context.Background(), newHTTPClient(), server.URL, nil)

	require.ErrorIs(t, err, ErrUpstream)
	assert.Equal(t, int32(1), calls.Load())
}
