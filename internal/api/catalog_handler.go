package api

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/example/fitplanner-backend/internal/catalog"
)

// CatalogHandler proxies the third-party exercise, video and news catalogs.
// Responses are relayed as opaque JSON straight from the provider.
type CatalogHandler struct {
	exercises *catalog.ExerciseDBClient
	videos    *catalog.YouTubeClient
	news      *catalog.NewsClient
}

// NewCatalogHandler creates a new CatalogHandler. Any client may be nil when
// its API key is not configured; the matching endpoints then answer 503.
func NewCatalogHandler(exercises *catalog.ExerciseDBClient, videos *catalog.YouTubeClient, news *catalog.NewsClient) *CatalogHandler {
	return &CatalogHandler{exercises: exercises, videos: videos, news: news}
}

// ListExercises handles GET /api/v1/exercises.
func (h *CatalogHandler) ListExercises(c *gin.Context) {
	if h.exercises == nil {
		c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: "Exercise catalog is not configured"})
		return
	}

	limit := 0
	if limitStr := c.Query("limit"); limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err != nil || parsed < 0 {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "limit must be a non-negative integer"})
			return
		}
		limit = parsed
	}

	raw, err := h.exercises.List(c.Request.Context(), c.Query("name"), c.Query("bodyPart"), limit)
	if err != nil {
		log.Printf("ListExercises: provider call failed: %v", err)
		c.JSON(http.StatusBadGateway, ErrorResponse{Error: "Failed to fetch exercises"})
		return
	}

	c.Data(http.StatusOK, "application/json", raw)
}

// GetExercise handles GET /api/v1/exercises/:id.
func (h *CatalogHandler) GetExercise(c *gin.Context) {
	if h.exercises == nil {
		c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: "Exercise catalog is not configured"})
		return
	}

	raw, err := h.exercises.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		log.Printf("GetExercise: provider call failed for '%s': %v", c.Param("id"), err)
		c.JSON(http.StatusBadGateway, ErrorResponse{Error: "Failed to fetch exercise"})
		return
	}

	c.Data(http.StatusOK, "application/json", raw)
}

// GetExerciseVideos handles GET /api/v1/exercises/:id/videos: resolves the
// exercise name, then searches YouTube for "<name> exercise" tutorials.
func (h *CatalogHandler) GetExerciseVideos(c *gin.Context) {
	if h.exercises == nil || h.videos == nil {
		c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: "Video search is not configured"})
		return
	}

	name, err := h.exercises.GetName(c.Request.Context(), c.Param("id"))
	if err != nil {
		log.Printf("GetExerciseVideos: failed to resolve exercise '%s': %v", c.Param("id"), err)
		c.JSON(http.StatusBadGateway, ErrorResponse{Error: "Failed to fetch exercise"})
		return
	}

	raw, err := h.videos.Search(c.Request.Context(), name+" exercise")
	if err != nil {
		log.Printf("GetExerciseVideos: video search failed for '%s': %v", name, err)
		c.JSON(http.StatusBadGateway, ErrorResponse{Error: "Failed to search videos"})
		return
	}

	c.Data(http.StatusOK, "application/json", raw)
}

// GetNews handles GET /api/v1/news.
func (h *CatalogHandler) GetNews(c *gin.Context) {
	if h.news == nil {
		c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: "News feed is not configured"})
		return
	}

	raw, err := h.news.TopHeadlines(c.Request.Context(), c.Query("category"))
	if err != nil {
		log.Printf("GetNews: provider call failed: %v", err)
		c.JSON(http.StatusBadGateway, ErrorResponse{Error: "Failed to fetch news"})
		return
	}

	c.Data(http.StatusOK, "application/json", raw)
}
