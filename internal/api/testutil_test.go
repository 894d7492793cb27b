package api

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/example/fitplanner-backend/internal/models"
	"github.com/example/fitplanner-backend/internal/planner"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// setUser stands in for the auth middleware in handler tests.
func setUser(userID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if userID != "" {
			c.Set("userID", userID)
		}
		c.Next()
	}
}

func performRequest(t *testing.T, router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// Stub services returning canned values.

type stubPlanService struct {
	plan *models.Plan
	pdf  []byte
	err  error
}

func (s *stubPlanService) Generate(_ context.Context, _ string, _ models.PlanKind) (*models.Plan, error) {
	return s.plan, s.err
}

func (s *stubPlanService) Latest(_ context.Context, _ string, _ models.PlanKind) (*models.Plan, error) {
	return s.plan, s.err
}

func (s *stubPlanService) ExportLatest(_ context.Context, _ string, _ models.PlanKind) ([]byte, error) {
	return s.pdf, s.err
}

func (s *stubPlanService) Parse(text string) planner.ParsedPlan {
	return planner.ParsePlan(text)
}

type stubChatService struct {
	msg     *models.ChatMessage
	history []*models.ChatMessage
	err     error
}

func (s *stubChatService) Send(_ context.Context, _ string, _ models.ChatRequest) (*models.ChatMessage, error) {
	return s.msg, s.err
}

func (s *stubChatService) History(_ context.Context, _ string) ([]*models.ChatMessage, error) {
	return s.history, s.err
}

func (s *stubChatService) Delete(_ context.Context, _, _ string) error {
	return s.err
}

type stubUserService struct {
	user *models.User
	err  error
}

func (s *stubUserService) Register(_ context.Context, _ models.RegisterUserRequest) (*models.User, error) {
	return s.user, s.err
}

func (s *stubUserService) GetByID(_ context.Context, _ string) (*models.User, error) {
	return s.user, s.err
}

func (s *stubUserService) Update(_ context.Context, _ string, _ models.UpdateUserRequest) (*models.User, error) {
	return s.user, s.err
}

func (s *stubUserService) Delete(_ context.Context, _ string) error {
	return s.err
}
