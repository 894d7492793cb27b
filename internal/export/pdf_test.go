package export

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/fitplanner-backend/internal/planner"
)

var exportTime = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

func TestRenderPlanPDF_Structured(t *testing.T) {
	parsed := planner.ParsePlan("Day 1\nPush ups\nDay 2\nRest")
	require.True(t, parsed.Structured)

	pdf, err := RenderPlanPDF("Workout Plan", "Jane Doe", parsed, exportTime)

	require.NoError(t, err)
	require.NotEmpty(t, pdf)
	assert.Equal(t, "%PDF", string(pdf[:4]))
}

func TestRenderPlanPDF_OpaqueText(t *testing.T) {
	parsed := planner.ParsePlan("Just eat more vegetables and sleep eight hours.")
	require.False(t, parsed.Structured)

	pdf, err := RenderPlanPDF("Meal Plan", "", parsed, exportTime)

	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(pdf[:4]))
}

func TestRenderPlanPDF_EmptyPlan(t *testing.T) {
	pdf, err := RenderPlanPDF("Workout Plan", "Jane Doe", planner.ParsePlan(""), exportTime)

	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(pdf[:4]))
}
