package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/example/fitplanner-backend/internal/core"
	"github.com/example/fitplanner-backend/internal/models"
)

// PlanHandler handles the generate / latest / export endpoints for one plan
// kind. Two instances are registered, one per kind.
type PlanHandler struct {
	planService core.PlanService
	kind        models.PlanKind
}

// NewPlanHandler creates a new PlanHandler for the given plan kind.
func NewPlanHandler(ps core.PlanService, kind models.PlanKind) *PlanHandler {
	return &PlanHandler{planService: ps, kind: kind}
}

// Generate handles POST /api/v1/{workout,meal}-plans. Each call appends a
// new plan; calling twice creates two independent plans. A storage failure
// after successful generation still returns the text, with saved=false.
func (h *PlanHandler) Generate(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	plan, err := h.planService.Generate(c.Request.Context(), userID, h.kind)
	if err != nil {
		if errors.Is(err, core.ErrStorageFailed) && plan != nil {
			c.JSON(http.StatusCreated, PlanResponse{
				Plan:      plan.Plan,
				CreatedAt: plan.CreatedAt,
				Saved:     false,
			})
			return
		}
		respondServiceError(c, fmt.Sprintf("Failed to generate %s plan", h.kind), err)
		return
	}

	c.JSON(http.StatusCreated, PlanResponse{
		ID:        plan.ID,
		Plan:      plan.Plan,
		CreatedAt: plan.CreatedAt,
		Saved:     true,
	})
}

// Latest handles GET /api/v1/{workout,meal}-plans, returning the plan with
// the greatest createdAt for the caller.
func (h *PlanHandler) Latest(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	plan, err := h.planService.Latest(c.Request.Context(), userID, h.kind)
	if err != nil {
		respondServiceError(c, fmt.Sprintf("Failed to retrieve %s plan", h.kind), err)
		return
	}

	c.JSON(http.StatusOK, PlanResponse{
		ID:        plan.ID,
		Plan:      plan.Plan,
		CreatedAt: plan.CreatedAt,
		Saved:     true,
	})
}

// Export handles GET /api/v1/{workout,meal}-plans/export, returning the
// latest plan rendered as a PDF attachment.
func (h *PlanHandler) Export(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	pdf, err := h.planService.ExportLatest(c.Request.Context(), userID, h.kind)
	if err != nil {
		respondServiceError(c, fmt.Sprintf("Failed to export %s plan", h.kind), err)
		return
	}

	filename := fmt.Sprintf("%s-plan.pdf", h.kind)
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}
