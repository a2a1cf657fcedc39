package api

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/Preetthee/desi-nutri-a82c05ec-sub000/internal/domain"
	"github.com/Preetthee/desi-nutri-a82c05ec-sub000/internal/service"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PlanHandler holds the plan service dependency.
type PlanHandler struct {
	planService service.PlanService
}

// NewPlanHandler creates a new PlanHandler.
func NewPlanHandler(planService service.PlanService) *PlanHandler {
	return &PlanHandler{planService: planService}
}

// --- Request/Response Structs ---

type TodayPlanRequest struct {
	FitnessGoal     *string `json:"fitness_goal"` // nullable; falls back to the profile goal
	ForceRegenerate bool    `json:"force_regenerate"`
}

type TodayPlanResponse struct {
	Plan           *domain.DailyPlan      `json:"plan"`
	MissedWorkouts []domain.MissedWorkout `json:"missed_workouts"`
}

type SetItemCheckedRequest struct {
	Checked *bool `json:"checked" binding:"required"`
}

// --- Handler Methods ---

// GetTodayPlan returns (creating if necessary) the authenticated user's plan
// for the current UTC date, alongside yesterday's missed workouts.
func (h *PlanHandler) GetTodayPlan(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Invalid user identity")
		return
	}

	// An empty body is a plain fetch: no goal override, no regeneration.
	var req TodayPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}
	goal := ""
	if req.FitnessGoal != nil {
		goal = *req.FitnessGoal
	}

	plan, missed, err := h.planService.GetOrCreateDailyPlan(c.Request.Context(), userID, time.Now().UTC(), goal, req.ForceRegenerate)
	if err != nil {
		if errors.Is(err, service.ErrUserRequired) {
			abortWithError(c, http.StatusUnauthorized, err.Error())
			return
		}
		abortWithError(c, http.StatusInternalServerError, "Failed to load today's plan")
		return
	}

	c.JSON(http.StatusOK, TodayPlanResponse{Plan: plan, MissedWorkouts: missed})
}

// SetItemChecked toggles one plan item's completion state.
func (h *PlanHandler) SetItemChecked(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Invalid user identity")
		return
	}

	planID, err := primitive.ObjectIDFromHex(c.Param("planId"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid plan ID format")
		return
	}
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid item index")
		return
	}

	var req SetItemCheckedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	plan, err := h.planService.SetItemChecked(c.Request.Context(), userID, planID, index, *req.Checked)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPlanNotFound):
			abortWithError(c, http.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrItemOutOfRange):
			abortWithError(c, http.StatusBadRequest, err.Error())
		default:
			abortWithError(c, http.StatusInternalServerError, "Failed to update plan item")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"plan": plan})
}
