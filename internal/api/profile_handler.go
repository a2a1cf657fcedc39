package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/Preetthee/desi-nutri-a82c05ec-sub000/internal/service"

	"github.com/gin-gonic/gin"
)

// ProfileHandler holds the profile service dependency.
type ProfileHandler struct {
	profileService service.ProfileService
}

// NewProfileHandler creates a new ProfileHandler.
func NewProfileHandler(profileService service.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

// --- Request/Response Structs ---

type UpdateProfileRequest struct {
	Name          string  `json:"name" binding:"required"`
	FitnessGoal   string  `json:"fitness_goal"`
	HeightCm      float64 `json:"height_cm" binding:"min=0"`
	WeightKg      float64 `json:"weight_kg" binding:"min=0"`
	WaterTargetMl int     `json:"water_target_ml" binding:"min=0"`
}

type ProfileResponse struct {
	User        UserResponse `json:"user"`
	BMI         float64      `json:"bmi,omitempty"`
	BMICategory string       `json:"bmi_category,omitempty"`
}

// --- Handler Methods ---

// GetProfile returns the authenticated user's profile with derived BMI.
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Invalid user identity")
		return
	}

	profile, err := h.profileService.Get(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
			return
		}
		abortWithError(c, http.StatusInternalServerError, "Failed to load profile")
		return
	}
	c.JSON(http.StatusOK, mapProfileToResponse(profile))
}

// UpdateProfile overwrites the mutable profile fields.
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Invalid user identity")
		return
	}
	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	profile, err := h.profileService.Update(c.Request.Context(), userID, req.Name, req.FitnessGoal, req.HeightCm, req.WeightKg, req.WaterTargetMl)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			abortWithError(c, http.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrProfileValidation):
			abortWithError(c, http.StatusBadRequest, err.Error())
		default:
			abortWithError(c, http.StatusInternalServerError, "Failed to update profile")
		}
		return
	}
	c.JSON(http.StatusOK, mapProfileToResponse(profile))
}

func mapProfileToResponse(p *service.Profile) ProfileResponse {
	return ProfileResponse{
		User:        MapUserToResponse(p.User),
		BMI:         p.BMI,
		BMICategory: p.BMICategory,
	}
}
