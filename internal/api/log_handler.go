package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/Preetthee/desi-nutri-a82c05ec-sub000/internal/domain"
	"github.com/Preetthee/desi-nutri-a82c05ec-sub000/internal/repository"
	"github.com/Preetthee/desi-nutri-a82c05ec-sub000/internal/service"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// LogHandler holds the logbook service dependency.
type LogHandler struct {
	logbook service.LogbookService
}

// NewLogHandler creates a new LogHandler.
func NewLogHandler(logbook service.LogbookService) *LogHandler {
	return &LogHandler{logbook: logbook}
}

// --- Request/Response Structs ---

type FoodLogRequest struct {
	Name           string          `json:"name" binding:"required"`
	NameBn         string          `json:"name_bn"`
	Meal           domain.MealType `json:"meal" binding:"required,oneof=breakfast lunch dinner snack"`
	Calories       int             `json:"calories" binding:"min=0"`
	PhotoObjectKey string          `json:"photo_object_key"`
}

type WaterLogRequest struct {
	AmountMl int `json:"amount_ml" binding:"required,gt=0"`
}

type ExerciseLogRequest struct {
	ExerciseName   string `json:"exercise_name" binding:"required"`
	DurationMin    int    `json:"duration_minutes" binding:"required,gt=0"`
	CaloriesBurned int    `json:"calories_burned" binding:"min=0"`
}

type ExerciseLogResponse struct {
	Log *domain.ExerciseLog `json:"log"`
	// Plan is today's plan after sync, null when no plan exists for the day.
	Plan *domain.DailyPlan `json:"plan"`
}

type MealPhotoUploadRequest struct {
	FileName    string `json:"file_name" binding:"required"`
	ContentType string `json:"content_type" binding:"required"`
}

type MealPhotoUploadResponse struct {
	UploadID  string `json:"upload_id"`
	ObjectKey string `json:"object_key"`
	UploadURL string `json:"upload_url"`
}

// logDate reads an optional ?date=YYYY-MM-DD query, defaulting to now (UTC).
func logDate(c *gin.Context) (time.Time, error) {
	raw := c.Query("date")
	if raw == "" {
		return time.Now().UTC(), nil
	}
	return time.Parse(domain.PlanDateLayout, raw)
}

// --- Food ---

// CreateFoodLog records one eaten item.
func (h *LogHandler) CreateFoodLog(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Invalid user identity")
		return
	}
	var req FoodLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	entry, err := h.logbook.LogFood(c.Request.Context(), userID, time.Now().UTC(), req.Name, req.NameBn, req.Meal, req.Calories, req.PhotoObjectKey)
	if err != nil {
		if errors.Is(err, service.ErrInvalidLogEntry) {
			abortWithError(c, http.StatusBadRequest, err.Error())
			return
		}
		abortWithError(c, http.StatusInternalServerError, "Failed to save food log")
		return
	}
	c.JSON(http.StatusCreated, entry)
}

// ListFoodLogs lists food logs for a date (default today).
func (h *LogHandler) ListFoodLogs(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Invalid user identity")
		return
	}
	day, err := logDate(c)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid date; expected YYYY-MM-DD")
		return
	}

	entries, err := h.logbook.FoodLogs(c.Request.Context(), userID, day)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to list food logs")
		return
	}
	c.JSON(http.StatusOK, gin.H{"logs": entries})
}

// DeleteFoodLog removes one food log by id.
func (h *LogHandler) DeleteFoodLog(c *gin.Context) {
	h.deleteLog(c, h.logbook.DeleteFoodLog)
}

// --- Water ---

// CreateWaterLog records one intake of water.
func (h *LogHandler) CreateWaterLog(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Invalid user identity")
		return
	}
	var req WaterLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	entry, err := h.logbook.LogWater(c.Request.Context(), userID, time.Now().UTC(), req.AmountMl)
	if err != nil {
		if errors.Is(err, service.ErrInvalidLogEntry) {
			abortWithError(c, http.StatusBadRequest, err.Error())
			return
		}
		abortWithError(c, http.StatusInternalServerError, "Failed to save water log")
		return
	}
	c.JSON(http.StatusCreated, entry)
}

// ListWaterLogs lists water logs for a date (default today).
func (h *LogHandler) ListWaterLogs(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Invalid user identity")
		return
	}
	day, err := logDate(c)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid date; expected YYYY-MM-DD")
		return
	}

	entries, err := h.logbook.WaterLogs(c.Request.Context(), userID, day)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to list water logs")
		return
	}
	c.JSON(http.StatusOK, gin.H{"logs": entries})
}

// DeleteWaterLog removes one water log by id.
func (h *LogHandler) DeleteWaterLog(c *gin.Context) {
	h.deleteLog(c, h.logbook.DeleteWaterLog)
}

// --- Exercise ---

// CreateExerciseLog records a performed workout and syncs today's plan.
func (h *LogHandler) CreateExerciseLog(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Invalid user identity")
		return
	}
	var req ExerciseLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	entry, plan, err := h.logbook.LogExercise(c.Request.Context(), userID, time.Now().UTC(), req.ExerciseName, req.DurationMin, req.CaloriesBurned)
	if err != nil {
		if errors.Is(err, service.ErrInvalidLogEntry) {
			abortWithError(c, http.StatusBadRequest, err.Error())
			return
		}
		abortWithError(c, http.StatusInternalServerError, "Failed to save exercise log")
		return
	}
	c.JSON(http.StatusCreated, ExerciseLogResponse{Log: entry, Plan: plan})
}

// ListExerciseLogs lists exercise logs for a date (default today).
func (h *LogHandler) ListExerciseLogs(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Invalid user identity")
		return
	}
	day, err := logDate(c)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid date; expected YYYY-MM-DD")
		return
	}

	entries, err := h.logbook.ExerciseLogs(c.Request.Context(), userID, day)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to list exercise logs")
		return
	}
	c.JSON(http.StatusOK, gin.H{"logs": entries})
}

// DeleteExerciseLog removes one exercise log by id.
func (h *LogHandler) DeleteExerciseLog(c *gin.Context) {
	h.deleteLog(c, h.logbook.DeleteExerciseLog)
}

// --- Analytics ---

// GetDailySummary aggregates one day of logs and plan progress.
func (h *LogHandler) GetDailySummary(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Invalid user identity")
		return
	}
	day, err := logDate(c)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid date; expected YYYY-MM-DD")
		return
	}

	summary, err := h.logbook.DailySummary(c.Request.Context(), userID, day)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to build daily summary")
		return
	}
	c.JSON(http.StatusOK, summary)
}

// --- Meal photos ---

// CreateMealPhotoUpload presigns a PUT URL for a meal photo.
func (h *LogHandler) CreateMealPhotoUpload(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Invalid user identity")
		return
	}
	var req MealPhotoUploadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	uploadURL, upload, err := h.logbook.CreateMealPhotoUpload(c.Request.Context(), userID, req.FileName, req.ContentType)
	if err != nil {
		if errors.Is(err, service.ErrInvalidLogEntry) {
			abortWithError(c, http.StatusBadRequest, err.Error())
			return
		}
		abortWithError(c, http.StatusInternalServerError, "Failed to prepare upload")
		return
	}
	c.JSON(http.StatusCreated, MealPhotoUploadResponse{
		UploadID:  upload.ID.Hex(),
		ObjectKey: upload.S3ObjectKey,
		UploadURL: uploadURL,
	})
}

// GetMealPhotoURL presigns a GET URL for a previously uploaded photo.
func (h *LogHandler) GetMealPhotoURL(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Invalid user identity")
		return
	}
	uploadID, err := primitive.ObjectIDFromHex(c.Param("uploadId"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid upload ID format")
		return
	}

	url, err := h.logbook.MealPhotoDownloadURL(c.Request.Context(), userID, uploadID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUploadNotFound):
			abortWithError(c, http.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrUploadDenied):
			abortWithError(c, http.StatusForbidden, err.Error())
		default:
			abortWithError(c, http.StatusInternalServerError, "Failed to presign download")
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"download_url": url})
}

// deleteLog factors the shared shape of log deletion endpoints.
func (h *LogHandler) deleteLog(c *gin.Context, del func(ctx context.Context, userID, id primitive.ObjectID) error) {
	userID, err := currentUserID(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Invalid user identity")
		return
	}
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid log ID format")
		return
	}

	if err := del(c.Request.Context(), userID, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			abortWithError(c, http.StatusNotFound, "Log entry not found")
			return
		}
		abortWithError(c, http.StatusInternalServerError, "Failed to delete log entry")
		return
	}
	c.Status(http.StatusNoContent)
}
