package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Preetthee/desi-nutri-a82c05ec-sub000/internal/domain"
	"github.com/Preetthee/desi-nutri-a82c05ec-sub000/internal/repository"
	"github.com/Preetthee/desi-nutri-a82c05ec-sub000/internal/storage"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// --- Error Definitions ---
var (
	ErrInvalidLogEntry = errors.New("log entry validation failed")
	ErrUploadNotFound  = errors.New("upload not found")
	ErrUploadDenied    = errors.New("access denied to this upload")
)

// DailySummary aggregates one calendar day for the analytics screen.
type DailySummary struct {
	Date           string `json:"date"`
	CaloriesIn     int    `json:"calories_in"`
	CaloriesBurned int    `json:"calories_burned"`
	WaterMl        int    `json:"water_ml"`
	WaterTargetMl  int    `json:"water_target_ml"`
	PlanItemsTotal int    `json:"plan_items_total"`
	PlanItemsDone  int    `json:"plan_items_done"`
}

// LogbookService covers the food/water/exercise logging surface, the daily
// summary, and meal photo storage.
type LogbookService interface {
	LogFood(ctx context.Context, userID primitive.ObjectID, day time.Time, nameEn, nameBn string, meal domain.MealType, calories int, photoObjectKey string) (*domain.FoodLog, error)
	FoodLogs(ctx context.Context, userID primitive.ObjectID, day time.Time) ([]domain.FoodLog, error)
	DeleteFoodLog(ctx context.Context, userID, id primitive.ObjectID) error

	LogWater(ctx context.Context, userID primitive.ObjectID, day time.Time, amountMl int) (*domain.WaterLog, error)
	WaterLogs(ctx context.Context, userID primitive.ObjectID, day time.Time) ([]domain.WaterLog, error)
	DeleteWaterLog(ctx context.Context, userID, id primitive.ObjectID) error

	// LogExercise persists the log and then syncs it into today's plan,
	// checking off matching items. The returned plan is nil when the user has
	// no plan for the day; the log still persists.
	LogExercise(ctx context.Context, userID primitive.ObjectID, day time.Time, exerciseName string, durationMin, caloriesBurned int) (*domain.ExerciseLog, *domain.DailyPlan, error)
	ExerciseLogs(ctx context.Context, userID primitive.ObjectID, day time.Time) ([]domain.ExerciseLog, error)
	DeleteExerciseLog(ctx context.Context, userID, id primitive.ObjectID) error

	DailySummary(ctx context.Context, userID primitive.ObjectID, day time.Time) (*DailySummary, error)

	// CreateMealPhotoUpload records photo metadata and returns a presigned PUT
	// URL the client uploads the file to, plus the upload's id and object key.
	CreateMealPhotoUpload(ctx context.Context, userID primitive.ObjectID, fileName, contentType string) (uploadURL string, upload *domain.Upload, err error)
	// MealPhotoDownloadURL presigns a GET for a previously recorded upload.
	MealPhotoDownloadURL(ctx context.Context, userID, uploadID primitive.ObjectID) (string, error)
}

// logbookService implements the LogbookService interface.
type logbookService struct {
	foodRepo     repository.FoodLogRepository
	waterRepo    repository.WaterLogRepository
	exerciseRepo repository.ExerciseLogRepository
	uploadRepo   repository.UploadRepository
	planRepo     repository.DailyPlanRepository
	userRepo     repository.UserRepository
	planService  PlanService
	fileStorage  storage.FileStorage
}

// NewLogbookService creates a new instance of logbookService.
func NewLogbookService(
	foodRepo repository.FoodLogRepository,
	waterRepo repository.WaterLogRepository,
	exerciseRepo repository.ExerciseLogRepository,
	uploadRepo repository.UploadRepository,
	planRepo repository.DailyPlanRepository,
	userRepo repository.UserRepository,
	planService PlanService,
	fileStorage storage.FileStorage,
) LogbookService {
	return &logbookService{
		foodRepo:     foodRepo,
		waterRepo:    waterRepo,
		exerciseRepo: exerciseRepo,
		uploadRepo:   uploadRepo,
		planRepo:     planRepo,
		userRepo:     userRepo,
		planService:  planService,
		fileStorage:  fileStorage,
	}
}

// LogFood records one eaten item for the given day.
func (s *logbookService) LogFood(ctx context.Context, userID primitive.ObjectID, day time.Time, nameEn, nameBn string, meal domain.MealType, calories int, photoObjectKey string) (*domain.FoodLog, error) {
	if userID == primitive.NilObjectID {
		return nil, ErrUserRequired
	}
	if nameEn == "" || calories < 0 {
		return nil, ErrInvalidLogEntry
	}

	entry := &domain.FoodLog{
		UserID:         userID,
		LogDate:        domain.DateKey(day),
		NameEn:         nameEn,
		NameBn:         nameBn,
		Meal:           meal,
		Calories:       calories,
		PhotoObjectKey: photoObjectKey,
	}
	if _, err := s.foodRepo.Create(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

// FoodLogs lists the user's food logs for a day.
func (s *logbookService) FoodLogs(ctx context.Context, userID primitive.ObjectID, day time.Time) ([]domain.FoodLog, error) {
	if userID == primitive.NilObjectID {
		return nil, ErrUserRequired
	}
	return s.foodRepo.GetByUserAndDate(ctx, userID, domain.DateKey(day))
}

// DeleteFoodLog removes one food log owned by the user.
func (s *logbookService) DeleteFoodLog(ctx context.Context, userID, id primitive.ObjectID) error {
	return s.foodRepo.Delete(ctx, id, userID)
}

// LogWater records one intake of water for the given day.
func (s *logbookService) LogWater(ctx context.Context, userID primitive.ObjectID, day time.Time, amountMl int) (*domain.WaterLog, error) {
	if userID == primitive.NilObjectID {
		return nil, ErrUserRequired
	}
	if amountMl <= 0 {
		return nil, ErrInvalidLogEntry
	}

	entry := &domain.WaterLog{
		UserID:   userID,
		LogDate:  domain.DateKey(day),
		AmountMl: amountMl,
	}
	if _, err := s.waterRepo.Create(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

// WaterLogs lists the user's water logs for a day.
func (s *logbookService) WaterLogs(ctx context.Context, userID primitive.ObjectID, day time.Time) ([]domain.WaterLog, error) {
	if userID == primitive.NilObjectID {
		return nil, ErrUserRequired
	}
	return s.waterRepo.GetByUserAndDate(ctx, userID, domain.DateKey(day))
}

// DeleteWaterLog removes one water log owned by the user.
func (s *logbookService) DeleteWaterLog(ctx context.Context, userID, id primitive.ObjectID) error {
	return s.waterRepo.Delete(ctx, id, userID)
}

// LogExercise persists the workout and syncs it into today's plan.
func (s *logbookService) LogExercise(ctx context.Context, userID primitive.ObjectID, day time.Time, exerciseName string, durationMin, caloriesBurned int) (*domain.ExerciseLog, *domain.DailyPlan, error) {
	if userID == primitive.NilObjectID {
		return nil, nil, ErrUserRequired
	}
	if exerciseName == "" || durationMin <= 0 || caloriesBurned < 0 {
		return nil, nil, ErrInvalidLogEntry
	}

	entry := &domain.ExerciseLog{
		UserID:         userID,
		LogDate:        domain.DateKey(day),
		ExerciseName:   exerciseName,
		DurationMin:    durationMin,
		CaloriesBurned: caloriesBurned,
	}
	if _, err := s.exerciseRepo.Create(ctx, entry); err != nil {
		return nil, nil, err
	}

	plan, err := s.planService.SyncWorkoutLog(ctx, userID, day, []LoggedExercise{
		{Name: exerciseName, DurationMin: durationMin},
	})
	if err != nil {
		// The log itself is saved; surface the sync failure to the caller.
		return entry, nil, err
	}
	return entry, plan, nil
}

// ExerciseLogs lists the user's exercise logs for a day.
func (s *logbookService) ExerciseLogs(ctx context.Context, userID primitive.ObjectID, day time.Time) ([]domain.ExerciseLog, error) {
	if userID == primitive.NilObjectID {
		return nil, ErrUserRequired
	}
	return s.exerciseRepo.GetByUserAndDate(ctx, userID, domain.DateKey(day))
}

// DeleteExerciseLog removes one exercise log owned by the user.
func (s *logbookService) DeleteExerciseLog(ctx context.Context, userID, id primitive.ObjectID) error {
	return s.exerciseRepo.Delete(ctx, id, userID)
}

// DailySummary aggregates calories, water and plan progress for one day.
func (s *logbookService) DailySummary(ctx context.Context, userID primitive.ObjectID, day time.Time) (*DailySummary, error) {
	if userID == primitive.NilObjectID {
		return nil, ErrUserRequired
	}
	dateKey := domain.DateKey(day)
	summary := &DailySummary{Date: dateKey}

	foods, err := s.foodRepo.GetByUserAndDate(ctx, userID, dateKey)
	if err != nil {
		return nil, err
	}
	for _, f := range foods {
		summary.CaloriesIn += f.Calories
	}

	waters, err := s.waterRepo.GetByUserAndDate(ctx, userID, dateKey)
	if err != nil {
		return nil, err
	}
	for _, w := range waters {
		summary.WaterMl += w.AmountMl
	}

	exercises, err := s.exerciseRepo.GetByUserAndDate(ctx, userID, dateKey)
	if err != nil {
		return nil, err
	}
	for _, e := range exercises {
		summary.CaloriesBurned += e.CaloriesBurned
	}

	if user, err := s.userRepo.GetByID(ctx, userID); err == nil {
		summary.WaterTargetMl = user.WaterTargetMl
	}

	plan, err := s.planRepo.GetByUserAndDate(ctx, userID, dateKey)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}
	if plan != nil {
		summary.PlanItemsTotal = len(plan.Items)
		for _, item := range plan.Items {
			if item.Checked {
				summary.PlanItemsDone++
			}
		}
	}

	return summary, nil
}

// CreateMealPhotoUpload records metadata and presigns the upload PUT.
func (s *logbookService) CreateMealPhotoUpload(ctx context.Context, userID primitive.ObjectID, fileName, contentType string) (string, *domain.Upload, error) {
	if userID == primitive.NilObjectID {
		return "", nil, ErrUserRequired
	}
	if fileName == "" || contentType == "" {
		return "", nil, ErrInvalidLogEntry
	}

	objectKey := fmt.Sprintf("meals/%s/%s-%s", userID.Hex(), uuid.NewString(), fileName)

	uploadURL, err := s.fileStorage.GeneratePresignedUploadURL(ctx, objectKey, contentType, storage.DefaultPresignedURLExpiry)
	if err != nil {
		return "", nil, err
	}

	upload := &domain.Upload{
		UserID:      userID,
		S3ObjectKey: objectKey,
		FileName:    fileName,
		ContentType: contentType,
	}
	if _, err := s.uploadRepo.Create(ctx, upload); err != nil {
		return "", nil, err
	}

	return uploadURL, upload, nil
}

// MealPhotoDownloadURL presigns a GET for the user's own upload.
func (s *logbookService) MealPhotoDownloadURL(ctx context.Context, userID, uploadID primitive.ObjectID) (string, error) {
	upload, err := s.uploadRepo.GetByID(ctx, uploadID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", ErrUploadNotFound
		}
		return "", err
	}
	if upload.UserID != userID {
		return "", ErrUploadDenied
	}
	return s.fileStorage.GeneratePresignedDownloadURL(ctx, upload.S3ObjectKey, storage.DefaultPresignedURLExpiry)
}
