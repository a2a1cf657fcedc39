package service

import (
	"context"
	"errors"
	"math/rand"
	"sync"
	"time"

	"github.com/Preetthee/desi-nutri-a82c05ec-sub000/internal/domain"
	"github.com/Preetthee/desi-nutri-a82c05ec-sub000/internal/planner"
	"github.com/Preetthee/desi-nutri-a82c05ec-sub000/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// --- Error Definitions ---
var (
	ErrPlanNotFound   = errors.New("daily plan not found")
	ErrItemOutOfRange = errors.New("plan item index out of range")
	ErrUserRequired   = errors.New("user identity is required")
)

// LoggedExercise is one structured workout entry arriving from the logging
// flow, to be matched against today's plan items.
type LoggedExercise struct {
	Name        string
	DurationMin int
}

// PlanService is the plan store: it owns creation, caching and mutation of
// daily workout plans. The reference date is always passed in explicitly so
// the service stays testable without a live clock.
type PlanService interface {
	// GetOrCreateDailyPlan returns today's plan, generating and persisting it
	// on first request (or when forceRegenerate discards an existing one).
	// The second return value lists yesterday's unchecked items; it is
	// recomputed on every call, cache hit or not.
	GetOrCreateDailyPlan(ctx context.Context, userID primitive.ObjectID, today time.Time, fitnessGoal string, forceRegenerate bool) (*domain.DailyPlan, []domain.MissedWorkout, error)

	// SetItemChecked flips one item's checked flag, stamping or clearing its
	// completion time, and persists the full items array.
	SetItemChecked(ctx context.Context, userID, planID primitive.ObjectID, index int, checked bool) (*domain.DailyPlan, error)

	// SyncWorkoutLog fuzzy-matches logged exercises against today's unchecked
	// plan items, accumulating duration and checking items whose planned
	// duration is reached. Returns the updated plan, or nil when no plan
	// exists for the day (not an error; logging works without a plan).
	SyncWorkoutLog(ctx context.Context, userID primitive.ObjectID, today time.Time, entries []LoggedExercise) (*domain.DailyPlan, error)
}

// planService implements the PlanService interface.
type planService struct {
	planRepo repository.DailyPlanRepository
	userRepo repository.UserRepository
	selector *planner.Selector
	matcher  planner.NameMatcher

	// mu serializes draws: the injected rand source is not goroutine safe.
	mu  sync.Mutex
	rng *rand.Rand
}

// NewPlanService creates a new instance of planService. The random source is
// process-local and non-cryptographic; tests inject a seeded one.
func NewPlanService(
	planRepo repository.DailyPlanRepository,
	userRepo repository.UserRepository,
	library *planner.Library,
	matcher planner.NameMatcher,
	rng *rand.Rand,
) PlanService {
	return &planService{
		planRepo: planRepo,
		userRepo: userRepo,
		selector: planner.NewSelector(library, planner.KeywordGoalMatcher{}, rng),
		matcher:  matcher,
		rng:      rng,
	}
}

// GetOrCreateDailyPlan computes yesterday's missed items, serves a cached
// plan when present, and otherwise selects exercises (carrying missed ones
// over) and inserts a fresh row.
func (s *planService) GetOrCreateDailyPlan(ctx context.Context, userID primitive.ObjectID, today time.Time, fitnessGoal string, forceRegenerate bool) (*domain.DailyPlan, []domain.MissedWorkout, error) {
	if userID == primitive.NilObjectID {
		return nil, nil, ErrUserRequired
	}

	todayKey := domain.DateKey(today)
	yesterdayKey := domain.DateKey(today.AddDate(0, 0, -1))

	missed, missedIDs, err := s.missedFromYesterday(ctx, userID, yesterdayKey)
	if err != nil {
		return nil, nil, err
	}

	if !forceRegenerate {
		existing, err := s.planRepo.GetByUserAndDate(ctx, userID, todayKey)
		if err == nil {
			return existing, missed, nil
		}
		if !errors.Is(err, repository.ErrNotFound) {
			return nil, nil, err
		}
	} else {
		// Forced regeneration replaces the row; delete first so the unique
		// (userId, planDate) index admits the new plan.
		if err := s.planRepo.DeleteByUserAndDate(ctx, userID, todayKey); err != nil {
			return nil, nil, err
		}
	}

	// Fall back to the stored profile goal when the caller passed none.
	if fitnessGoal == "" {
		if user, err := s.userRepo.GetByID(ctx, userID); err == nil {
			fitnessGoal = user.FitnessGoal
		}
	}

	plan := s.buildPlan(userID, todayKey, fitnessGoal, missedIDs, len(missed))

	if _, err := s.planRepo.Create(ctx, plan); err != nil {
		// A concurrent request won the insert race; their plan is today's plan.
		if errors.Is(err, repository.ErrDuplicate) {
			existing, fetchErr := s.planRepo.GetByUserAndDate(ctx, userID, todayKey)
			if fetchErr != nil {
				return nil, nil, fetchErr
			}
			return existing, missed, nil
		}
		return nil, nil, err
	}

	return plan, missed, nil
}

// missedFromYesterday loads yesterday's plan (if any) and collects its
// unchecked items: display names for the UI, library ids for carry-over.
func (s *planService) missedFromYesterday(ctx context.Context, userID primitive.ObjectID, yesterdayKey string) ([]domain.MissedWorkout, []string, error) {
	prev, err := s.planRepo.GetByUserAndDate(ctx, userID, yesterdayKey)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil, nil
		}
		return nil, nil, err
	}

	var missed []domain.MissedWorkout
	var missedIDs []string
	for _, item := range prev.Items {
		if item.Checked {
			continue
		}
		missed = append(missed, domain.MissedWorkout{NameEn: item.NameEn, NameBn: item.NameBn})
		if item.ExerciseID != "" {
			missedIDs = append(missedIDs, item.ExerciseID)
		}
	}
	return missed, missedIDs, nil
}

// buildPlan selects exercises and assembles an unchecked plan with a fresh tip.
func (s *planService) buildPlan(userID primitive.ObjectID, dateKey, fitnessGoal string, missedIDs []string, missedCount int) *domain.DailyPlan {
	s.mu.Lock()
	exercises := s.selector.Select(fitnessGoal, missedIDs)
	tipEn, tipBn := planner.RandomTip(s.rng)
	s.mu.Unlock()

	items := make([]domain.WorkoutItem, 0, len(exercises))
	for _, ex := range exercises {
		items = append(items, domain.WorkoutItem{
			ExerciseID:     ex.ID,
			NameEn:         ex.NameEn,
			NameBn:         ex.NameBn,
			Category:       string(ex.Category),
			PlannedMinutes: ex.DefaultMinutes,
		})
	}

	return &domain.DailyPlan{
		UserID:      userID,
		PlanDate:    dateKey,
		Items:       items,
		TipEn:       tipEn,
		TipBn:       tipBn,
		MissedCount: missedCount,
	}
}

// SetItemChecked flips an item and persists by whole-items rewrite.
func (s *planService) SetItemChecked(ctx context.Context, userID, planID primitive.ObjectID, index int, checked bool) (*domain.DailyPlan, error) {
	if userID == primitive.NilObjectID {
		return nil, ErrUserRequired
	}

	plan, err := s.planRepo.GetByID(ctx, planID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrPlanNotFound
		}
		return nil, err
	}
	if plan.UserID != userID {
		// Not this user's plan; indistinguishable from absent.
		return nil, ErrPlanNotFound
	}
	if index < 0 || index >= len(plan.Items) {
		return nil, ErrItemOutOfRange
	}

	item := &plan.Items[index]
	item.Checked = checked
	if checked {
		now := time.Now().UTC()
		item.CompletedAt = &now
	} else {
		item.CompletedAt = nil
	}

	if err := s.planRepo.ReplaceItems(ctx, plan.ID, userID, plan.Items); err != nil {
		return nil, err
	}
	return plan, nil
}

// SyncWorkoutLog applies logged workouts to today's plan. Each entry updates
// at most the first unchecked item whose name matches; list order wins, there
// is no ranking by match quality.
func (s *planService) SyncWorkoutLog(ctx context.Context, userID primitive.ObjectID, today time.Time, entries []LoggedExercise) (*domain.DailyPlan, error) {
	if userID == primitive.NilObjectID {
		return nil, ErrUserRequired
	}

	plan, err := s.planRepo.GetByUserAndDate(ctx, userID, domain.DateKey(today))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil // no plan today; nothing to sync
		}
		return nil, err
	}

	changed := false
	for _, entry := range entries {
		for i := range plan.Items {
			item := &plan.Items[i]
			if item.Checked {
				continue
			}
			if !s.matcher.Match(entry.Name, item.NameEn) && !s.matcher.Match(entry.Name, item.NameBn) {
				continue
			}

			item.CompletedMinutes += entry.DurationMin
			if item.PlannedMinutes > 0 {
				item.Progress = item.CompletedMinutes * 100 / item.PlannedMinutes
				if item.Progress > 100 {
					item.Progress = 100
				}
			}
			if item.PlannedMinutes > 0 && item.CompletedMinutes >= item.PlannedMinutes {
				item.Checked = true
				now := time.Now().UTC()
				item.CompletedAt = &now
			}
			changed = true
			break // first matching unchecked item only
		}
	}

	if !changed {
		return plan, nil
	}
	if err := s.planRepo.ReplaceItems(ctx, plan.ID, userID, plan.Items); err != nil {
		return nil, err
	}
	return plan, nil
}
