package service

import (
	"context"
	"errors"
	"math/rand"
	"sync"
	"testing"
	"time"

	"github.com/Preetthee/desi-nutri-a82c05ec-sub000/internal/domain"
	"github.com/Preetthee/desi-nutri-a82c05ec-sub000/internal/planner"
	"github.com/Preetthee/desi-nutri-a82c05ec-sub000/internal/repository"

	"github.com/google/go-cmp/cmp"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// --- Fakes ---

// fakePlanRepo is an in-memory DailyPlanRepository mirroring the mongo
// repo's contract, including the unique (userId, planDate) constraint.
type fakePlanRepo struct {
	mu       sync.Mutex
	plans    map[primitive.ObjectID]*domain.DailyPlan
	onCreate func(plan *domain.DailyPlan) error // optional insert hook
}

func newFakePlanRepo() *fakePlanRepo {
	return &fakePlanRepo{plans: make(map[primitive.ObjectID]*domain.DailyPlan)}
}

func copyPlan(p *domain.DailyPlan) *domain.DailyPlan {
	cp := *p
	cp.Items = make([]domain.WorkoutItem, len(p.Items))
	copy(cp.Items, p.Items)
	return &cp
}

func (f *fakePlanRepo) Create(_ context.Context, plan *domain.DailyPlan) (primitive.ObjectID, error) {
	// Run the hook before taking the lock: hooks may call back into the
	// repo (e.g. seed), and sync.Mutex is not reentrant.
	f.mu.Lock()
	hook := f.onCreate
	f.mu.Unlock()
	if hook != nil {
		if err := hook(plan); err != nil {
			return primitive.NilObjectID, err
		}
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, existing := range f.plans {
		if existing.UserID == plan.UserID && existing.PlanDate == plan.PlanDate {
			return primitive.NilObjectID, repository.ErrDuplicate
		}
	}
	plan.ID = primitive.NewObjectID()
	plan.CreatedAt = time.Now().UTC()
	plan.UpdatedAt = plan.CreatedAt
	f.plans[plan.ID] = copyPlan(plan)
	return plan.ID, nil
}

func (f *fakePlanRepo) GetByID(_ context.Context, id primitive.ObjectID) (*domain.DailyPlan, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if p, ok := f.plans[id]; ok {
		return copyPlan(p), nil
	}
	return nil, repository.ErrNotFound
}

func (f *fakePlanRepo) GetByUserAndDate(_ context.Context, userID primitive.ObjectID, date string) (*domain.DailyPlan, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, p := range f.plans {
		if p.UserID == userID && p.PlanDate == date {
			return copyPlan(p), nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakePlanRepo) ReplaceItems(_ context.Context, planID, userID primitive.ObjectID, items []domain.WorkoutItem) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.plans[planID]
	if !ok || p.UserID != userID {
		return repository.ErrNotFound
	}
	p.Items = make([]domain.WorkoutItem, len(items))
	copy(p.Items, items)
	p.UpdatedAt = time.Now().UTC()
	return nil
}

func (f *fakePlanRepo) DeleteByUserAndDate(_ context.Context, userID primitive.ObjectID, date string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for id, p := range f.plans {
		if p.UserID == userID && p.PlanDate == date {
			delete(f.plans, id)
		}
	}
	return nil
}

func (f *fakePlanRepo) rowCount(userID primitive.ObjectID, date string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, p := range f.plans {
		if p.UserID == userID && p.PlanDate == date {
			n++
		}
	}
	return n
}

// seed stores a plan directly, bypassing Create.
func (f *fakePlanRepo) seed(plan *domain.DailyPlan) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if plan.ID == primitive.NilObjectID {
		plan.ID = primitive.NewObjectID()
	}
	f.plans[plan.ID] = copyPlan(plan)
}

// fakeUserRepo is an in-memory UserRepository.
type fakeUserRepo struct {
	users map[primitive.ObjectID]*domain.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[primitive.ObjectID]*domain.User)}
}

func (f *fakeUserRepo) Create(_ context.Context, user *domain.User) (primitive.ObjectID, error) {
	user.ID = primitive.NewObjectID()
	f.users[user.ID] = user
	return user.ID, nil
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeUserRepo) GetByID(_ context.Context, id primitive.ObjectID) (*domain.User, error) {
	if u, ok := f.users[id]; ok {
		return u, nil
	}
	return nil, repository.ErrNotFound
}

func (f *fakeUserRepo) UpdateProfile(_ context.Context, user *domain.User) error {
	if _, ok := f.users[user.ID]; !ok {
		return repository.ErrNotFound
	}
	f.users[user.ID] = user
	return nil
}

// --- Helpers ---

var testDay = time.Date(2024, 5, 10, 8, 30, 0, 0, time.UTC)

func newTestPlanService(planRepo *fakePlanRepo, userRepo *fakeUserRepo) PlanService {
	return NewPlanService(planRepo, userRepo, planner.DefaultLibrary(), planner.TokenNameMatcher{}, rand.New(rand.NewSource(42)))
}

func yesterdayPlan(userID primitive.ObjectID, items []domain.WorkoutItem) *domain.DailyPlan {
	return &domain.DailyPlan{
		UserID:   userID,
		PlanDate: domain.DateKey(testDay.AddDate(0, 0, -1)),
		Items:    items,
	}
}

// --- Tests ---

func TestGetOrCreateDailyPlanIdempotent(t *testing.T) {
	planRepo := newFakePlanRepo()
	svc := newTestPlanService(planRepo, newFakeUserRepo())
	userID := primitive.NewObjectID()

	first, _, err := svc.GetOrCreateDailyPlan(context.Background(), userID, testDay, "weight loss", false)
	if err != nil {
		t.Fatalf("first call: %v", err)
	}
	second, _, err := svc.GetOrCreateDailyPlan(context.Background(), userID, testDay, "weight loss", false)
	if err != nil {
		t.Fatalf("second call: %v", err)
	}

	if first.ID != second.ID {
		t.Errorf("plan IDs differ across calls: %s vs %s", first.ID.Hex(), second.ID.Hex())
	}
	if len(first.Items) == 0 {
		t.Error("freshly generated plan has no items")
	}
}

func TestGetOrCreateDailyPlanForceRegenerate(t *testing.T) {
	planRepo := newFakePlanRepo()
	svc := newTestPlanService(planRepo, newFakeUserRepo())
	userID := primitive.NewObjectID()

	first, _, err := svc.GetOrCreateDailyPlan(context.Background(), userID, testDay, "", true)
	if err != nil {
		t.Fatalf("first call: %v", err)
	}
	second, _, err := svc.GetOrCreateDailyPlan(context.Background(), userID, testDay, "", true)
	if err != nil {
		t.Fatalf("second call: %v", err)
	}

	if first.ID == second.ID {
		t.Errorf("forced regeneration returned the same plan ID %s", first.ID.Hex())
	}
	if n := planRepo.rowCount(userID, domain.DateKey(testDay)); n != 1 {
		t.Errorf("got %d rows for (user, date), want exactly 1", n)
	}
}

func TestGetOrCreateDailyPlanMissedCarryOver(t *testing.T) {
	planRepo := newFakePlanRepo()
	svc := newTestPlanService(planRepo, newFakeUserRepo())
	userID := primitive.NewObjectID()

	completedAt := testDay.AddDate(0, 0, -1)
	planRepo.seed(yesterdayPlan(userID, []domain.WorkoutItem{
		{ExerciseID: "push-ups", NameEn: "Push-ups", NameBn: "বুক ডন", Category: "strength", PlannedMinutes: 10, Checked: false},
		{ExerciseID: "plank", NameEn: "Plank", NameBn: "প্ল্যাঙ্ক", Category: "strength", PlannedMinutes: 5, Checked: true, CompletedAt: &completedAt},
	}))

	plan, missed, err := svc.GetOrCreateDailyPlan(context.Background(), userID, testDay, "", false)
	if err != nil {
		t.Fatalf("GetOrCreateDailyPlan: %v", err)
	}

	wantMissed := []domain.MissedWorkout{{NameEn: "Push-ups", NameBn: "বুক ডন"}}
	if diff := cmp.Diff(wantMissed, missed); diff != "" {
		t.Errorf("missed workouts mismatch (-want +got):\n%s", diff)
	}
	if plan.MissedCount != 1 {
		t.Errorf("MissedCount = %d, want 1", plan.MissedCount)
	}
	if len(plan.Items) == 0 || plan.Items[0].ExerciseID != "push-ups" {
		t.Errorf("carried-over exercise is not first in the new plan: %+v", plan.Items)
	}

	// Missed items are recomputed on cache hits too.
	_, missedAgain, err := svc.GetOrCreateDailyPlan(context.Background(), userID, testDay, "", false)
	if err != nil {
		t.Fatalf("cache hit call: %v", err)
	}
	if diff := cmp.Diff(wantMissed, missedAgain); diff != "" {
		t.Errorf("missed workouts on cache hit mismatch (-want +got):\n%s", diff)
	}
}

func TestGetOrCreateDailyPlanWeightLossLeansCardio(t *testing.T) {
	planRepo := newFakePlanRepo()
	svc := newTestPlanService(planRepo, newFakeUserRepo())
	userID := primitive.NewObjectID()

	plan, missed, err := svc.GetOrCreateDailyPlan(context.Background(), userID, testDay, "weight_loss", false)
	if err != nil {
		t.Fatalf("GetOrCreateDailyPlan: %v", err)
	}
	if missed != nil {
		t.Errorf("missed = %v, want nil on first-ever request", missed)
	}

	counts := make(map[string]int)
	for _, item := range plan.Items {
		counts[item.Category]++
	}
	if counts["cardio"] <= counts["strength"] {
		t.Errorf("cardio=%d not greater than strength=%d for weight loss goal", counts["cardio"], counts["strength"])
	}
}

func TestGetOrCreateDailyPlanUsesProfileGoal(t *testing.T) {
	planRepo := newFakePlanRepo()
	userRepo := newFakeUserRepo()
	svc := newTestPlanService(planRepo, userRepo)

	userID, _ := userRepo.Create(context.Background(), &domain.User{
		Name:        "Anika",
		Email:       "anika@example.com",
		FitnessGoal: "muscle gain",
	})

	plan, _, err := svc.GetOrCreateDailyPlan(context.Background(), userID, testDay, "", false)
	if err != nil {
		t.Fatalf("GetOrCreateDailyPlan: %v", err)
	}

	counts := make(map[string]int)
	for _, item := range plan.Items {
		counts[item.Category]++
	}
	if counts["strength"] <= counts["cardio"] {
		t.Errorf("strength=%d not greater than cardio=%d when profile goal is muscle gain", counts["strength"], counts["cardio"])
	}
}

func TestGetOrCreateDailyPlanDuplicateInsertRefetches(t *testing.T) {
	planRepo := newFakePlanRepo()
	svc := newTestPlanService(planRepo, newFakeUserRepo())
	userID := primitive.NewObjectID()

	// Simulate a concurrent request winning the insert race: by the time our
	// insert lands, a competitor row already exists.
	competitor := &domain.DailyPlan{
		UserID:   userID,
		PlanDate: domain.DateKey(testDay),
		Items:    []domain.WorkoutItem{{ExerciseID: "yoga", NameEn: "Yoga", NameBn: "যোগব্যায়াম", Category: "flexibility", PlannedMinutes: 20}},
	}
	planRepo.onCreate = func(*domain.DailyPlan) error {
		planRepo.onCreate = nil
		planRepo.seed(competitor)
		return repository.ErrDuplicate
	}

	plan, _, err := svc.GetOrCreateDailyPlan(context.Background(), userID, testDay, "", false)
	if err != nil {
		t.Fatalf("GetOrCreateDailyPlan: %v", err)
	}
	if plan.ID != competitor.ID {
		t.Errorf("returned plan %s, want the competitor's plan %s", plan.ID.Hex(), competitor.ID.Hex())
	}
}

func TestSetItemChecked(t *testing.T) {
	planRepo := newFakePlanRepo()
	svc := newTestPlanService(planRepo, newFakeUserRepo())
	userID := primitive.NewObjectID()

	created, _, err := svc.GetOrCreateDailyPlan(context.Background(), userID, testDay, "", false)
	if err != nil {
		t.Fatalf("GetOrCreateDailyPlan: %v", err)
	}

	plan, err := svc.SetItemChecked(context.Background(), userID, created.ID, 0, true)
	if err != nil {
		t.Fatalf("SetItemChecked(true): %v", err)
	}
	if !plan.Items[0].Checked {
		t.Error("item not checked after SetItemChecked(true)")
	}
	if plan.Items[0].CompletedAt == nil {
		t.Error("CompletedAt is nil for a checked item")
	}

	plan, err = svc.SetItemChecked(context.Background(), userID, created.ID, 0, false)
	if err != nil {
		t.Fatalf("SetItemChecked(false): %v", err)
	}
	if plan.Items[0].Checked {
		t.Error("item still checked after SetItemChecked(false)")
	}
	if plan.Items[0].CompletedAt != nil {
		t.Error("CompletedAt not cleared for an unchecked item")
	}

	if _, err := svc.SetItemChecked(context.Background(), userID, created.ID, len(created.Items), true); !errors.Is(err, ErrItemOutOfRange) {
		t.Errorf("out-of-range index error = %v, want ErrItemOutOfRange", err)
	}
	if _, err := svc.SetItemChecked(context.Background(), primitive.NewObjectID(), created.ID, 0, true); !errors.Is(err, ErrPlanNotFound) {
		t.Errorf("foreign user error = %v, want ErrPlanNotFound", err)
	}
}

func TestSyncWorkoutLog(t *testing.T) {
	planRepo := newFakePlanRepo()
	svc := newTestPlanService(planRepo, newFakeUserRepo())
	userID := primitive.NewObjectID()

	planRepo.seed(&domain.DailyPlan{
		UserID:   userID,
		PlanDate: domain.DateKey(testDay),
		Items: []domain.WorkoutItem{
			{ExerciseID: "brisk-walking", NameEn: "Brisk Walking", NameBn: "দ্রুত হাঁটা", Category: "cardio", PlannedMinutes: 15},
			{ExerciseID: "plank", NameEn: "Plank", NameBn: "প্ল্যাঙ্ক", Category: "strength", PlannedMinutes: 5},
		},
	})

	// Logged duration exceeds the plan: item checks off.
	plan, err := svc.SyncWorkoutLog(context.Background(), userID, testDay, []LoggedExercise{
		{Name: "morning walk", DurationMin: 20},
	})
	if err != nil {
		t.Fatalf("SyncWorkoutLog: %v", err)
	}
	walking := plan.Items[0]
	if !walking.Checked {
		t.Error("walking item not checked after 20 logged minutes against 15 planned")
	}
	if walking.CompletedAt == nil {
		t.Error("CompletedAt not set on auto-checked item")
	}
	if walking.CompletedMinutes != 20 {
		t.Errorf("CompletedMinutes = %d, want 20", walking.CompletedMinutes)
	}
	if walking.Progress != 100 {
		t.Errorf("Progress = %d, want capped 100", walking.Progress)
	}

	// Partial duration accumulates without checking the item.
	plan, err = svc.SyncWorkoutLog(context.Background(), userID, testDay, []LoggedExercise{
		{Name: "plank", DurationMin: 2},
	})
	if err != nil {
		t.Fatalf("SyncWorkoutLog (partial): %v", err)
	}
	plankItem := plan.Items[1]
	if plankItem.Checked {
		t.Error("plank checked after only 2 of 5 planned minutes")
	}
	if plankItem.CompletedMinutes != 2 || plankItem.Progress != 40 {
		t.Errorf("plank progress = %d min / %d%%, want 2 min / 40%%", plankItem.CompletedMinutes, plankItem.Progress)
	}

	// Unmatched names leave the plan untouched.
	if _, err := svc.SyncWorkoutLog(context.Background(), userID, testDay, []LoggedExercise{
		{Name: "swimming", DurationMin: 30},
	}); err != nil {
		t.Fatalf("SyncWorkoutLog (no match): %v", err)
	}

	// No plan for the day is not an error.
	plan, err = svc.SyncWorkoutLog(context.Background(), primitive.NewObjectID(), testDay, []LoggedExercise{
		{Name: "jogging", DurationMin: 10},
	})
	if err != nil {
		t.Fatalf("SyncWorkoutLog (no plan): %v", err)
	}
	if plan != nil {
		t.Errorf("plan = %+v, want nil when no plan exists", plan)
	}
}

func TestSyncWorkoutLogFirstMatchWins(t *testing.T) {
	planRepo := newFakePlanRepo()
	svc := newTestPlanService(planRepo, newFakeUserRepo())
	userID := primitive.NewObjectID()

	planRepo.seed(&domain.DailyPlan{
		UserID:   userID,
		PlanDate: domain.DateKey(testDay),
		Items: []domain.WorkoutItem{
			{ExerciseID: "brisk-walking", NameEn: "Brisk Walking", NameBn: "দ্রুত হাঁটা", Category: "cardio", PlannedMinutes: 60},
			{ExerciseID: "walking-lunges", NameEn: "Walking Lunges", NameBn: "লাঞ্জ", Category: "strength", PlannedMinutes: 10},
		},
	})

	plan, err := svc.SyncWorkoutLog(context.Background(), userID, testDay, []LoggedExercise{
		{Name: "walking", DurationMin: 10},
	})
	if err != nil {
		t.Fatalf("SyncWorkoutLog: %v", err)
	}

	if plan.Items[0].CompletedMinutes != 10 {
		t.Errorf("first matching item got %d minutes, want 10", plan.Items[0].CompletedMinutes)
	}
	if plan.Items[1].CompletedMinutes != 0 {
		t.Errorf("second matching item got %d minutes, want 0 (first match only)", plan.Items[1].CompletedMinutes)
	}
}

func TestGetOrCreateDailyPlanRequiresUser(t *testing.T) {
	svc := newTestPlanService(newFakePlanRepo(), newFakeUserRepo())
	if _, _, err := svc.GetOrCreateDailyPlan(context.Background(), primitive.NilObjectID, testDay, "", false); !errors.Is(err, ErrUserRequired) {
		t.Errorf("error = %v, want ErrUserRequired", err)
	}
}
