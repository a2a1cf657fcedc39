package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Preetthee/desi-nutri-a82c05ec-sub000/internal/domain"
	"github.com/Preetthee/desi-nutri-a82c05ec-sub000/internal/service"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// stubPlanService records the arguments handlers pass down and returns canned
// results.
type stubPlanService struct {
	gotGoal  string
	gotForce bool
	gotIndex int
	plan     *domain.DailyPlan
	missed   []domain.MissedWorkout
	err      error
}

func (s *stubPlanService) GetOrCreateDailyPlan(_ context.Context, _ primitive.ObjectID, _ time.Time, fitnessGoal string, forceRegenerate bool) (*domain.DailyPlan, []domain.MissedWorkout, error) {
	s.gotGoal = fitnessGoal
	s.gotForce = forceRegenerate
	return s.plan, s.missed, s.err
}

func (s *stubPlanService) SetItemChecked(_ context.Context, _, _ primitive.ObjectID, index int, _ bool) (*domain.DailyPlan, error) {
	s.gotIndex = index
	return s.plan, s.err
}

func (s *stubPlanService) SyncWorkoutLog(_ context.Context, _ primitive.ObjectID, _ time.Time, _ []service.LoggedExercise) (*domain.DailyPlan, error) {
	return s.plan, s.err
}

func newPlanRouter(stub *stubPlanService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	handler := NewPlanHandler(stub)
	// Inject the authenticated identity directly; token verification has its
	// own coverage.
	authed := router.Group("", func(c *gin.Context) {
		c.Set(ContextUserIDKey, primitive.NewObjectID().Hex())
	})
	authed.POST("/plan/today", handler.GetTodayPlan)
	authed.PATCH("/plan/:planId/items/:index", handler.SetItemChecked)
	return router
}

func samplePlan() *domain.DailyPlan {
	return &domain.DailyPlan{
		ID:       primitive.NewObjectID(),
		UserID:   primitive.NewObjectID(),
		PlanDate: "2024-05-10",
		Items: []domain.WorkoutItem{
			{ExerciseID: "yoga", NameEn: "Yoga", NameBn: "যোগব্যায়াম", Category: "flexibility", PlannedMinutes: 20},
		},
	}
}

func TestGetTodayPlanHandler(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantGoal   string
		wantForce  bool
	}{
		{
			name:       "empty body is a plain fetch",
			body:       "",
			wantStatus: http.StatusOK,
		},
		{
			name:       "goal and force flag pass through",
			body:       `{"fitness_goal": "weight loss", "force_regenerate": true}`,
			wantStatus: http.StatusOK,
			wantGoal:   "weight loss",
			wantForce:  true,
		},
		{
			name:       "malformed JSON is rejected",
			body:       `{"fitness_goal":`,
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stub := &stubPlanService{
				plan:   samplePlan(),
				missed: []domain.MissedWorkout{{NameEn: "Push-ups", NameBn: "বুক ডন"}},
			}
			router := newPlanRouter(stub)

			req := httptest.NewRequest(http.MethodPost, "/plan/today", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d (body: %s)", w.Code, tt.wantStatus, w.Body.String())
			}
			if tt.wantStatus != http.StatusOK {
				return
			}

			if stub.gotGoal != tt.wantGoal || stub.gotForce != tt.wantForce {
				t.Errorf("service got goal=%q force=%v, want goal=%q force=%v", stub.gotGoal, stub.gotForce, tt.wantGoal, tt.wantForce)
			}

			var resp TodayPlanResponse
			if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
				t.Fatalf("response is not valid JSON: %v", err)
			}
			if resp.Plan == nil || len(resp.Plan.Items) != 1 {
				t.Errorf("response plan = %+v, want the stubbed plan", resp.Plan)
			}
			if len(resp.MissedWorkouts) != 1 || resp.MissedWorkouts[0].NameEn != "Push-ups" {
				t.Errorf("missed workouts = %+v, want the stubbed carry-over", resp.MissedWorkouts)
			}
		})
	}
}

func TestSetItemCheckedHandler(t *testing.T) {
	planID := primitive.NewObjectID().Hex()

	tests := []struct {
		name       string
		planID     string
		index      string
		body       string
		serviceErr error
		wantStatus int
	}{
		{
			name:       "valid toggle",
			planID:     planID,
			index:      "2",
			body:       `{"checked": true}`,
			wantStatus: http.StatusOK,
		},
		{
			name:       "explicit false is a valid value",
			planID:     planID,
			index:      "0",
			body:       `{"checked": false}`,
			wantStatus: http.StatusOK,
		},
		{
			name:       "missing checked field",
			planID:     planID,
			index:      "0",
			body:       `{}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "malformed plan id",
			planID:     "not-an-object-id",
			index:      "0",
			body:       `{"checked": true}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "non-numeric index",
			planID:     planID,
			index:      "first",
			body:       `{"checked": true}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "unknown plan",
			planID:     planID,
			index:      "0",
			body:       `{"checked": true}`,
			serviceErr: service.ErrPlanNotFound,
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "index out of range",
			planID:     planID,
			index:      "9",
			body:       `{"checked": true}`,
			serviceErr: service.ErrItemOutOfRange,
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stub := &stubPlanService{plan: samplePlan(), err: tt.serviceErr}
			router := newPlanRouter(stub)

			req := httptest.NewRequest(http.MethodPatch, "/plan/"+tt.planID+"/items/"+tt.index, strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d (body: %s)", w.Code, tt.wantStatus, w.Body.String())
			}
			if tt.wantStatus == http.StatusOK && tt.name == "valid toggle" && stub.gotIndex != 2 {
				t.Errorf("service got index %d, want 2", stub.gotIndex)
			}
			if tt.wantStatus != http.StatusOK {
				var resp map[string]string
				if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
					t.Fatalf("error response is not valid JSON: %v", err)
				}
				if resp["error"] == "" {
					t.Errorf("error body = %s, want an error message", w.Body.String())
				}
			}
		})
	}
}
