package service

import (
	"context"
	"errors"

	"github.com/Preetthee/desi-nutri-a82c05ec-sub000/internal/domain"
	"github.com/Preetthee/desi-nutri-a82c05ec-sub000/internal/health"
	"github.com/Preetthee/desi-nutri-a82c05ec-sub000/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// --- Error Definitions ---
var (
	ErrUserNotFound      = errors.New("user not found")
	ErrProfileValidation = errors.New("profile validation failed")
)

// Profile is the user's settings view together with derived body metrics.
type Profile struct {
	User        *domain.User
	BMI         float64 // 0 when height/weight are unset
	BMICategory string
}

// ProfileService reads and updates account profiles.
type ProfileService interface {
	Get(ctx context.Context, userID primitive.ObjectID) (*Profile, error)
	Update(ctx context.Context, userID primitive.ObjectID, name, fitnessGoal string, heightCm, weightKg float64, waterTargetMl int) (*Profile, error)
}

// profileService implements the ProfileService interface.
type profileService struct {
	userRepo repository.UserRepository
}

// NewProfileService creates a new instance of profileService.
func NewProfileService(userRepo repository.UserRepository) ProfileService {
	return &profileService{userRepo: userRepo}
}

// Get returns the profile with BMI derived from stored metrics.
func (s *profileService) Get(ctx context.Context, userID primitive.ObjectID) (*Profile, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	user.PasswordHash = ""
	return buildProfile(user), nil
}

// Update overwrites the mutable profile fields.
func (s *profileService) Update(ctx context.Context, userID primitive.ObjectID, name, fitnessGoal string, heightCm, weightKg float64, waterTargetMl int) (*Profile, error) {
	if name == "" {
		return nil, ErrProfileValidation
	}
	if heightCm < 0 || weightKg < 0 || waterTargetMl < 0 {
		return nil, ErrProfileValidation
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	user.Name = name
	user.FitnessGoal = fitnessGoal
	user.HeightCm = heightCm
	user.WeightKg = weightKg
	user.WaterTargetMl = waterTargetMl

	if err := s.userRepo.UpdateProfile(ctx, user); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	user.PasswordHash = ""
	return buildProfile(user), nil
}

// buildProfile derives BMI when both metrics are present. Out-of-range
// metrics simply leave BMI at zero rather than failing the profile read.
func buildProfile(user *domain.User) *Profile {
	p := &Profile{User: user}
	if bmi, err := health.BMI(user.HeightCm, user.WeightKg); err == nil {
		p.BMI = bmi
		p.BMICategory = health.BMICategory(bmi)
	}
	return p
}
