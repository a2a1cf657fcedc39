package health

import (
	"errors"
	"math"
	"testing"
)

func TestBMI(t *testing.T) {
	tests := []struct {
		name     string
		heightCm float64
		weightKg float64
		want     float64
		wantErr  bool
	}{
		{name: "normal", heightCm: 170, weightKg: 65, want: 22.49},
		{name: "zero height", heightCm: 0, weightKg: 65, wantErr: true},
		{name: "zero weight", heightCm: 170, weightKg: 0, wantErr: true},
		{name: "implausible height", heightCm: 300, weightKg: 65, wantErr: true},
		{name: "implausible weight", heightCm: 170, weightKg: 500, wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := BMI(tc.heightCm, tc.weightKg)
			if tc.wantErr {
				if !errors.Is(err, ErrOutOfRange) {
					t.Fatalf("BMI(%v, %v) error = %v, want ErrOutOfRange", tc.heightCm, tc.weightKg, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("BMI(%v, %v) unexpected error: %v", tc.heightCm, tc.weightKg, err)
			}
			if math.Abs(got-tc.want) > 0.01 {
				t.Errorf("BMI(%v, %v) = %.2f, want %.2f", tc.heightCm, tc.weightKg, got, tc.want)
			}
		})
	}
}

func TestBMICategory(t *testing.T) {
	tests := []struct {
		bmi  float64
		want string
	}{
		{17.0, "Underweight"},
		{22.0, "Normal weight"},
		{27.5, "Overweight"},
		{33.0, "Obese"},
	}
	for _, tc := range tests {
		if got := BMICategory(tc.bmi); got != tc.want {
			t.Errorf("BMICategory(%v) = %q, want %q", tc.bmi, got, tc.want)
		}
	}
}
