// Package health holds body-metric arithmetic shared by profile and
// analytics endpoints.
package health

import "errors"

// ErrOutOfRange is returned for missing or implausible body metrics.
var ErrOutOfRange = errors.New("height and weight must be within a plausible range")

// BMI expects height in centimeters and weight in kilograms.
func BMI(heightCm, weightKg float64) (float64, error) {
	if heightCm <= 0 || weightKg <= 0 {
		return 0, ErrOutOfRange
	}
	// Sanity checks to avoid garbage input
	if heightCm < 50 || heightCm > 250 || weightKg < 10 || weightKg > 400 {
		return 0, ErrOutOfRange
	}
	h := heightCm / 100.0
	return weightKg / (h * h), nil
}

// BMICategory buckets a BMI value into the label shown on the profile page.
func BMICategory(bmi float64) string {
	switch {
	case bmi < 18.5:
		return "Underweight"
	case bmi < 25.0:
		return "Normal weight"
	case bmi < 30.0:
		return "Overweight"
	default:
		return "Obese"
	}
}
