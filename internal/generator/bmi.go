// Package generator builds diet programs: it resolves the BMI band, filters
// candidate recipes against the patient's exclusions, picks one recipe per
// slot per day, and projects the multi-list date and weight windows.
package generator

import "github.com/merveatik/dietbot/internal/domain"

// BMI computes body mass index from weight in kilograms and height in
// centimeters.
func BMI(weightKg, heightCm float64) float64 {
	m := heightCm / 100
	return weightKg / (m * m)
}

// BandFor maps a BMI value onto a content band. The boundaries are
// exclusive on the lower side of each step: a BMI of exactly 26 already
// lands in the 26-29 band.
func BandFor(bmi float64) domain.Band {
	switch {
	case bmi < 26:
		return domain.Band21to25
	case bmi < 30:
		return domain.Band26to29
	case bmi < 34:
		return domain.Band30to33
	default:
		return domain.Band34Plus
	}
}

// BandForPatient resolves the band for a projected weight at the given
// height.
func BandForPatient(weightKg, heightCm float64) domain.Band {
	return BandFor(BMI(weightKg, heightCm))
}
