package generator

import (
	"testing"

	"github.com/merveatik/dietbot/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestBMI(t *testing.T) {
	assert.InDelta(t, 24.22, BMI(70, 170), 0.01)
	assert.InDelta(t, 31.25, BMI(80, 160), 0.01)
}

func TestBandFor_Boundaries(t *testing.T) {
	tests := []struct {
		bmi  float64
		want domain.Band
	}{
		{18.0, domain.Band21to25},
		{25.9, domain.Band21to25},
		{26.0, domain.Band26to29},
		{29.9, domain.Band26to29},
		{30.0, domain.Band30to33},
		{33.9, domain.Band30to33},
		{34.0, domain.Band34Plus},
		{45.0, domain.Band34Plus},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, BandFor(tt.bmi), "bmi %.1f", tt.bmi)
	}
}

func TestBandForPatient(t *testing.T) {
	// 70kg at 170cm is BMI 24.2.
	assert.Equal(t, domain.Band21to25, BandForPatient(70, 170))
	// 95kg at 170cm is BMI 32.9.
	assert.Equal(t, domain.Band30to33, BandForPatient(95, 170))
	// 90kg at 160cm is BMI 35.2.
	assert.Equal(t, domain.Band34Plus, BandForPatient(90, 160))
}
