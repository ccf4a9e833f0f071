package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRequest() GenerationRequest {
	return GenerationRequest{
		PatientName:  "Ayşe Demir",
		WeightKg:     70,
		HeightCm:     170,
		BirthYear:    1990,
		Gender:       "Kadin",
		TemplateID:   "tpl-1",
		Scope:        PackageScope("pkg-1"),
		StartDate:    time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		OutputFormat: FormatPDF,
	}
}

func TestGenerationRequestValidate(t *testing.T) {
	req := validRequest()
	require.NoError(t, req.Validate())

	tests := []struct {
		name   string
		mutate func(*GenerationRequest)
	}{
		{"empty patient name", func(r *GenerationRequest) { r.PatientName = "  " }},
		{"zero weight", func(r *GenerationRequest) { r.WeightKg = 0 }},
		{"negative height", func(r *GenerationRequest) { r.HeightCm = -1 }},
		{"missing template", func(r *GenerationRequest) { r.TemplateID = "" }},
		{"empty scope", func(r *GenerationRequest) { r.Scope = Scope{} }},
		{"double scope", func(r *GenerationRequest) { r.Scope = Scope{PackageID: "p", PoolType: "normal"} }},
		{"zero start date", func(r *GenerationRequest) { r.StartDate = time.Time{} }},
		{"bad format", func(r *GenerationRequest) { r.OutputFormat = "xlsx" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := validRequest()
			tt.mutate(&r)
			assert.Error(t, r.Validate())
		})
	}
}

func TestScopeMatchMode(t *testing.T) {
	assert.Equal(t, MatchAllBands, PackageScope("pkg-1").MatchMode())
	assert.Equal(t, MatchNameOnly, PoolScope("normal").MatchMode())
}

func TestPackageValidate(t *testing.T) {
	p := &Package{Name: "Detoks 4x7", ListCount: 4, DaysPerList: 7, WeightChangePerList: -2}
	require.NoError(t, p.Validate())
	assert.Equal(t, 28, p.TotalDays())

	p.ListCount = 0
	assert.Error(t, p.Validate())
}
