package domain

import (
	"fmt"
	"strings"
	"time"
)

// Scope selects which recipe subset a generation draws from: either a
// package (current model) or a legacy pool tag. Exactly one side is set.
type Scope struct {
	PackageID string
	PoolType  string
}

// PackageScope returns a scope bound to a package.
func PackageScope(packageID string) Scope { return Scope{PackageID: packageID} }

// PoolScope returns a scope bound to a legacy pool tag.
func PoolScope(poolType string) Scope { return Scope{PoolType: poolType} }

// IsPackage reports whether the scope is package-backed.
func (s Scope) IsPackage() bool { return s.PackageID != "" }

// MatchMode returns the exclusion match mode this scope's recipes are
// filtered with.
func (s Scope) MatchMode() MatchMode {
	if s.IsPackage() {
		return MatchAllBands
	}
	return MatchNameOnly
}

func (s Scope) Validate() error {
	if s.PackageID == "" && s.PoolType == "" {
		return fmt.Errorf("scope requires a package id or a pool type")
	}
	if s.PackageID != "" && s.PoolType != "" {
		return fmt.Errorf("scope cannot name both a package and a pool")
	}
	return nil
}

// GenerationRequest is the ephemeral input of one engine invocation. It is
// constructed once per user action and owns no long-lived state.
type GenerationRequest struct {
	PatientName     string
	WeightKg        float64
	HeightCm        float64
	BirthYear       int
	Gender          string
	TemplateID      string
	Scope           Scope
	StartDate       time.Time
	ExcludedFoods   string
	CombinationCode string
	OutputFormat    OutputFormat
}

// Validate performs the input checks that fail a request before any list is
// attempted.
func (r *GenerationRequest) Validate() error {
	if strings.TrimSpace(r.PatientName) == "" {
		return fmt.Errorf("patient name is required")
	}
	if r.WeightKg <= 0 {
		return fmt.Errorf("weight must be positive, got %.1f", r.WeightKg)
	}
	if r.HeightCm <= 0 {
		return fmt.Errorf("height must be positive, got %.1f", r.HeightCm)
	}
	if r.TemplateID == "" {
		return fmt.Errorf("template id is required")
	}
	if err := r.Scope.Validate(); err != nil {
		return err
	}
	if r.StartDate.IsZero() {
		return fmt.Errorf("start date is required")
	}
	if !r.OutputFormat.Valid() {
		return fmt.Errorf("invalid output format %q", r.OutputFormat)
	}
	return nil
}

// MealAssignment is one chosen recipe text for one template slot.
type MealAssignment struct {
	TimeLabel  string
	MealName   string
	SlotType   SlotType
	RecipeText string
}

// Day is one generated day: the day index within its list plus the meals in
// template order.
type Day struct {
	Index int
	Meals []MealAssignment
}

// Program is one complete list: an ordered sequence of days at a single
// band. Programs are produced by the assembler, handed to renderers, and
// never persisted.
type Program struct {
	ListIndex int
	Band      Band
	WeightKg  float64
	StartDate time.Time
	EndDate   time.Time
	Days      []Day
}

// ListFailure records a renderer failure against one list index. Failures
// are collected, not fatal to the run.
type ListFailure struct {
	ListIndex int
	Format    OutputFormat
	Err       string
}

// GenerationResult is the terminal state of a multi-list run.
type GenerationResult struct {
	Files       []string
	InitialBand Band
	FinalBand   Band
	Failures    []ListFailure
}
