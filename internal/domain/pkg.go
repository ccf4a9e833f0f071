package domain

import (
	"fmt"
	"strings"
	"time"
)

// Package is a named generation profile: how many sequential lists to
// produce, how long each list runs, and how much the patient's weight is
// projected to change per list. A package owns a many-to-many relation to
// recipes; the engine draws candidates from that subset.
type Package struct {
	ID                  string
	Name                string
	Description         string
	ListCount           int
	DaysPerList         int
	WeightChangePerList float64
	SavePath            string
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// Validate checks the package's generation parameters.
func (p *Package) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("package name is required")
	}
	if p.ListCount < 1 {
		return fmt.Errorf("package %q: list count must be at least 1, got %d", p.Name, p.ListCount)
	}
	if p.DaysPerList < 1 {
		return fmt.Errorf("package %q: days per list must be at least 1, got %d", p.Name, p.DaysPerList)
	}
	return nil
}

// TotalDays is the full span the package covers.
func (p *Package) TotalDays() int { return p.ListCount * p.DaysPerList }

// Pool is the legacy flat recipe grouping. Pools carry no generation
// parameters and are retained for backward compatibility; new code paths
// read them but never mutate recipe membership through them.
type Pool struct {
	ID          string
	Name        string
	Description string
	Color       string
	IsActive    bool
	SortOrder   int
	CreatedAt   time.Time
}

// PoolStats summarizes a pool's recipe coverage per slot type.
type PoolStats struct {
	TotalRecipes     int
	SlotDistribution map[SlotType]int
	MissingSlotTypes []SlotType
}
