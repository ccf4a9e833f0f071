package testutil

import (
	"time"

	"github.com/google/uuid"
	"github.com/merveatik/dietbot/internal/domain"
)

// Recipe options
type RecipeOption func(*domain.Recipe)

func WithSlotType(s domain.SlotType) RecipeOption {
	return func(r *domain.Recipe) {
		r.SlotType = s
	}
}

func WithPoolType(p string) RecipeOption {
	return func(r *domain.Recipe) {
		r.PoolType = p
	}
}

func WithContent(band domain.Band, text string) RecipeOption {
	return func(r *domain.Recipe) {
		switch band {
		case domain.Band21to25:
			r.Content21to25 = text
		case domain.Band26to29:
			r.Content26to29 = text
		case domain.Band30to33:
			r.Content30to33 = text
		case domain.Band34Plus:
			r.Content34Plus = text
		}
	}
}

func WithAllContents(text string) RecipeOption {
	return func(r *domain.Recipe) {
		r.Content21to25 = text
		r.Content26to29 = text
		r.Content30to33 = text
		r.Content34Plus = text
	}
}

func NewTestRecipe(name string, opts ...RecipeOption) *domain.Recipe {
	now := time.Now().UTC()
	r := &domain.Recipe{
		ID:            uuid.New().String(),
		Name:          name,
		SlotType:      domain.SlotBreakfast,
		PoolType:      "normal",
		Content21to25: name + " (21-25)",
		Content26to29: name + " (26-29)",
		Content30to33: name + " (30-33)",
		Content34Plus: name + " (34+)",
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Template options
type TemplateOption func(*domain.Template)

func WithSlots(slots ...domain.MealSlot) TemplateOption {
	return func(t *domain.Template) {
		t.Slots = slots
	}
}

func NewTestTemplate(name string, opts ...TemplateOption) *domain.Template {
	now := time.Now().UTC()
	t := &domain.Template{
		ID:   uuid.New().String(),
		Name: name,
		Slots: []domain.MealSlot{
			{TimeLabel: "08:00", Name: "Kahvaltı", SlotType: domain.SlotBreakfast, SortOrder: 1},
			{TimeLabel: "12:00", Name: "Öğle Yemeği", SlotType: domain.SlotLunch, SortOrder: 2},
			{TimeLabel: "18:00", Name: "Akşam Yemeği", SlotType: domain.SlotDinner, SortOrder: 3},
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Package options
type PackageOption func(*domain.Package)

func WithListCount(n int) PackageOption {
	return func(p *domain.Package) {
		p.ListCount = n
	}
}

func WithDaysPerList(n int) PackageOption {
	return func(p *domain.Package) {
		p.DaysPerList = n
	}
}

func WithWeightChange(kg float64) PackageOption {
	return func(p *domain.Package) {
		p.WeightChangePerList = kg
	}
}

func WithSavePath(path string) PackageOption {
	return func(p *domain.Package) {
		p.SavePath = path
	}
}

func NewTestPackage(name string, opts ...PackageOption) *domain.Package {
	now := time.Now().UTC()
	p := &domain.Package{
		ID:                  uuid.New().String(),
		Name:                name,
		ListCount:           3,
		DaysPerList:         4,
		WeightChangePerList: -1.5,
		CreatedAt:           now,
		UpdatedAt:           now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Pool options
type PoolOption func(*domain.Pool)

func WithPoolActive(active bool) PoolOption {
	return func(p *domain.Pool) {
		p.IsActive = active
	}
}

func WithSortOrder(n int) PoolOption {
	return func(p *domain.Pool) {
		p.SortOrder = n
	}
}

func NewTestPool(name string, opts ...PoolOption) *domain.Pool {
	p := &domain.Pool{
		ID:        uuid.New().String(),
		Name:      name,
		Color:     "#6b2fa3",
		IsActive:  true,
		SortOrder: 10,
		CreatedAt: time.Now().UTC(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}
