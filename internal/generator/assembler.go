package generator

import (
	"context"
	"fmt"

	"github.com/merveatik/dietbot/internal/domain"
	"github.com/rs/zerolog"
)

// CandidateSource supplies the recipes eligible for one slot of a scope.
// The repository layer implements it.
type CandidateSource interface {
	ListByScope(ctx context.Context, scope domain.Scope, slot domain.SlotType) ([]domain.Recipe, error)
}

// assembler builds the days of one list. Candidates are fetched and
// filtered once per slot type; the random draw repeats per day so the same
// recipe may recur across days.
type assembler struct {
	source   CandidateSource
	selector *Selector
	log      zerolog.Logger
}

func (a *assembler) buildDays(ctx context.Context, tpl *domain.Template, scope domain.Scope,
	band domain.Band, tokens []string, dayCount int) ([]domain.Day, error) {

	pools := make(map[domain.SlotType][]domain.Recipe)
	for _, slot := range tpl.Slots {
		if _, ok := pools[slot.SlotType]; ok {
			continue
		}
		candidates, err := a.source.ListByScope(ctx, scope, slot.SlotType)
		if err != nil {
			return nil, fmt.Errorf("loading %s candidates: %w", slot.SlotType, err)
		}
		filtered := Filter(candidates, tokens, scope.MatchMode())
		if len(filtered) == 0 {
			// Every meal of this slot type falls back to the placeholder
			// text; the run keeps going but the operator should know.
			a.log.Warn().
				Str("slot_type", string(slot.SlotType)).
				Int("candidates", len(candidates)).
				Int("excluded", len(candidates)-len(filtered)).
				Msg("no recipes left for slot, using fallback text")
		}
		pools[slot.SlotType] = filtered
	}

	days := make([]domain.Day, 0, dayCount)
	for d := 1; d <= dayCount; d++ {
		day := domain.Day{Index: d, Meals: make([]domain.MealAssignment, 0, len(tpl.Slots))}
		for _, slot := range tpl.Slots {
			day.Meals = append(day.Meals, domain.MealAssignment{
				TimeLabel:  slot.TimeLabel,
				MealName:   slot.Name,
				SlotType:   slot.SlotType,
				RecipeText: a.selector.Pick(pools[slot.SlotType], band),
			})
		}
		days = append(days, day)
	}
	return days, nil
}
