package domain

import (
	"fmt"
	"strings"
	"time"
)

// MealSlot is one position in a template's daily schedule. TimeLabel is
// free-form and used only for display; slot order within a template is the
// order meals appear in every generated day.
type MealSlot struct {
	TimeLabel string
	Name      string
	SlotType  SlotType
	SortOrder int
}

// Template is a named ordered sequence of meal slots.
type Template struct {
	ID        string
	Name      string
	Slots     []MealSlot
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Validate checks the template for storage.
func (t *Template) Validate() error {
	if strings.TrimSpace(t.Name) == "" {
		return fmt.Errorf("template name is required")
	}
	if len(t.Slots) == 0 {
		return fmt.Errorf("template %q: at least one meal slot is required", t.Name)
	}
	for i, s := range t.Slots {
		if !s.SlotType.Valid() {
			return fmt.Errorf("template %q: slot %d has invalid type %q", t.Name, i+1, s.SlotType)
		}
		if strings.TrimSpace(s.Name) == "" {
			return fmt.Errorf("template %q: slot %d has no name", t.Name, i+1)
		}
	}
	return nil
}
