package domain

import (
	"fmt"
	"strings"
	"time"
)

// Recipe is one catalogue entry: a named meal text with four band-specific
// variants. PoolType is the legacy flat grouping tag; package membership
// lives in the package_recipes relation and is not stored on the recipe.
type Recipe struct {
	ID       string
	Name     string
	SlotType SlotType
	PoolType string

	// Band content. Content21to25 is the base text; the other three fall
	// back to it when blank.
	Content21to25 string
	Content26to29 string
	Content30to33 string
	Content34Plus string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// ContentFor returns the raw content string stored for the given band,
// without fallback. Use EffectiveContent for the serving text.
func (r *Recipe) ContentFor(b Band) string {
	switch b {
	case Band26to29:
		return r.Content26to29
	case Band30to33:
		return r.Content30to33
	case Band34Plus:
		return r.Content34Plus
	default:
		return r.Content21to25
	}
}

// EffectiveContent returns the text served for the given band. A blank
// band-specific field resolves to the base 21_25 text, so every band always
// yields some content.
func (r *Recipe) EffectiveContent(b Band) string {
	if c := r.ContentFor(b); c != "" {
		return c
	}
	return r.Content21to25
}

// SearchableText returns the text the exclusion filter matches against
// under the given mode.
func (r *Recipe) SearchableText(mode MatchMode) string {
	if mode == MatchNameOnly {
		return strings.ToLower(r.Name)
	}
	var sb strings.Builder
	sb.WriteString(r.Name)
	sb.WriteByte(' ')
	sb.WriteString(r.Content21to25)
	sb.WriteByte(' ')
	sb.WriteString(r.Content26to29)
	sb.WriteByte(' ')
	sb.WriteString(r.Content30to33)
	sb.WriteByte(' ')
	sb.WriteString(r.Content34Plus)
	return strings.ToLower(sb.String())
}

// Normalize backfills blank band texts from the base text and validates the
// recipe for storage.
func (r *Recipe) Normalize() error {
	if strings.TrimSpace(r.Name) == "" {
		return fmt.Errorf("recipe name is required")
	}
	if !r.SlotType.Valid() {
		return fmt.Errorf("invalid slot type %q", r.SlotType)
	}
	if strings.TrimSpace(r.Content21to25) == "" {
		return fmt.Errorf("recipe %q: base (21_25) content is required", r.Name)
	}
	if r.Content26to29 == "" {
		r.Content26to29 = r.Content21to25
	}
	if r.Content30to33 == "" {
		r.Content30to33 = r.Content21to25
	}
	if r.Content34Plus == "" {
		r.Content34Plus = r.Content21to25
	}
	return nil
}
