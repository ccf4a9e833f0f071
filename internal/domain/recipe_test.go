package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecipeNormalize_BackfillsBlankBands(t *testing.T) {
	r := &Recipe{
		Name:          "Yulaf ezmesi",
		SlotType:      SlotBreakfast,
		Content21to25: "1 kase yulaf ezmesi, yarım muz",
		Content30to33: "1 kase yulaf ezmesi",
	}
	require.NoError(t, r.Normalize())

	assert.Equal(t, r.Content21to25, r.Content26to29)
	assert.Equal(t, "1 kase yulaf ezmesi", r.Content30to33)
	assert.Equal(t, r.Content21to25, r.Content34Plus)
}

func TestRecipeNormalize_RequiresBaseContent(t *testing.T) {
	r := &Recipe{Name: "Boş tarif", SlotType: SlotLunch}
	err := r.Normalize()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "21_25")
}

func TestRecipeNormalize_RejectsUnknownSlotType(t *testing.T) {
	r := &Recipe{Name: "X", SlotType: "brunch", Content21to25: "text"}
	assert.Error(t, r.Normalize())
}

func TestEffectiveContent_FallsBackToBase(t *testing.T) {
	r := &Recipe{
		Name:          "Omlet",
		SlotType:      SlotBreakfast,
		Content21to25: "2 yumurtalı omlet",
		Content34Plus: "1 yumurtalı omlet",
	}

	// Un-normalized recipe: blank bands resolve to the base text.
	assert.Equal(t, "2 yumurtalı omlet", r.EffectiveContent(Band26to29))
	assert.Equal(t, "2 yumurtalı omlet", r.EffectiveContent(Band30to33))
	assert.Equal(t, "1 yumurtalı omlet", r.EffectiveContent(Band34Plus))
	assert.Equal(t, "2 yumurtalı omlet", r.EffectiveContent(Band21to25))
}

func TestSearchableText_Modes(t *testing.T) {
	r := &Recipe{
		Name:          "Kinoa salata",
		SlotType:      SlotLunch,
		Content21to25: "haşlanmış yumurta ve kinoa",
		Content34Plus: "sade kinoa",
	}

	all := r.SearchableText(MatchAllBands)
	assert.Contains(t, all, "yumurta")
	assert.Contains(t, all, "kinoa salata")

	nameOnly := r.SearchableText(MatchNameOnly)
	assert.NotContains(t, nameOnly, "yumurta")
	assert.Contains(t, nameOnly, "kinoa salata")
}
