package domain

// Band is a BMI-derived category selecting which recipe content variant
// is served to the patient.
type Band string

const (
	Band21to25 Band = "21_25"
	Band26to29 Band = "26_29"
	Band30to33 Band = "30_33"
	Band34Plus Band = "34_plus"
)

// Bands lists all bands in ascending BMI order.
var Bands = []Band{Band21to25, Band26to29, Band30to33, Band34Plus}

func (b Band) Valid() bool {
	switch b {
	case Band21to25, Band26to29, Band30to33, Band34Plus:
		return true
	}
	return false
}

// SlotType identifies a position in the daily schedule. Recipes are matched
// to template slots by this type. The values mirror the catalogue's
// historical Turkish keys.
type SlotType string

const (
	SlotBreakfast    SlotType = "kahvalti"
	SlotMidMorning   SlotType = "ara_ogun_1"
	SlotLunch        SlotType = "ogle"
	SlotMidAfternoon SlotType = "ara_ogun_2"
	SlotDinner       SlotType = "aksam"
	SlotEvening      SlotType = "ara_ogun_3"
	SlotSpecialDrink SlotType = "ozel_icecek"
)

// SlotTypes is the canonical ordered set of slot type keys.
var SlotTypes = []SlotType{
	SlotBreakfast, SlotMidMorning, SlotLunch,
	SlotMidAfternoon, SlotDinner, SlotEvening, SlotSpecialDrink,
}

func (s SlotType) Valid() bool {
	for _, t := range SlotTypes {
		if s == t {
			return true
		}
	}
	return false
}

// Season selects which physical recipe partition is active.
type Season string

const (
	SeasonSummer Season = "summer"
	SeasonWinter Season = "winter"
)

// MatchMode controls which text the exclusion filter searches.
//
// Package scopes match against the recipe name and all four band texts, so
// an excluded ingredient removes the recipe regardless of the patient's
// band. Legacy pool scopes match the recipe name only, preserving the
// behavior callers of the old pool model depend on.
type MatchMode string

const (
	MatchAllBands MatchMode = "all_bands"
	MatchNameOnly MatchMode = "name_only"
)

// OutputFormat selects which document renderers run for a generation.
type OutputFormat string

const (
	FormatPDF  OutputFormat = "pdf"
	FormatDOCX OutputFormat = "docx"
	FormatBoth OutputFormat = "both"
)

func (f OutputFormat) Valid() bool {
	switch f {
	case FormatPDF, FormatDOCX, FormatBoth:
		return true
	}
	return false
}

// WantsPDF reports whether the format includes a PDF document.
func (f OutputFormat) WantsPDF() bool { return f == FormatPDF || f == FormatBoth }

// WantsDOCX reports whether the format includes a DOCX document.
func (f OutputFormat) WantsDOCX() bool { return f == FormatDOCX || f == FormatBoth }
