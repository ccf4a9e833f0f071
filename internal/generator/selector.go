package generator

import (
	"math/rand/v2"

	"github.com/merveatik/dietbot/internal/domain"
)

// FallbackText is the line printed into a slot when no candidate recipe
// survives filtering. Generation never aborts over an empty slot.
const FallbackText = "Uygun tarif bulunamadı."

// Selector draws one recipe text per slot. The random source is injected so
// tests can fix the sequence.
type Selector struct {
	rng *rand.Rand
}

// NewSelector creates a Selector over the given random source.
func NewSelector(rng *rand.Rand) *Selector {
	return &Selector{rng: rng}
}

// Pick chooses a uniformly random candidate and returns its content for the
// band, falling back to the base band text when the band's column is blank.
// An empty candidate list yields FallbackText.
func (s *Selector) Pick(candidates []domain.Recipe, band domain.Band) string {
	if len(candidates) == 0 {
		return FallbackText
	}
	chosen := candidates[s.rng.IntN(len(candidates))]
	return chosen.EffectiveContent(band)
}
