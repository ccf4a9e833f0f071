package generator

import (
	"strings"

	"github.com/merveatik/dietbot/internal/domain"
)

// ParseExclusions splits a free-text exclusion entry on commas into
// lowercase tokens, dropping empties. "Yumurta, ,  SÜT" becomes
// ["yumurta", "süt"].
func ParseExclusions(raw string) []string {
	var tokens []string
	for _, part := range strings.Split(raw, ",") {
		token := strings.ToLower(strings.TrimSpace(part))
		if token != "" {
			tokens = append(tokens, token)
		}
	}
	return tokens
}

// Filter removes every recipe whose searchable text contains any of the
// tokens. The searchable text depends on the scope's match mode: package
// scopes match the name plus all four band texts, pool scopes match the
// name only. An empty token list returns the input unchanged.
func Filter(recipes []domain.Recipe, tokens []string, mode domain.MatchMode) []domain.Recipe {
	if len(tokens) == 0 {
		return recipes
	}
	kept := make([]domain.Recipe, 0, len(recipes))
	for _, rec := range recipes {
		if !matchesAny(rec.SearchableText(mode), tokens) {
			kept = append(kept, rec)
		}
	}
	return kept
}

func matchesAny(text string, tokens []string) bool {
	for _, token := range tokens {
		if strings.Contains(text, token) {
			return true
		}
	}
	return false
}
