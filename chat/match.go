package chat

import (
	"strings"

	"resource-navigator-backend/models"
)

// maxMatches caps the surfaced set. The truncation is by store iteration
// order, not a ranked top-5.
const maxMatches = 5

// Relevant selects the resource records worth surfacing for a question.
//
// Each record is tried against four strategies in order, stopping at the
// first success: declared services vs matched categories, question tokens
// vs name tokens, vs category tokens, and vs the record's full text. There
// is no scoring; a record found by any strategy counts the same as any
// other. If no service categories matched, or if matching found nothing,
// the full set is returned instead so the caller always has something to
// show. The result is capped at maxMatches.
func Relevant(resources []models.Resource, cats []ServiceCategory, tokens []string) []models.Resource {
	if len(resources) == 0 {
		return nil
	}
	if len(cats) == 0 {
		return capMatches(resources)
	}

	matched := []models.Resource{}
	seen := map[string]bool{}
	for _, r := range resources {
		if seen[r.ID.Hex()] {
			continue
		}
		if matchesRecord(&r, cats, tokens) {
			seen[r.ID.Hex()] = true
			matched = append(matched, r)
		}
	}

	if len(matched) == 0 {
		return capMatches(resources)
	}
	return capMatches(matched)
}

func matchesRecord(r *models.Resource, cats []ServiceCategory, tokens []string) bool {
	// 1. Service match: any declared service contains a matched category name.
	for _, service := range r.Services {
		serviceLower := strings.ToLower(service)
		for _, cat := range cats {
			if strings.Contains(serviceLower, string(cat)) {
				return true
			}
		}
	}

	// 2. Name match: question token appears inside a name token.
	if tokensMatchWords(tokens, strings.Fields(strings.ToLower(r.Name))) {
		return true
	}

	// 3. Category match.
	if r.Category != "" && tokensMatchWords(tokens, strings.Fields(strings.ToLower(r.Category))) {
		return true
	}

	// 4. Full-text match over name, category, services, and details.
	fullText := r.FullText()
	for _, token := range tokens {
		if strings.Contains(fullText, token) {
			return true
		}
	}

	return false
}

func tokensMatchWords(tokens, words []string) bool {
	for _, token := range tokens {
		for _, word := range words {
			if strings.Contains(word, token) {
				return true
			}
		}
	}
	return false
}

func capMatches(resources []models.Resource) []models.Resource {
	if len(resources) > maxMatches {
		return resources[:maxMatches]
	}
	return resources
}
