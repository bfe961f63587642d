package chat

import "strings"

// ServiceCategory is one of the fixed taxonomy of assistance types used to
// bridge free-text questions to resource metadata.
type ServiceCategory string

const (
	CategoryFood       ServiceCategory = "food"
	CategoryShelter    ServiceCategory = "shelter"
	CategoryClothing   ServiceCategory = "clothing"
	CategoryMedical    ServiceCategory = "medical"
	CategoryBaby       ServiceCategory = "baby"
	CategoryAssistance ServiceCategory = "assistance"
)

// serviceKeywords maps each category to its ordered trigger keywords.
// Declaration order is the iteration order for matching.
var serviceKeywords = []struct {
	Category ServiceCategory
	Keywords []string
}{
	{CategoryFood, []string{"food", "meal", "eat", "hungry", "groceries", "pantry", "soup kitchen", "food bank"}},
	{CategoryShelter, []string{"shelter", "housing", "homeless", "stay", "live", "sleep"}},
	{CategoryClothing, []string{"clothes", "clothing", "coat", "jacket", "shoes", "pants", "shirt", "diaper", "diapers", "underwear", "socks"}},
	{CategoryMedical, []string{"medical", "health", "doctor", "hospital", "clinic", "medicine", "pharmacy"}},
	{CategoryBaby, []string{"baby", "infant", "toddler", "diaper", "formula", "wipes", "stroller", "crib"}},
	{CategoryAssistance, []string{"help", "assistance", "support", "aid", "need", "find", "where", "how"}},
}

// MatchedServices returns every category with at least one keyword found as
// a substring of the normalized question, in declaration order. Multiple
// categories can match at once and all participate equally downstream;
// there is no weighting by number of keyword hits.
func MatchedServices(normalized string) []ServiceCategory {
	matched := []ServiceCategory{}
	for _, entry := range serviceKeywords {
		for _, keyword := range entry.Keywords {
			if strings.Contains(normalized, keyword) {
				matched = append(matched, entry.Category)
				break
			}
		}
	}
	return matched
}

// HasCategory reports whether cats contains c.
func HasCategory(cats []ServiceCategory, c ServiceCategory) bool {
	for _, cat := range cats {
		if cat == c {
			return true
		}
	}
	return false
}
