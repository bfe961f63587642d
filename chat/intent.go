package chat

import (
	"regexp"

	"resource-navigator-backend/models"
)

var (
	greetingRe = regexp.MustCompile(`(hi|hello|hey|greetings)`)
	thanksRe   = regexp.MustCompile(`(thanks|thank you|gracias)`)

	familyHungerRe = regexp.MustCompile(`(my|our) (kids?|children|family|mom|mother|dad|father|husband|wife|partner|baby|babies|toddler|son|daughter) (is|are|'?s|is feeling|are feeling) (hungry|starving|famished)`)

	personalHungerRes = []*regexp.Regexp{
		regexp.MustCompile(`(i'?m|i am) (hungry|starving|famished|really hungry|so hungry)`),
		regexp.MustCompile(`(need|needs|needing|want|wants|wanting|gotta|got to|have to|must) (get|find|eat|have) (food|a meal|meals|something to eat|dinner|lunch|breakfast|snack)`),
		regexp.MustCompile(`(don'?t|do not) have (any |some )?(food|meals|snacks|groceries)`),
		regexp.MustCompile(`(haven'?t|have not|didn'?t|did not) (eat|had) (breakfast|lunch|dinner|today|yesterday)`),
	}
)

// Classification is the result of intent detection for one question.
// FamilyHunger distinguishes "my kids are hungry" phrasing from "I'm
// hungry" phrasing; it changes the opening sentence, not the resource set.
type Classification struct {
	Intent       models.Intent
	FamilyHunger bool
}

// Classify runs the predicate chain against a normalized question.
// Priority is strict and part of the behavioral contract: greeting wins
// over gratitude, gratitude wins over urgent need, urgent need wins over
// the generic keyword path ("Thanks, I'm starving" is gratitude).
func Classify(normalized string) Classification {
	if normalized == "" {
		return Classification{Intent: models.IntentUnclassified}
	}

	if greetingRe.MatchString(normalized) {
		return Classification{Intent: models.IntentGreeting}
	}

	if thanksRe.MatchString(normalized) {
		return Classification{Intent: models.IntentThanks}
	}

	if familyHungerRe.MatchString(normalized) {
		return Classification{Intent: models.IntentUrgentNeed, FamilyHunger: true}
	}
	for _, re := range personalHungerRes {
		if re.MatchString(normalized) {
			return Classification{Intent: models.IntentUrgentNeed}
		}
	}

	return Classification{Intent: models.IntentGenericQuery}
}
