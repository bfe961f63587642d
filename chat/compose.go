package chat

import (
	"math/rand"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"resource-navigator-backend/models"
	"resource-navigator-backend/translations"
)

var followUpKeys = []string{
	"response.followup.1",
	"response.followup.2",
	"response.followup.3",
}

// Composer assembles the final answer text from localized templates,
// matched resources, and the curated knowledge base. The randomness source
// is injected so tests can pin the follow-up selection.
type Composer struct {
	log *zap.Logger

	mu  sync.Mutex
	rng *rand.Rand
}

// NewComposer builds a composer seeded from seed.
func NewComposer(log *zap.Logger, seed int64) *Composer {
	return &Composer{
		log: log,
		rng: rand.New(rand.NewSource(seed)),
	}
}

func (c *Composer) localize(key, lang string, params map[string]string) string {
	return translations.Localize(key, lang, params, c.log)
}

func (c *Composer) pickFollowUp(lang string) string {
	c.mu.Lock()
	key := followUpKeys[c.rng.Intn(len(followUpKeys))]
	c.mu.Unlock()
	return c.localize("response.followup.random", lang, map[string]string{
		"followUp": c.localize(key, lang, nil),
	})
}

// Greeting returns the canned greeting answer.
func (c *Composer) Greeting(lang string) string {
	return c.localize("response.greeting.full", lang, nil)
}

// Thanks returns the gratitude answer with a random follow-up appended.
func (c *Composer) Thanks(lang string) string {
	return c.localize("response.thanks", lang, nil) + " " + c.pickFollowUp(lang)
}

// Clarify returns the ask-for-clarification answer used when neither a
// service category nor any resource record gives the engine a foothold.
func (c *Composer) Clarify(lang string) string {
	return c.localize("response.clarify", lang, nil)
}

// Urgent composes the urgent-need answer from the curated knowledge base
// and the time context. The family flag only changes the opening sentence.
func (c *Composer) Urgent(lang string, family bool, hour int, day time.Weekday) string {
	openingKey := "response.hunger.personal"
	if family {
		openingKey = "response.hunger.family"
	}

	sections := []string{
		c.localize(openingKey, lang, nil) + "\n\n" + bullets(ImmediateOptions(hour)),
	}

	if openNow := OpenNow(hour, day); len(openNow) > 0 {
		sections = append(sections, c.localize("response.hunger.open", lang, nil)+"\n"+bullets(openNow))
	} else {
		sections = append(sections, c.localize("response.hunger.closed", lang, nil))
	}

	sections = append(sections,
		c.localize("response.hunger.banks", lang, nil)+"\n"+bullets(FoodBankList()),
		c.localize("response.hunger.nearest", lang, nil),
	)

	return strings.Join(sections, "\n\n")
}

// Generic composes the standard answer: a category-specific opening, the
// matched resource blocks, a directions prompt, and a random follow-up.
func (c *Composer) Generic(lang string, cats []ServiceCategory, matched []models.Resource) string {
	sections := []string{c.localize(openingKey(cats), lang, nil)}

	if len(matched) > 0 {
		blocks := make([]string, 0, len(matched))
		for _, r := range matched {
			blocks = append(blocks, c.resourceBlock(&r, lang))
		}
		sections = append(sections, strings.Join(blocks, "\n\n"))

		if len(matched) == 1 {
			sections = append(sections, c.localize("response.directions.single", lang, map[string]string{
				"resourceName": matched[0].Name,
			}))
		} else {
			sections = append(sections, c.localize("response.directions.multiple", lang, nil))
		}
	}

	sections = append(sections, c.pickFollowUp(lang))
	return strings.Join(sections, "\n\n")
}

// openingKey picks the opening template by category priority; only the
// top-priority matched category is described.
func openingKey(cats []ServiceCategory) string {
	switch {
	case HasCategory(cats, CategoryBaby):
		return "response.baby"
	case HasCategory(cats, CategoryFood):
		return "response.food"
	case HasCategory(cats, CategoryShelter):
		return "response.shelter"
	case HasCategory(cats, CategoryClothing):
		return "response.clothing"
	case HasCategory(cats, CategoryMedical):
		return "response.medical"
	default:
		return "response.default"
	}
}

func (c *Composer) resourceBlock(r *models.Resource, lang string) string {
	phone := r.Phone
	if phone == "" {
		phone = c.localize("response.phone.none", lang, nil)
	}

	var b strings.Builder
	b.WriteString("• " + r.Name)
	b.WriteString("\n  📍 " + r.Address + ", " + r.City)
	b.WriteString("\n  📞 " + phone)
	if r.Website != "" {
		b.WriteString("\n  🌐 " + r.Website)
	}
	return b.String()
}

func bullets(items []string) string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, "• "+item)
	}
	return strings.Join(out, "\n")
}
