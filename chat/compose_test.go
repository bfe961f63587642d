package chat

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"resource-navigator-backend/models"
)

func testComposer(t *testing.T) *Composer {
	return NewComposer(zaptest.NewLogger(t), 1)
}

func TestComposer_Greeting(t *testing.T) {
	c := testComposer(t)

	en := c.Greeting("en")
	assert.Contains(t, en, "Hello!")

	es := c.Greeting("es")
	assert.Contains(t, es, "¡Hola!")
}

func TestComposer_Clarify(t *testing.T) {
	c := testComposer(t)

	assert.Contains(t, c.Clarify("en"), "what kind of assistance you're looking for")
	assert.Contains(t, c.Clarify("es"), "qué tipo de asistencia buscas")
}

func TestComposer_ThanksIncludesFollowUp(t *testing.T) {
	c := testComposer(t)
	text := c.Thanks("en")
	assert.Contains(t, text, "You're very welcome!")
	// Exactly one of the fixed follow-up pool must be appended.
	hasFollowUp := strings.Contains(text, "anything else you need help finding") ||
		strings.Contains(text, "any other resources") ||
		strings.Contains(text, "anything else today")
	assert.True(t, hasFollowUp)
}

// The follow-up pool selection is driven by the injected seed, so two
// composers with the same seed produce identical output.
func TestComposer_SeededFollowUpIsDeterministic(t *testing.T) {
	a := NewComposer(zaptest.NewLogger(t), 42)
	b := NewComposer(zaptest.NewLogger(t), 42)

	for i := 0; i < 10; i++ {
		assert.Equal(t, a.Thanks("en"), b.Thanks("en"))
	}
}

func TestComposer_Urgent(t *testing.T) {
	c := testComposer(t)

	t.Run("lunch hour on a weekday", func(t *testing.T) {
		text := c.Urgent("en", false, 11, time.Tuesday)

		assert.Contains(t, text, "I'm really sorry to hear you're feeling hungry")
		assert.Contains(t, text, "Free lunch served daily")
		assert.Contains(t, text, "These food banks are open right now:")
		assert.Contains(t, text, "Matthews House Ministry")
		assert.Contains(t, text, "Would you like me to help you find the nearest one")
	})

	t.Run("family phrasing changes only the opening", func(t *testing.T) {
		personal := c.Urgent("en", false, 11, time.Tuesday)
		family := c.Urgent("en", true, 11, time.Tuesday)

		assert.Contains(t, family, "especially not families")
		assert.NotContains(t, personal, "especially not families")

		// Everything after the opening section is identical.
		_, personalRest, _ := strings.Cut(personal, "\n\n")
		_, familyRest, _ := strings.Cut(family, "\n\n")
		assert.Equal(t, personalRest, familyRest)
	})

	t.Run("off hours fall back to generic options", func(t *testing.T) {
		text := c.Urgent("en", false, 22, time.Tuesday)

		assert.Contains(t, text, "call 211")
		assert.Contains(t, text, "I don't see any food banks open right now")
	})

	t.Run("spanish templates around the curated entries", func(t *testing.T) {
		text := c.Urgent("es", false, 11, time.Tuesday)

		assert.Contains(t, text, "Lamento mucho que tengas hambre")
		assert.Contains(t, text, "Matthews House Ministry")
	})
}

func TestComposer_Generic(t *testing.T) {
	c := testComposer(t)

	babyDepot := testResource("Diaper Depot", "Baby Supplies")
	babyDepot.Phone = "616-555-0100"
	babyDepot.Website = "https://diaperdepot.example.org"

	pantry := testResource("Community Pantry", "Food Pantry")

	t.Run("baby outranks food in the opening", func(t *testing.T) {
		cats := []ServiceCategory{CategoryFood, CategoryBaby}
		text := c.Generic("en", cats, []models.Resource{babyDepot})

		assert.True(t, strings.HasPrefix(text, "Here are resources that can help with baby supplies"))
	})

	t.Run("single match names the resource in the directions prompt", func(t *testing.T) {
		text := c.Generic("en", []ServiceCategory{CategoryBaby}, []models.Resource{babyDepot})

		assert.Contains(t, text, "• Diaper Depot")
		assert.Contains(t, text, "📍 123 Main St, Grand Rapids")
		assert.Contains(t, text, "📞 616-555-0100")
		assert.Contains(t, text, "🌐 https://diaperdepot.example.org")
		assert.Contains(t, text, "Would you like directions to Diaper Depot?")
	})

	t.Run("multiple matches use the plural directions prompt", func(t *testing.T) {
		text := c.Generic("en", []ServiceCategory{CategoryFood}, []models.Resource{babyDepot, pantry})

		assert.Contains(t, text, "Would you like directions to any of these locations?")
	})

	t.Run("missing phone renders the placeholder", func(t *testing.T) {
		text := c.Generic("en", []ServiceCategory{CategoryFood}, []models.Resource{pantry})

		assert.Contains(t, text, "📞 Phone not available")
	})

	t.Run("no matches still returns an opening and follow-up", func(t *testing.T) {
		text := c.Generic("en", nil, nil)

		require.NotEmpty(t, text)
		assert.True(t, strings.HasPrefix(text, "Here are some resources that might help:"))
		assert.NotContains(t, text, "directions")
	})

	t.Run("sections are separated by blank lines", func(t *testing.T) {
		text := c.Generic("en", []ServiceCategory{CategoryBaby}, []models.Resource{babyDepot})
		sections := strings.Split(text, "\n\n")
		// opening, resource list, directions, follow-up
		assert.Len(t, sections, 4)
	})
}
