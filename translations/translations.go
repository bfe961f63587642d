// Package translations holds the bilingual response templates and the
// lookup/fallback chain used by the response composer.
package translations

import (
	"strings"

	"go.uber.org/zap"
)

var catalog = map[string]map[string]string{
	"en": {
		"response.greeting.full": "Hello! I'm here to help you find local assistance resources in Grand Rapids. You can ask about food, shelter, clothing, medical care, or baby supplies. What do you need today?",
		"response.thanks":        "You're very welcome! I'm glad I could help.",

		"response.followup.random": "{followUp}",
		"response.followup.1":      "Is there anything else you need help finding?",
		"response.followup.2":      "Would you like to know about any other resources?",
		"response.followup.3":      "Can I help you find anything else today?",

		"response.clarify": "I'm here to help you find resources in Grand Rapids. Could you tell me what kind of assistance you're looking for? For example, you could ask about food, shelter, or medical assistance.",

		"response.baby":     "Here are resources that can help with baby supplies like diapers, formula, and clothing:",
		"response.food":     "Here are places where you can find food assistance:",
		"response.shelter":  "Here are shelters and housing resources that may be able to help:",
		"response.clothing": "Here are places that provide free or low-cost clothing:",
		"response.medical":  "Here are medical and health resources available to you:",
		"response.default":  "Here are some resources that might help:",

		"response.phone.none":          "Phone not available",
		"response.directions.single":   "Would you like directions to {resourceName}?",
		"response.directions.multiple": "Would you like directions to any of these locations?",

		"response.hunger.family":   "I'm so sorry to hear about your situation. No one should have to go hungry, especially not families. Grand Rapids has many resources that can help. Here are some immediate options:",
		"response.hunger.personal": "I'm really sorry to hear you're feeling hungry. Here are some immediate options in Grand Rapids:",
		"response.hunger.open":     "These food banks are open right now:",
		"response.hunger.closed":   "I don't see any food banks open right now, but here are some that will be open soon:",
		"response.hunger.banks":    "Here are food banks in Grand Rapids and their regular hours (ID may be required):",
		"response.hunger.nearest":  "Would you like me to help you find the nearest one to your location?",

		"error.required":    "Please ask a question so I can help you find resources.",
		"error.noResources": "No resources are configured yet. Please try again later.",
		"error.rateLimited": "You're sending messages too quickly. Please try again shortly.",
		"error.generic":     "Something went wrong while looking up resources. Please try again.",
	},
	"es": {
		"response.greeting.full": "¡Hola! Estoy aquí para ayudarte a encontrar recursos de asistencia local en Grand Rapids. Puedes preguntar sobre comida, refugio, ropa, atención médica o artículos para bebés. ¿Qué necesitas hoy?",
		"response.thanks":        "¡De nada! Me alegra poder ayudarte.",

		"response.followup.random": "{followUp}",
		"response.followup.1":      "¿Hay algo más que necesites encontrar?",
		"response.followup.2":      "¿Te gustaría conocer otros recursos?",
		"response.followup.3":      "¿Puedo ayudarte a encontrar algo más hoy?",

		"response.clarify": "Estoy aquí para ayudarte a encontrar recursos en Grand Rapids. ¿Podrías decirme qué tipo de asistencia buscas? Por ejemplo, puedes preguntar sobre comida, refugio o asistencia médica.",

		"response.baby":     "Aquí hay recursos que pueden ayudar con artículos para bebés como pañales, fórmula y ropa:",
		"response.food":     "Aquí hay lugares donde puedes encontrar asistencia alimentaria:",
		"response.shelter":  "Aquí hay refugios y recursos de vivienda que pueden ayudar:",
		"response.clothing": "Aquí hay lugares que ofrecen ropa gratuita o de bajo costo:",
		"response.medical":  "Aquí hay recursos médicos y de salud disponibles para ti:",
		"response.default":  "Aquí hay algunos recursos que podrían ayudar:",

		"response.phone.none":          "Teléfono no disponible",
		"response.directions.single":   "¿Te gustaría obtener direcciones a {resourceName}?",
		"response.directions.multiple": "¿Te gustaría obtener direcciones a alguno de estos lugares?",

		"response.hunger.family":   "Lamento mucho tu situación. Nadie debería pasar hambre, especialmente las familias. Grand Rapids tiene muchos recursos que pueden ayudar. Aquí hay algunas opciones inmediatas:",
		"response.hunger.personal": "Lamento mucho que tengas hambre. Aquí hay algunas opciones inmediatas en Grand Rapids:",
		"response.hunger.open":     "Estos bancos de alimentos están abiertos ahora mismo:",
		"response.hunger.closed":   "No veo bancos de alimentos abiertos en este momento, pero aquí hay algunos que abrirán pronto:",
		"response.hunger.banks":    "Aquí están los bancos de alimentos en Grand Rapids y sus horarios regulares (puede requerirse identificación):",
		"response.hunger.nearest":  "¿Te gustaría que te ayude a encontrar el más cercano a tu ubicación?",

		"error.required":    "Por favor haz una pregunta para que pueda ayudarte a encontrar recursos.",
		"error.noResources": "Aún no hay recursos configurados. Por favor intenta más tarde.",
		"error.rateLimited": "Estás enviando mensajes demasiado rápido. Por favor intenta de nuevo en un momento.",
		"error.generic":     "Algo salió mal al buscar recursos. Por favor intenta de nuevo.",
	},
}

// Lookup returns the template for key in lang, or the key itself on a miss.
// It never fails; fallback behavior is layered on top by Localize.
func Lookup(key, lang string) string {
	langMap, ok := catalog[lang]
	if !ok {
		return key
	}
	if text, ok := langMap[key]; ok {
		return text
	}
	return key
}

// Localize resolves key in lang, falling back to English and finally to a
// visibly-marked placeholder. Placeholder params use {name}-style tokens;
// a param with no matching token is logged and skipped, never an error.
func Localize(key, lang string, params map[string]string, log *zap.Logger) string {
	text := Lookup(key, lang)
	if text == key && lang != "en" {
		text = Lookup(key, "en")
	}
	if text == key {
		if log != nil {
			log.Error("translation missing in all languages", zap.String("key", key))
		}
		return "[Missing translation: " + key + "]"
	}

	for param, value := range params {
		placeholder := "{" + param + "}"
		if strings.Contains(text, placeholder) {
			text = strings.ReplaceAll(text, placeholder, value)
		} else if log != nil {
			log.Warn("placeholder not found in translation",
				zap.String("key", key),
				zap.String("placeholder", placeholder))
		}
	}
	return text
}
