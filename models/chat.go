package models

// Intent is the coarse category of a user's message.
type Intent string

const (
	IntentGreeting     Intent = "greeting"
	IntentThanks       Intent = "thanks"
	IntentUrgentNeed   Intent = "urgent_need"
	IntentGenericQuery Intent = "generic_query"
	IntentUnclassified Intent = "unclassified"
)

// ChatRequest is the inbound chat payload. Language defaults to "en".
type ChatRequest struct {
	Question string `json:"question"`
	Language string `json:"language,omitempty"`
}

// Answer is the engine's composed result for one question.
type Answer struct {
	Text       string            `json:"text"`
	Resources  []ResourceSummary `json:"resources"`
	Confidence float64           `json:"confidence"`
	Intent     Intent            `json:"intent"`
}

// ChatResponse is the wire shape returned by POST /chat.
type ChatResponse struct {
	Success           bool              `json:"success"`
	Answer            string            `json:"answer"`
	RelevantResources []ResourceSummary `json:"relevantResources"`
	Confidence        float64           `json:"confidence"`
}

// NewChatResponse builds the success payload for a composed answer.
func NewChatResponse(a *Answer) ChatResponse {
	resources := a.Resources
	if resources == nil {
		resources = []ResourceSummary{}
	}
	return ChatResponse{
		Success:           true,
		Answer:            a.Text,
		RelevantResources: resources,
		Confidence:        a.Confidence,
	}
}
