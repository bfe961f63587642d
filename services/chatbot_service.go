package services

import (
	"context"
	"time"

	"go.uber.org/zap"

	"resource-navigator-backend/apperrors"
	"resource-navigator-backend/chat"
	"resource-navigator-backend/metrics"
	"resource-navigator-backend/models"
)

// ChatbotService is the conversational resource-matching engine. It is a
// pure function of (question, language, resource snapshot) plus the two
// injected shared-state collaborators: the answer cache and the throttle.
type ChatbotService struct {
	store    ResourceStore
	cache    chat.AnswerCache
	throttle *chat.Throttle
	composer *chat.Composer
	log      *zap.Logger

	// Now is the clock used for throttling and the time-of-day branch;
	// tests override it to pin hour and weekday.
	Now func() time.Time
}

// NewChatbotService wires the engine together.
func NewChatbotService(store ResourceStore, cache chat.AnswerCache, throttle *chat.Throttle, composer *chat.Composer, log *zap.Logger) *ChatbotService {
	return &ChatbotService{
		store:    store,
		cache:    cache,
		throttle: throttle,
		composer: composer,
		log:      log,
		Now:      time.Now,
	}
}

// Ask answers a free-text question against the current resource snapshot.
// Language tags other than "es" resolve as English.
func (s *ChatbotService) Ask(ctx context.Context, question, language string) (*models.Answer, error) {
	started := time.Now()
	defer func() {
		metrics.AnswerDuration.Observe(time.Since(started).Seconds())
	}()

	if language != "es" {
		language = "en"
	}

	normalized := chat.Normalize(question)
	if normalized == "" {
		return nil, apperrors.NewInvalidInputError()
	}

	if !s.throttle.Allow(s.Now()) {
		metrics.RateLimited.Inc()
		return nil, apperrors.NewRateLimitedError()
	}

	key := chat.CacheKey(question, language)
	if answer, ok := s.cache.Get(ctx, key); ok {
		metrics.CacheHits.Inc()
		s.log.Debug("answer served from cache", zap.String("key", key))
		return answer, nil
	}
	metrics.CacheMisses.Inc()

	resources, err := s.store.FetchAll(ctx)
	if err != nil {
		return nil, err
	}
	if len(resources) == 0 {
		return nil, apperrors.NewNoResourcesError()
	}

	answer := s.answerQuestion(normalized, language, resources)
	s.cache.Set(ctx, key, answer)

	s.log.Info("answer composed",
		zap.String("intent", string(answer.Intent)),
		zap.String("language", language),
		zap.Int("resources", len(answer.Resources)))

	return answer, nil
}

func (s *ChatbotService) answerQuestion(normalized, language string, resources []models.Resource) *models.Answer {
	classification := chat.Classify(normalized)
	tokens := chat.Tokens(normalized)
	cats := chat.MatchedServices(normalized)

	answer := &models.Answer{
		Confidence: 1.0,
		Intent:     classification.Intent,
		Resources:  []models.ResourceSummary{},
	}

	switch classification.Intent {
	case models.IntentGreeting:
		answer.Text = s.composer.Greeting(language)

	case models.IntentThanks:
		answer.Text = s.composer.Thanks(language)

	case models.IntentUrgentNeed:
		now := s.Now()
		answer.Text = s.composer.Urgent(language, classification.FamilyHunger, now.Hour(), now.Weekday())
		answer.Resources = summaries(chat.Relevant(resources, cats, tokens))

	default:
		if len(cats) == 0 && len(resources) == 0 {
			answer.Text = s.composer.Clarify(language)
			return answer
		}
		matched := chat.Relevant(resources, cats, tokens)
		answer.Text = s.composer.Generic(language, cats, matched)
		answer.Resources = summaries(matched)
	}

	return answer
}

func summaries(resources []models.Resource) []models.ResourceSummary {
	out := make([]models.ResourceSummary, 0, len(resources))
	for _, r := range resources {
		out = append(out, r.Summary())
	}
	return out
}
