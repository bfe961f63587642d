package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"resource-navigator-backend/apperrors"
	"resource-navigator-backend/metrics"
	"resource-navigator-backend/models"
	"resource-navigator-backend/services"
	"resource-navigator-backend/translations"
)

// maxErrorDetail caps the internal diagnostic echoed in 500 payloads so
// store errors never leak credentials or stack detail to the client.
const maxErrorDetail = 200

type ChatController struct {
	chatbotService *services.ChatbotService
	log            *zap.Logger
}

func NewChatController(chatbotService *services.ChatbotService, log *zap.Logger) *ChatController {
	return &ChatController{
		chatbotService: chatbotService,
		log:            log,
	}
}

// HandleChat processes POST /chat.
func (cc *ChatController) HandleChat(c *gin.Context) {
	var req models.ChatRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		metrics.ChatRequests.WithLabelValues("bad_request").Inc()
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Invalid request format",
		})
		return
	}

	language := req.Language
	if language == "" {
		language = "en"
	}

	answer, err := cc.chatbotService.Ask(c.Request.Context(), req.Question, language)
	if err != nil {
		cc.respondError(c, err, language)
		return
	}

	metrics.ChatRequests.WithLabelValues("ok").Inc()
	c.JSON(http.StatusOK, models.NewChatResponse(answer))
}

func (cc *ChatController) respondError(c *gin.Context, err error, language string) {
	localize := func(key string) string {
		return translations.Localize(key, language, nil, cc.log)
	}

	switch apperrors.CodeOf(err) {
	case apperrors.CodeInvalidInput:
		metrics.ChatRequests.WithLabelValues("bad_request").Inc()
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   localize("error.required"),
		})

	case apperrors.CodeNoResources:
		metrics.ChatRequests.WithLabelValues("no_resources").Inc()
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error":   localize("error.noResources"),
		})

	case apperrors.CodeRateLimited:
		metrics.ChatRequests.WithLabelValues("rate_limited").Inc()
		c.JSON(http.StatusTooManyRequests, gin.H{
			"success": false,
			"error":   localize("error.rateLimited"),
		})

	default:
		cc.log.Error("chat request failed", zap.Error(err))
		metrics.ChatRequests.WithLabelValues("error").Inc()
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   localize("error.generic"),
			"details": truncate(err.Error(), maxErrorDetail),
		})
	}
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}
