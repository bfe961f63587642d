package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"resource-navigator-backend/apperrors"
	"resource-navigator-backend/models"
	"resource-navigator-backend/services"
	"resource-navigator-backend/translations"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // Configure properly for production
	},
}

type WebSocketController struct {
	chatbotService *services.ChatbotService
	log            *zap.Logger
}

func NewWebSocketController(chatbotService *services.ChatbotService, log *zap.Logger) *WebSocketController {
	return &WebSocketController{
		chatbotService: chatbotService,
		log:            log,
	}
}

// HandleWebSocket answers chat questions over a websocket connection.
// Each inbound frame carries the same payload as POST /chat and receives
// the same response shape.
func (wc *WebSocketController) HandleWebSocket(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		wc.log.Warn("websocket upgrade failed", zap.Error(err))
		return
	}
	defer conn.Close()

	for {
		var req models.ChatRequest
		if err := conn.ReadJSON(&req); err != nil {
			wc.log.Debug("websocket read ended", zap.Error(err))
			break
		}

		language := req.Language
		if language == "" {
			language = "en"
		}

		answer, err := wc.chatbotService.Ask(c.Request.Context(), req.Question, language)
		if err != nil {
			errKey := "error.generic"
			switch apperrors.CodeOf(err) {
			case apperrors.CodeInvalidInput:
				errKey = "error.required"
			case apperrors.CodeNoResources:
				errKey = "error.noResources"
			case apperrors.CodeRateLimited:
				errKey = "error.rateLimited"
			}
			conn.WriteJSON(gin.H{
				"success": false,
				"error":   translations.Localize(errKey, language, nil, wc.log),
			})
			continue
		}

		conn.WriteJSON(models.NewChatResponse(answer))
	}
}
