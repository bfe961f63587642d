package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"resource-navigator-backend/chat"
	"resource-navigator-backend/config"
	"resource-navigator-backend/controllers"
	"resource-navigator-backend/database"
	"resource-navigator-backend/services"
)

// SetupRoutes wires the engine and registers all endpoints.
func SetupRoutes(router *gin.Engine, cfg *config.Config, log *zap.Logger) {
	// Initialize services
	store := services.NewMongoResourceStore(
		database.GetMongoDB().Collection("resources"),
		cfg.Chat.StoreQueryTimeout,
		log,
	)

	cache := newAnswerCache(cfg, log)
	throttle := chat.NewThrottle(cfg.Chat.RateLimitPerSec)
	composer := chat.NewComposer(log, time.Now().UnixNano())
	chatbotService := services.NewChatbotService(store, cache, throttle, composer, log)

	// Initialize controllers
	chatController := controllers.NewChatController(chatbotService, log)
	wsController := controllers.NewWebSocketController(chatbotService, log)
	resourceController := controllers.NewResourceController(store, log)

	// Public routes
	public := router.Group("/api/v1")
	{
		public.POST("/chat", chatController.HandleChat)
		public.GET("/resources", resourceController.ListResources)

		// WebSocket for real-time chat
		public.GET("/ws", wsController.HandleWebSocket)
	}

	// Prometheus metrics
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// 404 handler
	router.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{
			"error": "Route not found",
			"path":  c.Request.URL.Path,
		})
	})
}

func newAnswerCache(cfg *config.Config, log *zap.Logger) chat.AnswerCache {
	if cfg.Chat.CacheBackend == "redis" {
		client := redis.NewClient(&redis.Options{
			Addr:         cfg.Redis.Address,
			Password:     cfg.Redis.Password,
			DB:           cfg.Redis.DB,
			DialTimeout:  5 * time.Second,
			ReadTimeout:  3 * time.Second,
			WriteTimeout: 3 * time.Second,
			PoolSize:     10,
			MinIdleConns: 5,
		})
		return chat.NewRedisCache(client, cfg.Chat.CacheTTL, log)
	}
	return chat.NewMemoryCache(cfg.Chat.CacheMaxEntries, cfg.Chat.CacheTTL)
}
