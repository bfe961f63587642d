package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap/zaptest"

	"resource-navigator-backend/apperrors"
	"resource-navigator-backend/chat"
	"resource-navigator-backend/models"
	"resource-navigator-backend/services"
)

type stubStore struct {
	resources []models.Resource
	err       error
}

func (s *stubStore) FetchAll(context.Context) ([]models.Resource, error) {
	return s.resources, s.err
}

func chatRouter(t *testing.T, store services.ResourceStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	log := zaptest.NewLogger(t)

	svc := services.NewChatbotService(
		store,
		chat.NewMemoryCache(64, 15*time.Minute),
		chat.NewThrottle(1000),
		chat.NewComposer(log, 1),
		log,
	)

	// A strictly increasing clock keeps the throttle out of the way for
	// tests that send several requests.
	base := time.Date(2025, 6, 3, 11, 0, 0, 0, time.UTC)
	svc.Now = func() time.Time {
		base = base.Add(time.Second)
		return base
	}

	router := gin.New()
	controller := NewChatController(svc, log)
	router.POST("/api/v1/chat", controller.HandleChat)
	return router
}

func postChat(router *gin.Engine, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/chat", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

func TestHandleChat_Success(t *testing.T) {
	store := &stubStore{resources: []models.Resource{{
		ID:       primitive.NewObjectID(),
		Name:     "Community Food Pantry",
		Address:  "100 Division Ave",
		City:     "Grand Rapids",
		Services: []string{"Food Pantry"},
	}}}
	router := chatRouter(t, store)

	w := postChat(router, `{"question": "hi"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.ChatResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.True(t, resp.Success)
	assert.Contains(t, resp.Answer, "Hello!")
	assert.NotNil(t, resp.RelevantResources)
	assert.Empty(t, resp.RelevantResources)
	assert.Equal(t, 1.0, resp.Confidence)
}

func TestHandleChat_MatchedResourcesInPayload(t *testing.T) {
	store := &stubStore{resources: []models.Resource{{
		ID:       primitive.NewObjectID(),
		Name:     "Baby Basics Center",
		Address:  "100 Division Ave",
		City:     "Grand Rapids",
		Services: []string{"Diapers", "Formula"},
	}}}
	router := chatRouter(t, store)

	w := postChat(router, `{"question": "where can I find diapers"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.ChatResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	require.Len(t, resp.RelevantResources, 1)
	assert.Equal(t, "Baby Basics Center", resp.RelevantResources[0].Name)
	assert.Len(t, resp.RelevantResources[0].ID, 24)
}

func TestHandleChat_MalformedJSON(t *testing.T) {
	router := chatRouter(t, &stubStore{})

	w := postChat(router, `{"question": `)
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, false, resp["success"])
	assert.Equal(t, "Invalid request format", resp["error"])
}

func TestHandleChat_EmptyQuestion(t *testing.T) {
	router := chatRouter(t, &stubStore{})

	w := postChat(router, `{"question": "   "}`)
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, false, resp["success"])
	assert.Equal(t, "Please ask a question so I can help you find resources.", resp["error"])
}

func TestHandleChat_EmptyQuestionSpanishError(t *testing.T) {
	router := chatRouter(t, &stubStore{})

	w := postChat(router, `{"question": "", "language": "es"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Por favor haz una pregunta")
}

func TestHandleChat_EmptyStore(t *testing.T) {
	router := chatRouter(t, &stubStore{})

	w := postChat(router, `{"question": "where can I find food"}`)
	require.Equal(t, http.StatusNotFound, w.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, false, resp["success"])
	assert.Equal(t, "No resources are configured yet. Please try again later.", resp["error"])
}

func TestHandleChat_RateLimited(t *testing.T) {
	store := &stubStore{resources: []models.Resource{{
		ID:   primitive.NewObjectID(),
		Name: "Community Food Pantry",
	}}}
	gin.SetMode(gin.TestMode)
	log := zaptest.NewLogger(t)

	svc := services.NewChatbotService(
		store,
		chat.NewMemoryCache(64, 15*time.Minute),
		chat.NewThrottle(1),
		chat.NewComposer(log, 1),
		log,
	)
	// A frozen clock makes the second request land inside the window.
	now := time.Date(2025, 6, 3, 11, 0, 0, 0, time.UTC)
	svc.Now = func() time.Time { return now }

	router := gin.New()
	router.POST("/api/v1/chat", NewChatController(svc, log).HandleChat)

	w := postChat(router, `{"question": "hi"}`)
	require.Equal(t, http.StatusOK, w.Code)

	w = postChat(router, `{"question": "hello"}`)
	require.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Contains(t, w.Body.String(), "too quickly")
}

func TestHandleChat_StoreFailure(t *testing.T) {
	store := &stubStore{err: apperrors.NewStoreUnavailableError(context.DeadlineExceeded)}
	router := chatRouter(t, store)

	w := postChat(router, `{"question": "where can I find food"}`)
	require.Equal(t, http.StatusInternalServerError, w.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Something went wrong while looking up resources. Please try again.", resp["error"])
	details, ok := resp["details"].(string)
	require.True(t, ok)
	assert.LessOrEqual(t, len(details), 200)
}
