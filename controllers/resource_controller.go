package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"resource-navigator-backend/models"
	"resource-navigator-backend/services"
)

type ResourceController struct {
	store services.ResourceStore
	log   *zap.Logger
}

func NewResourceController(store services.ResourceStore, log *zap.Logger) *ResourceController {
	return &ResourceController{
		store: store,
		log:   log,
	}
}

// ListResources returns every resource record. Writes go through the
// admin tooling, not this API.
func (rc *ResourceController) ListResources(c *gin.Context) {
	resources, err := rc.store.FetchAll(c.Request.Context())
	if err != nil {
		rc.log.Error("failed to list resources", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "Failed to retrieve resources",
		})
		return
	}

	out := make([]models.ResourceSummary, 0, len(resources))
	for _, r := range resources {
		out = append(out, r.Summary())
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"resources": out,
		"count":     len(out),
	})
}
