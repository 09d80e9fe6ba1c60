package handlers

import (
	"net/http"

	"novelhub/internal/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type TagHandler struct {
	novels *services.NovelService
	log    *zap.Logger
}

func NewTagHandler(novels *services.NovelService, log *zap.Logger) *TagHandler {
	return &TagHandler{novels: novels, log: log}
}

// ListTags lists every tag in use with its novel count.
func (h *TagHandler) ListTags(c *gin.Context) {
	tags, err := h.novels.ListTags()
	if err != nil {
		RenderInternalError(c, h.log, "Failed to load tags", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"tags": tags})
}
