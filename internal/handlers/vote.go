package handlers

import (
	"net/http"

	"novelhub/internal/services"
	"novelhub/internal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type VoteHandler struct {
	novels *services.NovelService
	log    *zap.Logger
}

func NewVoteHandler(novels *services.NovelService, log *zap.Logger) *VoteHandler {
	return &VoteHandler{novels: novels, log: log}
}

// Like adds one like to a novel and returns the updated record. Likes are
// not tied to a user; every call counts.
func (h *VoteHandler) Like(c *gin.Context) {
	id, ok := utils.ParseID(c.Param("id"))
	if !ok {
		RenderMessage(c, http.StatusBadRequest, "Invalid novel id")
		return
	}

	novel, found, err := h.novels.LikeNovel(id)
	if err != nil {
		RenderInternalError(c, h.log, "Failed to like novel", err)
		return
	}
	if !found {
		RenderMessage(c, http.StatusNotFound, "Novel not found")
		return
	}
	c.JSON(http.StatusOK, novel)
}
