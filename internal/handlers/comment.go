package handlers

import (
	"net/http"

	"novelhub/internal/services"
	"novelhub/internal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type CommentHandler struct {
	comments *services.CommentService
	log      *zap.Logger
}

func NewCommentHandler(comments *services.CommentService, log *zap.Logger) *CommentHandler {
	return &CommentHandler{comments: comments, log: log}
}

type createCommentRequest struct {
	Content  string `json:"content"`
	Author   string `json:"author"`
	AuthorID string `json:"authorId"`
}

func (h *CommentHandler) List(c *gin.Context) {
	novelID, ok := utils.ParseID(c.Param("id"))
	if !ok {
		RenderMessage(c, http.StatusBadRequest, "Invalid novel id")
		return
	}

	comments, err := h.comments.ListComments(novelID)
	if err != nil {
		RenderInternalError(c, h.log, "Failed to load comments", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"comments": comments})
}

// Create stores a comment on the novel in the path. The novel is not required
// to exist.
func (h *CommentHandler) Create(c *gin.Context) {
	novelID, ok := utils.ParseID(c.Param("id"))
	if !ok {
		RenderMessage(c, http.StatusBadRequest, "Invalid novel id")
		return
	}

	var req createCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		renderBadBody(c)
		return
	}

	comment, err := h.comments.CreateComment(currentActor(c), services.CreateCommentInput{
		NovelID:  novelID,
		Content:  req.Content,
		Author:   req.Author,
		AuthorID: req.AuthorID,
	})
	if err != nil {
		RenderInternalError(c, h.log, "Failed to create comment", err)
		return
	}
	c.JSON(http.StatusCreated, comment)
}
