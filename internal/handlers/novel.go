package handlers

import (
	"net/http"

	"novelhub/internal/services"
	"novelhub/internal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type NovelHandler struct {
	novels *services.NovelService
	cache  *utils.RenderCache
	log    *zap.Logger
}

func NewNovelHandler(novels *services.NovelService, cache *utils.RenderCache, log *zap.Logger) *NovelHandler {
	return &NovelHandler{novels: novels, cache: cache, log: log}
}

type createNovelRequest struct {
	Title    string   `json:"title"`
	Content  string   `json:"content"`
	Author   string   `json:"author"`
	AuthorID string   `json:"authorId"`
	Tags     []string `json:"tags"`
}

// Feed returns all novels and all comments in one response.
func (h *NovelHandler) Feed(c *gin.Context) {
	novels, comments, err := h.novels.Feed()
	if err != nil {
		RenderInternalError(c, h.log, "Failed to load novels", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"novels": novels, "comments": comments})
}

// List supports ?tag= for an exact tag and ?sort=hot for engagement order.
func (h *NovelHandler) List(c *gin.Context) {
	filter := services.NovelFilter{
		Tag:  c.Query("tag"),
		Sort: c.DefaultQuery("sort", services.SortNew),
	}
	if filter.Sort != services.SortNew && filter.Sort != services.SortHot {
		RenderMessage(c, http.StatusBadRequest, "Unknown sort order")
		return
	}

	novels, err := h.novels.ListNovels(filter)
	if err != nil {
		RenderInternalError(c, h.log, "Failed to load novels", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"novels": novels})
}

func (h *NovelHandler) Create(c *gin.Context) {
	var req createNovelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		renderBadBody(c)
		return
	}

	novel, err := h.novels.CreateNovel(currentActor(c), services.CreateNovelInput{
		Title:    req.Title,
		Content:  req.Content,
		Author:   req.Author,
		AuthorID: req.AuthorID,
		Tags:     req.Tags,
	})
	if err != nil {
		RenderInternalError(c, h.log, "Failed to create novel", err)
		return
	}
	c.JSON(http.StatusCreated, novel)
}

// Detail returns the novel, its rendered body and its comments.
func (h *NovelHandler) Detail(c *gin.Context) {
	id, ok := utils.ParseID(c.Param("id"))
	if !ok {
		RenderMessage(c, http.StatusBadRequest, "Invalid novel id")
		return
	}

	novel, comments, found, err := h.novels.GetNovel(id)
	if err != nil {
		RenderInternalError(c, h.log, "Failed to load novel", err)
		return
	}
	if !found {
		RenderMessage(c, http.StatusNotFound, "Novel not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"novel":       novel,
		"contentHtml": h.cache.Render(novel.ID, novel.CreatedAt.Time, novel.Content),
		"comments":    comments,
	})
}
