package utils

import (
	"fmt"
	"html/template"
	"log"
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
)

// RenderCache keeps rendered novel bodies. Novel content never changes after
// creation, so entries are keyed by id and creation time and never expire.
type RenderCache struct {
	lruCache *lru.Cache[string, template.HTML]
}

var (
	renderCache     *RenderCache
	renderCacheOnce sync.Once
)

// GetRenderCache returns the process-wide cache.
func GetRenderCache() *RenderCache {
	renderCacheOnce.Do(func() {
		c, err := NewRenderCache(500)
		if err != nil {
			log.Fatalf("Failed to create render cache: %v", err)
		}
		renderCache = c
	})
	return renderCache
}

func NewRenderCache(size int) (*RenderCache, error) {
	l, err := lru.New[string, template.HTML](size)
	if err != nil {
		return nil, err
	}
	return &RenderCache{lruCache: l}, nil
}

// Render returns the cached HTML for a novel, rendering content on a miss.
func (c *RenderCache) Render(id int, createdAt time.Time, content string) template.HTML {
	key := fmt.Sprintf("novel:%d:%d", id, createdAt.UnixMilli())
	if html, ok := c.lruCache.Get(key); ok {
		return html
	}
	html := RenderMarkdown(content)
	c.lruCache.Add(key, html)
	return html
}

func (c *RenderCache) Len() int {
	return c.lruCache.Len()
}
