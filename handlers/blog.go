package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/saasbase/saasbase/backend/internal/blog"
	"github.com/saasbase/saasbase/backend/pkg/logger"
)

// BlogItem is the public listing shape: stored posts minus the published flag.
type BlogItem struct {
	Title   string   `json:"title"`
	Slug    string   `json:"slug"`
	Excerpt string   `json:"excerpt,omitempty"`
	Content string   `json:"content"`
	Tags    []string `json:"tags"`
	Author  string   `json:"author,omitempty"`
}

// BlogHandler serves the blog listing endpoint.
type BlogHandler struct {
	svc *blog.Service
}

func NewBlogHandler(svc *blog.Service) *BlogHandler {
	return &BlogHandler{svc: svc}
}

func (h *BlogHandler) Register(rg *gin.RouterGroup) {
	rg.GET("/api/blogs", h.List)
}

func (h *BlogHandler) List(c *gin.Context) {
	posts, err := h.svc.List(c.Request.Context())
	if err != nil {
		logger.Errorf("blog listing failed: %v", err)
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "database unavailable"})
		return
	}
	items := make([]BlogItem, 0, len(posts))
	for _, p := range posts {
		tags := p.Tags
		if tags == nil {
			tags = []string{}
		}
		items = append(items, BlogItem{
			Title:   p.Title,
			Slug:    p.Slug,
			Excerpt: p.Excerpt,
			Content: p.Content,
			Tags:    tags,
			Author:  p.Author,
		})
	}
	c.JSON(http.StatusOK, items)
}
