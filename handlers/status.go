package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/saasbase/saasbase/backend/internal/config"
	"github.com/saasbase/saasbase/backend/internal/schema"
	"github.com/saasbase/saasbase/backend/internal/store"
)

// StatusHandler serves the root banner, the database probe and the schema
// description.
type StatusHandler struct {
	cfg   *config.Config
	store store.Store
}

func NewStatusHandler(cfg *config.Config, s store.Store) *StatusHandler {
	return &StatusHandler{cfg: cfg, store: s}
}

func (h *StatusHandler) Register(r *gin.Engine) {
	r.GET("/", h.Root)
	r.GET("/test", h.Probe)
	r.GET("/schema", h.Schema)
}

func (h *StatusHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "SaaS Backend Running"})
}

// Probe always answers 200; database problems are reported as text inside the
// payload so dashboards keep rendering when the store is down.
func (h *StatusHandler) Probe(c *gin.Context) {
	resp := gin.H{
		"backend":           "✅ Running",
		"database":          "❌ Not Available",
		"database_url":      nil,
		"database_name":     nil,
		"connection_status": "Not Connected",
		"collections":       []string{},
	}

	if err := h.store.Ping(c.Request.Context()); err != nil {
		if !errors.Is(err, store.ErrUnavailable) {
			resp["database"] = "❌ Error: " + truncate(err.Error(), 80)
		}
		c.JSON(http.StatusOK, resp)
		return
	}

	resp["database"] = "✅ Available"
	if h.cfg.MongoDB.URI != "" {
		resp["database_url"] = "✅ Set"
	} else {
		resp["database_url"] = "❌ Not Set"
	}
	resp["database_name"] = h.store.Name()
	resp["connection_status"] = "Connected"

	cols, err := h.store.Collections(c.Request.Context())
	if err != nil {
		resp["database"] = "⚠️ Connected but Error: " + truncate(err.Error(), 80)
	} else {
		if len(cols) > 10 {
			cols = cols[:10]
		}
		resp["collections"] = cols
		resp["database"] = "✅ Connected & Working"
	}
	c.JSON(http.StatusOK, resp)
}

// Schema exposes the registered collection shapes for admin viewers. Derived
// from the schema registry so it cannot drift from the stored entities.
func (h *StatusHandler) Schema(c *gin.Context) {
	kinds := []schema.Kind{schema.KindUser, schema.KindBlogPost, schema.KindContactMessage}
	collections := make([]gin.H, 0, len(kinds))
	for _, k := range kinds {
		collections = append(collections, gin.H{
			"name":   string(k),
			"fields": schema.FieldNames(k),
		})
	}
	c.JSON(http.StatusOK, gin.H{"collections": collections})
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
