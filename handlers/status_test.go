package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saasbase/saasbase/backend/internal/config"
	"github.com/saasbase/saasbase/backend/internal/store"
)

func statusRouter(s store.Store, uri string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{}
	cfg.MongoDB.URI = uri
	r := gin.New()
	NewStatusHandler(cfg, s).Register(r)
	return r
}

func TestRootBanner(t *testing.T) {
	r := statusRouter(store.NewMemory(), "")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"SaaS Backend Running"}`, w.Body.String())
}

func TestProbeConnected(t *testing.T) {
	m := store.NewMemory()
	_, err := m.CreateDocument(context.Background(), "contactmessage", map[string]interface{}{
		"name": "Ada", "email": "ada@x.com", "message": "hi",
	})
	require.NoError(t, err)

	r := statusRouter(m, "mongodb://localhost:27017")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "✅ Connected & Working", resp["database"])
	assert.Equal(t, "✅ Set", resp["database_url"])
	assert.Equal(t, "memory", resp["database_name"])
	assert.Equal(t, "Connected", resp["connection_status"])
	cols, ok := resp["collections"].([]interface{})
	require.True(t, ok)
	assert.Contains(t, cols, "contactmessage")
}

func TestProbeUnavailable(t *testing.T) {
	r := statusRouter(store.Unavailable(), "")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test", nil))
	// probe never fails the request
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "❌ Not Available", resp["database"])
	assert.Equal(t, "Not Connected", resp["connection_status"])
	assert.Nil(t, resp["database_url"])
	assert.Nil(t, resp["database_name"])
}

func TestSchemaEndpoint(t *testing.T) {
	r := statusRouter(store.NewMemory(), "")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/schema", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Collections []struct {
			Name   string   `json:"name"`
			Fields []string `json:"fields"`
		} `json:"collections"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Collections, 3)
	assert.Equal(t, "user", resp.Collections[0].Name)
	assert.Equal(t, []string{"name", "email", "password_hash", "is_active"}, resp.Collections[0].Fields)
	assert.Equal(t, "blogpost", resp.Collections[1].Name)
	assert.Equal(t, "contactmessage", resp.Collections[2].Name)
}
