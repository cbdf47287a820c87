package store

import (
	"context"
	"fmt"
	"sync"

	"github.com/saasbase/saasbase/backend/internal/schema"
)

// Memory is an in-memory Store used by unit tests and local development
// without a database. Documents keep insertion order per collection.
type Memory struct {
	mu          sync.RWMutex
	collections map[string][]map[string]interface{}
	seq         int
}

func NewMemory() *Memory {
	return &Memory{collections: make(map[string][]map[string]interface{})}
}

func (m *Memory) CreateDocument(ctx context.Context, collection string, doc map[string]interface{}) (string, error) {
	validated, err := schema.Validate(schema.Kind(collection), doc)
	if err != nil {
		return "", err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.seq++
	id := fmt.Sprintf("mem_%d", m.seq)
	validated["_id"] = id
	m.collections[collection] = append(m.collections[collection], validated)
	return id, nil
}

func (m *Memory) GetDocuments(ctx context.Context, collection string, filter map[string]interface{}, limit int64) ([]map[string]interface{}, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := []map[string]interface{}{}
	for _, doc := range m.collections[collection] {
		if !matches(doc, filter) {
			continue
		}
		// shallow copy so callers cannot mutate stored documents
		cp := make(map[string]interface{}, len(doc))
		for k, v := range doc {
			cp[k] = v
		}
		out = append(out, cp)
		if limit > 0 && int64(len(out)) >= limit {
			break
		}
	}
	return out, nil
}

func matches(doc, filter map[string]interface{}) bool {
	for k, v := range filter {
		if doc[k] != v {
			return false
		}
	}
	return true
}

func (m *Memory) Ping(ctx context.Context) error { return nil }

func (m *Memory) Collections(ctx context.Context) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]string, 0, len(m.collections))
	for name := range m.collections {
		out = append(out, name)
	}
	return out, nil
}

func (m *Memory) Name() string { return "memory" }
