package store

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saasbase/saasbase/backend/internal/schema"
)

func TestMemoryCreateAndGet(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	id, err := m.CreateDocument(ctx, string(schema.KindContactMessage), map[string]interface{}{
		"name":    "Ada",
		"email":   "ada@x.com",
		"message": "hello",
	})
	require.NoError(t, err)
	require.NotEmpty(t, id)

	docs, err := m.GetDocuments(ctx, string(schema.KindContactMessage), map[string]interface{}{"email": "ada@x.com"}, 1)
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "hello", docs[0]["message"])
}

func TestMemoryValidationBeforeInsert(t *testing.T) {
	m := NewMemory()
	_, err := m.CreateDocument(context.Background(), string(schema.KindUser), map[string]interface{}{
		"name":          "Ada",
		"email":         "not-an-email",
		"password_hash": "x",
	})
	require.Error(t, err)
	var verr *schema.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "email", verr.Field)

	// nothing was persisted
	docs, err := m.GetDocuments(context.Background(), string(schema.KindUser), nil, 0)
	require.NoError(t, err)
	assert.Empty(t, docs)
}

func TestMemoryLimit(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()
	for i := 0; i < 25; i++ {
		_, err := m.CreateDocument(ctx, string(schema.KindContactMessage), map[string]interface{}{
			"name":    "n",
			"email":   fmt.Sprintf("u%d@x.com", i),
			"message": "m",
		})
		require.NoError(t, err)
	}
	docs, err := m.GetDocuments(ctx, string(schema.KindContactMessage), nil, 20)
	require.NoError(t, err)
	assert.Len(t, docs, 20)

	// limit <= 0 means unlimited
	docs, err = m.GetDocuments(ctx, string(schema.KindContactMessage), nil, 0)
	require.NoError(t, err)
	assert.Len(t, docs, 25)
}

func TestMemoryMissingCollection(t *testing.T) {
	m := NewMemory()
	docs, err := m.GetDocuments(context.Background(), "blogpost", nil, 10)
	require.NoError(t, err)
	assert.Empty(t, docs)
}

func TestMemoryReturnsCopies(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()
	_, err := m.CreateDocument(ctx, "contactmessage", map[string]interface{}{
		"name": "Ada", "email": "ada@x.com", "message": "hi",
	})
	require.NoError(t, err)

	docs, err := m.GetDocuments(ctx, "contactmessage", nil, 0)
	require.NoError(t, err)
	docs[0]["message"] = "tampered"

	again, err := m.GetDocuments(ctx, "contactmessage", nil, 0)
	require.NoError(t, err)
	assert.Equal(t, "hi", again[0]["message"])
}

func TestUnavailableFailsFast(t *testing.T) {
	s := Unavailable()
	ctx := context.Background()

	_, err := s.CreateDocument(ctx, "user", map[string]interface{}{})
	assert.ErrorIs(t, err, ErrUnavailable)

	_, err = s.GetDocuments(ctx, "user", nil, 1)
	assert.ErrorIs(t, err, ErrUnavailable)

	assert.ErrorIs(t, s.Ping(ctx), ErrUnavailable)
}

func TestWriteErrorUnwrap(t *testing.T) {
	inner := errors.New("boom")
	err := &WriteError{Collection: "user", Err: inner}
	assert.ErrorIs(t, err, inner)
	assert.Contains(t, err.Error(), "user")
}
