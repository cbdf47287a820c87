package blog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saasbase/saasbase/backend/internal/store"
)

func TestSeedPopulatesEmptyCollection(t *testing.T) {
	svc := NewService(store.NewMemory())
	ctx := context.Background()

	require.NoError(t, svc.Seed(ctx))

	posts, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, posts, 3)
	for _, p := range posts {
		assert.True(t, p.Published)
		assert.NotEmpty(t, p.Slug)
		assert.NotEmpty(t, p.Content)
	}
}

func TestSeedIsIdempotent(t *testing.T) {
	svc := NewService(store.NewMemory())
	ctx := context.Background()

	require.NoError(t, svc.Seed(ctx))
	require.NoError(t, svc.Seed(ctx))

	posts, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, posts, 3, "re-seeding must not duplicate posts")
}

func TestSeedSkipsExistingSlugs(t *testing.T) {
	m := store.NewMemory()
	svc := NewService(m)
	ctx := context.Background()

	// pre-insert one of the seed slugs with different content
	_, err := m.CreateDocument(ctx, "blogpost", map[string]interface{}{
		"title":   "Custom",
		"slug":    "security-best-practices",
		"content": "edited by hand",
	})
	require.NoError(t, err)

	require.NoError(t, svc.Seed(ctx))

	posts, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, posts, 3)
	for _, p := range posts {
		if p.Slug == "security-best-practices" {
			assert.Equal(t, "edited by hand", p.Content, "seed must not overwrite existing posts")
		}
	}
}

func TestListEmptyWithoutSeed(t *testing.T) {
	svc := NewService(store.NewMemory())
	posts, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, posts)
}

func TestListStoreUnavailable(t *testing.T) {
	svc := NewService(store.Unavailable())
	_, err := svc.List(context.Background())
	assert.ErrorIs(t, err, store.ErrUnavailable)
}
