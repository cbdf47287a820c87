package sessions

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustJSON(t *testing.T, v interface{}) []byte {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return b
}

type memRepo struct {
	store map[string]*Session
}

func (f *memRepo) Create(ctx context.Context, s *Session) error {
	if f.store == nil {
		f.store = map[string]*Session{}
	}
	f.store[s.RefreshToken] = s
	return nil
}

func (f *memRepo) GetByRefresh(ctx context.Context, refresh string) (*Session, error) {
	s, ok := f.store[refresh]
	if !ok {
		return nil, nil
	}
	return s, nil
}

func (f *memRepo) DeleteByRefresh(ctx context.Context, refresh string) error {
	delete(f.store, refresh)
	return nil
}

func TestCreateAndValidate(t *testing.T) {
	svc := NewService(&memRepo{})
	ctx := context.Background()

	tok, err := svc.CreateSession(ctx, "ada@x.com", time.Hour)
	require.NoError(t, err)
	assert.Len(t, tok, 64, "32 random bytes hex-encoded")

	sess, err := svc.ValidateRefresh(ctx, tok)
	require.NoError(t, err)
	require.NotNil(t, sess)
	assert.Equal(t, "ada@x.com", sess.Email)
}

func TestValidateExpired(t *testing.T) {
	repo := &memRepo{}
	svc := NewService(repo)
	ctx := context.Background()

	tok, err := svc.CreateSession(ctx, "ada@x.com", -time.Minute)
	require.NoError(t, err)

	sess, err := svc.ValidateRefresh(ctx, tok)
	require.NoError(t, err)
	assert.Nil(t, sess)
	// expired session was cleaned up
	_, ok := repo.store[tok]
	assert.False(t, ok)
}

func TestDeleteRefresh(t *testing.T) {
	svc := NewService(&memRepo{})
	ctx := context.Background()

	tok, err := svc.CreateSession(ctx, "ada@x.com", time.Hour)
	require.NoError(t, err)

	require.NoError(t, svc.DeleteRefresh(ctx, tok))
	sess, err := svc.ValidateRefresh(ctx, tok)
	require.NoError(t, err)
	assert.Nil(t, sess)
}

func TestTokensAreUnique(t *testing.T) {
	svc := NewService(&memRepo{})
	ctx := context.Background()

	a, err := svc.CreateSession(ctx, "ada@x.com", time.Hour)
	require.NoError(t, err)
	b, err := svc.CreateSession(ctx, "ada@x.com", time.Hour)
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}
