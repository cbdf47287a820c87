package users

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"

	"github.com/saasbase/saasbase/backend/internal/models"
	"github.com/saasbase/saasbase/backend/internal/schema"
	"github.com/saasbase/saasbase/backend/internal/store"
)

var (
	// ErrEmailTaken is returned by Signup when the email is already registered.
	ErrEmailTaken = errors.New("email already registered")
	// ErrInvalidCredentials is returned by Authenticate for both an unknown
	// email and a password mismatch, so callers cannot enumerate users.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// Service encapsulates signup and login logic over the document store.
type Service struct {
	store store.Store
}

func NewService(s store.Store) *Service {
	return &Service{store: s}
}

// HashPassword returns the hex sha256 digest of the plaintext password.
func HashPassword(pw string) string {
	sum := sha256.Sum256([]byte(pw))
	return hex.EncodeToString(sum[:])
}

// Signup registers a new user. Uniqueness is enforced only by a pre-insert
// existence check; there is no database-level constraint.
func (s *Service) Signup(ctx context.Context, name, email, password string) (*models.User, error) {
	existing, err := s.store.GetDocuments(ctx, string(schema.KindUser), map[string]interface{}{"email": email}, 1)
	if err != nil {
		return nil, err
	}
	if len(existing) > 0 {
		return nil, ErrEmailTaken
	}
	u := &models.User{
		Name:         name,
		Email:        email,
		PasswordHash: HashPassword(password),
		IsActive:     true,
	}
	if _, err := s.store.CreateDocument(ctx, string(schema.KindUser), u.Document()); err != nil {
		return nil, err
	}
	return u, nil
}

// Authenticate verifies email and password against the stored digest.
func (s *Service) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	docs, err := s.store.GetDocuments(ctx, string(schema.KindUser), map[string]interface{}{"email": email}, 1)
	if err != nil {
		return nil, err
	}
	if len(docs) == 0 {
		return nil, ErrInvalidCredentials
	}
	u := models.UserFromDocument(docs[0])
	if u.PasswordHash != HashPassword(password) {
		return nil, ErrInvalidCredentials
	}
	return u, nil
}

// GetByEmail returns the user with the given email, or nil when none exists.
func (s *Service) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	docs, err := s.store.GetDocuments(ctx, string(schema.KindUser), map[string]interface{}{"email": email}, 1)
	if err != nil {
		return nil, err
	}
	if len(docs) == 0 {
		return nil, nil
	}
	return models.UserFromDocument(docs[0]), nil
}
