package contact

import (
	"context"

	"github.com/saasbase/saasbase/backend/internal/models"
	"github.com/saasbase/saasbase/backend/internal/schema"
	"github.com/saasbase/saasbase/backend/internal/store"
)

// Service persists contact-form submissions.
type Service struct {
	store store.Store
}

func NewService(s store.Store) *Service {
	return &Service{store: s}
}

// Submit stores one contact message. Field validation (including email
// syntax) happens in the store adapter against the schema registry.
func (s *Service) Submit(ctx context.Context, name, email, message string) error {
	m := &models.ContactMessage{Name: name, Email: email, Message: message}
	_, err := s.store.CreateDocument(ctx, string(schema.KindContactMessage), m.Document())
	return err
}
