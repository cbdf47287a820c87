package blog

import (
	"context"

	"github.com/saasbase/saasbase/backend/internal/models"
	"github.com/saasbase/saasbase/backend/internal/schema"
	"github.com/saasbase/saasbase/backend/internal/store"
	"github.com/saasbase/saasbase/backend/pkg/logger"
)

const listLimit = 20

// Service lists blog posts and owns the demo-content seed step.
type Service struct {
	store store.Store
}

func NewService(s store.Store) *Service {
	return &Service{store: s}
}

// List returns up to 20 posts in store-native order.
func (s *Service) List(ctx context.Context) ([]*models.BlogPost, error) {
	docs, err := s.store.GetDocuments(ctx, string(schema.KindBlogPost), nil, listLimit)
	if err != nil {
		return nil, err
	}
	posts := make([]*models.BlogPost, 0, len(docs))
	for _, d := range docs {
		posts = append(posts, models.BlogPostFromDocument(d))
	}
	return posts, nil
}

// Seed inserts the demo posts that are missing, keyed by slug. It runs once
// at startup before the listener accepts requests, so the seed-on-read race
// of naive implementations cannot occur. Safe to call repeatedly.
func (s *Service) Seed(ctx context.Context) error {
	for _, p := range samplePosts {
		existing, err := s.store.GetDocuments(ctx, string(schema.KindBlogPost), map[string]interface{}{"slug": p.Slug}, 1)
		if err != nil {
			return err
		}
		if len(existing) > 0 {
			continue
		}
		if _, err := s.store.CreateDocument(ctx, string(schema.KindBlogPost), p.Document()); err != nil {
			return err
		}
		logger.Debugf("seeded blog post %q", p.Slug)
	}
	return nil
}

var samplePosts = []*models.BlogPost{
	{
		Title:     "Launching our next‑gen platform",
		Slug:      "launching-next-gen-platform",
		Excerpt:   "How we built a blazing fast, secure, and scalable foundation.",
		Content:   "We are excited to unveil our next‑gen SaaS platform...",
		Tags:      []string{"announcement", "platform"},
		Author:    "Team",
		Published: true,
	},
	{
		Title:     "Designing with 3D: Tips & Tricks",
		Slug:      "designing-with-3d",
		Excerpt:   "Bring depth and motion into your product storytelling.",
		Content:   "3D in the browser is more accessible than ever...",
		Tags:      []string{"design", "3d"},
		Author:    "Design",
		Published: true,
	},
	{
		Title:     "Security best practices for startups",
		Slug:      "security-best-practices",
		Excerpt:   "Practical guidance to keep your users safe.",
		Content:   "Security is a journey. In this post we cover...",
		Tags:      []string{"security"},
		Author:    "Security",
		Published: true,
	},
}
