package listings

import (
	"context"

	"go.uber.org/zap"

	"homefinder/internal/listing"
	"homefinder/internal/logging"
	"homefinder/internal/search"
	"homefinder/internal/store"
)

// Source answers listing queries for a Container.
type Source interface {
	// Fetch returns the listings matching criteria in repository order.
	Fetch(ctx context.Context, criteria search.Criteria) ([]listing.Listing, error)
	// Get looks up a single listing by id.
	Get(id string) (listing.Listing, bool)
	// All returns the full collection.
	All() []listing.Listing
}

// MockSource serves queries from an in-memory repository.
type MockSource struct {
	repo   *store.Repository
	logger *zap.Logger
}

// NewMockSource adapts repo to a Source.
func NewMockSource(repo *store.Repository) *MockSource {
	return &MockSource{repo: repo, logger: zap.NewNop()}
}

// WithLogger sets the logger filter evaluations are reported to.
func (s *MockSource) WithLogger(logger *zap.Logger) *MockSource {
	s.logger = logging.For(logger, logging.CategorySearch)
	return s
}

// Fetch filters the whole repository. It only fails if ctx is already done.
func (s *MockSource) Fetch(ctx context.Context, criteria search.Criteria) ([]listing.Listing, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	all := s.repo.All()
	out := criteria.Apply(all)
	s.logger.Debug("filter evaluated",
		zap.String("category", string(criteria.Category)),
		zap.String("query", criteria.Query),
		zap.Int("matched", len(out)),
		zap.Int("total", len(all)))
	return out, nil
}

func (s *MockSource) Get(id string) (listing.Listing, bool) {
	return s.repo.Get(id)
}

func (s *MockSource) All() []listing.Listing {
	return s.repo.All()
}
