package review

import (
	"context"
	"sync"
)

// Verify interface compliance at compile time
var _ Service = (*StaticSource)(nil)

// StaticSource is a fixture-backed review Service. It serves reviews from an
// in-memory table keyed by ISBN and is used by the composition root and by
// tests that need a review backend without a network.
type StaticSource struct {
	mu      sync.Mutex
	reviews map[string][]string
	closes  int
}

// NewStaticSource creates a StaticSource serving the given reviews. The map
// is used as-is; callers should not mutate it afterwards.
func NewStaticSource(reviews map[string][]string) *StaticSource {
	if reviews == nil {
		reviews = make(map[string][]string)
	}
	return &StaticSource{reviews: reviews}
}

// GetReviewsForBook implements Service.
func (s *StaticSource) GetReviewsForBook(_ context.Context, isbn string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := s.reviews[isbn]
	out := make([]string, len(stored))
	copy(out, stored)
	return out, nil
}

// Close implements Service. A StaticSource holds no real connection, so
// Close only records the release; the source stays usable for the next
// orchestrator call, mirroring how the backend hands out per-call sessions.
func (s *StaticSource) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closes++
	return nil
}

// Closes reports how many times Close has been called. Test helper.
func (s *StaticSource) Closes() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closes
}
