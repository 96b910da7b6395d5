package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"youthhub/contexts/listings/bookmark-service/domain/entities"
	"youthhub/contexts/listings/bookmark-service/ports"
)

type pairKey struct {
	UserID        string
	OpportunityID string
}

type Store struct {
	mu        sync.RWMutex
	bookmarks map[pairKey]entities.Bookmark
}

func NewStore() *Store {
	return &Store{
		bookmarks: make(map[pairKey]entities.Bookmark),
	}
}

func (s *Store) Add(ctx context.Context, bookmark entities.Bookmark) (entities.Bookmark, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := pairKey{UserID: bookmark.UserID, OpportunityID: bookmark.OpportunityID}
	if existing, ok := s.bookmarks[key]; ok {
		// First save wins; the original timestamp is kept.
		return existing, nil
	}
	s.bookmarks[key] = bookmark
	return bookmark, nil
}

func (s *Store) Remove(ctx context.Context, userID string, opportunityID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.bookmarks, pairKey{UserID: userID, OpportunityID: opportunityID})
	return nil
}

func (s *Store) ListForUser(ctx context.Context, userID string) ([]entities.Bookmark, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]entities.Bookmark, 0)
	for key, bookmark := range s.bookmarks {
		if key.UserID == userID {
			items = append(items, bookmark)
		}
	}
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].CreatedAt.Equal(items[j].CreatedAt) {
			return items[i].OpportunityID < items[j].OpportunityID
		}
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})
	return items, nil
}

func (s *Store) RemoveAllForOpportunity(ctx context.Context, opportunityID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for key := range s.bookmarks {
		if key.OpportunityID == opportunityID {
			delete(s.bookmarks, key)
		}
	}
	return nil
}

func (s *Store) Now() time.Time {
	return time.Now().UTC()
}

var _ ports.Repository = (*Store)(nil)
var _ ports.Clock = (*Store)(nil)
