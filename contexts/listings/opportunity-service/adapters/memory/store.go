package memory

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"youthhub/contexts/listings/opportunity-service/domain/entities"
	domainerrors "youthhub/contexts/listings/opportunity-service/domain/errors"
	"youthhub/contexts/listings/opportunity-service/domain/services"
	"youthhub/contexts/listings/opportunity-service/ports"
)

// Store is the in-memory repository used by tests and local development.
// A RWMutex guards the map; there is no other shared mutable state in the
// service layer.
type Store struct {
	mu       sync.RWMutex
	records  map[string]entities.Opportunity
	sequence uint64
}

func NewStore() *Store {
	return &Store{
		records: make(map[string]entities.Opportunity),
	}
}

func (s *Store) Create(ctx context.Context, record entities.Opportunity) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.records[record.OpportunityID]; exists {
		return domainerrors.ErrInvalidRequest
	}
	s.records[record.OpportunityID] = record
	return nil
}

func (s *Store) Get(ctx context.Context, opportunityID string) (entities.Opportunity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	record, ok := s.records[opportunityID]
	if !ok {
		return entities.Opportunity{}, domainerrors.ErrNotFound
	}
	return record, nil
}

func (s *Store) List(ctx context.Context, filter services.Filter, statuses []entities.Status) ([]entities.Opportunity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	allowed := make(map[entities.Status]bool, len(statuses))
	for _, status := range statuses {
		allowed[status] = true
	}

	items := make([]entities.Opportunity, 0, len(s.records))
	for _, record := range s.records {
		if !allowed[record.Status] {
			continue
		}
		if !services.Matches(record, filter) {
			continue
		}
		items = append(items, record)
	}
	services.SortListing(items)
	return items, nil
}

func (s *Store) Update(ctx context.Context, record entities.Opportunity) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.records[record.OpportunityID]
	if !ok {
		return domainerrors.ErrNotFound
	}
	// Edits never move the moderation state.
	record.Status = existing.Status
	record.CreatedAt = existing.CreatedAt
	s.records[record.OpportunityID] = record
	return nil
}

func (s *Store) UpdateStatus(ctx context.Context, opportunityID string, status entities.Status, updatedAt time.Time) (entities.Opportunity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, ok := s.records[opportunityID]
	if !ok {
		return entities.Opportunity{}, domainerrors.ErrNotFound
	}
	record.Status = status
	record.UpdatedAt = updatedAt.UTC()
	s.records[opportunityID] = record
	return record, nil
}

func (s *Store) Delete(ctx context.Context, opportunityID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.records[opportunityID]; !ok {
		return domainerrors.ErrNotFound
	}
	delete(s.records, opportunityID)
	return nil
}

func (s *Store) CountByStatus(ctx context.Context) (ports.StatusCounts, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	counts := ports.StatusCounts{}
	for _, record := range s.records {
		switch record.Status {
		case entities.StatusApproved:
			counts.Approved++
		case entities.StatusPending:
			counts.Pending++
		case entities.StatusRejected:
			counts.Rejected++
		}
		counts.Total++
	}
	return counts, nil
}

func (s *Store) NewID(ctx context.Context) (string, error) {
	n := atomic.AddUint64(&s.sequence, 1)
	return fmt.Sprintf("opp_%d", n), nil
}

func (s *Store) Now() time.Time {
	return time.Now().UTC()
}

var _ ports.Repository = (*Store)(nil)
var _ ports.IDGenerator = (*Store)(nil)
var _ ports.Clock = (*Store)(nil)
