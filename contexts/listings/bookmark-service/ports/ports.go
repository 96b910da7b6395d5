package ports

import (
	"context"
	"time"

	"youthhub/contexts/listings/bookmark-service/domain/entities"
)

type Clock interface {
	Now() time.Time
}

// OpportunityCatalog answers whether a listing exists. Implemented by the
// opportunity service; wired in bootstrap so the contexts stay decoupled.
type OpportunityCatalog interface {
	Exists(ctx context.Context, opportunityID string) (bool, error)
}

type Repository interface {
	// Add stores the bookmark and returns the persisted row. Storing an
	// existing (user, opportunity) pair is a no-op that returns the original
	// row, first-save timestamp included.
	Add(ctx context.Context, bookmark entities.Bookmark) (entities.Bookmark, error)
	// Remove deletes the bookmark; removing a missing pair is a no-op.
	Remove(ctx context.Context, userID string, opportunityID string) error
	ListForUser(ctx context.Context, userID string) ([]entities.Bookmark, error)
	RemoveAllForOpportunity(ctx context.Context, opportunityID string) error
}
