package application

import (
	"context"
	"log/slog"
	"strings"

	"youthhub/contexts/listings/bookmark-service/domain/entities"
	domainerrors "youthhub/contexts/listings/bookmark-service/domain/errors"
	"youthhub/contexts/listings/bookmark-service/ports"
)

type Service struct {
	Repo    ports.Repository
	Catalog ports.OpportunityCatalog
	Clock   ports.Clock
	Logger  *slog.Logger
}

// Add saves an opportunity for later. Saving one that is already saved
// succeeds without creating a second record and returns the original one.
func (s Service) Add(ctx context.Context, userID string, opportunityID string) (entities.Bookmark, error) {
	userID = strings.TrimSpace(userID)
	opportunityID = strings.TrimSpace(opportunityID)
	if userID == "" {
		return entities.Bookmark{}, domainerrors.ErrUnauthenticated
	}
	if opportunityID == "" {
		return entities.Bookmark{}, domainerrors.ErrInvalidRequest
	}

	exists, err := s.Catalog.Exists(ctx, opportunityID)
	if err != nil {
		return entities.Bookmark{}, err
	}
	if !exists {
		return entities.Bookmark{}, domainerrors.ErrNotFound
	}

	stored, err := s.Repo.Add(ctx, entities.Bookmark{
		UserID:        userID,
		OpportunityID: opportunityID,
		CreatedAt:     s.Clock.Now().UTC(),
	})
	if err != nil {
		return entities.Bookmark{}, err
	}

	resolveLogger(s.Logger).Info("bookmark saved",
		"event", "bookmark_saved",
		"module", "listings/bookmark-service",
		"layer", "application",
		"user_id", userID,
		"opportunity_id", opportunityID,
	)
	return stored, nil
}

// Remove deletes a saved bookmark. Removing one that was never saved (or was
// already removed) succeeds.
func (s Service) Remove(ctx context.Context, userID string, opportunityID string) error {
	userID = strings.TrimSpace(userID)
	opportunityID = strings.TrimSpace(opportunityID)
	if userID == "" {
		return domainerrors.ErrUnauthenticated
	}
	if opportunityID == "" {
		return domainerrors.ErrInvalidRequest
	}
	return s.Repo.Remove(ctx, userID, opportunityID)
}

func (s Service) ListForUser(ctx context.Context, userID string) ([]entities.Bookmark, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, domainerrors.ErrUnauthenticated
	}
	return s.Repo.ListForUser(ctx, userID)
}

// RemoveAllForOpportunity clears every user's bookmark of a deleted listing.
// Called by the opportunity service through its cascade port.
func (s Service) RemoveAllForOpportunity(ctx context.Context, opportunityID string) error {
	opportunityID = strings.TrimSpace(opportunityID)
	if opportunityID == "" {
		return domainerrors.ErrInvalidRequest
	}
	return s.Repo.RemoveAllForOpportunity(ctx, opportunityID)
}

func resolveLogger(logger *slog.Logger) *slog.Logger {
	if logger != nil {
		return logger
	}
	return slog.Default()
}
