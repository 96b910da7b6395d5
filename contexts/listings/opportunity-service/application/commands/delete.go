package commands

import (
	"context"
	"log/slog"
	"strings"

	application "youthhub/contexts/listings/opportunity-service/application"
	domainerrors "youthhub/contexts/listings/opportunity-service/domain/errors"
	"youthhub/contexts/listings/opportunity-service/ports"
)

// DeleteOpportunityCommand removes a record permanently and cascades the
// bookmarks pointing at it.
type DeleteOpportunityCommand struct {
	OpportunityID string
	Actor         ports.Viewer
}

type DeleteOpportunityUseCase struct {
	Repository ports.Repository
	Bookmarks  ports.BookmarkCascade
	Logger     *slog.Logger
}

func (u DeleteOpportunityUseCase) Execute(ctx context.Context, cmd DeleteOpportunityCommand) error {
	logger := application.ResolveLogger(u.Logger)

	if !cmd.Actor.Admin {
		return domainerrors.ErrForbidden
	}
	opportunityID := strings.TrimSpace(cmd.OpportunityID)
	if opportunityID == "" {
		return domainerrors.ErrInvalidRequest
	}

	if err := u.Repository.Delete(ctx, opportunityID); err != nil {
		return err
	}
	if u.Bookmarks != nil {
		if err := u.Bookmarks.RemoveAllForOpportunity(ctx, opportunityID); err != nil {
			logger.Error("bookmark cascade failed after delete",
				"event", "opportunity_bookmark_cascade_failed",
				"module", "listings/opportunity-service",
				"layer", "application",
				"opportunity_id", opportunityID,
				"error", err.Error(),
			)
			return err
		}
	}

	logger.Info("opportunity deleted",
		"event", "opportunity_deleted",
		"module", "listings/opportunity-service",
		"layer", "application",
		"opportunity_id", opportunityID,
		"admin_id", cmd.Actor.UserID,
	)
	return nil
}
