package commands

import (
	"context"
	"log/slog"

	application "youthhub/contexts/listings/opportunity-service/application"
	"youthhub/contexts/listings/opportunity-service/domain/entities"
	domainerrors "youthhub/contexts/listings/opportunity-service/domain/errors"
	"youthhub/contexts/listings/opportunity-service/ports"
)

// CreateApprovedCommand is the admin fast path: the record bypasses the
// moderation queue and starts out approved.
type CreateApprovedCommand struct {
	Draft ports.Draft
	Actor ports.Viewer
}

type CreateApprovedUseCase struct {
	Repository  ports.Repository
	Clock       ports.Clock
	IDGenerator ports.IDGenerator
	Logger      *slog.Logger
}

func (u CreateApprovedUseCase) Execute(ctx context.Context, cmd CreateApprovedCommand) (entities.Opportunity, error) {
	logger := application.ResolveLogger(u.Logger)

	if !cmd.Actor.Admin {
		return entities.Opportunity{}, domainerrors.ErrForbidden
	}
	if err := validateDraft(cmd.Draft); err != nil {
		return entities.Opportunity{}, err
	}

	id, err := u.IDGenerator.NewID(ctx)
	if err != nil {
		return entities.Opportunity{}, err
	}

	now := u.Clock.Now().UTC()
	record := recordFromDraft(cmd.Draft)
	record.OpportunityID = id
	record.Status = entities.StatusApproved
	record.CreatedAt = now
	record.UpdatedAt = now

	if err := u.Repository.Create(ctx, record); err != nil {
		return entities.Opportunity{}, err
	}

	logger.Info("opportunity created pre-approved",
		"event", "opportunity_created_approved",
		"module", "listings/opportunity-service",
		"layer", "application",
		"opportunity_id", record.OpportunityID,
		"admin_id", cmd.Actor.UserID,
	)
	return record, nil
}
