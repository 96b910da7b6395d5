package commands

import (
	"context"
	"log/slog"
	"strings"

	application "youthhub/contexts/listings/opportunity-service/application"
	"youthhub/contexts/listings/opportunity-service/domain/entities"
	domainerrors "youthhub/contexts/listings/opportunity-service/domain/errors"
	"youthhub/contexts/listings/opportunity-service/domain/services"
	"youthhub/contexts/listings/opportunity-service/ports"
)

// ModerateCommand carries an approve or reject decision for one record.
type ModerateCommand struct {
	OpportunityID string
	Actor         ports.Viewer
}

// ApproveOpportunityUseCase moves a pending record to approved. Approving an
// already-approved record is a no-op success; a rejected record cannot be
// approved through this surface.
type ApproveOpportunityUseCase struct {
	Repository ports.Repository
	Clock      ports.Clock
	Logger     *slog.Logger
}

func (u ApproveOpportunityUseCase) Execute(ctx context.Context, cmd ModerateCommand) (entities.Opportunity, error) {
	return runModeration(ctx, u.Repository, u.Clock, u.Logger, cmd, entities.StatusApproved)
}

// RejectOpportunityUseCase moves a pending record to rejected, with the same
// idempotency rules as approval.
type RejectOpportunityUseCase struct {
	Repository ports.Repository
	Clock      ports.Clock
	Logger     *slog.Logger
}

func (u RejectOpportunityUseCase) Execute(ctx context.Context, cmd ModerateCommand) (entities.Opportunity, error) {
	return runModeration(ctx, u.Repository, u.Clock, u.Logger, cmd, entities.StatusRejected)
}

func runModeration(
	ctx context.Context,
	repository ports.Repository,
	clock ports.Clock,
	rawLogger *slog.Logger,
	cmd ModerateCommand,
	target entities.Status,
) (entities.Opportunity, error) {
	logger := application.ResolveLogger(rawLogger)

	if !cmd.Actor.Admin {
		return entities.Opportunity{}, domainerrors.ErrForbidden
	}
	opportunityID := strings.TrimSpace(cmd.OpportunityID)
	if opportunityID == "" {
		return entities.Opportunity{}, domainerrors.ErrInvalidRequest
	}

	record, err := repository.Get(ctx, opportunityID)
	if err != nil {
		return entities.Opportunity{}, err
	}

	switch services.EvaluateTransition(record.Status, target) {
	case services.DecisionNoop:
		return record, nil
	case services.DecisionIllegal:
		return entities.Opportunity{}, domainerrors.ErrInvalidTransition
	}

	updated, err := repository.UpdateStatus(ctx, opportunityID, target, clock.Now().UTC())
	if err != nil {
		return entities.Opportunity{}, err
	}

	logger.Info("moderation decision applied",
		"event", "opportunity_moderated",
		"module", "listings/opportunity-service",
		"layer", "application",
		"opportunity_id", opportunityID,
		"decision", string(target),
		"admin_id", cmd.Actor.UserID,
	)
	return updated, nil
}
