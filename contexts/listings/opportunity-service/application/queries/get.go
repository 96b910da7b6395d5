package queries

import (
	"context"
	"log/slog"
	"strings"

	"youthhub/contexts/listings/opportunity-service/domain/entities"
	domainerrors "youthhub/contexts/listings/opportunity-service/domain/errors"
	"youthhub/contexts/listings/opportunity-service/ports"
)

type GetOpportunityQuery struct {
	OpportunityID string
	Viewer        ports.Viewer
}

type GetOpportunityUseCase struct {
	Repository ports.Repository
	Logger     *slog.Logger
}

// Execute returns one record if the viewer may see it. An unapproved record
// reads as NotFound for non-admins, never Forbidden, so its existence is not
// leaked.
func (u GetOpportunityUseCase) Execute(ctx context.Context, query GetOpportunityQuery) (entities.Opportunity, error) {
	opportunityID := strings.TrimSpace(query.OpportunityID)
	if opportunityID == "" {
		return entities.Opportunity{}, domainerrors.ErrInvalidRequest
	}

	record, err := u.Repository.Get(ctx, opportunityID)
	if err != nil {
		return entities.Opportunity{}, err
	}
	if !record.VisibleTo(query.Viewer.Admin) {
		return entities.Opportunity{}, domainerrors.ErrNotFound
	}
	return record, nil
}
