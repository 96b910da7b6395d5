package queries

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

// StatusAll lets admins request the moderation views without a status
// constraint. Non-admin viewers are always pinned to approved records.
const StatusAll = "all"

// ListOpportunitiesQuery combines catalog filters with an optional explicit
// status, which only admins may use.
type ListOpportunitiesQuery struct {
	Filter services.Filter
	Status string
	Viewer ports.Viewer
}

type ListOpportunitiesUseCase struct {
	Repository ports.Repository
	Logger     *slog.Logger
}

func (u ListOpportunitiesUseCase) Execute(ctx context.Context, query ListOpportunitiesQuery) ([]entities.Opportunity, error) {
	logger := application.ResolveLogger(u.Logger)

	statuses, err := resolveStatuses(query.Status, query.Viewer)
	if err != nil {
		return nil, err
	}

	items, err := u.Repository.List(ctx, query.Filter, statuses)
	if err != nil {
		return nil, err
	}

	logger.Debug("opportunity listing served",
		"event", "opportunity_list_served",
		"module", "listings/opportunity-service",
		"layer", "application",
		"count", len(items),
		"admin", query.Viewer.Admin,
	)
	return items, nil
}

// resolveStatuses intersects the requested status with the visibility rule.
// Requesting anything beyond approved without the admin role is a Forbidden,
// not a silent narrowing, so misconfigured clients surface loudly.
func resolveStatuses(requested string, viewer ports.Viewer) ([]entities.Status, error) {
	requested = strings.TrimSpace(strings.ToLower(requested))

	if !viewer.Admin {
		if requested != "" && requested != string(entities.StatusApproved) {
			return nil, domainerrors.ErrForbidden
		}
		return []entities.Status{entities.StatusApproved}, nil
	}

	switch requested {
	case "", string(entities.StatusApproved):
		return []entities.Status{entities.StatusApproved}, nil
	case StatusAll:
		return []entities.Status{entities.StatusPending, entities.StatusApproved, entities.StatusRejected}, nil
	default:
		status := entities.Status(requested)
		if !entities.IsValidStatus(status) {
			return nil, domainerrors.ErrInvalidRequest
		}
		return []entities.Status{status}, nil
	}
}
