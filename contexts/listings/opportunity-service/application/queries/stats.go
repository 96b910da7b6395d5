package queries

import (
	"context"
	"log/slog"

	domainerrors "youthhub/contexts/listings/opportunity-service/domain/errors"
	"youthhub/contexts/listings/opportunity-service/ports"
)

type PlatformStatsQuery struct {
	Viewer ports.Viewer
}

// PlatformStatsUseCase backs the admin analytics panel with per-status
// submission counts.
type PlatformStatsUseCase struct {
	Repository ports.Repository
	Logger     *slog.Logger
}

func (u PlatformStatsUseCase) Execute(ctx context.Context, query PlatformStatsQuery) (ports.StatusCounts, error) {
	if !query.Viewer.Admin {
		return ports.StatusCounts{}, domainerrors.ErrForbidden
	}
	return u.Repository.CountByStatus(ctx)
}
