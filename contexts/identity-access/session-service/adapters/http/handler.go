package httpadapter

import (
	"context"
	"log/slog"
	"time"

	"youthhub/contexts/identity-access/session-service/application"
	"youthhub/contexts/identity-access/session-service/ports"
	httptransport "youthhub/contexts/identity-access/session-service/transport/http"
)

type Handler struct {
	Service application.Service
	Logger  *slog.Logger
}

// MeHandler godoc
// @Summary Current profile
// @Description Returns the caller's profile, including their role.
// @Tags session
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} httptransport.ProfileResponse
// @Failure 401 {object} httptransport.ErrorResponse
// @Failure 503 {object} httptransport.ErrorResponse
// @Router /me [get]
func (h Handler) MeHandler(ctx context.Context, actor ports.Actor) (httptransport.ProfileResponse, error) {
	profile, err := h.Service.Profile(ctx, actor)
	if err != nil {
		return httptransport.ProfileResponse{}, err
	}
	return httptransport.ProfileResponse{
		Item: httptransport.ProfilePayload{
			UserID:    profile.UserID,
			Email:     profile.Email,
			FullName:  profile.FullName,
			Role:      string(profile.Role),
			School:    profile.School,
			Grade:     profile.Grade,
			CreatedAt: profile.CreatedAt.UTC().Format(time.RFC3339),
		},
	}, nil
}
