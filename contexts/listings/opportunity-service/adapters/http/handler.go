package httpadapter

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"youthhub/contexts/listings/opportunity-service/application"
	"youthhub/contexts/listings/opportunity-service/application/commands"
	"youthhub/contexts/listings/opportunity-service/application/queries"
	"youthhub/contexts/listings/opportunity-service/domain/entities"
	domainerrors "youthhub/contexts/listings/opportunity-service/domain/errors"
	"youthhub/contexts/listings/opportunity-service/domain/services"
	"youthhub/contexts/listings/opportunity-service/ports"
	httptransport "youthhub/contexts/listings/opportunity-service/transport/http"
)

type Handler struct {
	ListOpportunities queries.ListOpportunitiesUseCase
	GetOpportunity    queries.GetOpportunityUseCase
	PlatformStats     queries.PlatformStatsUseCase
	Submit            commands.SubmitOpportunityUseCase
	CreateApproved    commands.CreateApprovedUseCase
	Approve           commands.ApproveOpportunityUseCase
	Reject            commands.RejectOpportunityUseCase
	Edit              commands.EditOpportunityUseCase
	Delete            commands.DeleteOpportunityUseCase
	Logger            *slog.Logger
}

// ListOpportunitiesHandler godoc
// @Summary List opportunities
// @Description Returns the approved directory listing. Admins may request other moderation states via status.
// @Tags opportunities
// @Accept json
// @Produce json
// @Param type query string false "Type filter: mun,internship,volunteering,summer_camp,competition,hackathon"
// @Param price query string false "Price filter: free,paid"
// @Param audience query string false "Audience filter: all,emiratis"
// @Param format query string false "Format filter: online,offline"
// @Param subject query string false "Case-insensitive subject substring"
// @Param status query string false "Moderation state (admin only): approved,pending,rejected,all"
// @Success 200 {object} httptransport.ListOpportunitiesResponse
// @Failure 400 {object} httptransport.ErrorResponse
// @Failure 403 {object} httptransport.ErrorResponse
// @Failure 503 {object} httptransport.ErrorResponse
// @Router /opportunities [get]
func (h Handler) ListOpportunitiesHandler(ctx context.Context, viewer ports.Viewer, filter services.Filter, status string) (httptransport.ListOpportunitiesResponse, error) {
	items, err := h.ListOpportunities.Execute(ctx, queries.ListOpportunitiesQuery{
		Filter: filter,
		Status: strings.TrimSpace(status),
		Viewer: viewer,
	})
	if err != nil {
		return httptransport.ListOpportunitiesResponse{}, err
	}
	payloads := make([]httptransport.OpportunityPayload, 0, len(items))
	for _, item := range items {
		payloads = append(payloads, mapOpportunity(item))
	}
	return httptransport.ListOpportunitiesResponse{Items: payloads, Count: len(payloads)}, nil
}

// GetOpportunityHandler godoc
// @Summary Get one opportunity
// @Description Returns a single listing by id. Unapproved listings are visible to admins only.
// @Tags opportunities
// @Accept json
// @Produce json
// @Param opportunity_id path string true "Opportunity id"
// @Success 200 {object} httptransport.OpportunityResponse
// @Failure 404 {object} httptransport.ErrorResponse
// @Failure 503 {object} httptransport.ErrorResponse
// @Router /opportunities/{opportunity_id} [get]
func (h Handler) GetOpportunityHandler(ctx context.Context, viewer ports.Viewer, opportunityID string) (httptransport.OpportunityResponse, error) {
	item, err := h.GetOpportunity.Execute(ctx, queries.GetOpportunityQuery{
		OpportunityID: strings.TrimSpace(opportunityID),
		Viewer:        viewer,
	})
	if err != nil {
		return httptransport.OpportunityResponse{}, err
	}
	return httptransport.OpportunityResponse{Item: mapOpportunity(item)}, nil
}

// SubmitOpportunityHandler godoc
// @Summary Submit an opportunity
// @Description Creates a community submission in the pending moderation state.
// @Tags opportunities
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body httptransport.SubmitOpportunityRequest true "Submission payload"
// @Success 201 {object} httptransport.OpportunityResponse
// @Failure 401 {object} httptransport.ErrorResponse
// @Failure 422 {object} httptransport.ErrorResponse
// @Failure 503 {object} httptransport.ErrorResponse
// @Router /opportunities [post]
func (h Handler) SubmitOpportunityHandler(ctx context.Context, viewer ports.Viewer, req httptransport.SubmitOpportunityRequest) (httptransport.OpportunityResponse, error) {
	logger := application.ResolveLogger(h.Logger)
	logger.Info("submission received",
		"event", "http_submit_opportunity_received",
		"module", "listings/opportunity-service",
		"layer", "transport",
	)

	draft, err := draftFromRequest(req)
	if err != nil {
		return httptransport.OpportunityResponse{}, err
	}
	item, err := h.Submit.Execute(ctx, commands.SubmitOpportunityCommand{Draft: draft, Actor: viewer})
	if err != nil {
		return httptransport.OpportunityResponse{}, err
	}
	return httptransport.OpportunityResponse{Item: mapOpportunity(item)}, nil
}

// CreateApprovedHandler godoc
// @Summary Create an approved opportunity
// @Description Admin-only create that publishes the listing immediately.
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body httptransport.SubmitOpportunityRequest true "Listing payload"
// @Success 201 {object} httptransport.OpportunityResponse
// @Failure 401 {object} httptransport.ErrorResponse
// @Failure 403 {object} httptransport.ErrorResponse
// @Failure 422 {object} httptransport.ErrorResponse
// @Failure 503 {object} httptransport.ErrorResponse
// @Router /admin/opportunities [post]
func (h Handler) CreateApprovedHandler(ctx context.Context, viewer ports.Viewer, req httptransport.SubmitOpportunityRequest) (httptransport.OpportunityResponse, error) {
	draft, err := draftFromRequest(req)
	if err != nil {
		return httptransport.OpportunityResponse{}, err
	}
	item, err := h.CreateApproved.Execute(ctx, commands.CreateApprovedCommand{Draft: draft, Actor: viewer})
	if err != nil {
		return httptransport.OpportunityResponse{}, err
	}
	return httptransport.OpportunityResponse{Item: mapOpportunity(item)}, nil
}

// ApproveOpportunityHandler godoc
// @Summary Approve a pending submission
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param opportunity_id path string true "Opportunity id"
// @Success 200 {object} httptransport.OpportunityResponse
// @Failure 401 {object} httptransport.ErrorResponse
// @Failure 403 {object} httptransport.ErrorResponse
// @Failure 404 {object} httptransport.ErrorResponse
// @Failure 409 {object} httptransport.ErrorResponse
// @Failure 503 {object} httptransport.ErrorResponse
// @Router /admin/opportunities/{opportunity_id}/approve [post]
func (h Handler) ApproveOpportunityHandler(ctx context.Context, viewer ports.Viewer, opportunityID string) (httptransport.OpportunityResponse, error) {
	item, err := h.Approve.Execute(ctx, commands.ModerateCommand{
		OpportunityID: strings.TrimSpace(opportunityID),
		Actor:         viewer,
	})
	if err != nil {
		return httptransport.OpportunityResponse{}, err
	}
	return httptransport.OpportunityResponse{Item: mapOpportunity(item)}, nil
}

// RejectOpportunityHandler godoc
// @Summary Reject a pending submission
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param opportunity_id path string true "Opportunity id"
// @Success 200 {object} httptransport.OpportunityResponse
// @Failure 401 {object} httptransport.ErrorResponse
// @Failure 403 {object} httptransport.ErrorResponse
// @Failure 404 {object} httptransport.ErrorResponse
// @Failure 409 {object} httptransport.ErrorResponse
// @Failure 503 {object} httptransport.ErrorResponse
// @Router /admin/opportunities/{opportunity_id}/reject [post]
func (h Handler) RejectOpportunityHandler(ctx context.Context, viewer ports.Viewer, opportunityID string) (httptransport.OpportunityResponse, error) {
	item, err := h.Reject.Execute(ctx, commands.ModerateCommand{
		OpportunityID: strings.TrimSpace(opportunityID),
		Actor:         viewer,
	})
	if err != nil {
		return httptransport.OpportunityResponse{}, err
	}
	return httptransport.OpportunityResponse{Item: mapOpportunity(item)}, nil
}

// EditOpportunityHandler godoc
// @Summary Edit an opportunity
// @Description Admin-only partial update. Edits never change the moderation state.
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param opportunity_id path string true "Opportunity id"
// @Param request body httptransport.EditOpportunityRequest true "Fields to update"
// @Success 200 {object} httptransport.OpportunityResponse
// @Failure 401 {object} httptransport.ErrorResponse
// @Failure 403 {object} httptransport.ErrorResponse
// @Failure 404 {object} httptransport.ErrorResponse
// @Failure 422 {object} httptransport.ErrorResponse
// @Failure 503 {object} httptransport.ErrorResponse
// @Router /admin/opportunities/{opportunity_id} [patch]
func (h Handler) EditOpportunityHandler(ctx context.Context, viewer ports.Viewer, opportunityID string, req httptransport.EditOpportunityRequest) (httptransport.OpportunityResponse, error) {
	patch, err := patchFromRequest(req)
	if err != nil {
		return httptransport.OpportunityResponse{}, err
	}
	item, err := h.Edit.Execute(ctx, commands.EditOpportunityCommand{
		OpportunityID: strings.TrimSpace(opportunityID),
		Patch:         patch,
		Actor:         viewer,
	})
	if err != nil {
		return httptransport.OpportunityResponse{}, err
	}
	return httptransport.OpportunityResponse{Item: mapOpportunity(item)}, nil
}

// DeleteOpportunityHandler godoc
// @Summary Delete an opportunity
// @Description Admin-only permanent delete. Saved bookmarks pointing at the listing are removed with it.
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param opportunity_id path string true "Opportunity id"
// @Success 204 "no content"
// @Failure 401 {object} httptransport.ErrorResponse
// @Failure 403 {object} httptransport.ErrorResponse
// @Failure 404 {object} httptransport.ErrorResponse
// @Failure 503 {object} httptransport.ErrorResponse
// @Router /admin/opportunities/{opportunity_id} [delete]
func (h Handler) DeleteOpportunityHandler(ctx context.Context, viewer ports.Viewer, opportunityID string) error {
	return h.Delete.Execute(ctx, commands.DeleteOpportunityCommand{
		OpportunityID: strings.TrimSpace(opportunityID),
		Actor:         viewer,
	})
}

// PlatformStatsHandler godoc
// @Summary Platform statistics
// @Description Admin-only per-status submission counts.
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} httptransport.PlatformStatsResponse
// @Failure 401 {object} httptransport.ErrorResponse
// @Failure 403 {object} httptransport.ErrorResponse
// @Failure 503 {object} httptransport.ErrorResponse
// @Router /stats [get]
func (h Handler) PlatformStatsHandler(ctx context.Context, viewer ports.Viewer) (httptransport.PlatformStatsResponse, error) {
	counts, err := h.PlatformStats.Execute(ctx, queries.PlatformStatsQuery{Viewer: viewer})
	if err != nil {
		return httptransport.PlatformStatsResponse{}, err
	}
	return httptransport.PlatformStatsResponse{
		Approved: counts.Approved,
		Pending:  counts.Pending,
		Rejected: counts.Rejected,
		Total:    counts.Total,
	}, nil
}

func draftFromRequest(req httptransport.SubmitOpportunityRequest) (ports.Draft, error) {
	deadline, err := parseDeadline(req.Deadline)
	if err != nil {
		return ports.Draft{}, err
	}
	return ports.Draft{
		Title:            req.Title,
		ShortSummary:     req.ShortSummary,
		Description:      req.Description,
		Type:             req.Type,
		Subject:          req.Subject,
		Price:            req.Price,
		Audience:         req.Audience,
		Format:           req.Format,
		Deadline:         deadline,
		MinAge:           req.MinAge,
		MaxAge:           req.MaxAge,
		RegistrationLink: req.RegistrationLink,
		ImageURL:         req.ImageURL,
	}, nil
}

func patchFromRequest(req httptransport.EditOpportunityRequest) (ports.Patch, error) {
	patch := ports.Patch{
		Title:            req.Title,
		ShortSummary:     req.ShortSummary,
		Description:      req.Description,
		Type:             req.Type,
		Subject:          req.Subject,
		Price:            req.Price,
		Audience:         req.Audience,
		Format:           req.Format,
		MinAge:           req.MinAge,
		MaxAge:           req.MaxAge,
		RegistrationLink: req.RegistrationLink,
		ImageURL:         req.ImageURL,
	}
	if req.Deadline != nil {
		if strings.TrimSpace(*req.Deadline) == "" {
			patch.ClearDeadline = true
		} else {
			deadline, err := parseDeadline(*req.Deadline)
			if err != nil {
				return ports.Patch{}, err
			}
			patch.Deadline = deadline
		}
	}
	return patch, nil
}

func parseDeadline(raw string) (*time.Time, error) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return nil, nil
	}
	if parsed, err := time.Parse(time.RFC3339, value); err == nil {
		parsed = parsed.UTC()
		return &parsed, nil
	}
	if parsed, err := time.Parse("2006-01-02", value); err == nil {
		parsed = parsed.UTC()
		return &parsed, nil
	}
	return nil, domainerrors.NewValidationError(domainerrors.FieldError{
		Field:   "deadline",
		Message: "must be RFC 3339 or YYYY-MM-DD",
	})
}

func mapOpportunity(item entities.Opportunity) httptransport.OpportunityPayload {
	deadline := ""
	if item.Deadline != nil {
		deadline = item.Deadline.UTC().Format(time.RFC3339)
	}
	return httptransport.OpportunityPayload{
		OpportunityID:    item.OpportunityID,
		Title:            item.Title,
		ShortSummary:     item.ShortSummary,
		Description:      item.Description,
		Type:             string(item.Type),
		Subject:          item.Subject,
		Price:            string(item.Price),
		Audience:         string(item.Audience),
		Format:           string(item.Format),
		Deadline:         deadline,
		MinAge:           item.MinAge,
		MaxAge:           item.MaxAge,
		RegistrationLink: item.RegistrationLink,
		ImageURL:         item.ImageURL,
		Status:           string(item.Status),
		SubmittedBy:      item.SubmittedBy,
		CreatedAt:        item.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:        item.UpdatedAt.UTC().Format(time.RFC3339),
	}
}
