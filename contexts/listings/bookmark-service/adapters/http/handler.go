package httpadapter

import (
	"context"
	"log/slog"
	"time"

	"youthhub/contexts/listings/bookmark-service/application"
	"youthhub/contexts/listings/bookmark-service/domain/entities"
	httptransport "youthhub/contexts/listings/bookmark-service/transport/http"
)

type Handler struct {
	Service application.Service
	Logger  *slog.Logger
}

// AddBookmarkHandler godoc
// @Summary Save an opportunity
// @Description Bookmarks a listing for the caller. Saving an already saved listing succeeds unchanged.
// @Tags bookmarks
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body httptransport.AddBookmarkRequest true "Listing to save"
// @Success 201 {object} httptransport.BookmarkResponse
// @Failure 400 {object} httptransport.ErrorResponse
// @Failure 401 {object} httptransport.ErrorResponse
// @Failure 404 {object} httptransport.ErrorResponse
// @Failure 503 {object} httptransport.ErrorResponse
// @Router /bookmarks [post]
func (h Handler) AddBookmarkHandler(ctx context.Context, userID string, req httptransport.AddBookmarkRequest) (httptransport.BookmarkResponse, error) {
	bookmark, err := h.Service.Add(ctx, userID, req.OpportunityID)
	if err != nil {
		return httptransport.BookmarkResponse{}, err
	}
	return httptransport.BookmarkResponse{Item: mapBookmark(bookmark)}, nil
}

// RemoveBookmarkHandler godoc
// @Summary Remove a saved opportunity
// @Description Removes the caller's bookmark. Removing a bookmark that does not exist succeeds.
// @Tags bookmarks
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param opportunity_id path string true "Opportunity id"
// @Success 204 "no content"
// @Failure 400 {object} httptransport.ErrorResponse
// @Failure 401 {object} httptransport.ErrorResponse
// @Failure 503 {object} httptransport.ErrorResponse
// @Router /bookmarks/{opportunity_id} [delete]
func (h Handler) RemoveBookmarkHandler(ctx context.Context, userID string, opportunityID string) error {
	return h.Service.Remove(ctx, userID, opportunityID)
}

// ListBookmarksHandler godoc
// @Summary List saved opportunities
// @Description Returns the caller's bookmarks, most recently saved first.
// @Tags bookmarks
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} httptransport.ListBookmarksResponse
// @Failure 401 {object} httptransport.ErrorResponse
// @Failure 503 {object} httptransport.ErrorResponse
// @Router /bookmarks [get]
func (h Handler) ListBookmarksHandler(ctx context.Context, userID string) (httptransport.ListBookmarksResponse, error) {
	items, err := h.Service.ListForUser(ctx, userID)
	if err != nil {
		return httptransport.ListBookmarksResponse{}, err
	}
	payloads := make([]httptransport.BookmarkPayload, 0, len(items))
	for _, item := range items {
		payloads = append(payloads, mapBookmark(item))
	}
	return httptransport.ListBookmarksResponse{Items: payloads, Count: len(payloads)}, nil
}

func mapBookmark(item entities.Bookmark) httptransport.BookmarkPayload {
	return httptransport.BookmarkPayload{
		OpportunityID: item.OpportunityID,
		CreatedAt:     item.CreatedAt.UTC().Format(time.RFC3339),
	}
}
