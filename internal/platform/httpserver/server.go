package httpserver

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	sessionservice "youthhub/contexts/identity-access/session-service"
	sessionerrors "youthhub/contexts/identity-access/session-service/domain/errors"
	sessionports "youthhub/contexts/identity-access/session-service/ports"
	sessionhttp "youthhub/contexts/identity-access/session-service/transport/http"
	bookmarkservice "youthhub/contexts/listings/bookmark-service"
	bookmarkerrors "youthhub/contexts/listings/bookmark-service/domain/errors"
	bookmarkhttp "youthhub/contexts/listings/bookmark-service/transport/http"
	opportunityservice "youthhub/contexts/listings/opportunity-service"
	opportunityerrors "youthhub/contexts/listings/opportunity-service/domain/errors"
	"youthhub/contexts/listings/opportunity-service/domain/services"
	opportunityports "youthhub/contexts/listings/opportunity-service/ports"
	opportunityhttp "youthhub/contexts/listings/opportunity-service/transport/http"

	"github.com/rs/cors"
	httpSwagger "github.com/swaggo/http-swagger"
	_ "youthhub/internal/platform/httpserver/docs"
)

type Server struct {
	mux           *http.ServeMux
	handler       http.Handler
	logger        *slog.Logger
	addr          string
	session       sessionservice.Module
	opportunities opportunityservice.Module
	bookmarks     bookmarkservice.Module
}

func New(
	session sessionservice.Module,
	opportunities opportunityservice.Module,
	bookmarks bookmarkservice.Module,
	allowedOrigins []string,
	logger *slog.Logger,
	addr string,
) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	if addr == "" {
		addr = ":8080"
	}

	s := &Server{
		mux:           http.NewServeMux(),
		logger:        logger,
		addr:          addr,
		session:       session,
		opportunities: opportunities,
		bookmarks:     bookmarks,
	}
	s.registerRoutes()

	s.handler = cors.New(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	}).Handler(s.mux)
	return s
}

func (s *Server) Start() error {
	s.logger.Info("http server starting",
		"event", "http_server_starting",
		"module", "internal/platform/httpserver",
		"layer", "platform",
		"addr", s.addr,
	)
	return http.ListenAndServe(s.addr, s.handler)
}

// Handler exposes the routed stack for tests.
func (s *Server) Handler() http.Handler {
	return s.handler
}

func (s *Server) registerRoutes() {
	s.mux.Handle("/swagger/", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	s.mux.HandleFunc("GET /api/v1/opportunities", s.handleListOpportunities)
	s.mux.HandleFunc("GET /api/v1/opportunities/{opportunity_id}", s.handleGetOpportunity)
	s.mux.HandleFunc("POST /api/v1/opportunities", s.handleSubmitOpportunity)

	s.mux.HandleFunc("POST /api/v1/admin/opportunities", s.handleCreateApproved)
	s.mux.HandleFunc("POST /api/v1/admin/opportunities/{opportunity_id}/approve", s.handleApproveOpportunity)
	s.mux.HandleFunc("POST /api/v1/admin/opportunities/{opportunity_id}/reject", s.handleRejectOpportunity)
	s.mux.HandleFunc("PATCH /api/v1/admin/opportunities/{opportunity_id}", s.handleEditOpportunity)
	s.mux.HandleFunc("DELETE /api/v1/admin/opportunities/{opportunity_id}", s.handleDeleteOpportunity)

	s.mux.HandleFunc("GET /api/v1/bookmarks", s.handleListBookmarks)
	s.mux.HandleFunc("POST /api/v1/bookmarks", s.handleAddBookmark)
	s.mux.HandleFunc("DELETE /api/v1/bookmarks/{opportunity_id}", s.handleRemoveBookmark)

	s.mux.HandleFunc("GET /api/v1/me", s.handleMe)
	s.mux.HandleFunc("GET /api/v1/stats", s.handlePlatformStats)
}

// resolveActor turns the Authorization header into an actor. No header means
// an anonymous caller; a present but invalid token is rejected outright.
func (s *Server) resolveActor(r *http.Request) (sessionports.Actor, error) {
	header := strings.TrimSpace(r.Header.Get("Authorization"))
	if header == "" {
		return sessionports.Actor{}, nil
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return sessionports.Actor{}, sessionerrors.ErrUnauthenticated
	}
	return s.session.Service.Resolve(r.Context(), parts[1])
}

func viewerFromActor(actor sessionports.Actor) opportunityports.Viewer {
	return opportunityports.Viewer{
		UserID: actor.UserID,
		Admin:  actor.IsAdmin(),
	}
}

func (s *Server) handleListOpportunities(w http.ResponseWriter, r *http.Request) {
	actor, err := s.resolveActor(r)
	if err != nil {
		writeSessionDomainError(w, err)
		return
	}

	query := r.URL.Query()
	filter := services.Filter{
		Type:     query.Get("type"),
		Price:    query.Get("price"),
		Audience: query.Get("audience"),
		Format:   query.Get("format"),
		Subject:  query.Get("subject"),
	}

	resp, err := s.opportunities.Handler.ListOpportunitiesHandler(r.Context(), viewerFromActor(actor), filter, query.Get("status"))
	if err != nil {
		writeOpportunityDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGetOpportunity(w http.ResponseWriter, r *http.Request) {
	actor, err := s.resolveActor(r)
	if err != nil {
		writeSessionDomainError(w, err)
		return
	}

	resp, err := s.opportunities.Handler.GetOpportunityHandler(r.Context(), viewerFromActor(actor), r.PathValue("opportunity_id"))
	if err != nil {
		writeOpportunityDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleSubmitOpportunity(w http.ResponseWriter, r *http.Request) {
	actor, err := s.resolveActor(r)
	if err != nil {
		writeSessionDomainError(w, err)
		return
	}

	var req opportunityhttp.SubmitOpportunityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeOpportunityError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON", nil)
		return
	}

	resp, err := s.opportunities.Handler.SubmitOpportunityHandler(r.Context(), viewerFromActor(actor), req)
	if err != nil {
		writeOpportunityDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleCreateApproved(w http.ResponseWriter, r *http.Request) {
	actor, err := s.resolveActor(r)
	if err != nil {
		writeSessionDomainError(w, err)
		return
	}

	var req opportunityhttp.SubmitOpportunityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeOpportunityError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON", nil)
		return
	}

	resp, err := s.opportunities.Handler.CreateApprovedHandler(r.Context(), viewerFromActor(actor), req)
	if err != nil {
		writeOpportunityDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleApproveOpportunity(w http.ResponseWriter, r *http.Request) {
	actor, err := s.resolveActor(r)
	if err != nil {
		writeSessionDomainError(w, err)
		return
	}

	resp, err := s.opportunities.Handler.ApproveOpportunityHandler(r.Context(), viewerFromActor(actor), r.PathValue("opportunity_id"))
	if err != nil {
		writeOpportunityDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleRejectOpportunity(w http.ResponseWriter, r *http.Request) {
	actor, err := s.resolveActor(r)
	if err != nil {
		writeSessionDomainError(w, err)
		return
	}

	resp, err := s.opportunities.Handler.RejectOpportunityHandler(r.Context(), viewerFromActor(actor), r.PathValue("opportunity_id"))
	if err != nil {
		writeOpportunityDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleEditOpportunity(w http.ResponseWriter, r *http.Request) {
	actor, err := s.resolveActor(r)
	if err != nil {
		writeSessionDomainError(w, err)
		return
	}

	var req opportunityhttp.EditOpportunityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeOpportunityError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON", nil)
		return
	}

	resp, err := s.opportunities.Handler.EditOpportunityHandler(r.Context(), viewerFromActor(actor), r.PathValue("opportunity_id"), req)
	if err != nil {
		writeOpportunityDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleDeleteOpportunity(w http.ResponseWriter, r *http.Request) {
	actor, err := s.resolveActor(r)
	if err != nil {
		writeSessionDomainError(w, err)
		return
	}

	if err := s.opportunities.Handler.DeleteOpportunityHandler(r.Context(), viewerFromActor(actor), r.PathValue("opportunity_id")); err != nil {
		writeOpportunityDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleListBookmarks(w http.ResponseWriter, r *http.Request) {
	actor, err := s.resolveActor(r)
	if err != nil {
		writeSessionDomainError(w, err)
		return
	}

	resp, err := s.bookmarks.Handler.ListBookmarksHandler(r.Context(), actor.UserID)
	if err != nil {
		writeBookmarkDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleAddBookmark(w http.ResponseWriter, r *http.Request) {
	actor, err := s.resolveActor(r)
	if err != nil {
		writeSessionDomainError(w, err)
		return
	}

	var req bookmarkhttp.AddBookmarkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBookmarkError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.bookmarks.Handler.AddBookmarkHandler(r.Context(), actor.UserID, req)
	if err != nil {
		writeBookmarkDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleRemoveBookmark(w http.ResponseWriter, r *http.Request) {
	actor, err := s.resolveActor(r)
	if err != nil {
		writeSessionDomainError(w, err)
		return
	}

	if err := s.bookmarks.Handler.RemoveBookmarkHandler(r.Context(), actor.UserID, r.PathValue("opportunity_id")); err != nil {
		writeBookmarkDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleMe(w http.ResponseWriter, r *http.Request) {
	actor, err := s.resolveActor(r)
	if err != nil {
		writeSessionDomainError(w, err)
		return
	}

	resp, err := s.session.Handler.MeHandler(r.Context(), actor)
	if err != nil {
		writeSessionDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handlePlatformStats(w http.ResponseWriter, r *http.Request) {
	actor, err := s.resolveActor(r)
	if err != nil {
		writeSessionDomainError(w, err)
		return
	}

	resp, err := s.opportunities.Handler.PlatformStatsHandler(r.Context(), viewerFromActor(actor))
	if err != nil {
		writeOpportunityDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func writeOpportunityDomainError(w http.ResponseWriter, err error) {
	if validation, ok := opportunityerrors.AsValidation(err); ok {
		details := make(map[string]any, len(validation.Fields))
		for _, field := range validation.Fields {
			details[field.Field] = field.Message
		}
		writeOpportunityError(w, http.StatusUnprocessableEntity, "validation_failed", validation.Error(), details)
		return
	}

	switch {
	case errors.Is(err, opportunityerrors.ErrUnauthenticated):
		writeOpportunityError(w, http.StatusUnauthorized, "unauthenticated", err.Error(), nil)
	case errors.Is(err, opportunityerrors.ErrForbidden):
		writeOpportunityError(w, http.StatusForbidden, "forbidden", err.Error(), nil)
	case errors.Is(err, opportunityerrors.ErrNotFound):
		writeOpportunityError(w, http.StatusNotFound, "not_found", err.Error(), nil)
	case errors.Is(err, opportunityerrors.ErrInvalidTransition):
		writeOpportunityError(w, http.StatusConflict, "invalid_transition", err.Error(), nil)
	case errors.Is(err, opportunityerrors.ErrInvalidRequest):
		writeOpportunityError(w, http.StatusBadRequest, "invalid_request", err.Error(), nil)
	case errors.Is(err, opportunityerrors.ErrTransient):
		writeOpportunityError(w, http.StatusServiceUnavailable, "backend_unavailable", err.Error(), nil)
	default:
		writeOpportunityError(w, http.StatusInternalServerError, "internal_error", "internal server error", nil)
	}
}

func writeBookmarkDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, bookmarkerrors.ErrUnauthenticated):
		writeBookmarkError(w, http.StatusUnauthorized, "unauthenticated", err.Error())
	case errors.Is(err, bookmarkerrors.ErrNotFound):
		writeBookmarkError(w, http.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, bookmarkerrors.ErrInvalidRequest):
		writeBookmarkError(w, http.StatusBadRequest, "invalid_request", err.Error())
	case errors.Is(err, bookmarkerrors.ErrTransient):
		writeBookmarkError(w, http.StatusServiceUnavailable, "backend_unavailable", err.Error())
	// The catalog check surfaces opportunity-service errors through the
	// bookmark flow.
	case errors.Is(err, opportunityerrors.ErrNotFound):
		writeBookmarkError(w, http.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, opportunityerrors.ErrTransient):
		writeBookmarkError(w, http.StatusServiceUnavailable, "backend_unavailable", err.Error())
	default:
		writeBookmarkError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func writeSessionDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, sessionerrors.ErrUnauthenticated), errors.Is(err, sessionerrors.ErrNotFound):
		writeSessionError(w, http.StatusUnauthorized, "unauthenticated", "authentication required")
	case errors.Is(err, sessionerrors.ErrTransient):
		writeSessionError(w, http.StatusServiceUnavailable, "backend_unavailable", err.Error())
	default:
		writeSessionError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func writeOpportunityError(w http.ResponseWriter, status int, code string, message string, details map[string]any) {
	writeJSON(w, status, opportunityhttp.ErrorResponse{
		Error: opportunityhttp.ErrorBody{
			Code:    code,
			Message: message,
			Details: details,
		},
	})
}

func writeBookmarkError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, bookmarkhttp.ErrorResponse{
		Error: bookmarkhttp.ErrorBody{
			Code:    code,
			Message: message,
		},
	})
}

func writeSessionError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, sessionhttp.ErrorResponse{
		Error: sessionhttp.ErrorBody{
			Code:    code,
			Message: message,
		},
	})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
