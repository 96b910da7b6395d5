package httpserver

import (
	"context"
	"errors"
	"time"

	sessionservice "youthhub/contexts/identity-access/session-service"
	sessionentities "youthhub/contexts/identity-access/session-service/domain/entities"
	sessionports "youthhub/contexts/identity-access/session-service/ports"
	bookmarkservice "youthhub/contexts/listings/bookmark-service"
	opportunityservice "youthhub/contexts/listings/opportunity-service"
	opportunityerrors "youthhub/contexts/listings/opportunity-service/domain/errors"
	opportunityports "youthhub/contexts/listings/opportunity-service/ports"
)

const (
	studentToken = "student-token"
	adminToken   = "admin-token"
)

// cascadeProxy lets the opportunity module be built before the bookmark
// module that serves its delete cascade.
type cascadeProxy struct {
	target opportunityports.BookmarkCascade
}

func (p *cascadeProxy) RemoveAllForOpportunity(ctx context.Context, opportunityID string) error {
	return p.target.RemoveAllForOpportunity(ctx, opportunityID)
}

type storeCatalog struct {
	repo opportunityports.Repository
}

func (c storeCatalog) Exists(ctx context.Context, opportunityID string) (bool, error) {
	_, err := c.repo.Get(ctx, opportunityID)
	if errors.Is(err, opportunityerrors.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func newTestServer() *Server {
	session := sessionservice.NewInMemoryModule(nil)
	session.Verifier.Register(studentToken, sessionports.Claims{
		UserID:   "user-1",
		Email:    "student@example.com",
		FullName: "Sample Student",
	})
	session.Verifier.Register(adminToken, sessionports.Claims{
		UserID: "admin-1",
		Email:  "admin@example.com",
	})
	_ = session.Store.Create(context.Background(), sessionentities.Profile{
		UserID:    "admin-1",
		Email:     "admin@example.com",
		Role:      sessionentities.RoleAdmin,
		CreatedAt: time.Now().UTC(),
	})

	proxy := &cascadeProxy{}
	opportunities := opportunityservice.NewInMemoryModule(proxy, nil)
	bookmarks := bookmarkservice.NewInMemoryModule(storeCatalog{repo: opportunities.Store}, nil)
	proxy.target = bookmarks.Service

	return New(session, opportunities, bookmarks, []string{"http://localhost:5173"}, nil, ":0")
}
