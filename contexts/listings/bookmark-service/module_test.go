package bookmarkservice_test

import (
	"context"
	"errors"
	"testing"
	"time"

	bookmarkservice "youthhub/contexts/listings/bookmark-service"
	"youthhub/contexts/listings/bookmark-service/adapters/memory"
	"youthhub/contexts/listings/bookmark-service/application"
	domainerrors "youthhub/contexts/listings/bookmark-service/domain/errors"
	httptransport "youthhub/contexts/listings/bookmark-service/transport/http"
)

type staticCatalog struct {
	known map[string]bool
}

func (c staticCatalog) Exists(_ context.Context, opportunityID string) (bool, error) {
	return c.known[opportunityID], nil
}

func newModule(t *testing.T, known ...string) bookmarkservice.Module {
	t.Helper()
	catalog := staticCatalog{known: make(map[string]bool, len(known))}
	for _, id := range known {
		catalog.known[id] = true
	}
	return bookmarkservice.NewInMemoryModule(catalog, nil)
}

func TestAddAndListBookmarks(t *testing.T) {
	module := newModule(t, "opp-1", "opp-2")

	for _, id := range []string{"opp-1", "opp-2"} {
		if _, err := module.Handler.AddBookmarkHandler(context.Background(), "user-1", httptransport.AddBookmarkRequest{OpportunityID: id}); err != nil {
			t.Fatalf("add %s failed: %v", id, err)
		}
	}

	resp, err := module.Handler.ListBookmarksHandler(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if resp.Count != 2 {
		t.Fatalf("expected 2 bookmarks, got %d", resp.Count)
	}

	other, err := module.Handler.ListBookmarksHandler(context.Background(), "user-2")
	if err != nil {
		t.Fatalf("list for other user failed: %v", err)
	}
	if other.Count != 0 {
		t.Fatalf("bookmarks must be scoped per user, got %d", other.Count)
	}
}

func TestAddBookmarkTwiceKeepsOneRecord(t *testing.T) {
	module := newModule(t, "opp-1")

	for i := 0; i < 2; i++ {
		if _, err := module.Handler.AddBookmarkHandler(context.Background(), "user-1", httptransport.AddBookmarkRequest{OpportunityID: "opp-1"}); err != nil {
			t.Fatalf("add attempt %d failed: %v", i+1, err)
		}
	}

	resp, _ := module.Handler.ListBookmarksHandler(context.Background(), "user-1")
	if resp.Count != 1 {
		t.Fatalf("expected a single record after double save, got %d", resp.Count)
	}
}

// tickingClock advances a minute per reading so repeated saves get distinct
// timestamps.
type tickingClock struct {
	now time.Time
}

func (c *tickingClock) Now() time.Time {
	c.now = c.now.Add(time.Minute)
	return c.now
}

func TestAddBookmarkTwiceReturnsOriginalRecord(t *testing.T) {
	service := application.Service{
		Repo:    memory.NewStore(),
		Catalog: staticCatalog{known: map[string]bool{"opp-1": true}},
		Clock:   &tickingClock{now: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)},
	}

	first, err := service.Add(context.Background(), "user-1", "opp-1")
	if err != nil {
		t.Fatalf("first add failed: %v", err)
	}
	second, err := service.Add(context.Background(), "user-1", "opp-1")
	if err != nil {
		t.Fatalf("second add failed: %v", err)
	}
	if !second.CreatedAt.Equal(first.CreatedAt) {
		t.Fatalf("repeated save must return the first timestamp, got %s then %s", first.CreatedAt, second.CreatedAt)
	}

	items, err := service.ListForUser(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(items) != 1 || !items[0].CreatedAt.Equal(first.CreatedAt) {
		t.Fatalf("stored row must keep the first timestamp, got %+v", items)
	}
}

func TestAddBookmarkUnknownOpportunity(t *testing.T) {
	module := newModule(t)

	_, err := module.Handler.AddBookmarkHandler(context.Background(), "user-1", httptransport.AddBookmarkRequest{OpportunityID: "ghost"})
	if !errors.Is(err, domainerrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestAddBookmarkRequiresAuthentication(t *testing.T) {
	module := newModule(t, "opp-1")

	_, err := module.Handler.AddBookmarkHandler(context.Background(), "", httptransport.AddBookmarkRequest{OpportunityID: "opp-1"})
	if !errors.Is(err, domainerrors.ErrUnauthenticated) {
		t.Fatalf("expected unauthenticated, got %v", err)
	}
}

func TestRemoveBookmarkIsIdempotent(t *testing.T) {
	module := newModule(t, "opp-1")

	if _, err := module.Handler.AddBookmarkHandler(context.Background(), "user-1", httptransport.AddBookmarkRequest{OpportunityID: "opp-1"}); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	if err := module.Handler.RemoveBookmarkHandler(context.Background(), "user-1", "opp-1"); err != nil {
		t.Fatalf("remove failed: %v", err)
	}
	if err := module.Handler.RemoveBookmarkHandler(context.Background(), "user-1", "opp-1"); err != nil {
		t.Fatalf("repeated remove must succeed, got %v", err)
	}
	if err := module.Handler.RemoveBookmarkHandler(context.Background(), "user-1", "never-saved"); err != nil {
		t.Fatalf("removing a never-saved bookmark must succeed, got %v", err)
	}

	resp, _ := module.Handler.ListBookmarksHandler(context.Background(), "user-1")
	if resp.Count != 0 {
		t.Fatalf("expected empty list, got %d", resp.Count)
	}
}

func TestRemoveAllForOpportunityClearsEveryUser(t *testing.T) {
	module := newModule(t, "opp-1", "opp-2")

	for _, userID := range []string{"user-1", "user-2"} {
		if _, err := module.Handler.AddBookmarkHandler(context.Background(), userID, httptransport.AddBookmarkRequest{OpportunityID: "opp-1"}); err != nil {
			t.Fatalf("seed for %s failed: %v", userID, err)
		}
	}
	if _, err := module.Handler.AddBookmarkHandler(context.Background(), "user-1", httptransport.AddBookmarkRequest{OpportunityID: "opp-2"}); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	if err := module.Service.RemoveAllForOpportunity(context.Background(), "opp-1"); err != nil {
		t.Fatalf("cascade failed: %v", err)
	}

	first, _ := module.Handler.ListBookmarksHandler(context.Background(), "user-1")
	if first.Count != 1 || first.Items[0].OpportunityID != "opp-2" {
		t.Fatalf("expected only opp-2 left for user-1, got %+v", first.Items)
	}
	second, _ := module.Handler.ListBookmarksHandler(context.Background(), "user-2")
	if second.Count != 0 {
		t.Fatalf("expected user-2 cleared, got %d", second.Count)
	}
}
