package httpserver

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
)

func approveOpportunity(t *testing.T, server *Server, opportunityID string) {
	t.Helper()
	rr := doJSON(t, server, http.MethodPost, fmt.Sprintf("/api/v1/admin/opportunities/%s/approve", opportunityID), adminToken, "")
	if rr.Code != http.StatusOK {
		t.Fatalf("approve failed: %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestBookmarkLifecycle(t *testing.T) {
	server := newTestServer()

	opportunityID := submitOpportunity(t, server, studentToken)
	approveOpportunity(t, server, opportunityID)

	body := fmt.Sprintf(`{"opportunity_id":%q}`, opportunityID)
	rr := doJSON(t, server, http.MethodPost, "/api/v1/bookmarks", studentToken, body)
	if rr.Code != http.StatusCreated {
		t.Fatalf("add bookmark failed: %d body=%s", rr.Code, rr.Body.String())
	}

	// Saving again does not create a second record.
	rr = doJSON(t, server, http.MethodPost, "/api/v1/bookmarks", studentToken, body)
	if rr.Code != http.StatusCreated {
		t.Fatalf("repeated add failed: %d body=%s", rr.Code, rr.Body.String())
	}

	rr = doJSON(t, server, http.MethodGet, "/api/v1/bookmarks", studentToken, "")
	if rr.Code != http.StatusOK {
		t.Fatalf("list failed: %d", rr.Code)
	}
	var listing struct {
		Count int `json:"count"`
	}
	_ = json.Unmarshal(rr.Body.Bytes(), &listing)
	if listing.Count != 1 {
		t.Fatalf("expected 1 bookmark after double save, got %d", listing.Count)
	}

	rr = doJSON(t, server, http.MethodDelete, "/api/v1/bookmarks/"+opportunityID, studentToken, "")
	if rr.Code != http.StatusNoContent {
		t.Fatalf("remove failed: %d", rr.Code)
	}
	rr = doJSON(t, server, http.MethodDelete, "/api/v1/bookmarks/"+opportunityID, studentToken, "")
	if rr.Code != http.StatusNoContent {
		t.Fatalf("repeated remove must succeed, got %d", rr.Code)
	}
}

func TestBookmarkRequiresAuthentication(t *testing.T) {
	server := newTestServer()

	rr := doJSON(t, server, http.MethodPost, "/api/v1/bookmarks", "", `{"opportunity_id":"opp-1"}`)
	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestBookmarkUnknownOpportunity(t *testing.T) {
	server := newTestServer()

	rr := doJSON(t, server, http.MethodPost, "/api/v1/bookmarks", studentToken, `{"opportunity_id":"ghost"}`)
	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestDeletingOpportunityClearsBookmarks(t *testing.T) {
	server := newTestServer()

	opportunityID := submitOpportunity(t, server, studentToken)
	approveOpportunity(t, server, opportunityID)

	rr := doJSON(t, server, http.MethodPost, "/api/v1/bookmarks", studentToken, fmt.Sprintf(`{"opportunity_id":%q}`, opportunityID))
	if rr.Code != http.StatusCreated {
		t.Fatalf("add bookmark failed: %d", rr.Code)
	}

	rr = doJSON(t, server, http.MethodDelete, "/api/v1/admin/opportunities/"+opportunityID, adminToken, "")
	if rr.Code != http.StatusNoContent {
		t.Fatalf("delete opportunity failed: %d body=%s", rr.Code, rr.Body.String())
	}

	rr = doJSON(t, server, http.MethodGet, "/api/v1/bookmarks", studentToken, "")
	var listing struct {
		Count int `json:"count"`
	}
	_ = json.Unmarshal(rr.Body.Bytes(), &listing)
	if listing.Count != 0 {
		t.Fatalf("expected bookmarks cleared after listing delete, got %d", listing.Count)
	}
}

func TestMeEndpoint(t *testing.T) {
	server := newTestServer()

	rr := doJSON(t, server, http.MethodGet, "/api/v1/me", "", "")
	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", rr.Code)
	}

	rr = doJSON(t, server, http.MethodGet, "/api/v1/me", studentToken, "")
	if rr.Code != http.StatusOK {
		t.Fatalf("me failed: %d body=%s", rr.Code, rr.Body.String())
	}
	var resp struct {
		Item struct {
			UserID string `json:"user_id"`
			Role   string `json:"role"`
		} `json:"item"`
	}
	_ = json.Unmarshal(rr.Body.Bytes(), &resp)
	if resp.Item.UserID != "user-1" || resp.Item.Role != "student" {
		t.Fatalf("unexpected profile: %+v", resp.Item)
	}

	rr = doJSON(t, server, http.MethodGet, "/api/v1/me", adminToken, "")
	_ = json.Unmarshal(rr.Body.Bytes(), &resp)
	if resp.Item.Role != "admin" {
		t.Fatalf("expected admin role, got %s", resp.Item.Role)
	}
}
