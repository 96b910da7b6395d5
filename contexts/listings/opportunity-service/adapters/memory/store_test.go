package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"youthhub/contexts/listings/opportunity-service/domain/entities"
	domainerrors "youthhub/contexts/listings/opportunity-service/domain/errors"
	"youthhub/contexts/listings/opportunity-service/domain/services"
)

func seedRecord(id string, status entities.Status, createdAt time.Time) entities.Opportunity {
	return entities.Opportunity{
		OpportunityID: id,
		Title:         "Listing " + id,
		Type:          entities.TypeCompetition,
		Subject:       "Mathematics",
		Price:         entities.PriceFree,
		Audience:      entities.AudienceAll,
		Format:        entities.FormatOnline,
		Status:        status,
		CreatedAt:     createdAt,
		UpdatedAt:     createdAt,
	}
}

func TestStoreCreateAndGet(t *testing.T) {
	store := NewStore()
	now := time.Now().UTC()

	if err := store.Create(context.Background(), seedRecord("opp-1", entities.StatusPending, now)); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if err := store.Create(context.Background(), seedRecord("opp-1", entities.StatusPending, now)); !errors.Is(err, domainerrors.ErrInvalidRequest) {
		t.Fatalf("expected duplicate create to fail, got %v", err)
	}

	record, err := store.Get(context.Background(), "opp-1")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if record.Status != entities.StatusPending {
		t.Fatalf("expected pending, got %s", record.Status)
	}

	if _, err := store.Get(context.Background(), "missing"); !errors.Is(err, domainerrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestStoreListFiltersByStatusSet(t *testing.T) {
	store := NewStore()
	base := time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC)

	_ = store.Create(context.Background(), seedRecord("opp-a", entities.StatusApproved, base))
	_ = store.Create(context.Background(), seedRecord("opp-b", entities.StatusPending, base.Add(time.Hour)))
	_ = store.Create(context.Background(), seedRecord("opp-c", entities.StatusApproved, base.Add(2*time.Hour)))

	approved, err := store.List(context.Background(), services.Filter{}, []entities.Status{entities.StatusApproved})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(approved) != 2 {
		t.Fatalf("expected 2 approved, got %d", len(approved))
	}
	if approved[0].OpportunityID != "opp-c" {
		t.Fatalf("expected newest first, got %s", approved[0].OpportunityID)
	}

	all, err := store.List(context.Background(), services.Filter{}, []entities.Status{
		entities.StatusApproved, entities.StatusPending, entities.StatusRejected,
	})
	if err != nil {
		t.Fatalf("list all failed: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 records, got %d", len(all))
	}
}

func TestStoreUpdatePreservesStatusAndCreatedAt(t *testing.T) {
	store := NewStore()
	createdAt := time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC)
	_ = store.Create(context.Background(), seedRecord("opp-1", entities.StatusApproved, createdAt))

	edited := seedRecord("opp-1", entities.StatusRejected, createdAt.Add(time.Hour))
	edited.Title = "Edited title"
	if err := store.Update(context.Background(), edited); err != nil {
		t.Fatalf("update failed: %v", err)
	}

	record, _ := store.Get(context.Background(), "opp-1")
	if record.Title != "Edited title" {
		t.Fatalf("expected edited title, got %s", record.Title)
	}
	if record.Status != entities.StatusApproved {
		t.Fatalf("update must not change status, got %s", record.Status)
	}
	if !record.CreatedAt.Equal(createdAt) {
		t.Fatalf("update must not change created_at, got %s", record.CreatedAt)
	}
}

func TestStoreUpdateStatus(t *testing.T) {
	store := NewStore()
	createdAt := time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC)
	_ = store.Create(context.Background(), seedRecord("opp-1", entities.StatusPending, createdAt))

	moderatedAt := createdAt.Add(time.Hour)
	record, err := store.UpdateStatus(context.Background(), "opp-1", entities.StatusApproved, moderatedAt)
	if err != nil {
		t.Fatalf("update status failed: %v", err)
	}
	if record.Status != entities.StatusApproved {
		t.Fatalf("expected approved, got %s", record.Status)
	}
	if !record.UpdatedAt.Equal(moderatedAt) {
		t.Fatalf("expected updated_at %s, got %s", moderatedAt, record.UpdatedAt)
	}

	if _, err := store.UpdateStatus(context.Background(), "missing", entities.StatusApproved, moderatedAt); !errors.Is(err, domainerrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestStoreCountByStatus(t *testing.T) {
	store := NewStore()
	now := time.Now().UTC()

	_ = store.Create(context.Background(), seedRecord("opp-a", entities.StatusApproved, now))
	_ = store.Create(context.Background(), seedRecord("opp-b", entities.StatusPending, now))
	_ = store.Create(context.Background(), seedRecord("opp-c", entities.StatusPending, now))
	_ = store.Create(context.Background(), seedRecord("opp-d", entities.StatusRejected, now))

	counts, err := store.CountByStatus(context.Background())
	if err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if counts.Approved != 1 || counts.Pending != 2 || counts.Rejected != 1 || counts.Total != 4 {
		t.Fatalf("unexpected counts: %+v", counts)
	}
}

func TestStoreNewIDIsUnique(t *testing.T) {
	store := NewStore()

	first, _ := store.NewID(context.Background())
	second, _ := store.NewID(context.Background())
	if first == second {
		t.Fatalf("expected distinct ids, got %s twice", first)
	}
}
