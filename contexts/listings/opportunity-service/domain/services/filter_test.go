package services

import (
	"testing"
	"time"

	"youthhub/contexts/listings/opportunity-service/domain/entities"
)

func sampleRecord() entities.Opportunity {
	return entities.Opportunity{
		OpportunityID: "opp-1",
		Title:         "Model United Nations Dubai",
		Type:          entities.TypeMUN,
		Subject:       "International Relations",
		Price:         entities.PriceFree,
		Audience:      entities.AudienceAll,
		Format:        entities.FormatOffline,
		Status:        entities.StatusApproved,
	}
}

func TestMatchesEmptyFilterMatchesEverything(t *testing.T) {
	if !Matches(sampleRecord(), Filter{}) {
		t.Fatalf("expected empty filter to match")
	}
}

func TestMatchesEqualityFilters(t *testing.T) {
	record := sampleRecord()

	cases := []struct {
		name   string
		filter Filter
		want   bool
	}{
		{"type match", Filter{Type: "mun"}, true},
		{"type mismatch", Filter{Type: "hackathon"}, false},
		{"price match", Filter{Price: "free"}, true},
		{"price mismatch", Filter{Price: "paid"}, false},
		{"audience match", Filter{Audience: "all"}, true},
		{"format mismatch", Filter{Format: "online"}, false},
		{"combined match", Filter{Type: "mun", Price: "free", Format: "offline"}, true},
		{"combined one mismatch", Filter{Type: "mun", Price: "paid"}, false},
	}
	for _, tc := range cases {
		if got := Matches(record, tc.filter); got != tc.want {
			t.Fatalf("%s: got %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestMatchesSubjectIsCaseInsensitiveSubstring(t *testing.T) {
	record := sampleRecord()

	if !Matches(record, Filter{Subject: "relations"}) {
		t.Fatalf("expected lowercase substring to match")
	}
	if !Matches(record, Filter{Subject: "INTERNATIONAL"}) {
		t.Fatalf("expected uppercase substring to match")
	}
	if Matches(record, Filter{Subject: "robotics"}) {
		t.Fatalf("expected unrelated subject not to match")
	}
}

func TestSortListingNewestFirstWithStableTieBreak(t *testing.T) {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	items := []entities.Opportunity{
		{OpportunityID: "b", CreatedAt: base},
		{OpportunityID: "c", CreatedAt: base.Add(-time.Hour)},
		{OpportunityID: "a", CreatedAt: base},
	}

	SortListing(items)

	got := []string{items[0].OpportunityID, items[1].OpportunityID, items[2].OpportunityID}
	want := []string{"a", "b", "c"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("position %d: got %s, want %s (full order %v)", i, got[i], want[i], got)
		}
	}
}

func TestEvaluateTransition(t *testing.T) {
	cases := []struct {
		name    string
		current entities.Status
		target  entities.Status
		want    Decision
	}{
		{"pending to approved", entities.StatusPending, entities.StatusApproved, DecisionApply},
		{"pending to rejected", entities.StatusPending, entities.StatusRejected, DecisionApply},
		{"approved to approved", entities.StatusApproved, entities.StatusApproved, DecisionNoop},
		{"rejected to rejected", entities.StatusRejected, entities.StatusRejected, DecisionNoop},
		{"rejected to approved", entities.StatusRejected, entities.StatusApproved, DecisionIllegal},
		{"approved to rejected", entities.StatusApproved, entities.StatusRejected, DecisionIllegal},
	}
	for _, tc := range cases {
		if got := EvaluateTransition(tc.current, tc.target); got != tc.want {
			t.Fatalf("%s: got %v, want %v", tc.name, got, tc.want)
		}
	}
}
