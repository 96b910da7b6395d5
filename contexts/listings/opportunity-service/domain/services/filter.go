package services

import (
	"sort"
	"strings"

	"youthhub/contexts/listings/opportunity-service/domain/entities"
)

// Filter is the recognized set of catalog filter options. Absent (zero)
// fields impose no constraint.
type Filter struct {
	Type     string
	Price    string
	Audience string
	Format   string
	Subject  string
}

func (f Filter) IsEmpty() bool {
	return f.Type == "" && f.Price == "" && f.Audience == "" && f.Format == "" && f.Subject == ""
}

// Matches reports whether a record satisfies every present filter field.
// Enumerated fields use exact equality; subject uses case-insensitive
// substring containment. An empty filter is vacuously true.
func Matches(record entities.Opportunity, filter Filter) bool {
	if filter.Type != "" && string(record.Type) != filter.Type {
		return false
	}
	if filter.Price != "" && string(record.Price) != filter.Price {
		return false
	}
	if filter.Audience != "" && string(record.Audience) != filter.Audience {
		return false
	}
	if filter.Format != "" && string(record.Format) != filter.Format {
		return false
	}
	if filter.Subject != "" &&
		!strings.Contains(strings.ToLower(record.Subject), strings.ToLower(filter.Subject)) {
		return false
	}
	return true
}

// SortListing orders records most recent first; created_at ties break by id
// ascending so listings are deterministic.
func SortListing(items []entities.Opportunity) {
	sort.SliceStable(items, func(i int, j int) bool {
		if !items[i].CreatedAt.Equal(items[j].CreatedAt) {
			return items[i].CreatedAt.After(items[j].CreatedAt)
		}
		return items[i].OpportunityID < items[j].OpportunityID
	})
}
