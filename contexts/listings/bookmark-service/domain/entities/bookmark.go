package entities

import "time"

// Bookmark is a saved-for-later marker. One row per (user, opportunity);
// saving twice is a no-op.
type Bookmark struct {
	UserID        string    `json:"user_id"`
	OpportunityID string    `json:"opportunity_id"`
	CreatedAt     time.Time `json:"created_at"`
}
