package ports

import (
	"context"
	"time"

	"youthhub/contexts/listings/opportunity-service/domain/entities"
	"youthhub/contexts/listings/opportunity-service/domain/services"
)

type Clock interface {
	Now() time.Time
}

type IDGenerator interface {
	NewID(ctx context.Context) (string, error)
}

// Viewer identifies the caller of a read or mutation. The zero value is an
// anonymous viewer. Admin is resolved by the identity layer and trusted here;
// transport must never derive it from client-supplied fields.
type Viewer struct {
	UserID string
	Admin  bool
}

func (v Viewer) Authenticated() bool {
	return v.UserID != ""
}

// Draft carries the fields of a community submission or admin-created
// record. Price and audience default to free/all when blank.
type Draft struct {
	Title            string
	ShortSummary     string
	Description      string
	Type             string
	Subject          string
	Price            string
	Audience         string
	Format           string
	Deadline         *time.Time
	MinAge           *int
	MaxAge           *int
	RegistrationLink string
	ImageURL         string
}

// Patch carries a partial update; nil fields are left untouched. Status and
// id are deliberately absent, edits never move the moderation state.
type Patch struct {
	Title            *string
	ShortSummary     *string
	Description      *string
	Type             *string
	Subject          *string
	Price            *string
	Audience         *string
	Format           *string
	Deadline         *time.Time
	ClearDeadline    bool
	MinAge           *int
	MaxAge           *int
	RegistrationLink *string
	ImageURL         *string
}

// StatusCounts backs the admin analytics panel.
type StatusCounts struct {
	Approved int
	Pending  int
	Rejected int
	Total    int
}

type Repository interface {
	Create(ctx context.Context, record entities.Opportunity) error
	Get(ctx context.Context, opportunityID string) (entities.Opportunity, error)
	// List returns records whose status is in statuses and which match the
	// filter, ordered created_at descending with id ascending tie-break.
	List(ctx context.Context, filter services.Filter, statuses []entities.Status) ([]entities.Opportunity, error)
	Update(ctx context.Context, record entities.Opportunity) error
	UpdateStatus(ctx context.Context, opportunityID string, status entities.Status, updatedAt time.Time) (entities.Opportunity, error)
	Delete(ctx context.Context, opportunityID string) error
	CountByStatus(ctx context.Context) (StatusCounts, error)
}

// BookmarkCascade removes saved-for-later rows when their opportunity is
// deleted. Implemented by the bookmark service; wired in bootstrap.
type BookmarkCascade interface {
	RemoveAllForOpportunity(ctx context.Context, opportunityID string) error
}
