package entities

import "time"

// Status is the moderation state of an opportunity.
type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

func IsValidStatus(value Status) bool {
	switch value {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// Type is the closed set of listing categories.
type Type string

const (
	TypeMUN          Type = "mun"
	TypeInternship   Type = "internship"
	TypeVolunteering Type = "volunteering"
	TypeSummerCamp   Type = "summer_camp"
	TypeCompetition  Type = "competition"
	TypeHackathon    Type = "hackathon"
)

func IsValidType(value Type) bool {
	switch value {
	case TypeMUN, TypeInternship, TypeVolunteering, TypeSummerCamp, TypeCompetition, TypeHackathon:
		return true
	}
	return false
}

type Price string

const (
	PriceFree Price = "free"
	PricePaid Price = "paid"
)

type Audience string

const (
	AudienceAll      Audience = "all"
	AudienceEmiratis Audience = "emiratis"
)

type Format string

const (
	FormatOnline  Format = "online"
	FormatOffline Format = "offline"
)

// Opportunity is a listed event/program record subject to moderation.
// SubmittedBy is empty when the record was created directly by an admin.
type Opportunity struct {
	OpportunityID    string     `json:"opportunity_id"`
	Title            string     `json:"title"`
	ShortSummary     string     `json:"short_summary"`
	Description      string     `json:"description"`
	Type             Type       `json:"type"`
	Subject          string     `json:"subject"`
	Price            Price      `json:"price"`
	Audience         Audience   `json:"audience"`
	Format           Format     `json:"format"`
	Deadline         *time.Time `json:"deadline,omitempty"`
	MinAge           *int       `json:"min_age,omitempty"`
	MaxAge           *int       `json:"max_age,omitempty"`
	RegistrationLink string     `json:"registration_link,omitempty"`
	ImageURL         string     `json:"image_url,omitempty"`
	Status           Status     `json:"status"`
	SubmittedBy      string     `json:"submitted_by,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

// VisibleTo applies the visibility rule: non-admin viewers only ever see
// approved records.
func (o Opportunity) VisibleTo(admin bool) bool {
	if admin {
		return true
	}
	return o.Status == StatusApproved
}
