package http

type ErrorBody struct {
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
}

type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

// SubmitOpportunityRequest is the community submission body. Deadline accepts
// RFC 3339 or a bare YYYY-MM-DD date.
type SubmitOpportunityRequest struct {
	Title            string `json:"title"`
	ShortSummary     string `json:"short_summary"`
	Description      string `json:"description"`
	Type             string `json:"type"`
	Subject          string `json:"subject"`
	Price            string `json:"price"`
	Audience         string `json:"audience"`
	Format           string `json:"format"`
	Deadline         string `json:"deadline,omitempty"`
	MinAge           *int   `json:"min_age,omitempty"`
	MaxAge           *int   `json:"max_age,omitempty"`
	RegistrationLink string `json:"registration_link,omitempty"`
	ImageURL         string `json:"image_url,omitempty"`
}

// EditOpportunityRequest is a partial update; absent fields are untouched.
// Sending "deadline": "" clears the stored deadline.
type EditOpportunityRequest struct {
	Title            *string `json:"title,omitempty"`
	ShortSummary     *string `json:"short_summary,omitempty"`
	Description      *string `json:"description,omitempty"`
	Type             *string `json:"type,omitempty"`
	Subject          *string `json:"subject,omitempty"`
	Price            *string `json:"price,omitempty"`
	Audience         *string `json:"audience,omitempty"`
	Format           *string `json:"format,omitempty"`
	Deadline         *string `json:"deadline,omitempty"`
	MinAge           *int    `json:"min_age,omitempty"`
	MaxAge           *int    `json:"max_age,omitempty"`
	RegistrationLink *string `json:"registration_link,omitempty"`
	ImageURL         *string `json:"image_url,omitempty"`
}

type OpportunityPayload struct {
	OpportunityID    string `json:"opportunity_id"`
	Title            string `json:"title"`
	ShortSummary     string `json:"short_summary"`
	Description      string `json:"description"`
	Type             string `json:"type"`
	Subject          string `json:"subject"`
	Price            string `json:"price"`
	Audience         string `json:"audience"`
	Format           string `json:"format"`
	Deadline         string `json:"deadline,omitempty"`
	MinAge           *int   `json:"min_age,omitempty"`
	MaxAge           *int   `json:"max_age,omitempty"`
	RegistrationLink string `json:"registration_link,omitempty"`
	ImageURL         string `json:"image_url,omitempty"`
	Status           string `json:"status"`
	SubmittedBy      string `json:"submitted_by,omitempty"`
	CreatedAt        string `json:"created_at"`
	UpdatedAt        string `json:"updated_at"`
}

type OpportunityResponse struct {
	Item OpportunityPayload `json:"item"`
}

type ListOpportunitiesResponse struct {
	Items []OpportunityPayload `json:"items"`
	Count int                  `json:"count"`
}

type PlatformStatsResponse struct {
	Approved int `json:"approved"`
	Pending  int `json:"pending"`
	Rejected int `json:"rejected"`
	Total    int `json:"total"`
}
