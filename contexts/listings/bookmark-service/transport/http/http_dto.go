package http

type ErrorBody struct {
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
}

type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

type AddBookmarkRequest struct {
	OpportunityID string `json:"opportunity_id"`
}

type BookmarkPayload struct {
	OpportunityID string `json:"opportunity_id"`
	CreatedAt     string `json:"created_at"`
}

type BookmarkResponse struct {
	Item BookmarkPayload `json:"item"`
}

type ListBookmarksResponse struct {
	Items []BookmarkPayload `json:"items"`
	Count int               `json:"count"`
}
