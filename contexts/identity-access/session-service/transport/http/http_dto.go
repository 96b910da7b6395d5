package http

type ErrorBody struct {
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
}

type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

type ProfilePayload struct {
	UserID    string  `json:"user_id"`
	Email     string  `json:"email,omitempty"`
	FullName  string  `json:"full_name,omitempty"`
	Role      string  `json:"role"`
	School    *string `json:"school,omitempty"`
	Grade     *string `json:"grade,omitempty"`
	CreatedAt string  `json:"created_at"`
}

type ProfileResponse struct {
	Item ProfilePayload `json:"item"`
}
