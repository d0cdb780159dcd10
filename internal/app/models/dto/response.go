package dto

// MessageResponse represents a standard success response for API endpoints
type MessageResponse struct {
	Message string `json:"message"`
}
