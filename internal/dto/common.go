package dto

// MessageResponse is the generic acknowledgement body for deletes and status updates.
type MessageResponse struct {
	Message string `json:"message"`
}
