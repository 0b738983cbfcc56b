package chatrequests

// AskRequest is the body of the ask endpoint. A missing conversation_id
// starts a new conversation.
type AskRequest struct {
	Question       string `json:"question" binding:"required"`
	ConversationID *uint  `json:"conversation_id,omitempty"`
}
