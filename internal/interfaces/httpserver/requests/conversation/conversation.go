package conversationrequests

// CreateConversationRequest seeds a new conversation. The question is only
// used to derive the title.
type CreateConversationRequest struct {
	Question string `json:"question"`
}

// UpdateTitleRequest renames a conversation.
type UpdateTitleRequest struct {
	Title string `json:"title" binding:"required"`
}

// FeedbackRequest sets the liked flag on a message. A pointer keeps an
// explicit false distinguishable from an absent field.
type FeedbackRequest struct {
	ResponseLiked *bool `json:"response_liked" binding:"required"`
}
