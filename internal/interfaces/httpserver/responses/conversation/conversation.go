package conversationresponses

import (
	"github.com/HinduAI/Nara/internal/domain/conversation"
)

// ConversationSummary is the list and create representation of a conversation.
type ConversationSummary struct {
	ID    uint   `json:"id"`
	Title string `json:"title"`
}

// MessageResponse is one stored exchange.
type MessageResponse struct {
	ID            uint   `json:"id"`
	User          string `json:"user"`
	Assistant     string `json:"assistant"`
	ResponseLiked *bool  `json:"response_liked,omitempty"`
}

// StatusResponse confirms a mutation.
type StatusResponse struct {
	Status string `json:"status"`
	ID     uint   `json:"id,omitempty"`
	Title  string `json:"title,omitempty"`
}

// NewConversationSummary creates a summary from a domain conversation.
func NewConversationSummary(conv *conversation.Conversation) *ConversationSummary {
	return &ConversationSummary{ID: conv.ID, Title: conv.Title}
}

// NewConversationSummaryList creates summaries for a list endpoint. The
// result is never nil so an empty list renders as [].
func NewConversationSummaryList(conversations []*conversation.Conversation) []ConversationSummary {
	out := make([]ConversationSummary, 0, len(conversations))
	for _, conv := range conversations {
		if conv == nil {
			continue
		}
		out = append(out, *NewConversationSummary(conv))
	}
	return out
}

// NewMessageResponse creates a response from a domain message.
func NewMessageResponse(msg *conversation.Message) *MessageResponse {
	return &MessageResponse{
		ID:            msg.ID,
		User:          msg.UserMessage,
		Assistant:     msg.AssistantMessage,
		ResponseLiked: msg.ResponseLiked,
	}
}

// NewMessageResponseList creates message responses for a history endpoint.
func NewMessageResponseList(messages []*conversation.Message) []MessageResponse {
	out := make([]MessageResponse, 0, len(messages))
	for _, msg := range messages {
		if msg == nil {
			continue
		}
		out = append(out, *NewMessageResponse(msg))
	}
	return out
}
