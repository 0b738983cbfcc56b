package chatresponses

import (
	"github.com/HinduAI/Nara/internal/domain/chat"
	"github.com/HinduAI/Nara/internal/domain/prompt"
)

// ExchangeResponse is one question/answer pair in the returned history.
type ExchangeResponse struct {
	User      string `json:"user"`
	Assistant string `json:"assistant"`
}

// AskResponse is the body returned by the ask endpoint. History includes the
// exchange produced by this request.
type AskResponse struct {
	Response       string             `json:"response"`
	History        []ExchangeResponse `json:"history"`
	ConversationID uint               `json:"conversation_id"`
}

// NewAskResponse creates a response from the orchestrator result.
func NewAskResponse(result *chat.AskResult) *AskResponse {
	history := make([]ExchangeResponse, 0, len(result.History))
	for _, exchange := range result.History {
		history = append(history, newExchangeResponse(exchange))
	}
	return &AskResponse{
		Response:       result.Response,
		History:        history,
		ConversationID: result.ConversationID,
	}
}

func newExchangeResponse(exchange prompt.Exchange) ExchangeResponse {
	return ExchangeResponse{User: exchange.Question, Assistant: exchange.Answer}
}
