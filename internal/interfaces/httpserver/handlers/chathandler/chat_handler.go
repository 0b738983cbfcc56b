package chathandler

import (
	"context"

	"github.com/HinduAI/Nara/internal/domain/chat"
	"github.com/HinduAI/Nara/internal/domain/prompt"
	"github.com/HinduAI/Nara/internal/domain/user"
	"github.com/HinduAI/Nara/internal/infrastructure/metrics"
	chatrequests "github.com/HinduAI/Nara/internal/interfaces/httpserver/requests/chat"
	chatresponses "github.com/HinduAI/Nara/internal/interfaces/httpserver/responses/chat"
	"github.com/HinduAI/Nara/internal/utils/platformerrors"
)

// ChatHandler handles ask requests.
type ChatHandler struct {
	chatService *chat.Service
}

// NewChatHandler creates a new chat handler
func NewChatHandler(chatService *chat.Service) *ChatHandler {
	return &ChatHandler{chatService: chatService}
}

// Ask runs one full question/answer turn for the authenticated identity.
func (h *ChatHandler) Ask(ctx context.Context, identity user.Identity, req chatrequests.AskRequest) (*chatresponses.AskResponse, error) {
	metrics.RecordQuestionType(string(prompt.Classify(req.Question)))

	result, err := h.chatService.Ask(ctx, identity, chat.AskInput{
		Question:       req.Question,
		ConversationID: req.ConversationID,
	})
	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerHandler, err, "failed to answer question")
	}

	return chatresponses.NewAskResponse(result), nil
}
