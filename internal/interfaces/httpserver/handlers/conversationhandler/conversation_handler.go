package conversationhandler

import (
	"context"

	"github.com/HinduAI/Nara/internal/domain/conversation"
	"github.com/HinduAI/Nara/internal/domain/user"
	conversationrequests "github.com/HinduAI/Nara/internal/interfaces/httpserver/requests/conversation"
	conversationresponses "github.com/HinduAI/Nara/internal/interfaces/httpserver/responses/conversation"
	"github.com/HinduAI/Nara/internal/utils/platformerrors"
)

// ConversationHandler handles conversation-related HTTP requests
type ConversationHandler struct {
	conversationService *conversation.Service
}

// NewConversationHandler creates a new conversation handler
func NewConversationHandler(conversationService *conversation.Service) *ConversationHandler {
	return &ConversationHandler{conversationService: conversationService}
}

// CreateConversation creates a new empty conversation titled from the seed question.
func (h *ConversationHandler) CreateConversation(
	ctx context.Context,
	identity user.Identity,
	req conversationrequests.CreateConversationRequest,
) (*conversationresponses.ConversationSummary, error) {
	conv, err := h.conversationService.ResolveOrCreate(ctx, identity, nil, req.Question)
	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerHandler, err, "failed to create conversation")
	}
	return conversationresponses.NewConversationSummary(conv), nil
}

// ListConversations returns the caller's conversations, most recent first.
func (h *ConversationHandler) ListConversations(
	ctx context.Context,
	identity user.Identity,
) ([]conversationresponses.ConversationSummary, error) {
	conversations, err := h.conversationService.List(ctx, identity)
	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerHandler, err, "failed to list conversations")
	}
	return conversationresponses.NewConversationSummaryList(conversations), nil
}

// ListMessages returns the full history of a conversation owned by the caller.
func (h *ConversationHandler) ListMessages(
	ctx context.Context,
	identity user.Identity,
	conversationID uint,
) ([]conversationresponses.MessageResponse, error) {
	conv, err := h.conversationService.Get(ctx, identity, conversationID)
	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerHandler, err, "failed to get conversation")
	}

	messages, err := h.conversationService.History(ctx, conv)
	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerHandler, err, "failed to load messages")
	}
	return conversationresponses.NewMessageResponseList(messages), nil
}

// DeleteConversation removes a conversation and its messages.
func (h *ConversationHandler) DeleteConversation(
	ctx context.Context,
	identity user.Identity,
	conversationID uint,
) error {
	if err := h.conversationService.Delete(ctx, identity, conversationID); err != nil {
		return platformerrors.AsError(ctx, platformerrors.LayerHandler, err, "failed to delete conversation")
	}
	return nil
}

// UpdateTitle renames a conversation owned by the caller.
func (h *ConversationHandler) UpdateTitle(
	ctx context.Context,
	identity user.Identity,
	conversationID uint,
	req conversationrequests.UpdateTitleRequest,
) error {
	if err := h.conversationService.Rename(ctx, identity, conversationID, req.Title); err != nil {
		return platformerrors.AsError(ctx, platformerrors.LayerHandler, err, "failed to update conversation title")
	}
	return nil
}

// SetFeedback stores the liked flag on a message owned by the caller.
func (h *ConversationHandler) SetFeedback(
	ctx context.Context,
	identity user.Identity,
	messageID uint,
	req conversationrequests.FeedbackRequest,
) error {
	if err := h.conversationService.SetFeedback(ctx, identity, messageID, *req.ResponseLiked); err != nil {
		return platformerrors.AsError(ctx, platformerrors.LayerHandler, err, "failed to update feedback")
	}
	return nil
}
