package conversation

import (
	"context"

	"github.com/HinduAI/Nara/internal/domain/user"
	"github.com/HinduAI/Nara/internal/utils/platformerrors"
	"github.com/HinduAI/Nara/internal/utils/stringutils"
)

// Service handles business logic for conversations.
type Service struct {
	repo  Repository
	users *user.Service
}

// NewService creates a conversation service.
func NewService(repo Repository, users *user.Service) *Service {
	return &Service{repo: repo, users: users}
}

// ResolveOrCreate resolves the owning user for the identity, then returns the
// conversation with the given id if it exists and belongs to that user. In
// every other case (no id, unknown id, id owned by someone else) a new
// conversation titled from the seed question is created. A foreign id is
// never an error here; lookup is always scoped to the owner.
func (s *Service) ResolveOrCreate(ctx context.Context, identity user.Identity, conversationID *uint, seedQuestion string) (*Conversation, error) {
	owner, err := s.users.EnsureUser(ctx, identity)
	if err != nil {
		return nil, err
	}

	if conversationID != nil {
		existing, err := s.repo.FindByIDAndUserID(ctx, *conversationID, owner.ID)
		if err != nil {
			return nil, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "failed to look up conversation")
		}
		if existing != nil {
			return existing, nil
		}
	}

	conv := &Conversation{
		UserID: owner.ID,
		Title:  stringutils.NewConversationTitle(seedQuestion),
	}
	if err := s.repo.Create(ctx, conv); err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "failed to create conversation")
	}
	return conv, nil
}

// Get returns the conversation with the given id, scoped to the owner. A
// conversation owned by someone else behaves as absent.
func (s *Service) Get(ctx context.Context, identity user.Identity, conversationID uint) (*Conversation, error) {
	owner, err := s.users.EnsureUser(ctx, identity)
	if err != nil {
		return nil, err
	}

	conv, err := s.repo.FindByIDAndUserID(ctx, conversationID, owner.ID)
	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "failed to look up conversation")
	}
	if conv == nil {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeNotFound,
			"conversation not found", nil, "9d4a51c8-20f3-4e6b-8d0a-5b1c7f2e9a36")
	}
	return conv, nil
}

// List returns the user's conversations, most recently updated first.
func (s *Service) List(ctx context.Context, identity user.Identity) ([]*Conversation, error) {
	owner, err := s.users.EnsureUser(ctx, identity)
	if err != nil {
		return nil, err
	}

	conversations, err := s.repo.FindByUserID(ctx, owner.ID)
	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "failed to list conversations")
	}
	return conversations, nil
}

// History returns all messages of the conversation in creation order. An
// empty history is a valid result, not an error.
func (s *Service) History(ctx context.Context, conv *Conversation) ([]*Message, error) {
	messages, err := s.repo.Messages(ctx, conv.ID)
	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "failed to load history")
	}
	return messages, nil
}

// AppendExchange persists one question/answer pair and refreshes the parent
// conversation's updated_at.
func (s *Service) AppendExchange(ctx context.Context, conv *Conversation, userText, assistantText string) (*Message, error) {
	msg := &Message{
		ConversationID:   conv.ID,
		UserMessage:      userText,
		AssistantMessage: assistantText,
	}
	if err := s.repo.AppendMessage(ctx, msg); err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "failed to store message")
	}

	if err := s.repo.Touch(ctx, conv.ID); err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "failed to touch conversation")
	}
	conv.UpdatedAt = msg.CreatedAt

	return msg, nil
}

// SetFeedback records the liked/disliked flag on a message. The message must
// sit in a conversation owned by the caller; a foreign message behaves as
// absent. Subsequent calls overwrite the previous value.
func (s *Service) SetFeedback(ctx context.Context, identity user.Identity, messageID uint, liked bool) error {
	owner, err := s.users.EnsureUser(ctx, identity)
	if err != nil {
		return err
	}

	msg, err := s.repo.FindMessageByID(ctx, messageID)
	if err != nil {
		return platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "failed to look up message")
	}
	if msg == nil {
		return platformerrors.NewError(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeNotFound,
			"message not found", nil, "7f5d3a9b-8c1e-4620-b4a7-0e9c2d6f1b58")
	}

	conv, err := s.repo.FindByIDAndUserID(ctx, msg.ConversationID, owner.ID)
	if err != nil {
		return platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "failed to look up conversation")
	}
	if conv == nil {
		return platformerrors.NewError(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeNotFound,
			"message not found", nil, "a1c6e4f2-9b0d-4d78-85e3-6f2a8c0b7d94")
	}

	affected, err := s.repo.SetMessageFeedback(ctx, messageID, liked)
	if err != nil {
		return platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "failed to update feedback")
	}
	if affected == 0 {
		return platformerrors.NewError(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeNotFound,
			"message not found", nil, "2c8e7b1a-64d5-4f3c-9e0b-8a7d6c5f4e21")
	}
	return nil
}

// Delete removes the conversation and, through the cascade, all its messages.
func (s *Service) Delete(ctx context.Context, identity user.Identity, conversationID uint) error {
	conv, err := s.Get(ctx, identity, conversationID)
	if err != nil {
		return err
	}

	affected, err := s.repo.Delete(ctx, conv.ID)
	if err != nil {
		return platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "failed to delete conversation")
	}
	if affected == 0 {
		return platformerrors.NewError(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeNotFound,
			"conversation not found", nil, "b3f9a2d7-15c4-4e8a-a60d-3c2b1f0e9d84")
	}
	return nil
}

// Rename sets a new title on the conversation.
func (s *Service) Rename(ctx context.Context, identity user.Identity, conversationID uint, title string) error {
	conv, err := s.Get(ctx, identity, conversationID)
	if err != nil {
		return err
	}

	if err := s.repo.UpdateTitle(ctx, conv.ID, title); err != nil {
		return platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "failed to rename conversation")
	}
	return nil
}
