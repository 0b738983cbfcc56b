// Package conversation owns the conversation and message entities together
// with their lifecycle rules.
package conversation

import (
	"context"
	"time"
)

// Conversation is a thread of exchanges owned by exactly one user. The owner
// never changes after creation; updated_at is refreshed on every new message.
type Conversation struct {
	ID        uint
	UserID    uint
	Title     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Message is one question/answer exchange. Messages are append-only and
// immutable once the assistant text is written, except for the feedback flag.
type Message struct {
	ID               uint
	ConversationID   uint
	UserMessage      string
	AssistantMessage string
	ResponseLiked    *bool
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// Repository defines storage operations for conversations and their messages.
// Find methods return (nil, nil) on a clean miss; only infrastructure
// failures produce errors.
type Repository interface {
	Create(ctx context.Context, conv *Conversation) error
	FindByIDAndUserID(ctx context.Context, id, userID uint) (*Conversation, error)
	FindByUserID(ctx context.Context, userID uint) ([]*Conversation, error)
	UpdateTitle(ctx context.Context, id uint, title string) error
	Touch(ctx context.Context, id uint) error
	// Delete removes the conversation; messages go with it through the
	// foreign-key cascade. Returns the number of conversations removed.
	Delete(ctx context.Context, id uint) (int64, error)

	Messages(ctx context.Context, conversationID uint) ([]*Message, error)
	AppendMessage(ctx context.Context, msg *Message) error
	FindMessageByID(ctx context.Context, id uint) (*Message, error)
	SetMessageFeedback(ctx context.Context, messageID uint, liked bool) (int64, error)
}
