package dbschema

import (
	"github.com/HinduAI/Nara/internal/domain/conversation"
	"github.com/HinduAI/Nara/internal/infrastructure/database"
)

func init() {
	database.RegisterSchemaForAutoMigrate(Conversation{})
	database.RegisterSchemaForAutoMigrate(Message{})
}

// Conversation represents the database schema for conversations
type Conversation struct {
	BaseModel
	UserID uint   `gorm:"index:idx_conversations_user_updated_at;not null"`
	User   User   `gorm:"foreignKey:UserID"`
	Title  string `gorm:"type:varchar(255);not null"`

	Messages []Message `gorm:"foreignKey:ConversationID;constraint:OnDelete:CASCADE"`
}

// Message represents one stored question/answer exchange
type Message struct {
	BaseModel
	ConversationID   uint         `gorm:"index:idx_messages_conversation_created_at;not null"`
	Conversation     Conversation `gorm:"foreignKey:ConversationID;constraint:OnDelete:CASCADE"`
	UserMessage      string       `gorm:"type:text;not null"`
	AssistantMessage string       `gorm:"type:text;not null"`
	ResponseLiked    *bool
}

// NewSchemaConversation converts a domain conversation into a schema instance.
func NewSchemaConversation(c *conversation.Conversation) *Conversation {
	if c == nil {
		return nil
	}

	return &Conversation{
		BaseModel: BaseModel{
			ID:        c.ID,
			CreatedAt: c.CreatedAt,
			UpdatedAt: c.UpdatedAt,
		},
		UserID: c.UserID,
		Title:  c.Title,
	}
}

// EtoD converts a schema conversation back to the domain representation.
func (c *Conversation) EtoD() *conversation.Conversation {
	if c == nil {
		return nil
	}

	return &conversation.Conversation{
		ID:        c.ID,
		UserID:    c.UserID,
		Title:     c.Title,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

// NewSchemaMessage converts a domain message into a schema instance.
func NewSchemaMessage(m *conversation.Message) *Message {
	if m == nil {
		return nil
	}

	return &Message{
		BaseModel: BaseModel{
			ID:        m.ID,
			CreatedAt: m.CreatedAt,
			UpdatedAt: m.UpdatedAt,
		},
		ConversationID:   m.ConversationID,
		UserMessage:      m.UserMessage,
		AssistantMessage: m.AssistantMessage,
		ResponseLiked:    m.ResponseLiked,
	}
}

// EtoD converts a schema message back to the domain representation.
func (m *Message) EtoD() *conversation.Message {
	if m == nil {
		return nil
	}

	return &conversation.Message{
		ID:               m.ID,
		ConversationID:   m.ConversationID,
		UserMessage:      m.UserMessage,
		AssistantMessage: m.AssistantMessage,
		ResponseLiked:    m.ResponseLiked,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
}
