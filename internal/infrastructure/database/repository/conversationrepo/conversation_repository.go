package conversationrepo

import (
	"context"

	"gorm.io/gorm"

	"github.com/HinduAI/Nara/internal/domain/conversation"
	"github.com/HinduAI/Nara/internal/infrastructure/database/dbschema"
	"github.com/HinduAI/Nara/internal/infrastructure/database/transaction"
	"github.com/HinduAI/Nara/internal/infrastructure/metrics"
	"github.com/HinduAI/Nara/internal/utils/functional"
	"github.com/HinduAI/Nara/internal/utils/platformerrors"
)

type ConversationGormRepository struct {
	db *transaction.Database
}

var _ conversation.Repository = (*ConversationGormRepository)(nil)

func NewConversationGormRepository(db *transaction.Database) conversation.Repository {
	return &ConversationGormRepository{db}
}

// Create implements conversation.Repository.
func (repo *ConversationGormRepository) Create(ctx context.Context, conv *conversation.Conversation) error {
	model := dbschema.NewSchemaConversation(conv)
	if err := repo.db.GetTx(ctx).WithContext(ctx).Create(model).Error; err != nil {
		return platformerrors.NewError(ctx, platformerrors.LayerRepository, platformerrors.ErrorTypeDatabaseError,
			"failed to create conversation", err, "9e2c7a41-5b8d-4f06-a3e9-1c7d0b6f2a85")
	}
	conv.ID = model.ID
	conv.CreatedAt = model.CreatedAt
	conv.UpdatedAt = model.UpdatedAt
	metrics.RecordConversationCreated()
	return nil
}

// FindByIDAndUserID implements conversation.Repository.
func (repo *ConversationGormRepository) FindByIDAndUserID(ctx context.Context, id, userID uint) (*conversation.Conversation, error) {
	var entity dbschema.Conversation
	err := repo.db.GetTx(ctx).WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&entity).
		Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerRepository, platformerrors.ErrorTypeDatabaseError,
			"failed to find conversation", err, "4b8f1d6c-2e9a-4750-b1c4-8d3e6f0a9b27")
	}
	return entity.EtoD(), nil
}

// FindByUserID implements conversation.Repository.
func (repo *ConversationGormRepository) FindByUserID(ctx context.Context, userID uint) ([]*conversation.Conversation, error) {
	var rows []*dbschema.Conversation
	err := repo.db.GetTx(ctx).WithContext(ctx).
		Where("user_id = ?", userID).
		Order("updated_at DESC").
		Find(&rows).
		Error
	if err != nil {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerRepository, platformerrors.ErrorTypeDatabaseError,
			"failed to list conversations", err, "c7a3e9f5-0d1b-4682-9a4e-5f8c2b7d3e60")
	}

	return functional.Map(rows, func(item *dbschema.Conversation) *conversation.Conversation {
		return item.EtoD()
	}), nil
}

// UpdateTitle implements conversation.Repository.
func (repo *ConversationGormRepository) UpdateTitle(ctx context.Context, id uint, title string) error {
	err := repo.db.GetTx(ctx).WithContext(ctx).
		Model(&dbschema.Conversation{}).
		Where("id = ?", id).
		Update("title", title).
		Error
	if err != nil {
		return platformerrors.NewError(ctx, platformerrors.LayerRepository, platformerrors.ErrorTypeDatabaseError,
			"failed to update conversation title", err, "2f6b9c0d-8a4e-4137-b5d2-7e1a9c3f6b08")
	}
	return nil
}

// Touch implements conversation.Repository.
func (repo *ConversationGormRepository) Touch(ctx context.Context, id uint) error {
	err := repo.db.GetTx(ctx).WithContext(ctx).
		Model(&dbschema.Conversation{}).
		Where("id = ?", id).
		Update("updated_at", gorm.Expr("NOW()")).
		Error
	if err != nil {
		return platformerrors.NewError(ctx, platformerrors.LayerRepository, platformerrors.ErrorTypeDatabaseError,
			"failed to touch conversation", err, "8d1e5f7a-3c9b-4264-a0f8-6b2d4e9c1a73")
	}
	return nil
}

// Delete implements conversation.Repository. The messages go with the
// conversation through the ON DELETE CASCADE constraint.
func (repo *ConversationGormRepository) Delete(ctx context.Context, id uint) (int64, error) {
	result := repo.db.GetTx(ctx).WithContext(ctx).
		Where("id = ?", id).
		Delete(&dbschema.Conversation{})
	if result.Error != nil {
		return 0, platformerrors.NewError(ctx, platformerrors.LayerRepository, platformerrors.ErrorTypeDatabaseError,
			"failed to delete conversation", result.Error, "e5c8b2f6-7a0d-4391-8e5b-0f4a6d2c9e17")
	}
	return result.RowsAffected, nil
}

// Messages implements conversation.Repository.
func (repo *ConversationGormRepository) Messages(ctx context.Context, conversationID uint) ([]*conversation.Message, error) {
	var rows []*dbschema.Message
	err := repo.db.GetTx(ctx).WithContext(ctx).
		Where("conversation_id = ?", conversationID).
		Order("created_at ASC").
		Find(&rows).
		Error
	if err != nil {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerRepository, platformerrors.ErrorTypeDatabaseError,
			"failed to load messages", err, "1a7d4e9b-6f2c-4508-93a6-c8e0b5f7d214")
	}

	return functional.Map(rows, func(item *dbschema.Message) *conversation.Message {
		return item.EtoD()
	}), nil
}

// AppendMessage implements conversation.Repository.
func (repo *ConversationGormRepository) AppendMessage(ctx context.Context, msg *conversation.Message) error {
	model := dbschema.NewSchemaMessage(msg)
	if err := repo.db.GetTx(ctx).WithContext(ctx).Create(model).Error; err != nil {
		return platformerrors.NewError(ctx, platformerrors.LayerRepository, platformerrors.ErrorTypeDatabaseError,
			"failed to append message", err, "6c0f8a2d-4e7b-4159-b8f0-3a9d1e6c5b42")
	}
	msg.ID = model.ID
	msg.CreatedAt = model.CreatedAt
	msg.UpdatedAt = model.UpdatedAt
	return nil
}

// FindMessageByID implements conversation.Repository.
func (repo *ConversationGormRepository) FindMessageByID(ctx context.Context, id uint) (*conversation.Message, error) {
	var entity dbschema.Message
	err := repo.db.GetTx(ctx).WithContext(ctx).
		Where("id = ?", id).
		First(&entity).
		Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerRepository, platformerrors.ErrorTypeDatabaseError,
			"failed to find message", err, "b4e7c1f9-2d8a-4036-a7c5-9f0b3e8d6a21")
	}
	return entity.EtoD(), nil
}

// SetMessageFeedback implements conversation.Repository.
func (repo *ConversationGormRepository) SetMessageFeedback(ctx context.Context, messageID uint, liked bool) (int64, error) {
	result := repo.db.GetTx(ctx).WithContext(ctx).
		Model(&dbschema.Message{}).
		Where("id = ?", messageID).
		Update("response_liked", liked)
	if result.Error != nil {
		return 0, platformerrors.NewError(ctx, platformerrors.LayerRepository, platformerrors.ErrorTypeDatabaseError,
			"failed to set message feedback", result.Error, "0d3a6f9c-1e5b-4724-86d9-2c7f4a0e8b53")
	}
	return result.RowsAffected, nil
}
