package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"wingman/internal/models/db_models"
	"wingman/pkg/utils"
)

type ConversationRepository interface {
	Insert(ctx context.Context, conversation *db_models.Conversation) error
	FindByID(ctx context.Context, id string) (*db_models.Conversation, error)
	ListByUser(ctx context.Context, userID string) ([]db_models.Conversation, error)
	UpdateMessages(ctx context.Context, id string, messages db_models.MessageList) error
	MarkCompleted(ctx context.Context, id string, feedback db_models.FeedbackPayload) error
}

type conversationRepository struct {
	db *gorm.DB
}

func NewConversationRepository(db *gorm.DB) ConversationRepository {
	return &conversationRepository{db: db}
}

func (r *conversationRepository) Insert(ctx context.Context, conversation *db_models.Conversation) error {
	if r.db == nil {
		return utils.ErrStoreUnavailable
	}
	return r.db.WithContext(ctx).Create(conversation).Error
}

func (r *conversationRepository) FindByID(ctx context.Context, id string) (*db_models.Conversation, error) {
	if r.db == nil {
		return nil, utils.ErrStoreUnavailable
	}

	var conversation db_models.Conversation
	err := r.db.WithContext(ctx).First(&conversation, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &conversation, nil
}

func (r *conversationRepository) ListByUser(ctx context.Context, userID string) ([]db_models.Conversation, error) {
	if r.db == nil {
		return nil, utils.ErrStoreUnavailable
	}

	var conversations []db_models.Conversation
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("started_at DESC").
		Find(&conversations).Error
	if err != nil {
		return nil, err
	}

	return conversations, nil
}

// UpdateMessages writes back the full message log. The read-modify-write
// around this call is not transactional; conversations have a single writer
// in practice, so lost updates are an accepted risk.
func (r *conversationRepository) UpdateMessages(ctx context.Context, id string, messages db_models.MessageList) error {
	if r.db == nil {
		return utils.ErrStoreUnavailable
	}
	return r.db.WithContext(ctx).
		Model(&db_models.Conversation{}).
		Where("id = ?", id).
		Update("messages", messages).Error
}

func (r *conversationRepository) MarkCompleted(ctx context.Context, id string, feedback db_models.FeedbackPayload) error {
	if r.db == nil {
		return utils.ErrStoreUnavailable
	}
	return r.db.WithContext(ctx).
		Model(&db_models.Conversation{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"completed": true,
			"ended_at":  gorm.Expr("NOW()"),
			"feedback":  feedback,
		}).Error
}
