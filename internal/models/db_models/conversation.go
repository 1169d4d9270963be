package db_models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Conversation struct {
	ID         string `gorm:"type:uuid;primaryKey"`
	UserID     string `gorm:"index"`
	ScenarioID string

	StartedAt time.Time
	EndedAt   *time.Time

	Messages  MessageList `gorm:"type:jsonb"`
	Completed bool
	Feedback  FeedbackPayload `gorm:"type:jsonb"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Conversation) TableName() string { return "conversations" }

func (c *Conversation) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	return nil
}
