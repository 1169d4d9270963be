package services

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"wingman/internal/models/db_models"
	"wingman/internal/repositories"
	"wingman/pkg/utils"
)

// localConversationPrefix marks degraded-mode conversation IDs. They are
// never written anywhere; the session continues without persistence.
const localConversationPrefix = "local-"

func IsLocalConversationID(id string) bool {
	return strings.HasPrefix(id, localConversationPrefix)
}

type ConversationServiceInterface interface {
	// Create never fails the caller: on store trouble it hands back a
	// local placeholder ID so the practice session can continue.
	Create(ctx context.Context, userID, scenarioID, openingLine string) string
	// Append and Complete report persistence as a boolean and swallow
	// store errors; the only error they return is ErrConversationNotFound,
	// covering both a missing conversation and one owned by another user
	// so callers cannot tell the two apart.
	Append(ctx context.Context, conversationID, userID string, message db_models.Message) (bool, error)
	Complete(ctx context.Context, conversationID, userID string, feedback db_models.FeedbackPayload) (bool, error)
	Get(ctx context.Context, conversationID, userID string) (*db_models.Conversation, error)
	ListByUser(ctx context.Context, userID string) ([]db_models.Conversation, error)
}

type ConversationService struct {
	conversationRepo repositories.ConversationRepository
}

func NewConversationService(conversationRepo repositories.ConversationRepository) ConversationServiceInterface {
	return &ConversationService{conversationRepo: conversationRepo}
}

func (s *ConversationService) Create(ctx context.Context, userID, scenarioID, openingLine string) string {
	now := time.Now()
	conversation := &db_models.Conversation{
		UserID:     userID,
		ScenarioID: scenarioID,
		StartedAt:  now,
		Messages: db_models.MessageList{
			{
				Role:      db_models.RoleAI,
				Content:   openingLine,
				Timestamp: now.Format(time.RFC3339),
			},
		},
		Completed: false,
	}

	if err := s.conversationRepo.Insert(ctx, conversation); err != nil {
		log.Printf("Error creating conversation, continuing without persistence: %v", err)
		return fmt.Sprintf("%s%d", localConversationPrefix, now.UnixMilli())
	}

	return conversation.ID
}

// loadOwned fetches a conversation and checks it belongs to userID. A
// conversation owned by someone else is reported as not found.
func (s *ConversationService) loadOwned(ctx context.Context, conversationID, userID string) (*db_models.Conversation, error) {
	conversation, err := s.conversationRepo.FindByID(ctx, conversationID)
	if err != nil {
		return nil, err
	}
	if conversation == nil || conversation.UserID != userID {
		return nil, utils.ErrConversationNotFound
	}
	return conversation, nil
}

func (s *ConversationService) Append(ctx context.Context, conversationID, userID string, message db_models.Message) (bool, error) {
	if IsLocalConversationID(conversationID) {
		return true, nil
	}

	conversation, err := s.loadOwned(ctx, conversationID, userID)
	if err != nil {
		if err == utils.ErrConversationNotFound {
			return false, err
		}
		log.Printf("Error fetching conversation %s: %v", conversationID, err)
		return false, nil
	}

	updated := append(conversation.Messages, message)
	if err := s.conversationRepo.UpdateMessages(ctx, conversationID, updated); err != nil {
		log.Printf("Error updating conversation %s: %v", conversationID, err)
		return false, nil
	}

	return true, nil
}

func (s *ConversationService) Complete(ctx context.Context, conversationID, userID string, feedback db_models.FeedbackPayload) (bool, error) {
	if IsLocalConversationID(conversationID) {
		return true, nil
	}

	if _, err := s.loadOwned(ctx, conversationID, userID); err != nil {
		if err == utils.ErrConversationNotFound {
			return false, err
		}
		log.Printf("Error fetching conversation %s: %v", conversationID, err)
		return false, nil
	}

	if err := s.conversationRepo.MarkCompleted(ctx, conversationID, feedback); err != nil {
		log.Printf("Error completing conversation %s: %v", conversationID, err)
		return false, nil
	}

	return true, nil
}

func (s *ConversationService) Get(ctx context.Context, conversationID, userID string) (*db_models.Conversation, error) {
	conversation, err := s.loadOwned(ctx, conversationID, userID)
	if err != nil {
		if err == utils.ErrConversationNotFound {
			return nil, err
		}
		return nil, utils.ErrDatabaseError
	}
	return conversation, nil
}

func (s *ConversationService) ListByUser(ctx context.Context, userID string) ([]db_models.Conversation, error) {
	conversations, err := s.conversationRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return conversations, nil
}
