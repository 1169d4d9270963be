package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"wingman/internal/models/db_models"
	"wingman/internal/models/request_models"
	"wingman/internal/services"
	"wingman/pkg/utils"
)

type ConversationController struct {
	conversationService services.ConversationServiceInterface
}

func NewConversationController(conversationService services.ConversationServiceInterface) *ConversationController {
	return &ConversationController{conversationService: conversationService}
}

func (ct *ConversationController) CreateHandler(c *gin.Context) {
	var req request_models.CreateConversationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "scenario_id and opening_line are required")
		return
	}

	userID := c.GetString("user_id")
	conversationID := ct.conversationService.Create(c.Request.Context(), userID, req.ScenarioID, req.OpeningLine)
	utils.RespondSuccess(c, gin.H{"conversation_id": conversationID}, "Conversation created")
}

func (ct *ConversationController) AppendHandler(c *gin.Context) {
	var req request_models.AppendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "role and content are required")
		return
	}

	message := db_models.Message{
		ID:        req.ID,
		Role:      req.Role,
		Content:   req.Content,
		Timestamp: req.Timestamp,
	}
	if message.ID == "" {
		message.ID = uuid.NewString()
	}
	if message.Timestamp == "" {
		message.Timestamp = utils.NowISO()
	}

	persisted, err := ct.conversationService.Append(c.Request.Context(), c.Param("id"), c.GetString("user_id"), message)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, gin.H{"persisted": persisted}, "Message appended")
}

func (ct *ConversationController) CompleteHandler(c *gin.Context) {
	var req request_models.CompleteConversationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "feedback is required")
		return
	}

	persisted, err := ct.conversationService.Complete(c.Request.Context(), c.Param("id"), c.GetString("user_id"), db_models.FeedbackPayload(req.Feedback))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, gin.H{"persisted": persisted}, "Conversation completed")
}

func (ct *ConversationController) GetHandler(c *gin.Context) {
	conversation, err := ct.conversationService.Get(c.Request.Context(), c.Param("id"), c.GetString("user_id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, conversation, "OK")
}

func (ct *ConversationController) ListHandler(c *gin.Context) {
	conversations, err := ct.conversationService.ListByUser(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, conversations, "OK")
}
