package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"wingman/internal/models/request_models"
	"wingman/internal/services"
	"wingman/pkg/utils"
)

type VoiceController struct {
	voiceTokenService services.VoiceTokenServiceInterface
}

func NewVoiceController(voiceTokenService services.VoiceTokenServiceInterface) *VoiceController {
	return &VoiceController{voiceTokenService: voiceTokenService}
}

func (v *VoiceController) IssueTokenHandler(c *gin.Context) {
	var req request_models.VoiceTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "roomName and participantName are required")
		return
	}

	resp, err := v.voiceTokenService.IssueToken(req.RoomName, req.ParticipantName, req.Metadata)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
