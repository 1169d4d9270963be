package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"wingman/internal/models/request_models"
	"wingman/internal/models/response_models"
	"wingman/internal/services"
	"wingman/pkg/utils"
)

type GenerationController struct {
	generationService services.GenerationServiceInterface
}

func NewGenerationController(generationService services.GenerationServiceInterface) *GenerationController {
	return &GenerationController{generationService: generationService}
}

// The generation routes answer with the exact field names the web client
// binds to, not the APIResponse envelope.

func (g *GenerationController) GenerateOpeningHandler(c *gin.Context) {
	var req request_models.OpeningLineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Context with scenario, personality, and setting is required")
		return
	}

	scn := request_models.ScenarioContext{
		Scenario:    req.Context.Scenario,
		Setting:     req.Context.Setting,
		Personality: req.Context.Personality,
	}
	openingLine := g.generationService.GenerateOpeningLine(c.Request.Context(), scn)

	c.JSON(http.StatusOK, response_models.OpeningLineResponse{
		Success:     true,
		OpeningLine: openingLine,
	})
}

func (g *GenerationController) GenerateReplyHandler(c *gin.Context) {
	var req request_models.ReplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Prompt and context with personality and setting are required")
		return
	}

	scn := request_models.ScenarioContext{
		Setting:     req.Context.Setting,
		Personality: req.Context.Personality,
	}
	reply := g.generationService.GenerateReply(c.Request.Context(), req.Prompt, scn, req.Context.ConversationHistory)

	c.JSON(http.StatusOK, response_models.ReplyResponse{
		Success:  true,
		Response: reply,
	})
}

func (g *GenerationController) GenerateFeedbackHandler(c *gin.Context) {
	var req request_models.FeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "userMessage, aiResponse and context with scenario and personality are required")
		return
	}

	scn := request_models.ScenarioContext{
		Scenario:    req.Context.Scenario,
		Personality: req.Context.Personality,
	}
	feedback := g.generationService.GenerateFeedback(c.Request.Context(), req.UserMessage, req.AIResponse, scn, req.Context.ConversationHistory)

	c.JSON(http.StatusOK, response_models.FeedbackResponse{
		Success:  true,
		Feedback: feedback,
	})
}

func (g *GenerationController) GenerateSceneHandler(c *gin.Context) {
	var req request_models.SceneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Context with scenario, personality, and setting is required")
		return
	}

	scn := request_models.ScenarioContext{
		Scenario:    req.Context.Scenario,
		Setting:     req.Context.Setting,
		Personality: req.Context.Personality,
	}
	scene := g.generationService.GenerateSceneDescription(c.Request.Context(), scn)

	c.JSON(http.StatusOK, response_models.SceneResponse{
		Success:          true,
		SceneDescription: scene,
	})
}

func (g *GenerationController) GenerateTipsHandler(c *gin.Context) {
	var req request_models.CoachingTipsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Context with scenario, personality, and setting is required")
		return
	}

	scn := request_models.ScenarioContext{
		Scenario:    req.Context.Scenario,
		Setting:     req.Context.Setting,
		Personality: req.Context.Personality,
	}
	tips := g.generationService.GenerateCoachingTips(c.Request.Context(), scn)

	c.JSON(http.StatusOK, response_models.CoachingTipsResponse{
		Success:      true,
		CoachingTips: tips,
	})
}
