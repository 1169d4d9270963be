package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"wingman/internal/models/db_models"
	"wingman/internal/models/request_models"
	"wingman/internal/services"
	"wingman/pkg/utils"
)

type UserController struct {
	userService services.UserServiceInterface
}

func NewUserController(userService services.UserServiceInterface) *UserController {
	return &UserController{userService: userService}
}

func identity(c *gin.Context) (id, email, name string) {
	return c.GetString("user_id"), c.GetString("user_email"), c.GetString("user_name")
}

func (u *UserController) GetMeHandler(c *gin.Context) {
	id, email, name := identity(c)
	user := u.userService.GetOrCreate(c.Request.Context(), id, email, name)
	utils.RespondSuccess(c, user, "OK")
}

func (u *UserController) UpdateProfileHandler(c *gin.Context) {
	var req request_models.ProfileUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid profile payload: "+err.Error())
		return
	}

	id, _, _ := identity(c)
	persisted := u.userService.UpdateProfile(c.Request.Context(), id, req)
	utils.RespondSuccess(c, gin.H{"persisted": persisted}, "Profile updated")
}

func (u *UserController) CompleteOnboardingHandler(c *gin.Context) {
	var req request_models.OnboardingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "subscription_tier must be one of trial, weekly, monthly, free")
		return
	}

	id, _, _ := identity(c)
	persisted := u.userService.CompleteOnboarding(c.Request.Context(), id, db_models.SubscriptionTier(req.SubscriptionTier))
	utils.RespondSuccess(c, gin.H{"persisted": persisted}, "Onboarding completed")
}

func (u *UserController) UpdateStreakHandler(c *gin.Context) {
	id, _, _ := identity(c)
	streak := u.userService.UpdateStreak(c.Request.Context(), id)
	utils.RespondSuccess(c, gin.H{"streak": streak}, "Streak updated")
}

func (u *UserController) RecordUsageHandler(c *gin.Context) {
	var req request_models.UsageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "feature is required and must be a known feature name")
		return
	}
	if req.Increment <= 0 {
		req.Increment = 1
	}

	id, _, _ := identity(c)
	persisted := u.userService.UpdateUsageMetrics(c.Request.Context(), id, req.Feature, req.Increment)
	utils.RespondSuccess(c, gin.H{"persisted": persisted}, "Usage recorded")
}

func (u *UserController) RecordPracticeHandler(c *gin.Context) {
	var req request_models.PracticeStatsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "scenario_id is required")
		return
	}

	id, _, _ := identity(c)
	persisted := u.userService.UpdatePracticeStats(c.Request.Context(), id, req.ScenarioID, req.Score, req.DurationSeconds)
	utils.RespondSuccess(c, gin.H{"persisted": persisted}, "Practice recorded")
}

func (u *UserController) DashboardHandler(c *gin.Context) {
	id, _, _ := identity(c)
	dashboard := u.userService.DashboardData(c.Request.Context(), id)
	utils.RespondSuccess(c, dashboard, "OK")
}
