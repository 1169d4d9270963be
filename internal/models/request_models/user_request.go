package request_models

type ProfileUpdateRequest struct {
	Name               *string `json:"name"`
	DateOfBirth        *string `json:"date_of_birth"`
	Gender             *string `json:"gender" binding:"omitempty,oneof=male female non_binary prefer_not_to_say"`
	RelationshipStatus *string `json:"relationship_status" binding:"omitempty,oneof=single dating married divorced widowed"`
	ProfessionalStatus *string `json:"professional_status" binding:"omitempty,oneof=student employed self_employed unemployed retired"`
}

type OnboardingRequest struct {
	SubscriptionTier string `json:"subscription_tier" binding:"required,oneof=trial weekly monthly free"`
}

type UsageRequest struct {
	Feature   string `json:"feature" binding:"required,oneof=text_chat voice_practice feedback_views scenario_completions"`
	Increment int    `json:"increment"`
}

type PracticeStatsRequest struct {
	ScenarioID      string  `json:"scenario_id" binding:"required"`
	Score           float64 `json:"score"`
	DurationSeconds int     `json:"duration_seconds"`
}
