package response_models

type UserLevel struct {
	Level int    `json:"level"`
	Title string `json:"title"`
}

type DashboardResponse struct {
	TotalConversations int       `json:"total_conversations"`
	Streak             int       `json:"streak"`
	Level              UserLevel `json:"level"`
	Badges             []string  `json:"badges"`
	EngagementScore    int       `json:"engagement_score"`
	CompletedScenarios int       `json:"completed_scenarios"`
	VoiceMinutes       int       `json:"voice_minutes"`
	AverageScore       float64   `json:"average_score"`
}
