package request_models

type CreateConversationRequest struct {
	ScenarioID  string `json:"scenario_id" binding:"required"`
	OpeningLine string `json:"opening_line" binding:"required"`
}

type AppendMessageRequest struct {
	ID        string `json:"id"`
	Role      string `json:"role" binding:"required,oneof=user ai"`
	Content   string `json:"content" binding:"required"`
	Timestamp string `json:"timestamp"`
}

type CompleteConversationRequest struct {
	Feedback map[string]interface{} `json:"feedback" binding:"required"`
}
