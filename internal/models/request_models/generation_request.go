package request_models

// ScenarioContext is the structured context every generation operation
// receives. Personality carries the persona fields the prompt templates use.
type ScenarioContext struct {
	Scenario    string             `json:"scenario"`
	Setting     string             `json:"setting"`
	Personality PersonalityContext `json:"personality"`
}

type PersonalityContext struct {
	ID         string   `json:"id"`
	Name       string   `json:"name" binding:"required"`
	Occupation string   `json:"occupation"`
	Traits     string   `json:"traits"`
	Tone       string   `json:"tone"`
	Interests  []string `json:"interests"`
	Backstory  string   `json:"backstory"`
}

type HistoryTurn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type OpeningLineRequest struct {
	Context struct {
		Scenario    string             `json:"scenario" binding:"required"`
		Setting     string             `json:"setting" binding:"required"`
		Personality PersonalityContext `json:"personality" binding:"required"`
	} `json:"context" binding:"required"`
}

type ReplyRequest struct {
	Prompt  string `json:"prompt" binding:"required"`
	Context struct {
		Setting             string             `json:"setting" binding:"required"`
		Personality         PersonalityContext `json:"personality" binding:"required"`
		ConversationHistory []HistoryTurn      `json:"conversationHistory"`
	} `json:"context" binding:"required"`
}

type FeedbackRequest struct {
	UserMessage string `json:"userMessage" binding:"required"`
	AIResponse  string `json:"aiResponse" binding:"required"`
	Context     struct {
		Scenario            string             `json:"scenario" binding:"required"`
		Personality         PersonalityContext `json:"personality" binding:"required"`
		ConversationHistory []HistoryTurn      `json:"conversationHistory"`
	} `json:"context" binding:"required"`
}

type SceneRequest struct {
	Context struct {
		Scenario    string             `json:"scenario" binding:"required"`
		Setting     string             `json:"setting" binding:"required"`
		Personality PersonalityContext `json:"personality" binding:"required"`
	} `json:"context" binding:"required"`
}

type CoachingTipsRequest struct {
	Context struct {
		Scenario    string             `json:"scenario" binding:"required"`
		Setting     string             `json:"setting" binding:"required"`
		Personality PersonalityContext `json:"personality" binding:"required"`
	} `json:"context" binding:"required"`
}
