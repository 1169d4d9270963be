package response_models

// Generation routes answer with these exact shapes; they are part of the
// public contract the web client depends on, so they skip the APIResponse
// envelope used elsewhere.

type OpeningLineResponse struct {
	Success     bool   `json:"success"`
	OpeningLine string `json:"openingLine"`
}

type ReplyResponse struct {
	Success  bool   `json:"success"`
	Response string `json:"response"`
}

type Feedback struct {
	Rating      string   `json:"rating"`
	Message     string   `json:"message"`
	Suggestions []string `json:"suggestions"`
}

type FeedbackResponse struct {
	Success  bool     `json:"success"`
	Feedback Feedback `json:"feedback"`
}

type SceneResponse struct {
	Success          bool   `json:"success"`
	SceneDescription string `json:"sceneDescription"`
}

type CoachingTips struct {
	Tone             string   `json:"tone"`
	Principles       []string `json:"principles"`
	SuggestedOpeners []string `json:"suggestedOpeners"`
	PitfallsToAvoid  []string `json:"pitfallsToAvoid"`
}

type CoachingTipsResponse struct {
	Success      bool         `json:"success"`
	CoachingTips CoachingTips `json:"coachingTips"`
}

type DocumentParseResponse struct {
	Content string `json:"content"`
}
