package voice

import "encoding/json"

// Side-channel message shapes. Demuxed by the type discriminator; anything
// unrecognized is logged and dropped.
const (
	eventTranscript    = "transcript"
	eventFeedback      = "feedback"
	eventAgentSpeaking = "agent_speaking"
)

type dataMessage struct {
	Type     string                 `json:"type"`
	Speaker  string                 `json:"speaker,omitempty"`
	Text     string                 `json:"text,omitempty"`
	Feedback map[string]interface{} `json:"feedback,omitempty"`
	Speaking bool                   `json:"speaking,omitempty"`
}

func parseDataMessage(payload []byte) (dataMessage, error) {
	var msg dataMessage
	err := json.Unmarshal(payload, &msg)
	return msg, err
}
