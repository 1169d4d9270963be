package response_models

type VoiceTokenResponse struct {
	Token           string                 `json:"token"`
	RoomName        string                 `json:"roomName"`
	WsURL           string                 `json:"wsUrl"`
	ParticipantName string                 `json:"participantName"`
	Metadata        map[string]interface{} `json:"metadata,omitempty"`
}
