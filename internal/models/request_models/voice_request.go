package request_models

type VoiceTokenRequest struct {
	RoomName        string                 `json:"roomName" binding:"required"`
	ParticipantName string                 `json:"participantName" binding:"required"`
	Metadata        map[string]interface{} `json:"metadata"`
}
