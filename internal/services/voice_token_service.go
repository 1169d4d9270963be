package services

import (
	"encoding/json"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"wingman/internal/infra"
	"wingman/internal/models/response_models"
	"wingman/pkg/utils"
)

// VoiceTokenServiceInterface issues short-lived room credentials. Signing is
// local; there is no network call and no persistence.
type VoiceTokenServiceInterface interface {
	IssueToken(roomName, participantIdentity string, metadata map[string]interface{}) (*response_models.VoiceTokenResponse, error)
}

type VoiceTokenService struct {
	apiKey    string
	apiSecret string
	wsURL     string
	tokenTTL  time.Duration
}

func NewVoiceTokenService(cfg *infra.Config) VoiceTokenServiceInterface {
	return &VoiceTokenService{
		apiKey:    cfg.LiveKitAPIKey,
		apiSecret: cfg.LiveKitAPISecret,
		wsURL:     cfg.LiveKitURL,
		tokenTTL:  time.Hour,
	}
}

// videoGrant mirrors the media server's token claim shape. The issued grant
// is exactly join+publish+subscribe on one room; no admin capability.
type videoGrant struct {
	Room         string `json:"room"`
	RoomJoin     bool   `json:"roomJoin"`
	CanPublish   bool   `json:"canPublish"`
	CanSubscribe bool   `json:"canSubscribe"`
}

type voiceTokenClaims struct {
	jwt.RegisteredClaims
	Video    videoGrant `json:"video"`
	Metadata string     `json:"metadata,omitempty"`
}

func (s *VoiceTokenService) IssueToken(roomName, participantIdentity string, metadata map[string]interface{}) (*response_models.VoiceTokenResponse, error) {
	// Input validation happens before any signing.
	if roomName == "" {
		return nil, utils.ErrRoomNameRequired
	}
	if participantIdentity == "" {
		return nil, utils.ErrParticipantRequired
	}
	if s.apiKey == "" || s.apiSecret == "" || s.wsURL == "" {
		return nil, utils.ErrMissingCredentials
	}

	now := time.Now()
	claims := &voiceTokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.apiKey,
			Subject:   participantIdentity,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
		},
		Video: videoGrant{
			Room:         roomName,
			RoomJoin:     true,
			CanPublish:   true,
			CanSubscribe: true,
		},
	}

	if metadata != nil {
		// Serialized verbatim; the caller owns the shape.
		raw, err := json.Marshal(metadata)
		if err != nil {
			return nil, err
		}
		claims.Metadata = string(raw)
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.apiSecret))
	if err != nil {
		return nil, err
	}

	return &response_models.VoiceTokenResponse{
		Token:           signed,
		RoomName:        roomName,
		WsURL:           s.wsURL,
		ParticipantName: participantIdentity,
		Metadata:        metadata,
	}, nil
}
