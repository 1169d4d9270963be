package services

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"wingman/pkg/utils"
)

func newTestVoiceTokenService() *VoiceTokenService {
	return &VoiceTokenService{
		apiKey:    "APIkey123",
		apiSecret: "supersecretsupersecret",
		wsURL:     "wss://rooms.example.com",
		tokenTTL:  time.Hour,
	}
}

func TestIssueTokenGrant(t *testing.T) {
	svc := newTestVoiceTokenService()

	resp, err := svc.IssueToken("practice-room", "user-1", nil)
	require.NoError(t, err)
	assert.Equal(t, "practice-room", resp.RoomName)
	assert.Equal(t, "wss://rooms.example.com", resp.WsURL)
	assert.Equal(t, "user-1", resp.ParticipantName)

	var claims voiceTokenClaims
	parsed, err := jwt.ParseWithClaims(resp.Token, &claims, func(token *jwt.Token) (interface{}, error) {
		return []byte("supersecretsupersecret"), nil
	})
	require.NoError(t, err)
	require.True(t, parsed.Valid)

	assert.Equal(t, "APIkey123", claims.Issuer)
	assert.Equal(t, "user-1", claims.Subject)
	assert.Equal(t, "practice-room", claims.Video.Room)
	assert.True(t, claims.Video.RoomJoin)
	assert.True(t, claims.Video.CanPublish)
	assert.True(t, claims.Video.CanSubscribe)
	assert.Empty(t, claims.Metadata)

	expiry := claims.ExpiresAt.Time.Sub(claims.IssuedAt.Time)
	assert.Equal(t, time.Hour, expiry)
}

func TestIssueTokenMetadataVerbatim(t *testing.T) {
	svc := newTestVoiceTokenService()

	metadata := map[string]interface{}{
		"personaId": "emma-bookworm",
		"scenario":  "cafe-1",
	}
	resp, err := svc.IssueToken("practice-room", "user-1", metadata)
	require.NoError(t, err)
	assert.Equal(t, metadata, resp.Metadata)

	var claims voiceTokenClaims
	_, err = jwt.ParseWithClaims(resp.Token, &claims, func(token *jwt.Token) (interface{}, error) {
		return []byte("supersecretsupersecret"), nil
	})
	require.NoError(t, err)
	assert.JSONEq(t, `{"personaId":"emma-bookworm","scenario":"cafe-1"}`, claims.Metadata)
}

func TestIssueTokenValidation(t *testing.T) {
	svc := newTestVoiceTokenService()

	_, err := svc.IssueToken("", "user-1", nil)
	assert.ErrorIs(t, err, utils.ErrRoomNameRequired)

	_, err = svc.IssueToken("practice-room", "", nil)
	assert.ErrorIs(t, err, utils.ErrParticipantRequired)
}

func TestIssueTokenValidationBeforeCredentialCheck(t *testing.T) {
	// With missing credentials an empty room is still the input error, not
	// the credential error.
	svc := &VoiceTokenService{tokenTTL: time.Hour}

	_, err := svc.IssueToken("", "user-1", nil)
	assert.ErrorIs(t, err, utils.ErrRoomNameRequired)

	_, err = svc.IssueToken("practice-room", "user-1", nil)
	assert.ErrorIs(t, err, utils.ErrMissingCredentials)
}
