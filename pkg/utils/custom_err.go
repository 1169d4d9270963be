package utils

import "errors"

var (
	ErrScenarioNotFound     = errors.New("scenario not found")
	ErrPersonaNotFound      = errors.New("persona not found")
	ErrConversationNotFound = errors.New("conversation not found")
	ErrUserNotFound         = errors.New("user not found")

	ErrRoomNameRequired    = errors.New("room name is required")
	ErrParticipantRequired = errors.New("participant name is required")
	ErrMissingCredentials  = errors.New("realtime credentials not configured")

	ErrUnsupportedFileType = errors.New("unsupported file type")
	ErrEmptyDocument       = errors.New("document contains no extractable text")

	ErrStoreUnavailable = errors.New("backing store unavailable")
	ErrDatabaseError    = errors.New("database error")
)
