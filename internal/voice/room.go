package voice

import "context"

// Room is a live handle on one media-room connection. Implementations wrap
// the realtime provider; the controller owns exactly one Room per session
// and must release it on every exit path.
type Room interface {
	// SetMicrophoneEnabled flips the local publish track.
	SetMicrophoneEnabled(enabled bool) error
	// MicrophoneEnabled reports the provider-side mic state. Mute status
	// shown to the user must come from here, never from a cached flag.
	MicrophoneEnabled() bool

	// DataMessages delivers raw side-channel payloads (transcript lines,
	// feedback events, speaking indicators). Closed when the room closes.
	DataMessages() <-chan []byte
	// RemoteAudio delivers the counterpart participant's audio frames.
	RemoteAudio() <-chan []byte
	// Closed is closed when the provider reports a disconnect, voluntary
	// or not.
	Closed() <-chan struct{}

	Disconnect() error
}

// RoomDialer opens a Room. Separated from the controller so tests can hand
// it a fake provider.
type RoomDialer interface {
	Dial(ctx context.Context, roomName, token string) (Room, error)
}
