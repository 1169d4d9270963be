package voice

import (
	"context"
	"fmt"
	"log"
	"sync"
)

type Status string

const (
	StatusIdle         Status = "idle"
	StatusConnecting   Status = "connecting"
	StatusConnected    Status = "connected"
	StatusDisconnected Status = "disconnected"
	StatusError        Status = "error"
)

// Controller drives one voice practice session:
// idle -> connecting -> connected -> disconnected, with a terminal error
// state reachable from connecting or connected. It is owned by a single
// session and is not shared across sessions.
type Controller struct {
	dialer RoomDialer

	mu            sync.Mutex
	status        Status
	room          Room
	lastErr       string
	transcript    []string
	feedback      map[string]interface{}
	agentSpeaking bool
	audioAttached bool
	loopDone      chan struct{}
}

func NewController(dialer RoomDialer) *Controller {
	return &Controller{
		dialer: dialer,
		status: StatusIdle,
	}
}

// Connect opens the room, enables the local microphone immediately and
// starts consuming remote audio and side-channel messages. Calling
// Disconnect while the dial is in flight tears down whatever was
// established instead of leaving it dangling.
func (c *Controller) Connect(ctx context.Context, roomName, token string) error {
	c.mu.Lock()
	if c.status != StatusIdle && c.status != StatusDisconnected {
		c.mu.Unlock()
		return fmt.Errorf("connect called in state %s", c.status)
	}
	c.status = StatusConnecting
	c.lastErr = ""
	c.mu.Unlock()

	room, err := c.dialer.Dial(ctx, roomName, token)

	c.mu.Lock()
	if c.status != StatusConnecting {
		// Disconnect won the race; release anything partially established.
		c.mu.Unlock()
		if room != nil {
			_ = room.Disconnect()
		}
		return nil
	}
	if err != nil {
		c.status = StatusError
		c.lastErr = err.Error()
		c.mu.Unlock()
		return err
	}

	loopDone := make(chan struct{})
	c.room = room
	c.status = StatusConnected
	c.audioAttached = true
	c.loopDone = loopDone
	c.mu.Unlock()

	if err := room.SetMicrophoneEnabled(true); err != nil {
		log.Printf("Enabling microphone failed: %v", err)
	}

	go c.eventLoop(room, loopDone)
	return nil
}

func (c *Controller) eventLoop(room Room, done chan struct{}) {
	defer close(done)
	data := room.DataMessages()
	audio := room.RemoteAudio()
	for {
		select {
		case payload, ok := <-data:
			if !ok {
				data = nil
				continue
			}
			c.handleData(payload)
		case _, ok := <-audio:
			// Frames are played by the provider layer; consuming here
			// keeps the channel drained.
			if !ok {
				audio = nil
			}
		case <-room.Closed():
			c.onProviderClosed()
			return
		}
	}
}

func (c *Controller) handleData(payload []byte) {
	msg, err := parseDataMessage(payload)
	if err != nil {
		log.Printf("Failed to parse data message: %v", err)
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	switch msg.Type {
	case eventTranscript:
		c.transcript = append(c.transcript, fmt.Sprintf("%s: %s", msg.Speaker, msg.Text))
	case eventFeedback:
		// Only the latest feedback is retained.
		c.feedback = msg.Feedback
	case eventAgentSpeaking:
		c.agentSpeaking = msg.Speaking
	default:
		log.Printf("Ignoring unrecognized data message type %q", msg.Type)
	}
}

func (c *Controller) onProviderClosed() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.status == StatusError {
		return
	}
	c.status = StatusDisconnected
	c.agentSpeaking = false
	c.audioAttached = false
	c.room = nil
}

// ToggleMute flips the provider-side microphone state.
func (c *Controller) ToggleMute() error {
	c.mu.Lock()
	room := c.room
	c.mu.Unlock()
	if room == nil {
		return fmt.Errorf("no active room")
	}
	return room.SetMicrophoneEnabled(!room.MicrophoneEnabled())
}

// IsMuted derives from the provider's live state so it cannot drift from a
// separately tracked boolean.
func (c *Controller) IsMuted() bool {
	c.mu.Lock()
	room := c.room
	c.mu.Unlock()
	if room == nil {
		return false
	}
	return !room.MicrophoneEnabled()
}

// Disconnect releases the room unconditionally, regardless of state, and is
// safe to call on every teardown path.
func (c *Controller) Disconnect() {
	c.mu.Lock()
	room := c.room
	c.room = nil
	c.status = StatusDisconnected
	c.agentSpeaking = false
	c.audioAttached = false
	loopDone := c.loopDone
	c.loopDone = nil
	c.mu.Unlock()

	if room != nil {
		if err := room.Disconnect(); err != nil {
			log.Printf("Error disconnecting room: %v", err)
		}
	}
	if loopDone != nil {
		<-loopDone
	}
}

func (c *Controller) Status() Status {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.status
}

func (c *Controller) LastError() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastErr
}

func (c *Controller) Transcript() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]string, len(c.transcript))
	copy(out, c.transcript)
	return out
}

// LatestFeedback returns the most recent feedback event, or nil.
func (c *Controller) LatestFeedback() map[string]interface{} {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.feedback
}

func (c *Controller) IsAgentSpeaking() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.agentSpeaking
}

// RemoteAudioAttached reports whether remote audio is currently being
// consumed for playback.
func (c *Controller) RemoteAudioAttached() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.audioAttached
}
