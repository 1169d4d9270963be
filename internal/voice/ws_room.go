package voice

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/url"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// WSRoomDialer connects to the media server's signaling endpoint over
// websocket. Audio frames and side-channel data arrive as JSON-framed
// messages; microphone state changes go out the same way.
type WSRoomDialer struct {
	serverURL string
}

func NewWSRoomDialer(serverURL string) *WSRoomDialer {
	return &WSRoomDialer{serverURL: serverURL}
}

type signalFrame struct {
	Kind    string          `json:"kind"`
	Payload json.RawMessage `json:"payload,omitempty"`
	Enabled bool            `json:"enabled,omitempty"`
}

const (
	frameKindData  = "data"
	frameKindAudio = "audio"
	frameKindMic   = "microphone"
)

func (d *WSRoomDialer) Dial(ctx context.Context, roomName, token string) (Room, error) {
	if d.serverURL == "" {
		return nil, fmt.Errorf("realtime server url not configured")
	}

	u, err := url.Parse(d.serverURL)
	if err != nil {
		return nil, fmt.Errorf("bad realtime server url: %w", err)
	}
	q := u.Query()
	q.Set("room", roomName)
	q.Set("access_token", token)
	u.RawQuery = q.Encode()

	dialer := websocket.Dialer{HandshakeTimeout: 15 * time.Second}
	conn, _, err := dialer.DialContext(ctx, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("connecting to room %s: %w", roomName, err)
	}

	room := &wsRoom{
		conn:   conn,
		data:   make(chan []byte, 32),
		audio:  make(chan []byte, 64),
		closed: make(chan struct{}),
	}
	go room.readLoop()
	return room, nil
}

type wsRoom struct {
	conn *websocket.Conn

	writeMu    sync.Mutex
	micMu      sync.Mutex
	micEnabled bool

	data      chan []byte
	audio     chan []byte
	closed    chan struct{}
	closeOnce sync.Once
}

func (r *wsRoom) readLoop() {
	// data/audio are closed here, by their only writer.
	defer close(r.data)
	defer close(r.audio)
	defer r.markClosed()
	for {
		_, raw, err := r.conn.ReadMessage()
		if err != nil {
			return
		}

		var frame signalFrame
		if err := json.Unmarshal(raw, &frame); err != nil {
			log.Printf("Dropping malformed signal frame: %v", err)
			continue
		}

		switch frame.Kind {
		case frameKindData:
			select {
			case r.data <- []byte(frame.Payload):
			default:
				log.Println("Data channel backlog full, dropping message")
			}
		case frameKindAudio:
			select {
			case r.audio <- []byte(frame.Payload):
			default:
				// Audio is realtime; stale frames are droppable.
			}
		default:
			log.Printf("Ignoring signal frame kind %q", frame.Kind)
		}
	}
}

func (r *wsRoom) markClosed() {
	r.closeOnce.Do(func() {
		close(r.closed)
	})
}

func (r *wsRoom) SetMicrophoneEnabled(enabled bool) error {
	frame := signalFrame{Kind: frameKindMic, Enabled: enabled}
	raw, err := json.Marshal(frame)
	if err != nil {
		return err
	}

	r.writeMu.Lock()
	err = r.conn.WriteMessage(websocket.TextMessage, raw)
	r.writeMu.Unlock()
	if err != nil {
		return fmt.Errorf("setting microphone state: %w", err)
	}

	r.micMu.Lock()
	r.micEnabled = enabled
	r.micMu.Unlock()
	return nil
}

func (r *wsRoom) MicrophoneEnabled() bool {
	r.micMu.Lock()
	defer r.micMu.Unlock()
	return r.micEnabled
}

func (r *wsRoom) DataMessages() <-chan []byte { return r.data }

func (r *wsRoom) RemoteAudio() <-chan []byte { return r.audio }

func (r *wsRoom) Closed() <-chan struct{} { return r.closed }

func (r *wsRoom) Disconnect() error {
	r.writeMu.Lock()
	_ = r.conn.WriteMessage(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
	r.writeMu.Unlock()

	err := r.conn.Close()
	r.markClosed()
	return err
}
