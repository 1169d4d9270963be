package voice

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type signalingServer struct {
	*httptest.Server

	mu       sync.Mutex
	conn     *websocket.Conn
	query    map[string]string
	received []signalFrame
}

func newSignalingServer(t *testing.T) *signalingServer {
	t.Helper()
	s := &signalingServer{}
	upgrader := websocket.Upgrader{}
	s.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}

		s.mu.Lock()
		s.conn = conn
		s.query = map[string]string{
			"room":         r.URL.Query().Get("room"),
			"access_token": r.URL.Query().Get("access_token"),
		}
		s.mu.Unlock()

		for {
			_, raw, err := conn.ReadMessage()
			if err != nil {
				return
			}
			var frame signalFrame
			if json.Unmarshal(raw, &frame) == nil {
				s.mu.Lock()
				s.received = append(s.received, frame)
				s.mu.Unlock()
			}
		}
	}))
	t.Cleanup(s.Close)
	return s
}

func (s *signalingServer) wsURL() string {
	return "ws" + strings.TrimPrefix(s.URL, "http")
}

func (s *signalingServer) send(t *testing.T, frame signalFrame) {
	t.Helper()
	raw, err := json.Marshal(frame)
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		s.mu.Lock()
		defer s.mu.Unlock()
		return s.conn != nil
	}, time.Second, 5*time.Millisecond, "server never saw the connection")

	s.mu.Lock()
	defer s.mu.Unlock()
	require.NoError(t, s.conn.WriteMessage(websocket.TextMessage, raw))
}

func (s *signalingServer) micFrames() []signalFrame {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []signalFrame
	for _, f := range s.received {
		if f.Kind == frameKindMic {
			out = append(out, f)
		}
	}
	return out
}

func TestWSRoomDialSendsRoomAndToken(t *testing.T) {
	server := newSignalingServer(t)
	dialer := NewWSRoomDialer(server.wsURL())

	room, err := dialer.Dial(context.Background(), "practice-room", "tok123")
	require.NoError(t, err)
	defer room.Disconnect()

	assert.Eventually(t, func() bool {
		server.mu.Lock()
		defer server.mu.Unlock()
		return server.query["room"] == "practice-room" &&
			server.query["access_token"] == "tok123"
	}, time.Second, 5*time.Millisecond)
}

func TestWSRoomRoutesFrames(t *testing.T) {
	server := newSignalingServer(t)
	room, err := NewWSRoomDialer(server.wsURL()).Dial(context.Background(), "practice-room", "tok")
	require.NoError(t, err)
	defer room.Disconnect()

	server.send(t, signalFrame{Kind: frameKindData, Payload: json.RawMessage(`{"type":"transcript"}`)})
	select {
	case payload := <-room.DataMessages():
		assert.JSONEq(t, `{"type":"transcript"}`, string(payload))
	case <-time.After(time.Second):
		t.Fatal("no data message received")
	}

	server.send(t, signalFrame{Kind: frameKindAudio, Payload: json.RawMessage(`"ZnJhbWU="`)})
	select {
	case <-room.RemoteAudio():
	case <-time.After(time.Second):
		t.Fatal("no audio frame received")
	}

	// Unknown frame kinds are dropped without disturbing the stream.
	server.send(t, signalFrame{Kind: "mystery"})
	server.send(t, signalFrame{Kind: frameKindData, Payload: json.RawMessage(`{"type":"feedback"}`)})
	select {
	case payload := <-room.DataMessages():
		assert.Contains(t, string(payload), "feedback")
	case <-time.After(time.Second):
		t.Fatal("stream stopped after unknown frame")
	}
}

func TestWSRoomMicrophoneFrames(t *testing.T) {
	server := newSignalingServer(t)
	room, err := NewWSRoomDialer(server.wsURL()).Dial(context.Background(), "practice-room", "tok")
	require.NoError(t, err)
	defer room.Disconnect()

	assert.False(t, room.MicrophoneEnabled())
	require.NoError(t, room.SetMicrophoneEnabled(true))
	assert.True(t, room.MicrophoneEnabled())
	require.NoError(t, room.SetMicrophoneEnabled(false))
	assert.False(t, room.MicrophoneEnabled())

	assert.Eventually(t, func() bool {
		frames := server.micFrames()
		return len(frames) == 2 && frames[0].Enabled && !frames[1].Enabled
	}, time.Second, 5*time.Millisecond)
}

func TestWSRoomServerCloseSignalsClosed(t *testing.T) {
	server := newSignalingServer(t)
	room, err := NewWSRoomDialer(server.wsURL()).Dial(context.Background(), "practice-room", "tok")
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		server.mu.Lock()
		defer server.mu.Unlock()
		return server.conn != nil
	}, time.Second, 5*time.Millisecond)

	server.mu.Lock()
	conn := server.conn
	server.mu.Unlock()
	require.NoError(t, conn.Close())

	select {
	case <-room.Closed():
	case <-time.After(time.Second):
		t.Fatal("room never reported closure")
	}
}

func TestWSRoomDialErrors(t *testing.T) {
	_, err := NewWSRoomDialer("").Dial(context.Background(), "room", "tok")
	assert.Error(t, err)

	_, err = NewWSRoomDialer("ws://127.0.0.1:1/nope").Dial(context.Background(), "room", "tok")
	assert.Error(t, err)
}
