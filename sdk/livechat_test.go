package sdk

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/subharanjan2019/BotLibre/sdk/dto"
)

// recordingListener forwards every callback as a tagged event for ordered
// assertions.
type recordingListener struct {
	events chan string
}

func newRecordingListener() *recordingListener {
	return &recordingListener{events: make(chan string, 64)}
}

func (l *recordingListener) Message(message string)      { l.events <- "message|" + message }
func (l *recordingListener) Info(message string)         { l.events <- "info|" + message }
func (l *recordingListener) Error(message string)        { l.events <- "error|" + message }
func (l *recordingListener) Closed()                     { l.events <- "closed|" }
func (l *recordingListener) UpdateUsers(users string)    { l.events <- "users|" + users }
func (l *recordingListener) UpdateUsersXML(users string) { l.events <- "usersxml|" + users }

func (l *recordingListener) next(t *testing.T) string {
	t.Helper()
	select {
	case event := <-l.events:
		return event
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for a listener event")
		return ""
	}
}

// liveChatServer runs a WebSocket channel endpoint, forwarding received
// frames to received and sending frames written to outgoing.
func liveChatServer(t *testing.T, applicationID string) (*SDKConnection, chan string, chan string) {
	t.Helper()
	received := make(chan string, 64)
	outgoing := make(chan string, 64)
	upgrader := websocket.Upgrader{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/live/chat" {
			t.Errorf("unexpected path %s", r.URL.Path)
			return
		}
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		done := make(chan struct{})
		go func() {
			defer close(done)
			for {
				_, data, err := conn.ReadMessage()
				if err != nil {
					return
				}
				received <- string(data)
			}
		}()
		for {
			select {
			case frame, ok := <-outgoing:
				if !ok {
					conn.Close()
					<-done
					return
				}
				conn.WriteMessage(websocket.TextMessage, []byte(frame))
			case <-done:
				return
			}
		}
	}))
	t.Cleanup(server.Close)

	parsed, err := url.Parse(server.URL)
	require.NoError(t, err)
	connection := NewSDKConnection(&Credentials{
		Host:          parsed.Host,
		ApplicationID: applicationID,
		Scheme:        "http",
	})
	return connection, received, outgoing
}

func receive(t *testing.T, frames chan string) string {
	t.Helper()
	select {
	case frame := <-frames:
		return frame
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for a frame")
		return ""
	}
}

func TestConnectCommandAnonymous(t *testing.T) {
	connection, received, _ := liveChatServer(t, "500")
	channel := &dto.ChannelConfig{}
	channel.ID = "42"
	live, err := connection.OpenLiveChat(context.Background(), channel, newRecordingListener())
	require.NoError(t, err)
	defer live.Disconnect()

	assert.Equal(t, "connect 42 500", receive(t, received))
}

func TestConnectCommandEmptyApplicationID(t *testing.T) {
	connection, received, _ := liveChatServer(t, "")
	channel := &dto.ChannelConfig{}
	channel.ID = "42"
	live, err := connection.OpenLiveChat(context.Background(), channel, newRecordingListener())
	require.NoError(t, err)
	defer live.Disconnect()

	// The empty application id is still emitted as a (blank) trailing token.
	assert.Equal(t, "connect 42 ", receive(t, received))
}

func TestConnectCommandWithUser(t *testing.T) {
	connection, received, _ := liveChatServer(t, "500")
	listener := newRecordingListener()
	channel := &dto.ChannelConfig{}
	channel.ID = "42"
	user := &dto.UserConfig{}
	user.User = "alice"
	user.Token = "9999"

	live := NewLiveChatConnection(connection, listener)
	require.NoError(t, live.Connect(context.Background(), channel, user))
	defer live.Disconnect()

	assert.Equal(t, "connect 42 alice 9999 500", receive(t, received))
	assert.Equal(t, "alice", live.Nick())
}

func TestConnectCommandWithPassword(t *testing.T) {
	connection, received, _ := liveChatServer(t, "500")
	channel := &dto.ChannelConfig{}
	channel.ID = "42"
	user := &dto.UserConfig{}
	user.User = "alice"
	user.Password = "secret"

	live := NewLiveChatConnection(connection, newRecordingListener())
	live.ContactInfo = "Alice, alice@example.com"
	require.NoError(t, live.Connect(context.Background(), channel, user))
	defer live.Disconnect()

	assert.Equal(t, "connect 42 alice secret 500 @info Alice, alice@example.com", receive(t, received))
}

func TestDispatch(t *testing.T) {
	connection, received, outgoing := liveChatServer(t, "500")
	listener := newRecordingListener()
	channel := &dto.ChannelConfig{}
	channel.ID = "42"
	live, err := connection.OpenLiveChat(context.Background(), channel, listener)
	require.NoError(t, err)
	defer live.Disconnect()
	receive(t, received)

	tokens := make(chan string, 1)
	live.OnNewChannel = func(token string) { tokens <- token }

	outgoing <- "Online: alice,bob"
	assert.Equal(t, "users|alice,bob", listener.next(t))

	outgoing <- "Online-xml: <table><tr>alice</tr></table>"
	assert.Equal(t, "usersxml|<table><tr>alice</tr></table>", listener.next(t))

	outgoing <- "Channel: private-7"
	select {
	case token := <-tokens:
		assert.Equal(t, "private-7", token)
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for the channel token")
	}
	assert.Equal(t, "private-7", live.ChannelToken())

	outgoing <- "Nick: anonymous123"
	outgoing <- "Info: Welcome to the channel"
	assert.Equal(t, "info|Info: Welcome to the channel", listener.next(t))
	assert.Equal(t, "anonymous123", live.Nick())

	outgoing <- "Error: channel is admin only"
	assert.Equal(t, "error|Error: channel is admin only", listener.next(t))

	outgoing <- "alice: hello everyone"
	assert.Equal(t, "message|alice: hello everyone", listener.next(t))

	outgoing <- "plain broadcast"
	assert.Equal(t, "message|plain broadcast", listener.next(t))
}

func TestPongSwallowedOnlyWithKeepAlive(t *testing.T) {
	connection, received, outgoing := liveChatServer(t, "500")
	listener := newRecordingListener()
	channel := &dto.ChannelConfig{}
	channel.ID = "42"
	live, err := connection.OpenLiveChat(context.Background(), channel, listener)
	require.NoError(t, err)
	defer live.Disconnect()
	receive(t, received)

	// Without keep-alive the pong reaches the listener.
	outgoing <- "Info: pong"
	assert.Equal(t, "info|Info: pong", listener.next(t))

	live.SetKeepAlive(true)
	outgoing <- "Info: pong"
	outgoing <- "Info: after"
	// The pong is swallowed; the next event is the following notice.
	assert.Equal(t, "info|Info: after", listener.next(t))
}

func TestCommands(t *testing.T) {
	connection, received, _ := liveChatServer(t, "500")
	channel := &dto.ChannelConfig{}
	channel.ID = "42"
	live, err := connection.OpenLiveChat(context.Background(), channel, newRecordingListener())
	require.NoError(t, err)
	defer live.Disconnect()
	receive(t, received)

	require.NoError(t, live.Ping())
	assert.Equal(t, "ping", receive(t, received))
	require.NoError(t, live.Accept())
	assert.Equal(t, "accept", receive(t, received))
	require.NoError(t, live.Exit())
	assert.Equal(t, "exit", receive(t, received))
	require.NoError(t, live.SpyMode())
	assert.Equal(t, "mode: spy", receive(t, received))
	require.NoError(t, live.NormalMode())
	assert.Equal(t, "mode: normal", receive(t, received))
	require.NoError(t, live.Pvt("bob"))
	assert.Equal(t, "pvt: bob", receive(t, received))
	require.NoError(t, live.Boot("bob"))
	assert.Equal(t, "boot: bob", receive(t, received))
	require.NoError(t, live.Whisper("bob", "psst"))
	assert.Equal(t, "whisper:bob: psst", receive(t, received))
	require.NoError(t, live.SendMessage("hello"))
	assert.Equal(t, "hello", receive(t, received))
}

func TestNotConnected(t *testing.T) {
	live := NewLiveChatConnection(NewSDKConnection(NewBotLibreCredentials("1")), newRecordingListener())
	assert.ErrorIs(t, live.Ping(), ErrNotConnected)
	assert.ErrorIs(t, live.SendMessage("hi"), ErrNotConnected)
}

func TestDisconnectDuringSends(t *testing.T) {
	connection, received, _ := liveChatServer(t, "500")
	channel := &dto.ChannelConfig{}
	channel.ID = "42"
	live, err := connection.OpenLiveChat(context.Background(), channel, newRecordingListener())
	require.NoError(t, err)
	receive(t, received)

	// The keep-alive ticker pings from its own goroutine, so Disconnect must
	// not race a send into a nil pointer.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for live.Ping() == nil {
		}
	}()
	live.Disconnect()
	<-done
	assert.ErrorIs(t, live.Ping(), ErrNotConnected)
}

func TestMediaRelay(t *testing.T) {
	connection, received, outgoing := liveChatServer(t, "500")
	listener := newRecordingListener()
	channel := &dto.ChannelConfig{}
	channel.ID = "42"
	user := &dto.UserConfig{}
	user.User = "alice"
	user.Token = "9999"
	live := NewLiveChatConnection(connection, listener)
	require.NoError(t, live.Connect(context.Background(), channel, user))
	defer live.Disconnect()
	receive(t, received)

	messages := make(chan string, 8)
	live.RegisterMediaChannel("room-1", func(message json.RawMessage) { messages <- string(message) })
	outgoing <- `Channel: room-1`
	outgoing <- `Media: {"sender":"bob","channel":"room-1","message":"offer"}`

	select {
	case message := <-messages:
		assert.Equal(t, `"offer"`, message)
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for the media message")
	}

	// Own frames and frames for another channel token are dropped.
	outgoing <- `Media: {"sender":"alice","channel":"room-1","message":"echo"}`
	outgoing <- `Media: {"sender":"bob","channel":"other","message":"stray"}`
	outgoing <- "Info: done"
	assert.Equal(t, "info|Info: done", listener.next(t))
	assert.Empty(t, messages)

	require.NoError(t, live.SendMedia("room-1", []byte(`{"sdp":"x"}`)))
	assert.Equal(t, `Media: {"sender":"alice","channel":"room-1","message":{"sdp":"x"}}`, receive(t, received))
}

func TestClosedNotification(t *testing.T) {
	connection, received, outgoing := liveChatServer(t, "500")
	listener := newRecordingListener()
	channel := &dto.ChannelConfig{}
	channel.ID = "42"
	live, err := connection.OpenLiveChat(context.Background(), channel, listener)
	require.NoError(t, err)
	receive(t, received)

	close(outgoing)
	assert.Equal(t, "message|Info: Closed", listener.next(t))
	assert.Equal(t, "closed|", listener.next(t))
	live.Disconnect()
}

func TestSendAttachment(t *testing.T) {
	// REST endpoint for the upload plus the channel socket.
	upgrader := websocket.Upgrader{}
	received := make(chan string, 8)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/live/chat":
			conn, err := upgrader.Upgrade(w, r, nil)
			if err != nil {
				return
			}
			for {
				_, data, err := conn.ReadMessage()
				if err != nil {
					return
				}
				received <- string(data)
			}
		case "/create-channel-attachment":
			if err := r.ParseMultipartForm(1 << 20); err != nil {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			assert.Contains(t, r.FormValue("xml"), `instance="42"`)
			assert.Contains(t, r.FormValue("xml"), `type="text/plain"`)
			w.Write([]byte(`<media file="media/9.txt" key="abc"/>`))
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(server.Close)

	parsed, err := url.Parse(server.URL)
	require.NoError(t, err)
	connection := NewSDKConnection(&Credentials{Host: parsed.Host, ApplicationID: "500", Scheme: "http"})
	channel := &dto.ChannelConfig{}
	channel.ID = "42"
	live, err := connection.OpenLiveChat(context.Background(), channel, newRecordingListener())
	require.NoError(t, err)
	defer live.Disconnect()
	receive(t, received)

	require.NoError(t, live.SendAttachment(context.Background(), "notes.txt", "text/plain", []byte("hello"), false))
	assert.Equal(t, "file: notes.txt : text/plain : "+connection.Credentials.URL()+"/media/9.txt", receive(t, received))
}

func TestSendAttachmentTooLarge(t *testing.T) {
	connection, received, _ := liveChatServer(t, "500")
	listener := newRecordingListener()
	channel := &dto.ChannelConfig{}
	channel.ID = "42"
	live, err := connection.OpenLiveChat(context.Background(), channel, listener)
	require.NoError(t, err)
	defer live.Disconnect()
	receive(t, received)

	content := make([]byte, MaxFileUpload+1)
	err = live.SendAttachment(context.Background(), "big.bin", "application/octet-stream", content, false)
	require.ErrorIs(t, err, ErrFileTooLarge)
	event := listener.next(t)
	assert.Contains(t, event, "error|")
	assert.Contains(t, event, "maximum upload size")
}
