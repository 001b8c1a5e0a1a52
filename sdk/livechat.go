package sdk

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/subharanjan2019/BotLibre/sdk/dto"
)

// ErrNotConnected is returned when a channel command is issued before
// Connect, or after Disconnect.
var ErrNotConnected = errors.New("not connected")

// ErrMissingChannel is returned when an attachment is sent without a
// connected channel.
var ErrMissingChannel = errors.New("missing channel")

// Keep-alive pings the channel every 10 minutes so idle connections are not
// dropped.
const keepAliveInterval = 600000 * time.Millisecond

// mediaFrame is the JSON envelope relayed on "Media:" frames for media
// signaling (the media streams themselves flow peer to peer).
type mediaFrame struct {
	Sender  string          `json:"sender"`
	Channel string          `json:"channel"`
	Message json.RawMessage `json:"message"`
}

// LiveChatConnection is a WebSocket session with a live chat channel. It is
// separate from an SDKConnection; communication is asynchronous, and any
// error or success for a command is sent as a separate message to the
// listener.
//
// One reader goroutine dispatches incoming frames to the listener in order;
// outgoing writes are serialized by a mutex.
type LiveChatConnection struct {
	// Debug logs every frame.
	Debug bool
	// ContactInfo is optional user contact details (name, email, phone) sent
	// with the connect command.
	ContactInfo string
	// OnNewChannel is called with the channel token when the server assigns
	// one, such as entering a private channel.
	OnNewChannel func(token string)

	sdk      *SDKConnection
	listener LiveChatListener

	// writeMu serializes socket writes and guards conn, which the keep-alive
	// ticker goroutine reads while Disconnect clears it.
	conn    *websocket.Conn
	writeMu sync.Mutex

	mu            sync.Mutex
	channel       *dto.ChannelConfig
	user          *dto.UserConfig
	nick          string
	channelToken  string
	keepAlive     bool
	keepAliveStop chan struct{}
	mediaHandlers map[string]func(message json.RawMessage)
}

// NewLiveChatConnection returns an unconnected live chat connection for the
// SDK connection's server. SDKConnection.OpenLiveChat both creates and
// connects.
func NewLiveChatConnection(sdk *SDKConnection, listener LiveChatListener) *LiveChatConnection {
	return &LiveChatConnection{
		sdk:           sdk,
		listener:      listener,
		mediaHandlers: map[string]func(message json.RawMessage){},
	}
}

// Connect opens the WebSocket and sends the channel connect command. The
// user may be nil for an anonymous connection; validation is asynchronous,
// any error is sent as a separate message to the listener.
func (c *LiveChatConnection) Connect(ctx context.Context, channel *dto.ChannelConfig, user *dto.UserConfig) error {
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, c.sdk.Credentials.SocketURL(), nil)
	if err != nil {
		return fmt.Errorf("dial live chat: %w", err)
	}

	c.mu.Lock()
	c.channel = channel
	c.user = user
	if c.nick == "" && user != nil {
		c.nick = user.User
	}
	c.mu.Unlock()
	c.writeMu.Lock()
	c.conn = conn
	c.writeMu.Unlock()

	command := "connect " + channel.ID
	appID := c.sdk.Credentials.ApplicationID
	switch {
	case user == nil:
		command += " " + appID
	case user.Token == "":
		command += " " + user.User + " " + user.Password + " " + appID
	default:
		command += " " + user.User + " " + user.Token + " " + appID
	}
	if c.ContactInfo != "" {
		command += " @info " + c.ContactInfo
	}
	if err := c.send(command); err != nil {
		conn.Close()
		c.writeMu.Lock()
		c.conn = nil
		c.writeMu.Unlock()
		return err
	}

	go c.readLoop(conn)
	return nil
}

func (c *LiveChatConnection) readLoop(conn *websocket.Conn) {
	defer func() {
		c.mu.Lock()
		c.mediaHandlers = map[string]func(message json.RawMessage){}
		c.mu.Unlock()
		c.listener.Message("Info: Closed")
		c.listener.Closed()
	}()
	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			return
		}
		c.dispatch(string(data))
	}
}

// dispatch routes one frame. Frames are "<Label>: <payload>" lines; the
// label checks run in fixed priority order, and an unlabeled frame is a
// plain channel message.
func (c *LiveChatConnection) dispatch(text string) {
	if c.Debug {
		log.Printf("live chat: %s", text)
	}
	label := ""
	payload := text
	if index := strings.Index(text, ":"); index != -1 {
		label = text[:index]
		if index+2 <= len(text) {
			payload = text[index+2:]
		} else {
			payload = ""
		}
	}
	switch {
	case label == "Media":
		c.relayMedia(payload)
	case label == "Online-xml":
		c.listener.UpdateUsersXML(payload)
	case label == "Online":
		c.listener.UpdateUsers(payload)
	case label == "Channel":
		c.mu.Lock()
		c.channelToken = payload
		c.mu.Unlock()
		if c.OnNewChannel != nil {
			c.OnNewChannel(payload)
		}
	case label == "Nick":
		c.mu.Lock()
		if c.nick == "" {
			c.nick = payload
		}
		c.mu.Unlock()
	case label == "Info" && c.KeepAlive() && strings.Contains(text, "pong"):
		// Keep-alive pong, not broadcast to the listener.
	case label == "Info":
		c.listener.Info(text)
	case label == "Error":
		c.listener.Error(text)
	default:
		c.listener.Message(text)
	}
}

// relayMedia forwards a media signaling frame to the handler registered for
// its channel token. Own frames and frames for other channels are dropped.
func (c *LiveChatConnection) relayMedia(payload string) {
	var frame mediaFrame
	if err := json.Unmarshal([]byte(payload), &frame); err != nil {
		return
	}
	c.mu.Lock()
	nick := c.nick
	token := c.channelToken
	handler := c.mediaHandlers[frame.Channel]
	c.mu.Unlock()
	if frame.Sender == nick || frame.Channel != token {
		return
	}
	if handler != nil {
		handler(frame.Message)
	}
}

func (c *LiveChatConnection) send(message string) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	if c.conn == nil {
		return ErrNotConnected
	}
	return c.conn.WriteMessage(websocket.TextMessage, []byte(message))
}

// SendMessage sends a text message to the channel. Note, the listener will
// receive its own messages.
func (c *LiveChatConnection) SendMessage(message string) error {
	return c.send(message)
}

// Ping tests the connection. A pong message is returned and swallowed; it is
// not broadcast to the channel.
func (c *LiveChatConnection) Ping() error {
	return c.send("ping")
}

// Exit exits from the current private channel.
func (c *LiveChatConnection) Exit() error {
	return c.send("exit")
}

// Accept accepts a private request. This is also used by an operator to
// accept the top of the waiting queue, and by a user to chat with the
// channel bot.
func (c *LiveChatConnection) Accept() error {
	return c.send("accept")
}

// SpyMode changes to spy mode, which allows admins to monitor the entire
// channel.
func (c *LiveChatConnection) SpyMode() error {
	return c.send("mode: spy")
}

// NormalMode changes back to normal mode.
func (c *LiveChatConnection) NormalMode() error {
	return c.send("mode: normal")
}

// Pvt requests a private chat session with a user.
func (c *LiveChatConnection) Pvt(user string) error {
	return c.send("pvt: " + user)
}

// Boot boots a user from the channel. You must be a channel administrator.
func (c *LiveChatConnection) Boot(user string) error {
	return c.send("boot: " + user)
}

// Whisper sends a private message to a user.
func (c *LiveChatConnection) Whisper(user, message string) error {
	return c.send("whisper:" + user + ": " + message)
}

// SendAttachment uploads a file attachment to the channel and sends its
// link as a file message.
func (c *LiveChatConnection) SendAttachment(ctx context.Context, filename, mimeType string, content []byte, resizeImage bool) error {
	c.mu.Lock()
	channel := c.channel
	c.mu.Unlock()
	if channel == nil {
		c.listener.Error("Missing channel property")
		return ErrMissingChannel
	}
	if !resizeImage && len(content) > MaxFileUpload {
		message := fmt.Sprintf("file exceeds maximum upload size of %dmeg", MaxFileUpload/1000000)
		c.listener.Error(message)
		return fmt.Errorf("%w: %d bytes", ErrFileTooLarge, len(content))
	}
	media := &dto.MediaConfig{}
	media.Instance = channel.ID
	media.Name = filename
	media.Type = mimeType
	result, err := c.sdk.CreateChannelAttachment(ctx, media, filename, content, resizeImage)
	if err != nil {
		c.listener.Error(err.Error())
		return err
	}
	return c.send("file: " + filename + " : " + mimeType + " : " + c.sdk.FetchLink(result.File))
}

// RegisterMediaChannel registers a handler for media signaling frames on the
// channel token.
func (c *LiveChatConnection) RegisterMediaChannel(token string, handler func(message json.RawMessage)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.mediaHandlers[token] = handler
}

// SendMedia relays a media signaling message on the channel token.
func (c *LiveChatConnection) SendMedia(token string, message json.RawMessage) error {
	c.mu.Lock()
	nick := c.nick
	c.mu.Unlock()
	frame, err := json.Marshal(mediaFrame{Sender: nick, Channel: token, Message: message})
	if err != nil {
		return err
	}
	return c.send("Media: " + string(frame))
}

// KeepAlive reports whether the keep-alive ping is active.
func (c *LiveChatConnection) KeepAlive() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.keepAlive
}

// ToggleKeepAlive flips the keep-alive state.
func (c *LiveChatConnection) ToggleKeepAlive() {
	c.SetKeepAlive(!c.KeepAlive())
}

// SetKeepAlive starts or stops the keep-alive ping ticker. It does not
// affect the connection state.
func (c *LiveChatConnection) SetKeepAlive(keepAlive bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.keepAlive == keepAlive {
		return
	}
	c.keepAlive = keepAlive
	if !keepAlive {
		if c.keepAliveStop != nil {
			close(c.keepAliveStop)
			c.keepAliveStop = nil
		}
		return
	}
	stop := make(chan struct{})
	c.keepAliveStop = stop
	go func() {
		ticker := time.NewTicker(keepAliveInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				c.Ping()
			case <-stop:
				return
			}
		}
	}()
}

// Nick returns the nickname assigned by the server, or the connected user's
// id.
func (c *LiveChatConnection) Nick() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.nick
}

// ChannelToken returns the current channel token assigned by the server.
func (c *LiveChatConnection) ChannelToken() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.channelToken
}

// Disconnect stops the keep-alive ping and closes the socket. There is no
// automatic reconnect.
func (c *LiveChatConnection) Disconnect() {
	c.SetKeepAlive(false)
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	if c.conn != nil {
		c.conn.Close()
		c.conn = nil
	}
}
