package dto

import "strings"

// Emotions that can be attached to a chat message: NONE, LOVE, LIKE, DISLIKE,
// HATE, RAGE, ANGER, CALM, SERENE, ECSTATIC, HAPPY, SAD, CRYING, PANIC,
// AFRAID, CONFIDENT, COURAGEOUS, SURPRISE, BORED, LAUGHTER, SERIOUS.

// ChatConfig models a chat message sent to a bot instance.
type ChatConfig struct {
	Envelope

	// Conversation is the conversation id for the message. It is returned
	// from the first response, and must be echoed on all subsequent messages
	// to maintain the conversational state. Without it, the bot has no
	// context for the reply.
	Conversation string
	// Speak requests voice audio for the bot's response.
	Speak bool
	// Correction marks the message as a correction to the bot's last
	// response.
	Correction bool
	// Offensive flags the bot's last response as offensive.
	Offensive bool
	// Disconnect ends the conversation. Conversations should be terminated
	// to conserve server resources; the message can be blank.
	Disconnect bool
	// Emote attaches an emotion to the user's message.
	Emote string
	// Action attaches an action to the user's message, such as "laugh",
	// "smile", "kiss".
	Action string
	// Message is the user's message text (rich text).
	Message string
	// Debug includes the message debug log in the response.
	Debug bool
	// DebugLevel is one of SEVERE, WARNING, INFO, CONFIG, FINE, FINER.
	DebugLevel string
	// Learn enables or disables the bot's learning for this message.
	Learn *bool
	// Secure escapes and filters the response message HTML content for XSS
	// security. Defaults to true via NewChatConfig.
	Secure *bool
	// PlainText strips any HTML tags from the response message.
	PlainText *bool
	// Info sends extra info with the message, such as the user's contact
	// details (name, email, phone).
	Info string
}

// NewChatConfig returns a chat message with the secure default applied.
func NewChatConfig() *ChatConfig {
	secure := true
	return &ChatConfig{Secure: &secure}
}

// ToXML serializes the chat message to its request element. The conversation
// id is an opaque token and is emitted verbatim, unescaped.
func (c *ChatConfig) ToXML() string {
	var b strings.Builder
	b.WriteString("<chat")
	c.writeCredentials(&b)
	writeAttribute(&b, "conversation", c.Conversation)
	writeAttribute(&b, "emote", c.Emote)
	writeAttribute(&b, "action", c.Action)
	writeBoolAttribute(&b, "speak", c.Speak)
	writeBoolAttribute(&b, "correction", c.Correction)
	writeBoolAttribute(&b, "offensive", c.Offensive)
	writeOptionalBoolAttribute(&b, "learn", c.Learn)
	writeOptionalBoolAttribute(&b, "secure", c.Secure)
	writeOptionalBoolAttribute(&b, "plainText", c.PlainText)
	writeBoolAttribute(&b, "debug", c.Debug)
	writeAttribute(&b, "info", EscapeHTML(c.Info))
	writeAttribute(&b, "debugLevel", c.DebugLevel)
	writeBoolAttribute(&b, "disconnect", c.Disconnect)
	b.WriteString(">")
	writeTextElement(&b, "message", c.Message)
	b.WriteString("</chat>")
	return b.String()
}

// ChatResponse models a chat message received from a bot instance.
type ChatResponse struct {
	Envelope

	// Conversation is the conversation id to echo on the next ChatConfig.
	Conversation string
	// Avatar is the server relative URL for the avatar image or video.
	Avatar string
	// AvatarType is the avatar MIME file type (mpeg, webm, ogg, jpeg, png).
	AvatarType string
	// AvatarTalk is the server relative URL for the avatar talking media.
	AvatarTalk     string
	AvatarTalkType string
	// AvatarAction is the server relative URL for the avatar action media.
	AvatarAction          string
	AvatarActionType      string
	AvatarActionAudio     string
	AvatarActionAudioType string
	AvatarAudio           string
	AvatarAudioType       string
	// AvatarBackground is the server relative URL for the background image.
	AvatarBackground string
	// Speech is the server relative URL for the response speech audio file.
	Speech string
	// Message is the bot's message text.
	Message string
	// Question is the optional text of the original question.
	Question string
	// Emote is the emotion attached to the bot's message.
	Emote string
	// Action is the action for the bot's message, or a mobile directive.
	Action string
	// Pose is the pose for the bot's message, such as "dancing", "sleeping".
	Pose string
	// Log is the debug log of processing the message.
	Log string
}

// ParseXML populates the response from a response element.
func (r *ChatResponse) ParseXML(element *Element) {
	r.Conversation = element.Attribute("conversation")
	r.Avatar = element.Attribute("avatar")
	r.AvatarType = element.Attribute("avatarType")
	r.AvatarTalk = element.Attribute("avatarTalk")
	r.AvatarTalkType = element.Attribute("avatarTalkType")
	r.AvatarAction = element.Attribute("avatarAction")
	r.AvatarActionType = element.Attribute("avatarActionType")
	r.AvatarActionAudio = element.Attribute("avatarActionAudio")
	r.AvatarActionAudioType = element.Attribute("avatarActionAudioType")
	r.AvatarAudio = element.Attribute("avatarAudio")
	r.AvatarAudioType = element.Attribute("avatarAudioType")
	r.AvatarBackground = element.Attribute("avatarBackground")
	r.Emote = element.Attribute("emote")
	r.Action = element.Attribute("action")
	r.Pose = element.Attribute("pose")
	r.Speech = element.Attribute("speech")

	if message := element.ChildContent("message"); message != "" {
		r.Message = message
	}
	if log := element.ChildContent("log"); log != "" {
		r.Log = log
	}
}

// ChatSettings is returned from the chat-settings API for a conversation.
type ChatSettings struct {
	Envelope

	Conversation    string
	AllowEmotes     bool
	AllowCorrection bool
	AllowLearning   bool
	Learning        bool
}

func (s *ChatSettings) ToXML() string {
	var b strings.Builder
	b.WriteString("<chat-settings")
	s.writeCredentials(&b)
	writeAttribute(&b, "conversation", s.Conversation)
	b.WriteString("/>")
	return b.String()
}

func (s *ChatSettings) ParseXML(element *Element) {
	s.AllowEmotes = element.BoolAttribute("allowEmotes")
	s.AllowCorrection = element.BoolAttribute("allowCorrection")
	s.AllowLearning = element.BoolAttribute("allowLearning")
	s.Learning = element.BoolAttribute("learning")
}

// AvatarMessage models a message processed by a stand-alone avatar, without a
// bot conversation.
type AvatarMessage struct {
	Envelope

	// Avatar is the id or name of the avatar to process the message.
	Avatar string
	// Speak requests voice audio for the response.
	Speak bool
	// Voice is the voice to use for speech generation.
	Voice   string
	Message string
	Emote   string
	Action  string
	Pose    string
}

func (m *AvatarMessage) ToXML() string {
	var b strings.Builder
	b.WriteString("<avatar-message")
	m.writeCredentials(&b)
	writeAttribute(&b, "avatar", m.Avatar)
	writeAttribute(&b, "emote", m.Emote)
	writeAttribute(&b, "action", m.Action)
	writeAttribute(&b, "pose", m.Pose)
	writeAttribute(&b, "voice", m.Voice)
	writeBoolAttribute(&b, "speak", m.Speak)
	b.WriteString(">")
	writeTextElement(&b, "message", m.Message)
	b.WriteString("</avatar-message>")
	return b.String()
}
