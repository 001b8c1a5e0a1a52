package dto

import "strings"

// VoiceConfig configures a bot's text to speech voice.
type VoiceConfig struct {
	Envelope

	// Language is the voice language code (en, fr, en_US, etc.).
	Language   string
	Pitch      string
	SpeechRate string
}

func (c *VoiceConfig) ToXML() string {
	var b strings.Builder
	b.WriteString("<voice")
	c.writeCredentials(&b)
	writeAttribute(&b, "language", c.Language)
	writeAttribute(&b, "pitch", c.Pitch)
	writeAttribute(&b, "speechRate", c.SpeechRate)
	b.WriteString("/>")
	return b.String()
}

func (c *VoiceConfig) ParseXML(element *Element) {
	c.Language = element.Attribute("language")
	c.Pitch = element.Attribute("pitch")
	c.SpeechRate = element.Attribute("speechRate")
}
