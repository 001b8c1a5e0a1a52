package dto

import "strings"

// ChannelConfig models a live chat channel or chatroom instance.
type ChannelConfig struct {
	Envelope
	WebMediumFields

	// RoomType sets the channel type, "ChatRoom" or "OneOnOne".
	RoomType string
	// Messages is read-only: the total number of messages.
	Messages string
	// UsersOnline is read-only: the current users online.
	UsersOnline string
	// AdminsOnline is read-only: the current admins or operators online.
	AdminsOnline string
}

func (c *ChannelConfig) TypeTag() string {
	return "channel"
}

// Identity returns a copy carrying only the channel id.
func (c *ChannelConfig) Identity() *ChannelConfig {
	config := &ChannelConfig{}
	config.ID = c.ID
	return config
}

func (c *ChannelConfig) ToXML() string {
	var b strings.Builder
	b.WriteString("<channel")
	writeAttribute(&b, "type", c.RoomType)
	writeWebMediumAttributes(&b, &c.Envelope, &c.WebMediumFields)
	b.WriteString("</channel>")
	return b.String()
}

func (c *ChannelConfig) ParseXML(element *Element) {
	parseWebMediumFields(element, &c.WebMediumFields)
	c.RoomType = element.Attribute("type")
	c.Messages = element.Attribute("messages")
	c.UsersOnline = element.Attribute("usersOnline")
	c.AdminsOnline = element.Attribute("adminsOnline")
}
