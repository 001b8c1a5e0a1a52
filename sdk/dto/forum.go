package dto

import "strings"

// ForumConfig models a forum instance.
type ForumConfig struct {
	Envelope
	WebMediumFields

	// ReplyAccessMode sets who can reply to posts: "Everyone", "Users",
	// "Members", "Administrators".
	ReplyAccessMode string
	// PostAccessMode sets who can post: same values as ReplyAccessMode.
	PostAccessMode string
	// Posts is read-only: the total number of posts to the forum.
	Posts string
}

func (c *ForumConfig) TypeTag() string {
	return "forum"
}

// Identity returns a copy carrying only the forum id.
func (c *ForumConfig) Identity() *ForumConfig {
	config := &ForumConfig{}
	config.ID = c.ID
	return config
}

func (c *ForumConfig) ToXML() string {
	var b strings.Builder
	b.WriteString("<forum")
	writeAttribute(&b, "replyAccessMode", c.ReplyAccessMode)
	writeAttribute(&b, "postAccessMode", c.PostAccessMode)
	writeWebMediumAttributes(&b, &c.Envelope, &c.WebMediumFields)
	b.WriteString("</forum>")
	return b.String()
}

func (c *ForumConfig) ParseXML(element *Element) {
	parseWebMediumFields(element, &c.WebMediumFields)
	c.ReplyAccessMode = element.Attribute("replyAccessMode")
	c.PostAccessMode = element.Attribute("postAccessMode")
	c.Posts = element.Attribute("posts")
}
