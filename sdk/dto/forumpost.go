package dto

import "strings"

// ForumPostConfig models a forum post. The forum id must be set as the Forum
// of the post; a post with a Parent (parent post id) is a reply.
type ForumPostConfig struct {
	Envelope

	ID string
	// Topic is the post topic (rich text).
	Topic string
	// Summary is read-only: a plain text summary of the details.
	Summary string
	// Details is the post body (rich text).
	Details string
	// DetailsText is read-only: the details stripped of HTML.
	DetailsText string
	// Forum is the id of the forum the post belongs to.
	Forum string
	Tags  string
	// IsAdmin is read-only: whether the connected user administers the post.
	IsAdmin       bool
	IsFlagged     bool
	FlaggedReason string
	// IsFeatured pins the post at the top of the forum.
	IsFeatured   bool
	Creator      string
	CreationDate string
	// Parent is the id of the post being replied to.
	Parent string
	Avatar string
	// Replies are the nested reply posts, in server order.
	Replies []*ForumPostConfig

	// Read-only view counters.
	Views        string
	DailyViews   string
	WeeklyViews  string
	MonthlyViews string
	ReplyCount   string
}

func (c *ForumPostConfig) ToXML() string {
	var b strings.Builder
	b.WriteString("<forum-post")
	c.writeCredentials(&b)
	writeAttribute(&b, "id", c.ID)
	writeAttribute(&b, "parent", c.Parent)
	writeAttribute(&b, "forum", c.Forum)
	writeBoolAttribute(&b, "isFeatured", c.IsFeatured)
	b.WriteString(">")
	writeTextElement(&b, "topic", c.Topic)
	writeTextElement(&b, "details", c.Details)
	writeTextElement(&b, "tags", c.Tags)
	b.WriteString("</forum-post>")
	return b.String()
}

func (c *ForumPostConfig) ParseXML(element *Element) {
	c.ID = element.Attribute("id")
	c.Parent = element.Attribute("parent")
	c.Forum = element.Attribute("forum")
	c.Views = element.Attribute("views")
	c.DailyViews = element.Attribute("dailyViews")
	c.WeeklyViews = element.Attribute("weeklyViews")
	c.MonthlyViews = element.Attribute("monthlyViews")
	c.IsAdmin = element.BoolAttribute("isAdmin")
	c.ReplyCount = element.Attribute("replyCount")
	c.IsFlagged = element.BoolAttribute("isFlagged")
	c.IsFeatured = element.BoolAttribute("isFeatured")
	c.Creator = element.Attribute("creator")
	c.CreationDate = element.Attribute("creationDate")

	if v := element.ChildContent("summary"); v != "" {
		c.Summary = v
	}
	if v := element.ChildContent("details"); v != "" {
		c.Details = v
	}
	if v := element.ChildContent("detailsText"); v != "" {
		c.DetailsText = v
	}
	if v := element.ChildContent("topic"); v != "" {
		c.Topic = v
	}
	if v := element.ChildContent("tags"); v != "" {
		c.Tags = v
	}
	if v := element.ChildContent("flaggedReason"); v != "" {
		c.FlaggedReason = v
	}
	if v := element.ChildContent("avatar"); v != "" {
		c.Avatar = v
	}
	for i := range element.Children {
		child := &element.Children[i]
		if child.Tag() != "replies" {
			continue
		}
		reply := &ForumPostConfig{}
		reply.ParseXML(child)
		c.Replies = append(c.Replies, reply)
	}
}
