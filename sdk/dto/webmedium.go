package dto

import "strings"

// WebMedium is the common shape shared by the browsable content types: bot
// instances, forums, channels, domains, avatars, scripts, and graphics.
//
// A concrete type fixes a type tag, used both as the XML element name and to
// select per-type server endpoints, and adds its own fields on top of the
// shared WebMediumFields.
type WebMedium interface {
	// TypeTag returns the fixed lowercase type tag ("instance", "forum",
	// "channel", "domain", "avatar", "script", "graphic").
	TypeTag() string
	// ToXML serializes the content to its request element.
	ToXML() string
	// ParseXML populates the content from a response element.
	ParseXML(element *Element)
	// Medium returns the shared content fields.
	Medium() *WebMediumFields
	// AddCredentials merges the connection's identity into the request.
	AddCredentials(src CredentialSource)
}

// WebMediumFields is the field set shared by all content types: identity,
// visibility and moderation flags, descriptive rich text, and read-only
// counters. Concrete types embed it by value.
type WebMediumFields struct {
	// ID is the instance id.
	ID string
	// Name is the instance name.
	Name string
	// IsAdmin is read-only: whether the connected user is the content's
	// admin.
	IsAdmin bool
	IsAdult bool
	// IsPrivate makes the content visible only to its creator and members.
	IsPrivate bool
	// IsHidden removes the content from the public directory.
	IsHidden bool
	// AccessMode is one of "Everyone", "Users", "Members", "Administrators".
	AccessMode string
	// IsFlagged reports the content was flagged, or flags it as offensive
	// (a reason is required).
	IsFlagged bool
	// FlaggedReason is why the content has been flagged.
	FlaggedReason string
	// Description is the optional description of the content.
	Description string
	// Details are optional restrictions or details of the content.
	Details string
	// Disclaimer is an optional warning or disclaimer.
	Disclaimer string
	// Tags classify the content (csv).
	Tags string
	// Categories categorize the content (csv).
	Categories string
	// Creator is read-only: the creator's user id.
	Creator string
	// CreationDate is read-only.
	CreationDate string
	// LastConnectedUser is read-only: the last user to access the content.
	LastConnectedUser string
	// License optionally licenses the content.
	License string
	// Avatar is the read-only server local URL of the content's image.
	Avatar string

	// Read-only connect counters.
	Connects        string
	DailyConnects   string
	WeeklyConnects  string
	MonthlyConnects string
}

// Medium returns the shared fields; promoted onto every concrete type.
func (f *WebMediumFields) Medium() *WebMediumFields {
	return f
}

// writeWebMediumAttributes emits the credentials envelope and the shared
// attributes, closes the start tag, and emits the shared rich text child
// elements. Boolean flags are emitted only when true.
func writeWebMediumAttributes(b *strings.Builder, env *Envelope, f *WebMediumFields) {
	env.writeCredentials(b)
	writeAttribute(b, "id", f.ID)
	writeAttribute(b, "name", f.Name)
	writeBoolAttribute(b, "isPrivate", f.IsPrivate)
	writeBoolAttribute(b, "isHidden", f.IsHidden)
	writeAttribute(b, "accessMode", f.AccessMode)
	writeBoolAttribute(b, "isAdult", f.IsAdult)
	writeBoolAttribute(b, "isFlagged", f.IsFlagged)
	b.WriteString(">")
	writeTextElement(b, "description", f.Description)
	writeTextElement(b, "details", f.Details)
	writeTextElement(b, "disclaimer", f.Disclaimer)
	writeTextElement(b, "categories", f.Categories)
	writeTextElement(b, "tags", f.Tags)
	writeTextElement(b, "license", f.License)
	writeTextElement(b, "flaggedReason", f.FlaggedReason)
}

// parseWebMediumFields reads the shared attributes and child elements.
func parseWebMediumFields(element *Element, f *WebMediumFields) {
	f.ID = element.Attribute("id")
	f.Name = element.Attribute("name")
	f.CreationDate = element.Attribute("creationDate")
	f.IsPrivate = element.BoolAttribute("isPrivate")
	f.IsHidden = element.BoolAttribute("isHidden")
	f.AccessMode = element.Attribute("accessMode")
	f.IsAdmin = element.BoolAttribute("isAdmin")
	f.IsAdult = element.BoolAttribute("isAdult")
	f.IsFlagged = element.BoolAttribute("isFlagged")
	f.Creator = element.Attribute("creator")
	f.Connects = element.Attribute("connects")
	f.DailyConnects = element.Attribute("dailyConnects")
	f.WeeklyConnects = element.Attribute("weeklyConnects")
	f.MonthlyConnects = element.Attribute("monthlyConnects")

	if v := element.ChildContent("description"); v != "" {
		f.Description = v
	}
	if v := element.ChildContent("details"); v != "" {
		f.Details = v
	}
	if v := element.ChildContent("disclaimer"); v != "" {
		f.Disclaimer = v
	}
	if v := element.ChildContent("categories"); v != "" {
		f.Categories = v
	}
	if v := element.ChildContent("tags"); v != "" {
		f.Tags = v
	}
	if v := element.ChildContent("flaggedReason"); v != "" {
		f.FlaggedReason = v
	}
	if v := element.ChildContent("lastConnectedUser"); v != "" {
		f.LastConnectedUser = v
	}
	if v := element.ChildContent("license"); v != "" {
		f.License = v
	}
	if v := element.ChildContent("avatar"); v != "" {
		f.Avatar = v
	}
}

// mediumFactories maps a lowercase type tag to its constructor. The generic
// fetch operation uses this table to instantiate the response type matching
// the request, instead of relying on runtime type introspection.
var mediumFactories = map[string]func() WebMedium{
	"instance": func() WebMedium { return &InstanceConfig{} },
	"forum":    func() WebMedium { return &ForumConfig{} },
	"channel":  func() WebMedium { return &ChannelConfig{} },
	"domain":   func() WebMedium { return &DomainConfig{} },
	"avatar":   func() WebMedium { return &AvatarConfig{} },
	"script":   func() WebMedium { return &ScriptConfig{} },
	"graphic":  func() WebMedium { return &GraphicConfig{} },
}

// browseTags maps the browse content type names to lowercase type tags.
var browseTags = map[string]string{
	"Bot":     "instance",
	"Forum":   "forum",
	"Channel": "channel",
	"Domain":  "domain",
	"Avatar":  "avatar",
	"Script":  "script",
	"Graphic": "graphic",
}

// NewWebMedium returns a fresh instance for the lowercase type tag, or false
// when the tag is unknown.
func NewWebMedium(tag string) (WebMedium, bool) {
	factory, ok := mediumFactories[tag]
	if !ok {
		return nil, false
	}
	return factory(), true
}

// NewWebMediumForBrowseType returns a fresh instance for a browse content
// type ("Bot", "Forum", ...), or false when the type is unknown.
func NewWebMediumForBrowseType(browseType string) (WebMedium, bool) {
	tag, ok := browseTags[browseType]
	if !ok {
		return nil, false
	}
	return NewWebMedium(tag)
}
