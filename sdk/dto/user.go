package dto

import "strings"

// UserConfig models a user account. It is used to connect, create, edit, or
// browse a user instance.
type UserConfig struct {
	Envelope

	// Password is required to connect or create a user. It is write-only:
	// responses carry a token instead, and the password is never stored.
	Password string
	// NewPassword changes the user's password (Password holds the old one).
	NewPassword string
	// Hint is an optional password hint, in case the password is forgotten.
	Hint string
	// Name is the optional real name of the user.
	Name string
	// ShowName hides the real name from other users when false.
	ShowName bool
	// Email is required for message notification and password reset.
	Email string
	// Website is the user's optional website.
	Website string
	// Bio is the user's optional bio (rich text).
	Bio string
	Over18 bool
	// Avatar is the read-only server local URL for the user's avatar image.
	Avatar string

	// Read-only usage counters.
	Connects    string
	Bots        string
	Posts       string
	Messages    string
	Joined      string
	LastConnect string
}

// AddCredentials merges only the application and domain. A user request
// carries its own identity; the connection's user and token never overwrite
// it.
func (u *UserConfig) AddCredentials(src CredentialSource) {
	u.Application = src.ApplicationID()
	if id := src.DomainID(); id != "" {
		u.Domain = id
	}
}

// ParseXML populates the user from a response element.
func (u *UserConfig) ParseXML(element *Element) {
	u.User = element.Attribute("user")
	u.Name = element.Attribute("name")
	u.ShowName = element.BoolAttribute("showName")
	u.Token = element.Attribute("token")
	u.Email = element.Attribute("email")
	u.Hint = element.Attribute("hint")
	u.Website = element.Attribute("website")
	u.Connects = element.Attribute("connects")
	u.Bots = element.Attribute("bots")
	u.Posts = element.Attribute("posts")
	u.Messages = element.Attribute("messages")
	u.Joined = element.Attribute("joined")
	u.LastConnect = element.Attribute("lastConnect")

	if bio := element.ChildContent("bio"); bio != "" {
		u.Bio = bio
	}
	if avatar := element.ChildContent("avatar"); avatar != "" {
		u.Avatar = avatar
	}
}

// ToXML serializes the user to its request element.
func (u *UserConfig) ToXML() string {
	var b strings.Builder
	b.WriteString("<user")
	u.writeCredentials(&b)
	writeAttribute(&b, "password", u.Password)
	writeAttribute(&b, "newPassword", u.NewPassword)
	writeAttribute(&b, "hint", u.Hint)
	writeAttribute(&b, "name", u.Name)
	writeBoolAttribute(&b, "showName", u.ShowName)
	writeAttribute(&b, "email", u.Email)
	writeAttribute(&b, "website", u.Website)
	writeBoolAttribute(&b, "over18", u.Over18)
	b.WriteString(">")
	writeTextElement(&b, "bio", u.Bio)
	b.WriteString("</user>")
	return b.String()
}
