// Package dto defines the request and response value objects for the web API,
// and their mapping to the XML wire format.
//
// Every request object embeds the common credentials Envelope, which is the
// sole authentication mechanism. Serialization emits scalar fields as
// attributes and rich text fields as HTML-escaped child elements; parsing is
// the reverse, and never fails on missing data.
package dto

import "strings"

// CredentialSource supplies the connection identity merged into every
// outgoing request. A connection implements this; request objects call
// AddCredentials before serialization.
type CredentialSource interface {
	// ApplicationID returns the API application id.
	ApplicationID() string
	// UserID returns the connected user's id, or "" when not connected.
	UserID() string
	// UserToken returns the connected user's access token, or "".
	UserToken() string
	// DomainID returns the connected domain's id, or "".
	DomainID() string
}

// Envelope is the common authentication and addressing attribute set merged
// into every web API request.
type Envelope struct {
	// Application is the application id. It is required to authenticate API
	// usage, and is obtained from the user's account page.
	Application string
	// Domain is the optional domain id, when the object is not on the
	// server's default domain.
	Domain string
	// User is the user id, required for content creation, secure content
	// access, or to identify the user.
	User string
	// Token is the user's access token, returned from the connect API. It is
	// used in place of the password on subsequent calls; the password itself
	// is never stored.
	Token string
	// Instance is the id or name of the bot or content instance to access.
	Instance string
	// Type is the instance type to access ("Bot", "Forum", "Channel",
	// "Domain").
	Type string
}

// AddCredentials merges the connection's identity into the envelope. This
// must be called before serialization; a request without credentials is
// unauthenticated.
func (e *Envelope) AddCredentials(src CredentialSource) {
	e.Application = src.ApplicationID()
	if id := src.UserID(); id != "" {
		e.User = id
		e.Token = src.UserToken()
	}
	if id := src.DomainID(); id != "" {
		e.Domain = id
	}
}

// writeCredentials emits the envelope attributes. The attribute order (user,
// token, type, instance, application, domain) matches the server's existing
// clients.
func (e *Envelope) writeCredentials(b *strings.Builder) {
	writeAttribute(b, "user", e.User)
	writeAttribute(b, "token", e.Token)
	writeAttribute(b, "type", e.Type)
	writeAttribute(b, "instance", e.Instance)
	writeAttribute(b, "application", e.Application)
	writeAttribute(b, "domain", e.Domain)
}
