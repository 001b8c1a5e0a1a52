// Package sdk provides a client for the BotLibre web API: a REST connection
// for bots, forums, users, and content, and a WebSocket connection for live
// chat channels.
package sdk

// Credentials define the connection endpoint for a server. The host, app, and
// rest path are all defaulted by the preset constructors and should not need
// to be changed. An application id is required, and is obtained from the user
// details page on the hosting website.
type Credentials struct {
	// Host is the server host name.
	Host string
	// App is the application path prefix on the host, normally empty.
	App string
	// Path is the REST API path on the host.
	Path string
	// ApplicationID authenticates API usage.
	ApplicationID string
	// Scheme is "https" or "http".
	Scheme string
}

// URL returns the base server URL.
func (c *Credentials) URL() string {
	scheme := c.Scheme
	if scheme == "" {
		scheme = "https"
	}
	return scheme + "://" + c.Host + c.App
}

// Rest returns the base REST API URL.
func (c *Credentials) Rest() string {
	return c.URL() + c.Path
}

// SocketURL returns the live chat WebSocket URL, wss when the scheme is
// https.
func (c *Credentials) SocketURL() string {
	scheme := "ws"
	if c.Scheme == "https" || c.Scheme == "" {
		scheme = "wss"
	}
	return scheme + "://" + c.Host + c.App + "/live/chat"
}

// NewBotLibreCredentials returns credentials for the hosted services on the
// BOT libre website, a free bot hosting service.
func NewBotLibreCredentials(applicationID string) *Credentials {
	return &Credentials{
		Host:          "www.botlibre.com",
		Path:          "/rest/api",
		ApplicationID: applicationID,
		Scheme:        "https",
	}
}

// NewPaphusCredentials returns credentials for the hosted services on the
// Paphus Live Chat website, a commercial live chat, chatroom, forum, and chat
// bot hosting service.
func NewPaphusCredentials(applicationID string) *Credentials {
	return &Credentials{
		Host:          "www.paphuslivechat.com",
		Path:          "/rest/livechat",
		ApplicationID: applicationID,
		Scheme:        "https",
	}
}

// NewLiveChatLibreCredentials returns credentials for the hosted services on
// the LIVE CHAT libre website.
func NewLiveChatLibreCredentials(applicationID string) *Credentials {
	return &Credentials{
		Host:          "www.livechatlibre.com",
		Path:          "/rest/livechatlibre",
		ApplicationID: applicationID,
		Scheme:        "https",
	}
}

// NewForumsLibreCredentials returns credentials for the hosted services on
// the FORUMS libre website, a free embeddable forum hosting service.
func NewForumsLibreCredentials(applicationID string) *Credentials {
	return &Credentials{
		Host:          "www.forumslibre.com",
		Path:          "/rest/forumslibre",
		ApplicationID: applicationID,
		Scheme:        "https",
	}
}
