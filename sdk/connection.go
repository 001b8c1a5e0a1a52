package sdk

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/subharanjan2019/BotLibre/sdk/dto"
)

// ErrFileTooLarge is returned when an attachment exceeds MaxFileUpload and is
// not being resized.
var ErrFileTooLarge = errors.New("file exceeds maximum upload size")

// browseEndpoints maps a browse content type to its server endpoint. An
// unknown type resolves to an empty suffix and is posted to the REST root
// unchanged, matching the server's lenient routing.
var browseEndpoints = map[string]string{
	"Bot":     "/get-instances",
	"Forum":   "/get-forums",
	"Channel": "/get-channels",
	"Domain":  "/get-domains",
	"Graphic": "/get-graphics",
	"Avatar":  "/get-avatars",
	"Script":  "/get-scripts",
}

// SDKConnection is a session with the server's REST API. It holds the
// connected user and domain, which are merged into every request's
// credentials. A connection does not hold a network connection; Disconnect
// only resets the bound user and domain.
//
// Methods are blocking one-shot calls. The connection state is mutated only
// by Connect, SwitchDomain, CreateUser, and Disconnect; callers issuing
// concurrent operations on one connection own the interleaving.
type SDKConnection struct {
	Credentials *Credentials
	// Debug logs every request and its XML.
	Debug bool
	// Error is notified of every web request failure, in addition to the
	// returned error. The default logs.
	Error func(message string)

	client *http.Client
	users  *cache.Cache
	user   *dto.UserConfig
	domain *dto.DomainConfig
}

// NewSDKConnection returns a connection for the server credentials.
func NewSDKConnection(credentials *Credentials) *SDKConnection {
	return &SDKConnection{
		Credentials: credentials,
		Error: func(message string) {
			log.Printf("sdk error: %s", message)
		},
		client: &http.Client{},
		users:  cache.New(5*time.Minute, 10*time.Minute),
	}
}

// ApplicationID implements dto.CredentialSource.
func (c *SDKConnection) ApplicationID() string {
	return c.Credentials.ApplicationID
}

// UserID implements dto.CredentialSource.
func (c *SDKConnection) UserID() string {
	if c.user == nil {
		return ""
	}
	return c.user.User
}

// UserToken implements dto.CredentialSource.
func (c *SDKConnection) UserToken() string {
	if c.user == nil {
		return ""
	}
	return c.user.Token
}

// DomainID implements dto.CredentialSource.
func (c *SDKConnection) DomainID() string {
	if c.domain == nil {
		return ""
	}
	return c.domain.ID
}

// User returns the connected user, or nil.
func (c *SDKConnection) User() *dto.UserConfig {
	return c.user
}

// Domain returns the connected domain, or nil.
func (c *SDKConnection) Domain() *dto.DomainConfig {
	return c.domain
}

// Connect validates the user credentials (password, or token) and binds the
// user to the connection. The user details are returned with a connection
// token, password removed; the token is used on subsequent calls.
func (c *SDKConnection) Connect(ctx context.Context, config *dto.UserConfig) (*dto.UserConfig, error) {
	user, err := c.FetchUser(ctx, config)
	if err != nil {
		return nil, err
	}
	c.user = user
	return user, nil
}

// Disconnect resets the connected user and domain.
func (c *SDKConnection) Disconnect() {
	c.user = nil
	c.domain = nil
}

// SwitchDomain connects to the domain. A domain is an isolated content
// space; any browse or query request becomes specific to its content.
func (c *SDKConnection) SwitchDomain(ctx context.Context, config *dto.DomainConfig) (*dto.DomainConfig, error) {
	medium, err := c.Fetch(ctx, config)
	if err != nil {
		return nil, err
	}
	domain, ok := medium.(*dto.DomainConfig)
	if !ok {
		return nil, fmt.Errorf("%w: expected a domain", ErrRequestFailed)
	}
	c.domain = domain
	return domain, nil
}

// FetchUser fetches the user details for the user credentials. A token or
// password is required to validate the user.
func (c *SDKConnection) FetchUser(ctx context.Context, config *dto.UserConfig) (*dto.UserConfig, error) {
	config.AddCredentials(c)
	element, err := c.post(ctx, c.Credentials.Rest()+"/check-user", config.ToXML())
	if err != nil || element == nil {
		return nil, err
	}
	user := &dto.UserConfig{}
	user.ParseXML(element)
	return user, nil
}

// CreateUser creates a new user and binds it to the connection.
func (c *SDKConnection) CreateUser(ctx context.Context, config *dto.UserConfig) (*dto.UserConfig, error) {
	config.AddCredentials(c)
	element, err := c.post(ctx, c.Credentials.Rest()+"/create-user", config.ToXML())
	if err != nil || element == nil {
		return nil, err
	}
	user := &dto.UserConfig{}
	user.ParseXML(element)
	c.user = user
	return user, nil
}

// UpdateUser updates the user details. The password must be passed to allow
// the update.
func (c *SDKConnection) UpdateUser(ctx context.Context, config *dto.UserConfig) error {
	config.AddCredentials(c)
	_, err := c.post(ctx, c.Credentials.Rest()+"/update-user", config.ToXML())
	return err
}

// FlagUser flags the user as offensive, a reason is required.
func (c *SDKConnection) FlagUser(ctx context.Context, config *dto.UserConfig) error {
	config.AddCredentials(c)
	_, err := c.post(ctx, c.Credentials.Rest()+"/flag-user", config.ToXML())
	return err
}

// Fetch fetches the content details from the server. The id or name and
// domain of the content must be set.
func (c *SDKConnection) Fetch(ctx context.Context, config dto.WebMedium) (dto.WebMedium, error) {
	config.AddCredentials(c)
	element, err := c.post(ctx, c.Credentials.Rest()+"/check-"+config.TypeTag(), config.ToXML())
	if err != nil || element == nil {
		return nil, err
	}
	result, ok := dto.NewWebMedium(config.TypeTag())
	if !ok {
		// Not a built-in type; parse back into the request config.
		config.ParseXML(element)
		return config, nil
	}
	result.ParseXML(element)
	return result, nil
}

// Flag flags the content as offensive, a reason is required.
func (c *SDKConnection) Flag(ctx context.Context, config dto.WebMedium) error {
	config.AddCredentials(c)
	_, err := c.post(ctx, c.Credentials.Rest()+"/flag-"+config.TypeTag(), config.ToXML())
	return err
}

// Browse returns the list of content for the browse criteria. The config's
// Type selects the content type (Bot, Forum, Channel, Domain, Avatar,
// Script, Graphic).
func (c *SDKConnection) Browse(ctx context.Context, config *dto.BrowseConfig) ([]dto.WebMedium, error) {
	config.AddCredentials(c)
	element, err := c.post(ctx, c.Credentials.Rest()+browseEndpoints[config.Type], config.ToXML())
	if err != nil || element == nil {
		return nil, err
	}
	var instances []dto.WebMedium
	for i := range element.Children {
		instance, ok := dto.NewWebMediumForBrowseType(config.Type)
		if !ok {
			continue
		}
		instance.ParseXML(&element.Children[i])
		instances = append(instances, instance)
	}
	return instances, nil
}

// Chat processes the bot chat message and returns the bot's response. The
// config should contain the conversation id if part of a conversation; for a
// new conversation the id is returned in the response.
func (c *SDKConnection) Chat(ctx context.Context, config *dto.ChatConfig) (*dto.ChatResponse, error) {
	config.AddCredentials(c)
	element, err := c.post(ctx, c.Credentials.Rest()+"/post-chat", config.ToXML())
	if err != nil || element == nil {
		return nil, err
	}
	response := &dto.ChatResponse{}
	response.ParseXML(element)
	return response, nil
}

// AvatarMessage processes the avatar message and returns the avatar's
// response, without a bot conversation.
func (c *SDKConnection) AvatarMessage(ctx context.Context, config *dto.AvatarMessage) (*dto.ChatResponse, error) {
	config.AddCredentials(c)
	element, err := c.post(ctx, c.Credentials.Rest()+"/avatar-message", config.ToXML())
	if err != nil || element == nil {
		return nil, err
	}
	response := &dto.ChatResponse{}
	response.ParseXML(element)
	return response, nil
}

// InitAvatar initializes the bot's avatar for a chat session. This can be
// done before processing the first message for a quick response.
func (c *SDKConnection) InitAvatar(ctx context.Context, config *dto.ChatConfig) (*dto.ChatResponse, error) {
	config.AddCredentials(c)
	element, err := c.post(ctx, c.Credentials.Rest()+"/init-avatar", config.ToXML())
	if err != nil || element == nil {
		return nil, err
	}
	response := &dto.ChatResponse{}
	response.ParseXML(element)
	return response, nil
}

// ChatSettings returns the conversation's chat settings.
func (c *SDKConnection) ChatSettings(ctx context.Context, config *dto.ChatSettings) (*dto.ChatSettings, error) {
	config.AddCredentials(c)
	element, err := c.post(ctx, c.Credentials.Rest()+"/chat-settings", config.ToXML())
	if err != nil || element == nil {
		return nil, err
	}
	settings := &dto.ChatSettings{}
	settings.ParseXML(element)
	return settings, nil
}

// TrainInstance adds a new response, greeting, or default response to the
// bot.
func (c *SDKConnection) TrainInstance(ctx context.Context, config *dto.TrainingConfig) error {
	config.AddCredentials(c)
	_, err := c.post(ctx, c.Credentials.Rest()+"/train-instance", config.ToXML())
	return err
}

// FetchVoice returns the bot's voice configuration.
func (c *SDKConnection) FetchVoice(ctx context.Context, config *dto.InstanceConfig) (*dto.VoiceConfig, error) {
	config.AddCredentials(c)
	element, err := c.post(ctx, c.Credentials.Rest()+"/get-voice", config.ToXML())
	if err != nil || element == nil {
		return nil, err
	}
	voice := &dto.VoiceConfig{}
	voice.ParseXML(element)
	return voice, nil
}

// FetchForumPost fetches the forum post details for the forum post id.
func (c *SDKConnection) FetchForumPost(ctx context.Context, config *dto.ForumPostConfig) (*dto.ForumPostConfig, error) {
	config.AddCredentials(c)
	return c.forumPost(ctx, "/check-forum-post", config)
}

// CreateForumPost creates a new forum post. The forum id must be set on the
// post.
func (c *SDKConnection) CreateForumPost(ctx context.Context, config *dto.ForumPostConfig) (*dto.ForumPostConfig, error) {
	config.AddCredentials(c)
	return c.forumPost(ctx, "/create-forum-post", config)
}

// CreateReply creates a reply to a forum post. The parent id must be set to
// the post being replied to.
func (c *SDKConnection) CreateReply(ctx context.Context, config *dto.ForumPostConfig) (*dto.ForumPostConfig, error) {
	config.AddCredentials(c)
	return c.forumPost(ctx, "/create-reply", config)
}

// UpdateForumPost updates the forum post.
func (c *SDKConnection) UpdateForumPost(ctx context.Context, config *dto.ForumPostConfig) (*dto.ForumPostConfig, error) {
	config.AddCredentials(c)
	return c.forumPost(ctx, "/update-forum-post", config)
}

// DeleteForumPost permanently deletes the forum post with the id.
func (c *SDKConnection) DeleteForumPost(ctx context.Context, config *dto.ForumPostConfig) error {
	config.AddCredentials(c)
	_, err := c.post(ctx, c.Credentials.Rest()+"/delete-forum-post", config.ToXML())
	return err
}

// FlagForumPost flags the forum post as offensive, a reason is required.
func (c *SDKConnection) FlagForumPost(ctx context.Context, config *dto.ForumPostConfig) error {
	config.AddCredentials(c)
	_, err := c.post(ctx, c.Credentials.Rest()+"/flag-forum-post", config.ToXML())
	return err
}

func (c *SDKConnection) forumPost(ctx context.Context, endpoint string, config *dto.ForumPostConfig) (*dto.ForumPostConfig, error) {
	element, err := c.post(ctx, c.Credentials.Rest()+endpoint, config.ToXML())
	if err != nil || element == nil {
		return nil, err
	}
	post := &dto.ForumPostConfig{}
	post.ParseXML(element)
	return post, nil
}

// FetchPosts returns the list of forum posts for the forum browse criteria.
func (c *SDKConnection) FetchPosts(ctx context.Context, config *dto.BrowseConfig) ([]*dto.ForumPostConfig, error) {
	config.AddCredentials(c)
	element, err := c.post(ctx, c.Credentials.Rest()+"/get-forum-posts", config.ToXML())
	if err != nil || element == nil {
		return nil, err
	}
	var posts []*dto.ForumPostConfig
	for i := range element.Children {
		post := &dto.ForumPostConfig{}
		post.ParseXML(&element.Children[i])
		posts = append(posts, post)
	}
	return posts, nil
}

// FetchCategories returns the list of categories for the config's type and
// domain.
func (c *SDKConnection) FetchCategories(ctx context.Context, config *dto.ContentConfig) ([]string, error) {
	return c.fetchNames(ctx, "/get-categories", config)
}

// FetchTags returns the list of tags for the config's type and domain.
func (c *SDKConnection) FetchTags(ctx context.Context, config *dto.ContentConfig) ([]string, error) {
	return c.fetchNames(ctx, "/get-tags", config)
}

func (c *SDKConnection) fetchNames(ctx context.Context, endpoint string, config *dto.ContentConfig) ([]string, error) {
	config.AddCredentials(c)
	element, err := c.post(ctx, c.Credentials.Rest()+endpoint, config.ToXML())
	if err != nil || element == nil {
		return nil, err
	}
	var names []string
	for i := range element.Children {
		names = append(names, element.Children[i].Attribute("name"))
	}
	return names, nil
}

// FetchUsers returns the user ids for the content, such as a channel's
// members.
func (c *SDKConnection) FetchUsers(ctx context.Context, config dto.WebMedium) ([]string, error) {
	config.AddCredentials(c)
	element, err := c.post(ctx, c.Credentials.Rest()+"/get-"+config.TypeTag()+"-users", config.ToXML())
	if err != nil || element == nil {
		return nil, err
	}
	var users []string
	for i := range element.Children {
		user := &dto.UserConfig{}
		user.ParseXML(&element.Children[i])
		users = append(users, user.User)
	}
	return users, nil
}

// FetchAllUsers returns the user details for the comma separated list of
// user ids. Results are cached; the live chat roster re-resolves users on
// every Online update.
func (c *SDKConnection) FetchAllUsers(ctx context.Context, usersCSV string) ([]*dto.UserConfig, error) {
	if cached, ok := c.users.Get(usersCSV); ok {
		return cached.([]*dto.UserConfig), nil
	}
	config := &dto.UserConfig{}
	config.User = usersCSV
	config.AddCredentials(c)
	element, err := c.post(ctx, c.Credentials.Rest()+"/get-users", config.ToXML())
	if err != nil || element == nil {
		return nil, err
	}
	var users []*dto.UserConfig
	for i := range element.Children {
		user := &dto.UserConfig{}
		user.ParseXML(&element.Children[i])
		users = append(users, user)
	}
	c.users.Set(usersCSV, users, cache.DefaultExpiration)
	return users, nil
}

// CreateChannelAttachment creates a new file, image, or media attachment for
// a chat channel. Images are downscaled client-side when resizeImage is set.
func (c *SDKConnection) CreateChannelAttachment(ctx context.Context, config *dto.MediaConfig, filename string, content []byte, resizeImage bool) (*dto.MediaConfig, error) {
	return c.createAttachment(ctx, "/create-channel-attachment", config, filename, content, resizeImage)
}

// CreateForumAttachment creates a new file, image, or media attachment for a
// forum.
func (c *SDKConnection) CreateForumAttachment(ctx context.Context, config *dto.MediaConfig, filename string, content []byte, resizeImage bool) (*dto.MediaConfig, error) {
	return c.createAttachment(ctx, "/create-forum-attachment", config, filename, content, resizeImage)
}

func (c *SDKConnection) createAttachment(ctx context.Context, endpoint string, config *dto.MediaConfig, filename string, content []byte, resizeImage bool) (*dto.MediaConfig, error) {
	config.AddCredentials(c)
	var element *dto.Element
	var err error
	if resizeImage {
		element, err = c.postImage(ctx, c.Credentials.Rest()+endpoint, filename, content, config.ToXML())
	} else {
		element, err = c.postFile(ctx, c.Credentials.Rest()+endpoint, filename, content, config.ToXML())
	}
	if err != nil || element == nil {
		return nil, err
	}
	media := &dto.MediaConfig{}
	media.ParseXML(element)
	return media, nil
}

// UploadForumFile uploads a file attachment to a forum and returns the http
// link to the hosted file. Files over MaxFileUpload are rejected unless they
// are images being resized.
func (c *SDKConnection) UploadForumFile(ctx context.Context, forumID, filename, mimeType string, content []byte, resizeImage bool) (string, error) {
	if !resizeImage && len(content) > MaxFileUpload {
		message := fmt.Sprintf("file exceeds maximum upload size of %dmeg", MaxFileUpload/1000000)
		if c.Error != nil {
			c.Error(message)
		}
		return "", fmt.Errorf("%w: %d bytes", ErrFileTooLarge, len(content))
	}
	media := &dto.MediaConfig{}
	media.Instance = forumID
	media.Name = filename
	media.Type = mimeType
	result, err := c.CreateForumAttachment(ctx, media, filename, content, resizeImage)
	if err != nil {
		return "", err
	}
	return c.FetchLink(result.File), nil
}

// FetchImage returns the full URL for a server relative image path.
func (c *SDKConnection) FetchImage(image string) string {
	return c.Credentials.URL() + "/" + image
}

// FetchLink returns the full URL for a server relative file path.
func (c *SDKConnection) FetchLink(file string) string {
	return c.Credentials.URL() + "/" + file
}

// OpenLiveChat connects to the live chat channel and returns a
// LiveChatConnection. A LiveChatConnection is separate from an SDKConnection
// and uses a WebSocket for asynchronous communication; the listener is
// notified of all messages.
func (c *SDKConnection) OpenLiveChat(ctx context.Context, channel *dto.ChannelConfig, listener LiveChatListener) (*LiveChatConnection, error) {
	connection := NewLiveChatConnection(c, listener)
	if err := connection.Connect(ctx, channel, c.user); err != nil {
		return nil, err
	}
	return connection, nil
}
