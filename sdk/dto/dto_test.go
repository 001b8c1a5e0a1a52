package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCredentials struct {
	app    string
	user   string
	token  string
	domain string
}

func (c *fakeCredentials) ApplicationID() string { return c.app }
func (c *fakeCredentials) UserID() string        { return c.user }
func (c *fakeCredentials) UserToken() string     { return c.token }
func (c *fakeCredentials) DomainID() string      { return c.domain }

func TestEscapeHTML(t *testing.T) {
	assert.Equal(t, "a &amp; b &lt;c&gt; &quot;d&quot; &#039;e&#039;", EscapeHTML(`a & b <c> "d" 'e'`))
	assert.Equal(t, "plain", EscapeHTML("plain"))
}

func TestUnescapeHTML(t *testing.T) {
	// Angle brackets are recovered only when a &lt; precedes a &gt;.
	assert.Equal(t, "<b>hi</b>", UnescapeHTML("&lt;b&gt;hi&lt;/b&gt;"))
	assert.Equal(t, "a &gt; b", UnescapeHTML("a &gt; b"))
	assert.Equal(t, "a &gt; b &lt; c", UnescapeHTML("a &gt; b &lt; c"))
	// Ampersands are always recovered.
	assert.Equal(t, "a & b", UnescapeHTML("a &amp; b"))
}

func TestAddCredentials(t *testing.T) {
	src := &fakeCredentials{app: "1234", user: "alice", token: "9999", domain: "5678"}
	config := &ChatConfig{}
	config.AddCredentials(src)
	assert.Equal(t, "1234", config.Application)
	assert.Equal(t, "alice", config.User)
	assert.Equal(t, "9999", config.Token)
	assert.Equal(t, "5678", config.Domain)
}

func TestAddCredentialsAnonymous(t *testing.T) {
	src := &fakeCredentials{app: "1234"}
	config := &ChatConfig{}
	config.User = "preset"
	config.AddCredentials(src)
	assert.Equal(t, "1234", config.Application)
	// An unconnected source must not clear a caller-set user.
	assert.Equal(t, "preset", config.User)
	assert.Empty(t, config.Token)
	assert.Empty(t, config.Domain)
}

func TestUserConfigCredentials(t *testing.T) {
	src := &fakeCredentials{app: "1234", user: "alice", token: "9999"}
	user := &UserConfig{}
	user.User = "bob"
	user.Password = "secret"
	user.AddCredentials(src)
	// A user request carries its own identity.
	assert.Equal(t, "bob", user.User)
	assert.Empty(t, user.Token)
	assert.Equal(t, "1234", user.Application)
}

func TestChatConfigToXML(t *testing.T) {
	config := NewChatConfig()
	config.Application = "1234"
	config.Instance = "165"
	config.Conversation = "42"
	config.Message = "Hello <world> & co"
	xml := config.ToXML()
	assert.Equal(t,
		`<chat instance="165" application="1234" conversation="42" secure="true"><message>Hello &lt;world&gt; &amp; co</message></chat>`,
		xml)
}

func TestChatConfigTriState(t *testing.T) {
	config := &ChatConfig{}
	xml := config.ToXML()
	assert.NotContains(t, xml, "learn=")
	assert.NotContains(t, xml, "secure=")

	off := false
	config.Learn = &off
	assert.Contains(t, config.ToXML(), `learn="false"`)
}

func TestChatResponseParseXML(t *testing.T) {
	data := `<response conversation="42" avatar="avatars/1.png" emote="HAPPY" action="smile">` +
		`<message>Hi &lt;b&gt;there&lt;/b&gt;</message><log>matched greeting</log></response>`
	element, err := ParseElement([]byte(data))
	require.NoError(t, err)

	response := &ChatResponse{}
	response.ParseXML(element)
	assert.Equal(t, "42", response.Conversation)
	assert.Equal(t, "avatars/1.png", response.Avatar)
	assert.Equal(t, "HAPPY", response.Emote)
	assert.Equal(t, "smile", response.Action)
	assert.Equal(t, "Hi <b>there</b>", response.Message)
	assert.Equal(t, "matched greeting", response.Log)
}

func TestUserConfigParseXML(t *testing.T) {
	data := `<user user="alice" token="9999" email="a@example.com" showName="true" connects="7">` +
		`<bio>Likes &amp; dislikes</bio><avatar>avatars/a.png</avatar></user>`
	element, err := ParseElement([]byte(data))
	require.NoError(t, err)

	user := &UserConfig{}
	user.ParseXML(element)
	assert.Equal(t, "alice", user.User)
	assert.Equal(t, "9999", user.Token)
	assert.Equal(t, "a@example.com", user.Email)
	assert.True(t, user.ShowName)
	assert.Equal(t, "7", user.Connects)
	assert.Equal(t, "Likes & dislikes", user.Bio)
	assert.Equal(t, "avatars/a.png", user.Avatar)
}

func TestInstanceConfigToXML(t *testing.T) {
	instance := &InstanceConfig{}
	instance.Application = "1234"
	instance.Name = "Helper"
	instance.IsPrivate = true
	instance.Description = "A <helpful> bot"
	instance.Template = "julie"
	xml := instance.ToXML()
	assert.Equal(t,
		`<instance application="1234" name="Helper" isPrivate="true">`+
			`<description>A &lt;helpful&gt; bot</description><template>julie</template></instance>`,
		xml)
}

func TestInstanceConfigParseXML(t *testing.T) {
	data := `<instance id="165" name="Helper" creationDate="2015-01-01" isAdmin="true" ` +
		`connects="100" size="5000" allowForking="true">` +
		`<description>A bot</description></instance>`
	element, err := ParseElement([]byte(data))
	require.NoError(t, err)

	instance := &InstanceConfig{}
	instance.ParseXML(element)
	assert.Equal(t, "165", instance.ID)
	assert.Equal(t, "Helper", instance.Name)
	assert.True(t, instance.IsAdmin)
	assert.True(t, instance.AllowForking)
	assert.Equal(t, "5000", instance.Size)
	assert.Equal(t, "A bot", instance.Description)
}

func TestMediumFactories(t *testing.T) {
	for _, tag := range []string{"instance", "forum", "channel", "domain", "avatar", "script", "graphic"} {
		medium, ok := NewWebMedium(tag)
		require.True(t, ok, tag)
		assert.Equal(t, tag, medium.TypeTag())
	}
	_, ok := NewWebMedium("nope")
	assert.False(t, ok)

	medium, ok := NewWebMediumForBrowseType("Bot")
	require.True(t, ok)
	assert.Equal(t, "instance", medium.TypeTag())
}

func TestForumPostParseReplies(t *testing.T) {
	data := `<forum-post id="1" forum="10" views="3" replyCount="2">` +
		`<topic>Welcome</topic><details>First post</details>` +
		`<replies id="2"><topic>Re: Welcome</topic></replies>` +
		`<replies id="3"><topic>Also welcome</topic></replies></forum-post>`
	element, err := ParseElement([]byte(data))
	require.NoError(t, err)

	post := &ForumPostConfig{}
	post.ParseXML(element)
	assert.Equal(t, "1", post.ID)
	assert.Equal(t, "10", post.Forum)
	assert.Equal(t, "Welcome", post.Topic)
	assert.Equal(t, "First post", post.Details)
	require.Len(t, post.Replies, 2)
	assert.Equal(t, "2", post.Replies[0].ID)
	assert.Equal(t, "Also welcome", post.Replies[1].Topic)
}

func TestForumPostToXML(t *testing.T) {
	post := &ForumPostConfig{}
	post.Application = "1234"
	post.Forum = "10"
	post.Topic = "Hello"
	post.Details = "<p>body</p>"
	xml := post.ToXML()
	assert.Equal(t,
		`<forum-post application="1234" forum="10"><topic>Hello</topic>`+
			`<details>&lt;p&gt;body&lt;/p&gt;</details></forum-post>`,
		xml)
}

func TestTrainingConfigToXML(t *testing.T) {
	training := &TrainingConfig{}
	training.Application = "1234"
	training.Operation = "AddGreeting"
	training.Response = "Hi there"
	assert.Equal(t,
		`<training application="1234" operation="AddGreeting"><response>Hi there</response></training>`,
		training.ToXML())
}

func TestBrowseConfigToXML(t *testing.T) {
	browse := &BrowseConfig{}
	browse.Application = "1234"
	browse.Type = "Bot"
	browse.Filter = "help"
	browse.Sort = "connects"
	assert.Equal(t,
		`<browse type="Bot" application="1234" sort="connects" filter="help"/>`,
		browse.ToXML())
}

func TestChatSettingsParseXML(t *testing.T) {
	element, err := ParseElement([]byte(
		`<chat-settings allowEmotes="true" allowCorrection="false" allowLearning="true" learning="true"/>`))
	require.NoError(t, err)

	settings := &ChatSettings{}
	settings.ParseXML(element)
	assert.True(t, settings.AllowEmotes)
	assert.False(t, settings.AllowCorrection)
	assert.True(t, settings.AllowLearning)
	assert.True(t, settings.Learning)
}

func TestMediaConfigXML(t *testing.T) {
	media := &MediaConfig{}
	media.Application = "1234"
	media.Instance = "42"
	media.Type = "image/jpeg"
	media.Name = "photo.jpg"
	media.File = "photo.jpg"
	media.Key = "abc"
	assert.Equal(t, `<media type="image/jpeg" instance="42" application="1234" name="photo.jpg" file="photo.jpg" key="abc"/>`, media.ToXML())

	element, err := ParseElement([]byte(`<media id="9" name="photo.jpg" type="image/jpeg" file="photo.jpg" key="abc"/>`))
	require.NoError(t, err)
	parsed := &MediaConfig{}
	parsed.ParseXML(element)
	assert.Equal(t, "9", parsed.ID)
	assert.Equal(t, "image/jpeg", parsed.Type)
}
