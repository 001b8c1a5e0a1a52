package dto

import "strings"

// AvatarConfig models an avatar. An avatar represents a bot's visual image,
// but can also be used independently with TTS.
type AvatarConfig struct {
	Envelope
	WebMediumFields
}

func (c *AvatarConfig) TypeTag() string {
	return "avatar"
}

// Identity returns a copy carrying only the avatar id.
func (c *AvatarConfig) Identity() *AvatarConfig {
	config := &AvatarConfig{}
	config.ID = c.ID
	return config
}

func (c *AvatarConfig) ToXML() string {
	var b strings.Builder
	b.WriteString("<avatar")
	writeWebMediumAttributes(&b, &c.Envelope, &c.WebMediumFields)
	b.WriteString("</avatar>")
	return b.String()
}

func (c *AvatarConfig) ParseXML(element *Element) {
	parseWebMediumFields(element, &c.WebMediumFields)
}

// ScriptConfig models a script from the script library.
type ScriptConfig struct {
	Envelope
	WebMediumFields
}

func (c *ScriptConfig) TypeTag() string {
	return "script"
}

// Identity returns a copy carrying only the script id.
func (c *ScriptConfig) Identity() *ScriptConfig {
	config := &ScriptConfig{}
	config.ID = c.ID
	return config
}

func (c *ScriptConfig) ToXML() string {
	var b strings.Builder
	b.WriteString("<script")
	writeWebMediumAttributes(&b, &c.Envelope, &c.WebMediumFields)
	b.WriteString("</script>")
	return b.String()
}

func (c *ScriptConfig) ParseXML(element *Element) {
	parseWebMediumFields(element, &c.WebMediumFields)
}

// GraphicConfig models a graphic from the graphics library.
type GraphicConfig struct {
	Envelope
	WebMediumFields

	// Media is the server relative path to the graphic's media file.
	Media string
}

func (c *GraphicConfig) TypeTag() string {
	return "graphic"
}

// Identity returns a copy carrying only the graphic id.
func (c *GraphicConfig) Identity() *GraphicConfig {
	config := &GraphicConfig{}
	config.ID = c.ID
	return config
}

func (c *GraphicConfig) ToXML() string {
	var b strings.Builder
	b.WriteString("<graphic")
	writeWebMediumAttributes(&b, &c.Envelope, &c.WebMediumFields)
	b.WriteString("</graphic>")
	return b.String()
}

func (c *GraphicConfig) ParseXML(element *Element) {
	parseWebMediumFields(element, &c.WebMediumFields)
	if v := element.ChildContent("media"); v != "" {
		c.Media = v
	}
}
