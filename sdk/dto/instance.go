package dto

import "strings"

// InstanceConfig defines the settings for a bot instance. It is used to
// create, edit, and reference a bot.
type InstanceConfig struct {
	Envelope
	WebMediumFields

	// Size is read-only: the current size of the bot's knowledge base.
	Size string
	// AllowForking sets if the bot can be forked.
	AllowForking bool
	// Template is the name or id of a bot to clone when creating a new bot.
	Template string
}

func (c *InstanceConfig) TypeTag() string {
	return "instance"
}

// Identity returns a copy carrying only the instance id, for requests that
// reference the bot without updating it.
func (c *InstanceConfig) Identity() *InstanceConfig {
	config := &InstanceConfig{}
	config.ID = c.ID
	return config
}

func (c *InstanceConfig) ToXML() string {
	var b strings.Builder
	b.WriteString("<instance")
	writeBoolAttribute(&b, "allowForking", c.AllowForking)
	writeWebMediumAttributes(&b, &c.Envelope, &c.WebMediumFields)
	// The template is a bot name or id, not rich text; emitted raw.
	if c.Template != "" {
		b.WriteString("<template>")
		b.WriteString(c.Template)
		b.WriteString("</template>")
	}
	b.WriteString("</instance>")
	return b.String()
}

func (c *InstanceConfig) ParseXML(element *Element) {
	parseWebMediumFields(element, &c.WebMediumFields)
	c.AllowForking = element.BoolAttribute("allowForking")
	c.Size = element.Attribute("size")
	if v := element.ChildContent("template"); v != "" {
		c.Template = v
	}
}
