package dto

import "strings"

// DomainConfig models a domain. A domain is an isolated content space to
// create bots and other content in, such as a company, project, or school.
type DomainConfig struct {
	Envelope
	WebMediumFields

	// CreationMode restricts who can create content in the domain.
	CreationMode string
}

func (c *DomainConfig) TypeTag() string {
	return "domain"
}

// Identity returns a copy carrying only the domain id.
func (c *DomainConfig) Identity() *DomainConfig {
	config := &DomainConfig{}
	config.ID = c.ID
	return config
}

func (c *DomainConfig) ToXML() string {
	var b strings.Builder
	b.WriteString("<domain")
	writeAttribute(&b, "creationMode", c.CreationMode)
	writeWebMediumAttributes(&b, &c.Envelope, &c.WebMediumFields)
	b.WriteString("</domain>")
	return b.String()
}

func (c *DomainConfig) ParseXML(element *Element) {
	parseWebMediumFields(element, &c.WebMediumFields)
	c.CreationMode = element.Attribute("creationMode")
}
