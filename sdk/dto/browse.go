package dto

import "strings"

// BrowseConfig models the web API browse operation. It is not a persisted
// entity, purely a query shape used to search a set of instances (bots,
// forums, channels, and the other content types).
//
// The Envelope's Type selects the content type being browsed ("Bot",
// "Forum", "Channel", "Domain", "Avatar", "Script", "Graphic").
type BrowseConfig struct {
	Envelope

	// TypeFilter filters instances by access type: "Public", "Private",
	// "Personal".
	TypeFilter string
	// Category filters instances by categories (csv).
	Category string
	// Tag filters instances by tags (csv).
	Tag string
	// Filter filters instances by name.
	Filter string
	// Sort is one of "name", "date", "size", "stars", "thumbs up",
	// "thumbs down", "last connect", "connects", "connects today",
	// "connects this week", "connects this month".
	Sort string
}

func (c *BrowseConfig) ToXML() string {
	var b strings.Builder
	b.WriteString("<browse")
	c.writeCredentials(&b)
	writeAttribute(&b, "typeFilter", c.TypeFilter)
	writeAttribute(&b, "sort", c.Sort)
	writeAttribute(&b, "category", c.Category)
	writeAttribute(&b, "tag", c.Tag)
	writeAttribute(&b, "filter", c.Filter)
	b.WriteString("/>")
	return b.String()
}

// ContentConfig parses a response of a list of names. It is used for
// categories, tags, and templates.
type ContentConfig struct {
	Envelope

	Name string
}

func (c *ContentConfig) ParseXML(element *Element) {
	c.Type = element.Attribute("type")
	c.Name = element.Attribute("name")
}

func (c *ContentConfig) ToXML() string {
	var b strings.Builder
	b.WriteString("<content")
	c.writeCredentials(&b)
	b.WriteString("/>")
	return b.String()
}
