package dto

import "strings"

// MediaConfig identifies a hosted media file (image, audio, or video).
// The mime type rides in the envelope's type slot, so writeCredentials
// emits it. Key is the access key returned when the file was uploaded.
type MediaConfig struct {
	Envelope

	ID   string
	Name string
	File string
	Key  string
}

func (c *MediaConfig) ToXML() string {
	var b strings.Builder
	b.WriteString("<media")
	c.writeCredentials(&b)
	writeAttribute(&b, "id", c.ID)
	writeAttribute(&b, "name", c.Name)
	writeAttribute(&b, "file", c.File)
	writeAttribute(&b, "key", c.Key)
	b.WriteString("/>")
	return b.String()
}

func (c *MediaConfig) ParseXML(element *Element) {
	c.ID = element.Attribute("id")
	c.Name = element.Attribute("name")
	c.Type = element.Attribute("type")
	c.File = element.Attribute("file")
	c.Key = element.Attribute("key")
}
