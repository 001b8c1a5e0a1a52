package dto

import "strings"

// TrainingConfig adds a new response, greeting, or default response to a bot.
type TrainingConfig struct {
	Envelope

	// Operation is the training type ("Response", "Greeting", "DefaultResponse").
	Operation string
	// Question is the question phrase or pattern ("hello", "Pattern:^ help ^").
	Question string
	// Response is the response phrase or formula.
	Response string
}

func (c *TrainingConfig) ToXML() string {
	var b strings.Builder
	b.WriteString("<training")
	c.writeCredentials(&b)
	writeAttribute(&b, "operation", c.Operation)
	b.WriteString(">")
	writeTextElement(&b, "question", c.Question)
	writeTextElement(&b, "response", c.Response)
	b.WriteString("</training>")
	return b.String()
}

func (c *TrainingConfig) ParseXML(element *Element) {
	c.Operation = element.Attribute("operation")
	if v := element.ChildContent("question"); v != "" {
		c.Question = v
	}
	if v := element.ChildContent("response"); v != "" {
		c.Response = v
	}
}
