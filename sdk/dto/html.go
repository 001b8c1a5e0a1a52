package dto

import "strings"

// htmlEscaper replaces reserved HTML characters with their escape codes.
// The ampersand is handled in the same pass, so already-escaped text is not
// double-escaped field by field.
var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#039;",
)

// EscapeHTML replaces reserved HTML characters with their HTML escape codes.
// Rich text fields (descriptions, messages, bios) are escaped before being
// written as XML element content.
func EscapeHTML(text string) string {
	return htmlEscaper.Replace(text)
}

// UnescapeHTML recovers rich text content that the server double-encoded.
//
// The bracket entities are only unescaped when an escaped '<' is present and
// an escaped '>' appears after it; content where "&gt;" precedes "&lt;" is
// left untouched. Ampersands are always unescaped when present. Response
// compatibility depends on this exact heuristic, including its edge cases.
func UnescapeHTML(text string) string {
	lt := strings.Index(text, "&lt;")
	gt := strings.Index(text, "&gt;")
	if lt != -1 && gt > lt {
		text = strings.ReplaceAll(text, "&lt;", "<")
		text = strings.ReplaceAll(text, "&gt;", ">")
	}
	if strings.Contains(text, "&amp;") {
		text = strings.ReplaceAll(text, "&amp;", "&")
	}
	return text
}
