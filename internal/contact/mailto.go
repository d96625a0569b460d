package contact

import (
	"net/url"
	"strings"
)

// BuildMailto returns the mailto URI used when the relay does not deliver msg.
func BuildMailto(recipient string, msg Message) string {
	subject := "Portfolio contact from " + msg.Name
	body := msg.Message + "\n\nContact: " + msg.Email
	return "mailto:" + recipient + "?subject=" + encodeComponent(subject) + "&body=" + encodeComponent(body)
}

// encodeComponent escapes s for a URI query value with spaces as %20, since
// mail clients do not all treat '+' as a space.
func encodeComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
