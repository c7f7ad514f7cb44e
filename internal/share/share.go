// Package share builds the outbound share payload: one fixed catalogue link,
// one fixed message, and templated share URLs for four platforms.
package share

import "net/url"

// Links is the share payload rendered into the page footer and exposed on
// the API for clipboard/share integrations.
type Links struct {
	Link     string `json:"link"`
	Message  string `json:"message"`
	WhatsApp string `json:"whatsapp"`
	Facebook string `json:"facebook"`
	X        string `json:"x"`
	Email    string `json:"email"`
}

// Build templates the four platform URLs with the configured link and
// message.
func Build(link, message string) Links {
	text := message + " " + link

	wa := url.Values{}
	wa.Set("text", text)

	fb := url.Values{}
	fb.Set("u", link)

	tweet := url.Values{}
	tweet.Set("text", message)
	tweet.Set("url", link)

	mail := url.Values{}
	mail.Set("subject", message)
	mail.Set("body", link)

	return Links{
		Link:     link,
		Message:  message,
		WhatsApp: "https://wa.me/?" + wa.Encode(),
		Facebook: "https://www.facebook.com/sharer/sharer.php?" + fb.Encode(),
		X:        "https://twitter.com/intent/tweet?" + tweet.Encode(),
		Email:    "mailto:?" + mail.Encode(),
	}
}
