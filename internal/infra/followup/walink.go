package followup

import (
	"net/url"
	"strings"
)

// WhatsAppLinkBuilder produces wa.me share links with the message
// pre-filled. Display-only; nothing is sent.
type WhatsAppLinkBuilder struct{}

func NewWhatsAppLinkBuilder() *WhatsAppLinkBuilder {
	return &WhatsAppLinkBuilder{}
}

func (b *WhatsAppLinkBuilder) BuildLink(message string) string {
	// wa.me wants %20, not '+', for spaces.
	escaped := strings.ReplaceAll(url.QueryEscape(message), "+", "%20")
	return "https://wa.me/?text=" + escaped
}
