package utils

import (
	"fmt"
	"net/url"
	"strings"
)

// Preset messages shown on the storefront's WhatsApp buttons.
const (
	WhatsAppContactMessage  = "Olá, quero fazer um pedido"
	WhatsAppFollowUpMessage = "Olá, quero acompanhar meu pedido"
)

// WhatsAppLink formats a wa.me deep link for the given number (DDI +
// DDD + number, digits only) and preset message. Pure string
// formatting; nothing here talks to WhatsApp. Spaces are encoded as
// %20, the form wa.me documents.
func WhatsAppLink(number, message string) string {
	link := fmt.Sprintf("https://wa.me/%s", number)
	if message == "" {
		return link
	}
	text := strings.ReplaceAll(url.QueryEscape(message), "+", "%20")
	return link + "?text=" + text
}
