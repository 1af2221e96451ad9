// Package chat implements the small chat-value JSON shape the proxy sends
// for the status MOTD and Disconnect reasons, plus the legacy '&'
// color-code translation used to author them in configuration.
package chat

import "strings"

// Value is a minimal Minecraft chat component: plain text only. The
// proxy never needs translate/extra/click/hover composition since every
// message it originates is operator-authored plain text.
type Value struct {
	Text string `json:"text"`
}

// Text returns a chat Value wrapping the given already-colored string.
func Text(s string) Value {
	return Value{Text: s}
}

// Colorize replaces legacy '&' color codes (&c, &3, &l, ...) with the
// section-sign codes (§) the client renderer expects.
func Colorize(s string) string {
	return strings.ReplaceAll(s, "&", "§")
}
