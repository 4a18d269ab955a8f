package contract

import (
	"regexp"
	"strings"
)

var hspaceRe = regexp.MustCompile(`[ \t]+`)

// Sanitize cleans raw contract text before it reaches the section parser or
// the markup renderer. Control characters (C0 except tab/newline/CR, DEL,
// C1) are stripped, angle brackets are neutralized, runs of horizontal
// whitespace collapse to a single space, and line endings normalize to \n.
func Sanitize(text string) string {
	text = strings.Map(func(r rune) rune {
		switch {
		case r == '\t' || r == '\n' || r == '\r':
			return r
		case r < 0x20:
			return -1
		case r == 0x7F || (r >= 0x80 && r <= 0x9F):
			return -1
		}
		return r
	}, text)

	text = strings.ReplaceAll(text, "<", "_")
	text = strings.ReplaceAll(text, ">", "_")
	text = hspaceRe.ReplaceAllString(text, " ")
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	return strings.TrimSpace(text)
}
