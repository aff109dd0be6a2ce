package formatter

import (
	"strings"
	"time"
)

// EscapeMarkdownV2 escapes special characters in Markdown V2 format
func EscapeMarkdownV2(s string) string {
	var sb strings.Builder
	for _, r := range s {
		switch r {
		case '_', '*', '[', ']', '(', ')', '~', '`', '>', '#', '+', '-', '=', '|', '{', '}', '.', '!':
			sb.WriteRune('\\')
			sb.WriteRune(r)
		default:
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

// FormatRevealTime renders a capsule reveal instant for notification text.
func FormatRevealTime(t time.Time) string {
	return t.Local().Format("Jan 2, 2006 15:04")
}
