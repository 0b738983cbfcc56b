package stringutils

import (
	"regexp"
	"strings"
	"unicode"
)

// DefaultTitleLength matches the conversations.title column width.
const DefaultTitleLength = 255

// FallbackTitle is used when the seed text sanitizes down to nothing.
const FallbackTitle = "New Conversation"

var (
	urlPattern        = regexp.MustCompile(`(?i)(https?://|www\.)\S+`)
	markdownLink      = regexp.MustCompile(`\[([^\]]*)\]\([^)]+\)`)
	multiSpacePattern = regexp.MustCompile(`\s+`)
)

// SanitizeTitleContent strips URLs, markdown links and special characters so
// the remainder reads cleanly as a sidebar title.
func SanitizeTitleContent(content string) string {
	content = urlPattern.ReplaceAllString(content, "")
	content = markdownLink.ReplaceAllString(content, "$1")

	var b strings.Builder
	for _, r := range content {
		if unicode.IsLetter(r) || unicode.IsNumber(r) || unicode.IsSpace(r) ||
			r == '.' || r == ',' || r == '!' || r == '?' || r == '-' || r == '\'' {
			b.WriteRune(r)
		}
	}

	content = multiSpacePattern.ReplaceAllString(b.String(), " ")
	content = strings.TrimSpace(content)
	return strings.TrimRight(content, " .,!?-'")
}

// TruncateTitle shortens title to at most maxLen bytes, preferring a word
// boundary and appending an ellipsis when content was cut.
func TruncateTitle(title string, maxLen int) string {
	if len(title) <= maxLen {
		return title
	}

	ellipsis := "..."
	contentLimit := maxLen - len(ellipsis)
	if contentLimit < 0 {
		contentLimit = 0
	}

	truncated := title[:contentLimit]
	if lastSpace := strings.LastIndex(truncated, " "); lastSpace > contentLimit/2 {
		truncated = strings.TrimRight(truncated[:lastSpace], " ")
	}

	return truncated + ellipsis
}

// NewConversationTitle derives a conversation title from the first question.
func NewConversationTitle(question string) string {
	sanitized := SanitizeTitleContent(question)
	if sanitized == "" {
		return FallbackTitle
	}
	return TruncateTitle(sanitized, DefaultTitleLength)
}
