package prompt

import (
	"regexp"
	"strings"
)

// Three or more asterisks in a row collapse to bold. Matching runs longer
// than three keeps the pass idempotent.
var excessiveAsterisks = regexp.MustCompile(`\*{3,}`)

// Normalize cleans model output while keeping markdown structure intact.
// Each line is trimmed, runs of blank lines collapse to a single paragraph
// break, and the result carries no leading or trailing whitespace.
// Normalize(Normalize(s)) == Normalize(s) for any s.
func Normalize(text string) string {
	text = excessiveAsterisks.ReplaceAllString(text, "**")

	lines := strings.Split(text, "\n")
	cleaned := make([]string, 0, len(lines))
	prevEmpty := false
	for _, line := range lines {
		stripped := strings.TrimSpace(line)
		if stripped == "" {
			if !prevEmpty {
				cleaned = append(cleaned, "")
			}
			prevEmpty = true
			continue
		}
		cleaned = append(cleaned, stripped)
		prevEmpty = false
	}

	paragraphs := strings.Split(strings.Join(cleaned, "\n"), "\n\n")
	kept := make([]string, 0, len(paragraphs))
	for _, para := range paragraphs {
		para = strings.TrimSpace(para)
		if para != "" {
			kept = append(kept, para)
		}
	}
	return strings.Join(kept, "\n\n")
}
