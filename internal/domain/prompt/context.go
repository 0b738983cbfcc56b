package prompt

import (
	"fmt"
	"strings"
)

// DefaultMaxExchanges caps how much history is replayed into the prompt.
const DefaultMaxExchanges = 5

// Exchange is one prior question/answer pair, oldest first.
type Exchange struct {
	Question string
	Answer   string
}

// BuildContext renders the most recent maxExchanges exchanges into the
// delimiter format the model is prompted to read. Empty history yields an
// empty string so the caller can skip the context message entirely.
func BuildContext(history []Exchange, maxExchanges int) string {
	if len(history) == 0 {
		return ""
	}
	if maxExchanges > 0 && len(history) > maxExchanges {
		history = history[len(history)-maxExchanges:]
	}

	var b strings.Builder
	b.WriteString("\n=== Previous Conversation Context ===\n")
	for i, exchange := range history {
		fmt.Fprintf(&b, "Exchange %d:\nPrevious Question: %s\nPrevious Response: %s\n---\n",
			i+1, exchange.Question, exchange.Answer)
	}
	return b.String()
}
