package prompt

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func exchanges(n int) []Exchange {
	out := make([]Exchange, n)
	for i := range out {
		out[i] = Exchange{
			Question: fmt.Sprintf("question %d", i+1),
			Answer:   fmt.Sprintf("answer %d", i+1),
		}
	}
	return out
}

func TestBuildContextEmptyHistory(t *testing.T) {
	assert.Empty(t, BuildContext(nil, DefaultMaxExchanges))
	assert.Empty(t, BuildContext([]Exchange{}, DefaultMaxExchanges))
}

func TestBuildContextKeepsShortHistoryWhole(t *testing.T) {
	block := BuildContext(exchanges(3), DefaultMaxExchanges)

	assert.Contains(t, block, "=== Previous Conversation Context ===")
	assert.Contains(t, block, "Previous Question: question 1")
	assert.Contains(t, block, "Previous Response: answer 3")
	assert.Equal(t, 3, strings.Count(block, "Exchange "))
}

func TestBuildContextTruncatesToMostRecent(t *testing.T) {
	block := BuildContext(exchanges(12), DefaultMaxExchanges)

	assert.Equal(t, 5, strings.Count(block, "Exchange "))
	assert.NotContains(t, block, "question 7")
	assert.Contains(t, block, "Previous Question: question 8")
	assert.Contains(t, block, "Previous Question: question 12")

	// Numbering restarts at 1 for the truncated window.
	require.Contains(t, block, "Exchange 1:\nPrevious Question: question 8")
}

func TestBuildContextExchangeLayout(t *testing.T) {
	block := BuildContext(exchanges(1), DefaultMaxExchanges)

	want := "\n=== Previous Conversation Context ===\nExchange 1:\nPrevious Question: question 1\nPrevious Response: answer 1\n---\n"
	assert.Equal(t, want, block)
}
