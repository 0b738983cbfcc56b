package prompt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			"collapses triple asterisks",
			"This is ***important*** advice.",
			"This is **important** advice.",
		},
		{
			"collapses longer asterisk runs",
			"****very**** bold",
			"**very** bold",
		},
		{
			"trims line whitespace",
			"  first line  \n\tsecond line\t",
			"first line\nsecond line",
		},
		{
			"collapses blank runs to one paragraph break",
			"first paragraph\n\n\n\nsecond paragraph",
			"first paragraph\n\nsecond paragraph",
		},
		{
			"drops leading and trailing blanks",
			"\n\nbody text\n\n\n",
			"body text",
		},
		{
			"preserves headers",
			"## Dharma\n\nThe path of duty.",
			"## Dharma\n\nThe path of duty.",
		},
		{
			"empty input",
			"",
			"",
		},
		{
			"whitespace only",
			"   \n\t\n  ",
			"",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.in))
		})
	}
}

func TestNormalizeIsIdempotent(t *testing.T) {
	inputs := []string{
		"This is ***important***.\n\n\n\nAnd ****this**** too.\n",
		"  ## Header  \n\nbody\n\n\nmore body\n\n",
		"plain text",
		"",
	}
	for _, in := range inputs {
		once := Normalize(in)
		assert.Equal(t, once, Normalize(once))
	}
}
