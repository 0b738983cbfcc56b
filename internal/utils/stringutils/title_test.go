package stringutils

import (
	"strings"
	"testing"
)

func TestSanitizeTitleContent(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{
			name:    "plain question unchanged",
			content: "What is the meaning of dharma",
			want:    "What is the meaning of dharma",
		},
		{
			name:    "trailing question mark trimmed",
			content: "How should I perform puja?",
			want:    "How should I perform puja",
		},
		{
			name:    "urls removed",
			content: "Explain this verse https://example.com/gita please",
			want:    "Explain this verse please",
		},
		{
			name:    "markdown links keep text",
			content: "Explain [karma yoga](https://example.com) to me",
			want:    "Explain karma yoga to me",
		},
		{
			name:    "special characters stripped",
			content: "What does <<moksha>> mean *exactly*",
			want:    "What does moksha mean exactly",
		},
		{
			name:    "whitespace collapsed",
			content: "  what   is \n atman  ",
			want:    "what is atman",
		},
		{
			name:    "empty input",
			content: "",
			want:    "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SanitizeTitleContent(tt.content); got != tt.want {
				t.Errorf("SanitizeTitleContent() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTruncateTitle(t *testing.T) {
	long := strings.Repeat("dharma artha kama moksha ", 20)

	got := TruncateTitle(long, 50)
	if len(got) > 50 {
		t.Errorf("TruncateTitle() length = %d, want <= 50", len(got))
	}
	if !strings.HasSuffix(got, "...") {
		t.Errorf("TruncateTitle() = %q, want ellipsis suffix", got)
	}

	short := "short title"
	if got := TruncateTitle(short, 50); got != short {
		t.Errorf("TruncateTitle() = %q, want unchanged %q", got, short)
	}
}

func TestNewConversationTitle(t *testing.T) {
	if got := NewConversationTitle("What is the Sanskrit meaning of dharma?"); got != "What is the Sanskrit meaning of dharma" {
		t.Errorf("NewConversationTitle() = %q", got)
	}
	if got := NewConversationTitle("***???"); got != FallbackTitle {
		t.Errorf("NewConversationTitle() fallback = %q, want %q", got, FallbackTitle)
	}
}
