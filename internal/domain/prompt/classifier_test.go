package prompt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		question string
		want     QuestionType
	}{
		{"sanskrit meaning", "What is the Sanskrit meaning of dharma?", QuestionTypeTranslation},
		{"daily puja", "How should I perform my daily puja?", QuestionTypePractical},
		{"unrelated", "What is the weather today?", QuestionTypeGeneral},
		{"philosophy", "Explain the concept of maya in Advaita philosophy", QuestionTypePhilosophical},
		{"mythology", "Tell me the story of Prahlada from the Puranas", QuestionTypeNarrative},
		{"duty", "What is my duty toward my parents?", QuestionTypeEthical},
		{"case insensitive", "DEVANAGARI script origins", QuestionTypeTranslation},
		{"earlier rule wins", "What is the meaning of this ritual?", QuestionTypeTranslation},
		{"empty", "", QuestionTypeGeneral},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.question))
		})
	}
}
