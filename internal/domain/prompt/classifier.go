// Package prompt classifies incoming questions and composes the instruction
// set sent to the completion service.
package prompt

import "strings"

// QuestionType tags a question to steer the response tone. It is a
// best-effort hint; a misclassification is never an error.
type QuestionType string

const (
	QuestionTypeTranslation   QuestionType = "translation"
	QuestionTypePhilosophical QuestionType = "philosophical"
	QuestionTypePractical     QuestionType = "practical"
	QuestionTypeNarrative     QuestionType = "narrative"
	QuestionTypeEthical       QuestionType = "ethical"
	QuestionTypeGeneral       QuestionType = "general"
)

type classificationRule struct {
	Type     QuestionType
	Keywords []string
}

// Rules are evaluated in order; the first matching rule wins.
var classificationRules = []classificationRule{
	{QuestionTypeTranslation, []string{"meaning", "translation", "sanskrit", "devanagari"}},
	{QuestionTypePhilosophical, []string{"philosophy", "concept", "theory", "principle"}},
	{QuestionTypePractical, []string{"practice", "ritual", "worship", "puja"}},
	{QuestionTypeNarrative, []string{"story", "mythology", "purana", "itihasa"}},
	{QuestionTypeEthical, []string{"dharma", "duty", "responsibility", "ethics"}},
}

// Classify tags the question by keyword membership over its lower-cased text.
func Classify(question string) QuestionType {
	lowered := strings.ToLower(question)
	for _, rule := range classificationRules {
		for _, keyword := range rule.Keywords {
			if strings.Contains(lowered, keyword) {
				return rule.Type
			}
		}
	}
	return QuestionTypeGeneral
}
