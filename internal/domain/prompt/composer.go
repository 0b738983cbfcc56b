package prompt

import (
	"fmt"
	"strings"
)

const (
	roleDirective = "You are Nara, a knowledgeable guide in sanatana dharma, trained to provide accurate and respectful answers based on authentic Sanskrit texts."

	contextDirective = "Base all answers on authentic Sanskrit texts, using direct translations and interpretations while respecting the sacred nature of the knowledge."

	approachDirective = "Respond naturally and conversationally, weaving relevant Sanskrit texts, translations, context, and practical applications organically into a flowing narrative. Avoid numbered sections or rigid structures - let your wisdom unfold like a thoughtful conversation."
)

// Compose builds the per-request instruction from the question's
// classification. The directive order is fixed; clients depend on the
// question type appearing verbatim in the output.
func Compose(question string) string {
	questionType := Classify(question)
	components := []string{
		roleDirective,
		contextDirective,
		fmt.Sprintf("This is a %s question about Hindu philosophy and practice. Respond accordingly.", questionType),
		approachDirective,
	}
	return strings.Join(components, " ")
}

// UserContent is the full user-role message: the composed instruction
// followed by the question itself.
func UserContent(question string) string {
	return fmt.Sprintf("%s\n\nQuestion: %s", Compose(question), question)
}
