package interviewer

import (
	"fmt"
	"strings"
)

// buildQuestionsPrompt создает промпт для генерации технических вопросов
func buildQuestionsPrompt(count int, role, techStack string) string {
	var prompt strings.Builder

	prompt.WriteString(fmt.Sprintf("Generate exactly %d basic technical interview questions\n", count))
	prompt.WriteString(fmt.Sprintf("for a candidate applying for the role of %s\n", role))
	prompt.WriteString(fmt.Sprintf("with experience in %s.\n", techStack))
	prompt.WriteString("Return ONLY the questions, each on a new line.")

	return prompt.String()
}

// buildAskPrompt создает промпт для реплики интервьюера
func buildAskPrompt(question string) string {
	var prompt strings.Builder

	prompt.WriteString("You are Theodore, a professional interviewer.\n")
	prompt.WriteString("Acknowledge briefly, then ask ONLY this question:\n")
	prompt.WriteString(question)

	return prompt.String()
}
