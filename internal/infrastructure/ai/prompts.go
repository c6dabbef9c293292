package ai

import (
	"fmt"

	"github.com/Tomas-vilte/MateReview/internal/domain/models"
)

// Templates de prompts de review. El texto está en inglés porque es lo que
// mejor rinde con los modelos; el idioma de la CLI no afecta acá.
const (
	reviewPromptTemplate = `
You are an expert code reviewer. Review this pull request:

Title: %s
Description: %s

Diff content:
%s

Provide:
1. Code structure & organization feedback
2. Bugs/issues
3. Code style suggestions
4. Security considerations
5. Performance improvements
6. Readability & maintainability tips
7. Overall assessment

Format response with clear bullet points and sections.
Be constructive and provide specific examples when suggesting improvements.
`

	inlineCommentPromptTemplate = `
Analyze the following diff and generate inline comments for each change:
Focus on:
- Potential bugs or logical errors
- Code style inconsistencies
- Security vulnerabilities
- Performance issues
- Missing tests or documentation

Diff content:
%s

Format response in a clear, structured way for parsing.
`
)

// BuildReviewPrompt arma el prompt de review completa con la metadata del PR
// y el diff embebidos.
func BuildReviewPrompt(details models.PRDetails, diff string) string {
	return fmt.Sprintf(reviewPromptTemplate, details.Title, details.Description, diff)
}

// BuildInlineCommentPrompt arma el prompt de comentarios inline solo con el
// diff.
func BuildInlineCommentPrompt(diff string) string {
	return fmt.Sprintf(inlineCommentPromptTemplate, diff)
}
