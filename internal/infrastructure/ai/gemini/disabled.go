package gemini

import (
	"context"

	"github.com/Tomas-vilte/MateReview/internal/domain/models"
)

// DisabledReviewGenerator reemplaza al generador cuando no hay API key. Las
// rutas siguen funcionando y la generación devuelve resultados de error, que
// fluyen al cliente como cuerpo de la review.
type DisabledReviewGenerator struct{}

// NewDisabledReviewGenerator crea un generador deshabilitado
func NewDisabledReviewGenerator() *DisabledReviewGenerator {
	return &DisabledReviewGenerator{}
}

func (d *DisabledReviewGenerator) GenerateReview(_ context.Context, _ models.PRDetails, _ string) models.ReviewResult {
	return models.ReviewResult{Err: "Error generating review: AI review is not configured (missing GEMINI_API_KEY)"}
}

func (d *DisabledReviewGenerator) GenerateInlineComments(_ context.Context, _ string) models.InlineCommentsResult {
	return models.InlineCommentsResult{Err: "Error generating inline comments: AI review is not configured (missing GEMINI_API_KEY)"}
}
