package ports

import (
	"context"

	"github.com/Tomas-vilte/MateReview/internal/domain/models"
)

// ReviewGenerator define el contrato con el backend generativo. Las fallas
// del backend nunca se propagan como error: se convierten en resultados con
// Err seteado para que el pipeline siga funcionando degradado.
type ReviewGenerator interface {
	// GenerateReview genera una review completa del PR a partir de su
	// metadata y el diff.
	GenerateReview(ctx context.Context, details models.PRDetails, diff string) models.ReviewResult

	// GenerateInlineComments genera comentarios línea por línea a partir
	// del diff.
	GenerateInlineComments(ctx context.Context, diff string) models.InlineCommentsResult
}
