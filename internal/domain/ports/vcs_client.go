package ports

import (
	"context"

	"github.com/Tomas-vilte/MateReview/internal/domain/models"
)

// VCSClient define los métodos comunes para interactuar con las APIs de los
// proveedores de hosting git.
type VCSClient interface {
	// FetchDetails obtiene la metadata del PR/MR referenciado. Un 404 de
	// GitHub no es un error: el cliente degrada a detalles sintetizados.
	FetchDetails(ctx context.Context, ref models.ParsedReference) (models.PRDetails, error)

	// FetchDiff obtiene el diff del PR/MR en formato unified como texto
	// crudo. Esta capa no parsea los hunks.
	FetchDiff(ctx context.Context, ref models.ParsedReference) (string, error)
}
