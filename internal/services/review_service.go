package services

import (
	"context"
	"fmt"

	"github.com/Tomas-vilte/MateReview/internal/config"
	"github.com/Tomas-vilte/MateReview/internal/domain/models"
	"github.com/Tomas-vilte/MateReview/internal/domain/ports"
	"github.com/Tomas-vilte/MateReview/internal/infrastructure/vcs/parser"
	"github.com/Tomas-vilte/MateReview/internal/infrastructure/vcs/registry"
	"github.com/Tomas-vilte/MateReview/internal/logger"
	"github.com/Tomas-vilte/MateReview/internal/services/scoring"
)

// ReviewService orquesta el pipeline completo: clasificar la URL, traer
// metadata y diff del proveedor, generar la review y post-procesarla.
type ReviewService struct {
	vcsRegistry *registry.VCSProviderRegistry
	generator   ports.ReviewGenerator
	cfg         *config.Config
}

// NewReviewService crea el servicio de reviews
func NewReviewService(vcsRegistry *registry.VCSProviderRegistry, generator ports.ReviewGenerator, cfg *config.Config) *ReviewService {
	return &ReviewService{
		vcsRegistry: vcsRegistry,
		generator:   generator,
		cfg:         cfg,
	}
}

// ReviewFromURL resuelve una URL de PR/MR y genera el reporte completo. Una
// falla al traer el diff es terminal y se devuelve como error; una falla al
// traer la metadata no: se degrada a detalles sintetizados y el pipeline
// sigue solo con el diff.
func (s *ReviewService) ReviewFromURL(ctx context.Context, prURL string) (models.ReviewReport, error) {
	ref := parser.Parse(prURL)

	client, err := s.vcsRegistry.ClientFor(ref, s.cfg)
	if err != nil {
		return models.ReviewReport{}, err
	}

	ctx = logger.With(ctx, "provider", string(ref.Provider))

	details, detailsErr := client.FetchDetails(ctx, ref)

	diff, diffErr := client.FetchDiff(ctx, ref)
	if diffErr != nil {
		logger.Error(ctx, "diff fetch failed", diffErr, "pr_url", prURL)
		return models.ReviewReport{}, diffErr
	}

	if detailsErr != nil {
		logger.Warn(ctx, "details fetch failed, using placeholder metadata", "error", detailsErr.Error())
		details = fallbackDetails(prURL)
	}

	return s.assemble(ctx, details, diff), nil
}

// ReviewFromDiff genera el reporte a partir de un diff subido directamente,
// con metadata sintética fija.
func (s *ReviewService) ReviewFromDiff(ctx context.Context, diffText string) models.ReviewReport {
	details := models.PRDetails{
		Title:       "Uploaded Diff Review",
		Description: "This review was generated from directly uploaded diff content.",
		Author:      "User",
		State:       "uploaded",
	}

	return s.assemble(ctx, details, diffText)
}

func (s *ReviewService) assemble(ctx context.Context, details models.PRDetails, diff string) models.ReviewReport {
	reviewData := s.generator.GenerateReview(ctx, details, diff)
	inlineData := s.generator.GenerateInlineComments(ctx, diff)

	review := reviewData.Text()
	score := scoring.CalculateScore(review)

	logger.Info(ctx, "review assembled", "score", score, "generation_failed", reviewData.Err != "")

	return models.ReviewReport{
		PRDetails:      details,
		Review:         review,
		InlineComments: inlineData.Lines(),
		PRScore:        score,
		Suggestions:    scoring.ExtractSuggestions(review),
	}
}

// fallbackDetails sintetiza la metadata mínima cuando el proveedor no
// respondió; el análisis sigue solo con el diff.
func fallbackDetails(prURL string) models.PRDetails {
	return models.PRDetails{
		Title:       fmt.Sprintf("PR Review for %s", prURL),
		Description: "Unable to fetch full PR details. Proceeding with diff analysis only.",
		Author:      "Unknown",
		State:       "unknown",
		BaseBranch:  "main",
		HeadBranch:  "feature",
	}
}
