package gemini

import (
	"context"
	"fmt"
	"strings"

	"github.com/Tomas-vilte/MateReview/internal/domain/models"
	"github.com/Tomas-vilte/MateReview/internal/infrastructure/ai"
	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const (
	defaultModel = "gemini-1.5-flash"

	// Temperatura baja para que las reviews sean consistentes entre
	// ejecuciones sobre el mismo diff.
	generationTemperature = 0.2
	maxOutputTokens       = 2048
)

// contentGenerator abstrae el modelo generativo para poder mockearlo en los
// tests. *genai.GenerativeModel la satisface.
type contentGenerator interface {
	GenerateContent(ctx context.Context, parts ...genai.Part) (*genai.GenerateContentResponse, error)
}

// ReviewGenerator genera reviews y comentarios inline con Gemini. Se
// construye una sola vez al arranque y es seguro compartirlo entre requests.
type ReviewGenerator struct {
	client *genai.Client
	model  contentGenerator
}

// NewReviewGenerator crea el generador de reviews. Requiere la API key de
// Gemini; sin ella el servicio debe usar NewDisabledReviewGenerator.
func NewReviewGenerator(ctx context.Context, apiKey string) (*ReviewGenerator, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY is required for AI review")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	model := client.GenerativeModel(defaultModel)
	model.SetTemperature(generationTemperature)
	model.SetMaxOutputTokens(maxOutputTokens)

	return &ReviewGenerator{
		client: client,
		model:  model,
	}, nil
}

// NewReviewGeneratorWithModel permite inyectar el modelo, para tests.
func NewReviewGeneratorWithModel(model contentGenerator) *ReviewGenerator {
	return &ReviewGenerator{model: model}
}

// GenerateReview genera la review completa del PR. Cualquier falla del
// backend se captura acá y se devuelve como resultado con Err seteado:
// nunca se propaga al caller.
func (rg *ReviewGenerator) GenerateReview(ctx context.Context, details models.PRDetails, diff string) models.ReviewResult {
	prompt := ai.BuildReviewPrompt(details, diff)

	output, err := rg.generate(ctx, prompt)
	if err != nil {
		return models.ReviewResult{Err: fmt.Sprintf("Error generating review: %v", err)}
	}

	return models.ReviewResult{Review: output}
}

// GenerateInlineComments genera comentarios inline a partir del diff. La
// salida se divide en líneas no vacías; si no queda ninguna se sustituye un
// placeholder de un elemento.
func (rg *ReviewGenerator) GenerateInlineComments(ctx context.Context, diff string) models.InlineCommentsResult {
	prompt := ai.BuildInlineCommentPrompt(diff)

	output, err := rg.generate(ctx, prompt)
	if err != nil {
		return models.InlineCommentsResult{Err: fmt.Sprintf("Error generating inline comments: %v", err)}
	}

	comments := splitComments(output)
	return models.InlineCommentsResult{Comments: comments}
}

func (rg *ReviewGenerator) generate(ctx context.Context, prompt string) (string, error) {
	resp, err := rg.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", err
	}
	return formatResponse(resp), nil
}

// Close libera el cliente de Gemini.
func (rg *ReviewGenerator) Close() error {
	if rg.client == nil {
		return nil
	}
	return rg.client.Close()
}

func formatResponse(resp *genai.GenerateContentResponse) string {
	if resp == nil || resp.Candidates == nil {
		return ""
	}

	var formattedContent strings.Builder
	for _, cand := range resp.Candidates {
		if cand.Content != nil {
			for _, part := range cand.Content.Parts {
				formattedContent.WriteString(fmt.Sprintf("%v", part))
			}
		}
	}
	return formattedContent.String()
}

func splitComments(output string) []string {
	var comments []string
	for _, line := range strings.Split(output, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			comments = append(comments, trimmed)
		}
	}

	if len(comments) == 0 {
		comments = []string{"No inline comments generated"}
	}
	return comments
}
