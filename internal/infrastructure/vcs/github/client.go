package github

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	domainerrors "github.com/Tomas-vilte/MateReview/internal/domain/errors"
	"github.com/Tomas-vilte/MateReview/internal/domain/models"
	"github.com/Tomas-vilte/MateReview/internal/infrastructure/httpclient"
	"github.com/google/go-github/github"
	"golang.org/x/oauth2"
)

const diffBaseURL = "https://patch-diff.githubusercontent.com"

// PRService abstrae el subservicio de pull requests de go-github para poder
// mockearlo en los tests.
type PRService interface {
	Get(ctx context.Context, owner, repo string, number int) (*github.PullRequest, *github.Response, error)
}

// GitHubClient obtiene metadata de PRs vía la API v3 de GitHub y el diff
// crudo vía el endpoint patch-diff.
type GitHubClient struct {
	prService  PRService
	httpClient httpclient.HTTPClient
	diffBase   string
}

// NewGitHubClient crea un cliente de GitHub. Si token está vacío las
// llamadas salen sin autenticar, sujetas a los rate limits públicos.
func NewGitHubClient(token string) *GitHubClient {
	var httpClient *http.Client
	if token != "" {
		ts := oauth2.StaticTokenSource(
			&oauth2.Token{AccessToken: token},
		)
		httpClient = oauth2.NewClient(context.Background(), ts)
	}

	gc := github.NewClient(httpClient)

	return &GitHubClient{
		prService:  gc.PullRequests,
		httpClient: httpclient.NewDefaultHTTPClient(),
		diffBase:   diffBaseURL,
	}
}

// NewGitHubClientWithServices permite inyectar los servicios, para tests.
func NewGitHubClientWithServices(prService PRService, httpClient httpclient.HTTPClient, diffBase string) *GitHubClient {
	return &GitHubClient{
		prService:  prService,
		httpClient: httpClient,
		diffBase:   diffBase,
	}
}

// FetchDetails obtiene la metadata del PR. Un 404 se trata como limitación
// de la API (repo privado o sin token) y degrada a detalles sintetizados en
// lugar de propagar el error.
func (ghc *GitHubClient) FetchDetails(ctx context.Context, ref models.ParsedReference) (models.PRDetails, error) {
	if ref.Owner == "" || ref.Repo == "" || ref.PRNumber == "" {
		return models.PRDetails{}, domainerrors.NewInvalidReferenceError("GitHub", "PR")
	}

	number, err := strconv.Atoi(ref.PRNumber)
	if err != nil {
		return models.PRDetails{}, domainerrors.NewInvalidReferenceError("GitHub", "PR")
	}

	pr, resp, err := ghc.prService.Get(ctx, ref.Owner, ref.Repo, number)
	if err != nil {
		if resp != nil {
			if resp.StatusCode == http.StatusNotFound {
				return ghc.basicDetails(ref), nil
			}
			return models.PRDetails{}, domainerrors.NewProviderAPIError("PR", resp.StatusCode, err.Error())
		}
		return models.PRDetails{}, domainerrors.NewNetworkError(err)
	}

	return models.PRDetails{
		Title:       pr.GetTitle(),
		Description: pr.GetBody(),
		Author:      pr.GetUser().GetLogin(),
		State:       pr.GetState(),
		CreatedAt:   formatTime(pr.CreatedAt),
		UpdatedAt:   formatTime(pr.UpdatedAt),
		BaseBranch:  pr.GetBase().GetRef(),
		HeadBranch:  pr.GetHead().GetRef(),
		Provider:    models.ProviderGitHub,
	}, nil
}

// FetchDiff obtiene el diff crudo desde el endpoint patch-diff, que sirve
// diffs de repos públicos sin pasar por la API autenticada.
func (ghc *GitHubClient) FetchDiff(ctx context.Context, ref models.ParsedReference) (string, error) {
	if ref.Owner == "" || ref.Repo == "" || ref.PRNumber == "" {
		return "", domainerrors.NewDiffFetchError("Error: Invalid GitHub PR URL format")
	}

	diffURL := fmt.Sprintf("%s/raw/%s/%s/pull/%s.diff", ghc.diffBase, ref.Owner, ref.Repo, ref.PRNumber)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, diffURL, nil)
	if err != nil {
		return "", domainerrors.NewDiffFetchError("Error: Network issue - %v", err)
	}

	resp, err := ghc.httpClient.Do(req)
	if err != nil {
		return "", domainerrors.NewDiffFetchError("Error: Network issue - %v", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return "", domainerrors.NewDiffFetchError("Error: Failed to fetch diff - %d. Using alternative method.", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", domainerrors.NewDiffFetchError("Error: Network issue - %v", err)
	}

	return string(body), nil
}

// basicDetails sintetiza la metadata mínima cuando la API no dio acceso al
// PR. El campo Note le avisa al consumidor que son datos degradados.
func (ghc *GitHubClient) basicDetails(ref models.ParsedReference) models.PRDetails {
	return models.PRDetails{
		Title:       fmt.Sprintf("PR #%s from %s/%s", ref.PRNumber, ref.Owner, ref.Repo),
		Description: "Unable to fetch detailed description. Using direct diff analysis.",
		Author:      "Unknown",
		State:       "unknown",
		BaseBranch:  "main",
		HeadBranch:  "feature",
		Provider:    models.ProviderGitHub,
		Note:        "Using basic info due to API limitations",
	}
}

func formatTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}
