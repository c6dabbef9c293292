package gitlab

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	domainerrors "github.com/Tomas-vilte/MateReview/internal/domain/errors"
	"github.com/Tomas-vilte/MateReview/internal/domain/models"
	"github.com/Tomas-vilte/MateReview/internal/infrastructure/httpclient"
)

const defaultBaseURL = "https://gitlab.com"

// GitLabClient habla con la API v4 de GitLab. No hay SDK en el stack, así
// que usa REST directo sobre el HTTPClient compartido.
type GitLabClient struct {
	httpClient httpclient.HTTPClient
	token      string
	baseURL    string
}

// NewGitLabClient crea un cliente de GitLab. El private token es opcional.
func NewGitLabClient(httpClient httpclient.HTTPClient, token string) *GitLabClient {
	return &GitLabClient{
		httpClient: httpClient,
		token:      token,
		baseURL:    defaultBaseURL,
	}
}

// NewGitLabClientWithBaseURL crea un cliente apuntando a otra instancia,
// para tests contra httptest.
func NewGitLabClientWithBaseURL(httpClient httpclient.HTTPClient, token, baseURL string) *GitLabClient {
	return &GitLabClient{
		httpClient: httpClient,
		token:      token,
		baseURL:    baseURL,
	}
}

type mrResponse struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Author      struct {
		Username string `json:"username"`
	} `json:"author"`
	State        string `json:"state"`
	CreatedAt    string `json:"created_at"`
	UpdatedAt    string `json:"updated_at"`
	TargetBranch string `json:"target_branch"`
	SourceBranch string `json:"source_branch"`
}

type mrChangesResponse struct {
	Changes []struct {
		OldPath string `json:"old_path"`
		NewPath string `json:"new_path"`
		Diff    string `json:"diff"`
	} `json:"changes"`
}

// FetchDetails obtiene la metadata del Merge Request. A diferencia de
// GitHub, un 404 acá es un error normal: no hay fallback sintetizado.
func (glc *GitLabClient) FetchDetails(ctx context.Context, ref models.ParsedReference) (models.PRDetails, error) {
	if ref.ProjectPath == "" || ref.MRNumber == "" {
		return models.PRDetails{}, domainerrors.NewInvalidReferenceError("GitLab", "MR")
	}

	apiURL := fmt.Sprintf("%s/api/v4/projects/%s/merge_requests/%s",
		glc.baseURL, url.PathEscape(ref.ProjectPath), ref.MRNumber)

	resp, err := glc.get(ctx, apiURL)
	if err != nil {
		return models.PRDetails{}, domainerrors.NewNetworkError(err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return models.PRDetails{}, domainerrors.NewProviderAPIError("MR", resp.StatusCode, "")
	}

	var mr mrResponse
	if err := json.NewDecoder(resp.Body).Decode(&mr); err != nil {
		return models.PRDetails{}, domainerrors.NewNetworkError(err)
	}

	return models.PRDetails{
		Title:       mr.Title,
		Description: mr.Description,
		Author:      mr.Author.Username,
		State:       mr.State,
		CreatedAt:   mr.CreatedAt,
		UpdatedAt:   mr.UpdatedAt,
		BaseBranch:  mr.TargetBranch,
		HeadBranch:  mr.SourceBranch,
		Provider:    models.ProviderGitLab,
	}, nil
}

// FetchDiff arma un diff estilo unified concatenando el endpoint /changes:
// un encabezado ---/+++ por archivo, el cuerpo del diff y una línea en
// blanco como separador, en el orden del array.
func (glc *GitLabClient) FetchDiff(ctx context.Context, ref models.ParsedReference) (string, error) {
	if ref.ProjectPath == "" || ref.MRNumber == "" {
		return "", domainerrors.NewDiffFetchError("Error: Invalid GitLab MR URL format")
	}

	apiURL := fmt.Sprintf("%s/api/v4/projects/%s/merge_requests/%s/changes",
		glc.baseURL, url.PathEscape(ref.ProjectPath), ref.MRNumber)

	resp, err := glc.get(ctx, apiURL)
	if err != nil {
		return "", domainerrors.NewDiffFetchError("Error: Network issue - %v", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return "", domainerrors.NewDiffFetchError("Error: Failed to fetch diff - %d", resp.StatusCode)
	}

	var changes mrChangesResponse
	if err := json.NewDecoder(resp.Body).Decode(&changes); err != nil {
		return "", domainerrors.NewDiffFetchError("Error: Network issue - %v", err)
	}

	var diff strings.Builder
	for _, change := range changes.Changes {
		diff.WriteString(fmt.Sprintf("--- a/%s\n", change.OldPath))
		diff.WriteString(fmt.Sprintf("+++ b/%s\n", change.NewPath))
		diff.WriteString(change.Diff)
		diff.WriteString("\n\n")
	}

	return diff.String(), nil
}

func (glc *GitLabClient) get(ctx context.Context, apiURL string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, apiURL, nil)
	if err != nil {
		return nil, err
	}

	if glc.token != "" {
		req.Header.Set("PRIVATE-TOKEN", glc.token)
	}

	return glc.httpClient.Do(req)
}
