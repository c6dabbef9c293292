package bitbucket

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	domainerrors "github.com/Tomas-vilte/MateReview/internal/domain/errors"
	"github.com/Tomas-vilte/MateReview/internal/domain/models"
	"github.com/Tomas-vilte/MateReview/internal/infrastructure/httpclient"
)

const defaultBaseURL = "https://api.bitbucket.org"

// BitbucketClient habla con la API 2.0 de Bitbucket Cloud vía REST directo.
type BitbucketClient struct {
	httpClient  httpclient.HTTPClient
	username    string
	appPassword string
	baseURL     string
}

// NewBitbucketClient crea un cliente de Bitbucket. Las credenciales son
// opcionales: solo se manda basic auth cuando usuario y app password están
// configurados los dos.
func NewBitbucketClient(httpClient httpclient.HTTPClient, username, appPassword string) *BitbucketClient {
	return &BitbucketClient{
		httpClient:  httpClient,
		username:    username,
		appPassword: appPassword,
		baseURL:     defaultBaseURL,
	}
}

// NewBitbucketClientWithBaseURL crea un cliente apuntando a otra instancia,
// para tests contra httptest.
func NewBitbucketClientWithBaseURL(httpClient httpclient.HTTPClient, username, appPassword, baseURL string) *BitbucketClient {
	return &BitbucketClient{
		httpClient:  httpClient,
		username:    username,
		appPassword: appPassword,
		baseURL:     baseURL,
	}
}

type prResponse struct {
	Title       string `json:"title"`
	Description struct {
		Raw string `json:"raw"`
	} `json:"description"`
	Author struct {
		DisplayName string `json:"display_name"`
	} `json:"author"`
	State       string `json:"state"`
	CreatedOn   string `json:"created_on"`
	UpdatedOn   string `json:"updated_on"`
	Destination struct {
		Branch struct {
			Name string `json:"name"`
		} `json:"branch"`
	} `json:"destination"`
	Source struct {
		Branch struct {
			Name string `json:"name"`
		} `json:"branch"`
	} `json:"source"`
}

// FetchDetails obtiene la metadata del PR desde la API 2.0.
func (bbc *BitbucketClient) FetchDetails(ctx context.Context, ref models.ParsedReference) (models.PRDetails, error) {
	if ref.Owner == "" || ref.Repo == "" || ref.PRNumber == "" {
		return models.PRDetails{}, domainerrors.NewInvalidReferenceError("Bitbucket", "PR")
	}

	apiURL := fmt.Sprintf("%s/2.0/repositories/%s/%s/pullrequests/%s",
		bbc.baseURL, ref.Owner, ref.Repo, ref.PRNumber)

	resp, err := bbc.get(ctx, apiURL)
	if err != nil {
		return models.PRDetails{}, domainerrors.NewNetworkError(err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return models.PRDetails{}, domainerrors.NewProviderAPIError("PR", resp.StatusCode, "")
	}

	var pr prResponse
	if err := json.NewDecoder(resp.Body).Decode(&pr); err != nil {
		return models.PRDetails{}, domainerrors.NewNetworkError(err)
	}

	return models.PRDetails{
		Title:       pr.Title,
		Description: pr.Description.Raw,
		Author:      pr.Author.DisplayName,
		State:       pr.State,
		CreatedAt:   pr.CreatedOn,
		UpdatedAt:   pr.UpdatedOn,
		BaseBranch:  pr.Destination.Branch.Name,
		HeadBranch:  pr.Source.Branch.Name,
		Provider:    models.ProviderBitbucket,
	}, nil
}

// FetchDiff obtiene el diff crudo del endpoint /diff del PR.
func (bbc *BitbucketClient) FetchDiff(ctx context.Context, ref models.ParsedReference) (string, error) {
	if ref.Owner == "" || ref.Repo == "" || ref.PRNumber == "" {
		return "", domainerrors.NewDiffFetchError("Error: Invalid Bitbucket PR URL format")
	}

	apiURL := fmt.Sprintf("%s/2.0/repositories/%s/%s/pullrequests/%s/diff",
		bbc.baseURL, ref.Owner, ref.Repo, ref.PRNumber)

	resp, err := bbc.get(ctx, apiURL)
	if err != nil {
		return "", domainerrors.NewDiffFetchError("Error: Network issue - %v", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return "", domainerrors.NewDiffFetchError("Error: Failed to fetch diff - %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", domainerrors.NewDiffFetchError("Error: Network issue - %v", err)
	}

	return string(body), nil
}

func (bbc *BitbucketClient) get(ctx context.Context, apiURL string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, apiURL, nil)
	if err != nil {
		return nil, err
	}

	if bbc.username != "" && bbc.appPassword != "" {
		req.SetBasicAuth(bbc.username, bbc.appPassword)
	}

	return bbc.httpClient.Do(req)
}
