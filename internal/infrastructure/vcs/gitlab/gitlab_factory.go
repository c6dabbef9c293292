package gitlab

import (
	"github.com/Tomas-vilte/MateReview/internal/config"
	"github.com/Tomas-vilte/MateReview/internal/domain/ports"
	"github.com/Tomas-vilte/MateReview/internal/infrastructure/httpclient"
)

// GitLabProviderFactory crea clientes de GitLab para el registry de VCS
type GitLabProviderFactory struct{}

// NewGitLabProviderFactory crea una nueva factory para GitLab
func NewGitLabProviderFactory() *GitLabProviderFactory {
	return &GitLabProviderFactory{}
}

// CreateClient crea un cliente de GitLab con el private token configurado.
func (f *GitLabProviderFactory) CreateClient(cfg *config.Config) (ports.VCSClient, error) {
	return NewGitLabClient(httpclient.NewDefaultHTTPClient(), cfg.GitLabToken), nil
}

// Name retorna el nombre del proveedor
func (f *GitLabProviderFactory) Name() string {
	return "gitlab"
}
