package github

import (
	"github.com/Tomas-vilte/MateReview/internal/config"
	"github.com/Tomas-vilte/MateReview/internal/domain/ports"
)

// GitHubProviderFactory crea clientes de GitHub para el registry de VCS
type GitHubProviderFactory struct{}

// NewGitHubProviderFactory crea una nueva factory para GitHub
func NewGitHubProviderFactory() *GitHubProviderFactory {
	return &GitHubProviderFactory{}
}

// CreateClient crea un cliente de GitHub con el token configurado. El token
// es opcional: sin él las llamadas salen sin autenticar.
func (f *GitHubProviderFactory) CreateClient(cfg *config.Config) (ports.VCSClient, error) {
	return NewGitHubClient(cfg.GitHubToken), nil
}

// Name retorna el nombre del proveedor
func (f *GitHubProviderFactory) Name() string {
	return "github"
}
