package bitbucket

import (
	"github.com/Tomas-vilte/MateReview/internal/config"
	"github.com/Tomas-vilte/MateReview/internal/domain/ports"
	"github.com/Tomas-vilte/MateReview/internal/infrastructure/httpclient"
)

// BitbucketProviderFactory crea clientes de Bitbucket para el registry de VCS
type BitbucketProviderFactory struct{}

// NewBitbucketProviderFactory crea una nueva factory para Bitbucket
func NewBitbucketProviderFactory() *BitbucketProviderFactory {
	return &BitbucketProviderFactory{}
}

// CreateClient crea un cliente de Bitbucket con las credenciales
// configuradas. Sin usuario y app password la llamada sale sin autenticar.
func (f *BitbucketProviderFactory) CreateClient(cfg *config.Config) (ports.VCSClient, error) {
	return NewBitbucketClient(httpclient.NewDefaultHTTPClient(), cfg.BitbucketUsername, cfg.BitbucketAppPassword), nil
}

// Name retorna el nombre del proveedor
func (f *BitbucketProviderFactory) Name() string {
	return "bitbucket"
}
