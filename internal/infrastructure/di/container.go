package di

import (
	"github.com/Tomas-vilte/MateReview/internal/config"
	"github.com/Tomas-vilte/MateReview/internal/domain/models"
	"github.com/Tomas-vilte/MateReview/internal/domain/ports"
	"github.com/Tomas-vilte/MateReview/internal/i18n"
	vcsregistry "github.com/Tomas-vilte/MateReview/internal/infrastructure/vcs/registry"
	"github.com/Tomas-vilte/MateReview/internal/services"
)

// Container gestiona las dependencias de la aplicación
type Container struct {
	config       *config.Config
	translations *i18n.Translations

	vcsRegistry *vcsregistry.VCSProviderRegistry
	generator   ports.ReviewGenerator

	// Services (lazy initialized)
	reviewService *services.ReviewService
}

// NewContainer crea un nuevo contenedor de dependencias
func NewContainer(cfg *config.Config, trans *i18n.Translations) *Container {
	return &Container{
		config:       cfg,
		translations: trans,
		vcsRegistry:  vcsregistry.NewVCSProviderRegistry(),
	}
}

// RegisterVCSProvider registra un proveedor VCS
func (c *Container) RegisterVCSProvider(provider models.Provider, factory vcsregistry.VCSProviderFactory) error {
	return c.vcsRegistry.Register(provider, factory)
}

// SetReviewGenerator establece el generador de reviews. El generador se
// construye una sola vez en el entry point y se comparte entre requests.
func (c *Container) SetReviewGenerator(generator ports.ReviewGenerator) {
	c.generator = generator
}

// GetVCSRegistry retorna el registro de proveedores VCS
func (c *Container) GetVCSRegistry() *vcsregistry.VCSProviderRegistry {
	return c.vcsRegistry
}

// GetTranslations retorna las traducciones
func (c *Container) GetTranslations() *i18n.Translations {
	return c.translations
}

// GetReviewService retorna el servicio de reviews (lazy initialization)
func (c *Container) GetReviewService() *services.ReviewService {
	if c.reviewService != nil {
		return c.reviewService
	}

	c.reviewService = services.NewReviewService(c.vcsRegistry, c.generator, c.config)
	return c.reviewService
}
