package registry

import (
	"fmt"
	"sync"

	"github.com/Tomas-vilte/MateReview/internal/config"
	"github.com/Tomas-vilte/MateReview/internal/domain/errors"
	"github.com/Tomas-vilte/MateReview/internal/domain/models"
	"github.com/Tomas-vilte/MateReview/internal/domain/ports"
)

// VCSProviderFactory define la interfaz para crear clientes VCS
type VCSProviderFactory interface {
	// CreateClient crea un cliente VCS con las credenciales de la config
	CreateClient(cfg *config.Config) (ports.VCSClient, error)

	// Name retorna el nombre del proveedor
	Name() string
}

// VCSProviderRegistry gestiona el registro de proveedores VCS. El despacho
// por proveedor se resuelve una sola vez acá, después de clasificar la URL.
type VCSProviderRegistry struct {
	mu        sync.RWMutex
	factories map[models.Provider]VCSProviderFactory
}

// NewVCSProviderRegistry crea un nuevo registro de proveedores VCS
func NewVCSProviderRegistry() *VCSProviderRegistry {
	return &VCSProviderRegistry{
		factories: make(map[models.Provider]VCSProviderFactory),
	}
}

// Register registra un nuevo proveedor VCS
func (r *VCSProviderRegistry) Register(provider models.Provider, factory VCSProviderFactory) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.factories[provider]; exists {
		return fmt.Errorf("proveedor VCS '%s' ya esta registrado", provider)
	}

	r.factories[provider] = factory
	return nil
}

// List retorna la lista de proveedores registrados
func (r *VCSProviderRegistry) List() []models.Provider {
	r.mu.RLock()
	defer r.mu.RUnlock()

	providers := make([]models.Provider, 0, len(r.factories))
	for provider := range r.factories {
		providers = append(providers, provider)
	}
	return providers
}

// IsRegistered verifica si un proveedor está registrado
func (r *VCSProviderRegistry) IsRegistered(provider models.Provider) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, exists := r.factories[provider]
	return exists
}

// ClientFor crea el cliente correspondiente a una referencia ya clasificada.
// Una referencia con proveedor desconocido o no registrado corta acá, antes
// de cualquier llamada de red.
func (r *VCSProviderRegistry) ClientFor(ref models.ParsedReference, cfg *config.Config) (ports.VCSClient, error) {
	r.mu.RLock()
	factory, exists := r.factories[ref.Provider]
	r.mu.RUnlock()

	if !exists {
		return nil, errors.NewUnsupportedProviderError(string(ref.Provider))
	}

	return factory.CreateClient(cfg)
}
