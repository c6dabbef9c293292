package registry

import (
	"context"
	"testing"

	"github.com/Tomas-vilte/MateReview/internal/config"
	"github.com/Tomas-vilte/MateReview/internal/domain/models"
	"github.com/Tomas-vilte/MateReview/internal/domain/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubClient struct{}

func (s *stubClient) FetchDetails(ctx context.Context, ref models.ParsedReference) (models.PRDetails, error) {
	return models.PRDetails{}, nil
}

func (s *stubClient) FetchDiff(ctx context.Context, ref models.ParsedReference) (string, error) {
	return "", nil
}

type stubFactory struct {
	name    string
	created int
}

func (f *stubFactory) CreateClient(cfg *config.Config) (ports.VCSClient, error) {
	f.created++
	return &stubClient{}, nil
}

func (f *stubFactory) Name() string { return f.name }

func TestVCSProviderRegistry_Register(t *testing.T) {
	t.Run("should register a new provider", func(t *testing.T) {
		reg := NewVCSProviderRegistry()

		err := reg.Register(models.ProviderGitHub, &stubFactory{name: "github"})

		require.NoError(t, err)
		assert.True(t, reg.IsRegistered(models.ProviderGitHub))
		assert.Contains(t, reg.List(), models.ProviderGitHub)
	})

	t.Run("should reject a duplicate registration", func(t *testing.T) {
		reg := NewVCSProviderRegistry()
		require.NoError(t, reg.Register(models.ProviderGitHub, &stubFactory{name: "github"}))

		err := reg.Register(models.ProviderGitHub, &stubFactory{name: "github"})

		require.Error(t, err)
	})
}

func TestVCSProviderRegistry_ClientFor(t *testing.T) {
	t.Run("should build a client through the matching factory", func(t *testing.T) {
		reg := NewVCSProviderRegistry()
		factory := &stubFactory{name: "gitlab"}
		require.NoError(t, reg.Register(models.ProviderGitLab, factory))

		client, err := reg.ClientFor(models.ParsedReference{Provider: models.ProviderGitLab}, &config.Config{})

		require.NoError(t, err)
		assert.NotNil(t, client)
		assert.Equal(t, 1, factory.created)
	})

	t.Run("should reject an unknown provider before any network call", func(t *testing.T) {
		reg := NewVCSProviderRegistry()

		_, err := reg.ClientFor(models.ParsedReference{Provider: models.ProviderUnknown}, &config.Config{})

		require.Error(t, err)
		assert.Equal(t, "Unsupported git provider or invalid URL", err.Error())
	})

	t.Run("should reject a known but unregistered provider", func(t *testing.T) {
		reg := NewVCSProviderRegistry()
		require.NoError(t, reg.Register(models.ProviderGitHub, &stubFactory{name: "github"}))

		_, err := reg.ClientFor(models.ParsedReference{Provider: models.ProviderBitbucket}, &config.Config{})

		require.Error(t, err)
		assert.Equal(t, "Unsupported git provider or invalid URL", err.Error())
	})
}
