package di

import (
	"testing"

	"github.com/Tomas-vilte/MateReview/internal/config"
	"github.com/Tomas-vilte/MateReview/internal/domain/models"
	"github.com/Tomas-vilte/MateReview/internal/domain/ports"
	"github.com/Tomas-vilte/MateReview/internal/i18n"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type noopFactory struct{}

func (f *noopFactory) CreateClient(cfg *config.Config) (ports.VCSClient, error) {
	return nil, nil
}

func (f *noopFactory) Name() string { return "github" }

func newTestContainer(t *testing.T) *Container {
	t.Helper()
	trans, err := i18n.NewTranslations("en", t.TempDir())
	require.NoError(t, err)
	return NewContainer(&config.Config{Host: "0.0.0.0", Port: 5000, Language: "en"}, trans)
}

func TestContainer_RegisterVCSProvider(t *testing.T) {
	c := newTestContainer(t)

	require.NoError(t, c.RegisterVCSProvider(models.ProviderGitHub, &noopFactory{}))
	assert.True(t, c.GetVCSRegistry().IsRegistered(models.ProviderGitHub))

	assert.Error(t, c.RegisterVCSProvider(models.ProviderGitHub, &noopFactory{}))
}

func TestContainer_GetReviewService(t *testing.T) {
	c := newTestContainer(t)

	first := c.GetReviewService()
	second := c.GetReviewService()

	require.NotNil(t, first)
	assert.Same(t, first, second)
}

func TestContainer_GetTranslations(t *testing.T) {
	c := newTestContainer(t)

	assert.NotNil(t, c.GetTranslations())
	assert.NotNil(t, c.GetVCSRegistry())
}
