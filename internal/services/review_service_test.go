package services

import (
	"context"
	"testing"

	"github.com/Tomas-vilte/MateReview/internal/config"
	domainerrors "github.com/Tomas-vilte/MateReview/internal/domain/errors"
	"github.com/Tomas-vilte/MateReview/internal/domain/models"
	"github.com/Tomas-vilte/MateReview/internal/domain/ports"
	"github.com/Tomas-vilte/MateReview/internal/infrastructure/vcs/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type fixedClientFactory struct {
	client ports.VCSClient
}

func (f *fixedClientFactory) CreateClient(cfg *config.Config) (ports.VCSClient, error) {
	return f.client, nil
}

func (f *fixedClientFactory) Name() string { return "github" }

func newTestService(t *testing.T, client ports.VCSClient, generator ports.ReviewGenerator) *ReviewService {
	t.Helper()
	reg := registry.NewVCSProviderRegistry()
	require.NoError(t, reg.Register(models.ProviderGitHub, &fixedClientFactory{client: client}))
	return NewReviewService(reg, generator, &config.Config{})
}

func successGenerator(review string) *MockReviewGenerator {
	gen := &MockReviewGenerator{}
	gen.On("GenerateReview", mock.Anything, mock.Anything, mock.Anything).
		Return(models.ReviewResult{Review: review})
	gen.On("GenerateInlineComments", mock.Anything, mock.Anything).
		Return(models.InlineCommentsResult{Comments: []string{"line one", "line two"}})
	return gen
}

func TestReviewService_ReviewFromURL(t *testing.T) {
	prURL := "https://github.com/test-owner/test-repo/pull/123"

	t.Run("should produce a full report on the happy path", func(t *testing.T) {
		client := &MockVCSClient{}
		client.On("FetchDetails", mock.Anything, mock.Anything).
			Return(models.PRDetails{Title: "Fix bug", Author: "octocat"}, nil)
		client.On("FetchDiff", mock.Anything, mock.Anything).
			Return("diff --git a/x b/x\n", nil)

		gen := successGenerator("This change is good and clean.")
		service := newTestService(t, client, gen)

		report, err := service.ReviewFromURL(context.Background(), prURL)

		require.NoError(t, err)
		assert.Equal(t, "Fix bug", report.PRDetails.Title)
		assert.Equal(t, "This change is good and clean.", report.Review)
		assert.Equal(t, []string{"line one", "line two"}, report.InlineComments)
		assert.Equal(t, 100, report.PRScore)
		assert.Equal(t, []string{"No specific code suggestions found in the review."}, report.Suggestions)
		client.AssertExpectations(t)
		gen.AssertExpectations(t)
	})

	t.Run("should reject an unsupported url without calling any client", func(t *testing.T) {
		client := &MockVCSClient{}
		service := newTestService(t, client, successGenerator("ok"))

		_, err := service.ReviewFromURL(context.Background(), "https://example.com/not/a/pr")

		require.Error(t, err)
		assert.Equal(t, "Unsupported git provider or invalid URL", err.Error())
		client.AssertNotCalled(t, "FetchDetails")
		client.AssertNotCalled(t, "FetchDiff")
	})

	t.Run("should treat a diff failure as terminal", func(t *testing.T) {
		client := &MockVCSClient{}
		client.On("FetchDetails", mock.Anything, mock.Anything).
			Return(models.PRDetails{Title: "Fix bug"}, nil)
		client.On("FetchDiff", mock.Anything, mock.Anything).
			Return("", domainerrors.NewDiffFetchError("Error: Failed to fetch diff - 500. Using alternative method."))

		gen := &MockReviewGenerator{}
		service := newTestService(t, client, gen)

		_, err := service.ReviewFromURL(context.Background(), prURL)

		require.Error(t, err)
		assert.Equal(t, "Error: Failed to fetch diff - 500. Using alternative method.", err.Error())
		gen.AssertNotCalled(t, "GenerateReview")
	})

	t.Run("should continue with placeholder metadata when details fail", func(t *testing.T) {
		client := &MockVCSClient{}
		client.On("FetchDetails", mock.Anything, mock.Anything).
			Return(models.PRDetails{}, domainerrors.NewProviderAPIError("PR", 500, ""))
		client.On("FetchDiff", mock.Anything, mock.Anything).
			Return("diff --git a/x b/x\n", nil)

		service := newTestService(t, client, successGenerator("Looks fine."))

		report, err := service.ReviewFromURL(context.Background(), prURL)

		require.NoError(t, err)
		assert.Equal(t, "PR Review for "+prURL, report.PRDetails.Title)
		assert.Equal(t, "Unable to fetch full PR details. Proceeding with diff analysis only.", report.PRDetails.Description)
		assert.Equal(t, "Unknown", report.PRDetails.Author)
		assert.Equal(t, "unknown", report.PRDetails.State)
	})

	t.Run("should surface a generation failure inside the report", func(t *testing.T) {
		client := &MockVCSClient{}
		client.On("FetchDetails", mock.Anything, mock.Anything).
			Return(models.PRDetails{Title: "Fix bug"}, nil)
		client.On("FetchDiff", mock.Anything, mock.Anything).
			Return("diff --git a/x b/x\n", nil)

		gen := &MockReviewGenerator{}
		gen.On("GenerateReview", mock.Anything, mock.Anything, mock.Anything).
			Return(models.ReviewResult{Err: "Error generating review: quota exceeded"})
		gen.On("GenerateInlineComments", mock.Anything, mock.Anything).
			Return(models.InlineCommentsResult{Err: "Error generating inline comments: quota exceeded"})

		service := newTestService(t, client, gen)

		report, err := service.ReviewFromURL(context.Background(), prURL)

		require.NoError(t, err)
		assert.Equal(t, "Error generating review: quota exceeded", report.Review)
		assert.Equal(t, []string{"Error generating inline comments: quota exceeded"}, report.InlineComments)
	})
}

func TestReviewService_ReviewFromDiff(t *testing.T) {
	t.Run("should use fixed synthetic metadata", func(t *testing.T) {
		gen := successGenerator("Reviewed the uploaded diff, all good.")
		service := newTestService(t, &MockVCSClient{}, gen)

		report := service.ReviewFromDiff(context.Background(), "diff --git a/x b/x\n")

		assert.Equal(t, "Uploaded Diff Review", report.PRDetails.Title)
		assert.Equal(t, "This review was generated from directly uploaded diff content.", report.PRDetails.Description)
		assert.Equal(t, "User", report.PRDetails.Author)
		assert.Equal(t, "uploaded", report.PRDetails.State)
		assert.Equal(t, "Reviewed the uploaded diff, all good.", report.Review)
	})

	t.Run("should pass the diff through to the generator", func(t *testing.T) {
		diff := "diff --git a/y b/y\n+new line\n"
		gen := &MockReviewGenerator{}
		gen.On("GenerateReview", mock.Anything, mock.Anything, diff).
			Return(models.ReviewResult{Review: "ok"})
		gen.On("GenerateInlineComments", mock.Anything, diff).
			Return(models.InlineCommentsResult{Comments: []string{"ok"}})

		service := newTestService(t, &MockVCSClient{}, gen)

		service.ReviewFromDiff(context.Background(), diff)

		gen.AssertExpectations(t)
	})
}
