package services

import (
	"context"

	"github.com/Tomas-vilte/MateReview/internal/domain/models"
	"github.com/stretchr/testify/mock"
)

type MockVCSClient struct {
	mock.Mock
}

func (m *MockVCSClient) FetchDetails(ctx context.Context, ref models.ParsedReference) (models.PRDetails, error) {
	args := m.Called(ctx, ref)
	return args.Get(0).(models.PRDetails), args.Error(1)
}

func (m *MockVCSClient) FetchDiff(ctx context.Context, ref models.ParsedReference) (string, error) {
	args := m.Called(ctx, ref)
	return args.String(0), args.Error(1)
}

type MockReviewGenerator struct {
	mock.Mock
}

func (m *MockReviewGenerator) GenerateReview(ctx context.Context, details models.PRDetails, diff string) models.ReviewResult {
	args := m.Called(ctx, details, diff)
	return args.Get(0).(models.ReviewResult)
}

func (m *MockReviewGenerator) GenerateInlineComments(ctx context.Context, diff string) models.InlineCommentsResult {
	args := m.Called(ctx, diff)
	return args.Get(0).(models.InlineCommentsResult)
}
