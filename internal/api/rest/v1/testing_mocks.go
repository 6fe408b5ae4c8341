//go:build unit
// +build unit

package v1

import (
	"context"

	"summary_service/internal/domain/summaries"

	"github.com/stretchr/testify/mock"
)

// MockSummaryCreationService is a mock implementation of SummaryCreationService
type MockSummaryCreationService struct {
	mock.Mock
}

func (m *MockSummaryCreationService) Create(ctx context.Context, url string) (*summaries.Summary, error) {
	args := m.Called(ctx, url)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*summaries.Summary), args.Error(1)
}

// MockSummaryMetadataService is a mock implementation of SummaryMetadataService
type MockSummaryMetadataService struct {
	mock.Mock
}

func (m *MockSummaryMetadataService) List(ctx context.Context, query *summaries.SummaryQuery) ([]*summaries.Summary, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*summaries.Summary), args.Error(1)
}

func (m *MockSummaryMetadataService) GetByID(ctx context.Context, summaryID int64) (*summaries.Summary, error) {
	args := m.Called(ctx, summaryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*summaries.Summary), args.Error(1)
}

func (m *MockSummaryMetadataService) DeleteByID(ctx context.Context, summaryID int64) error {
	args := m.Called(ctx, summaryID)
	return args.Error(0)
}
