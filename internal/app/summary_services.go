package app

import (
	"context"
	"fmt"
	"time"

	"summary_service/internal/domain/summaries"
	"summary_service/internal/pkg/logger"
)

// summaryCreationService implements the SummaryCreationService interface for storing new summaries
type summaryCreationService struct {
	summaryRepo summaries.SummaryRepository
	logger      logger.Logger
}

// NewSummaryCreationService creates a new summaryCreationService instance
func NewSummaryCreationService(
	summaryRepo summaries.SummaryRepository,
	logger logger.Logger,
) (summaries.SummaryCreationService, error) {
	return &summaryCreationService{
		summaryRepo: summaryRepo,
		logger:      logger,
	}, nil
}

// Create stores a new summary for the given URL.
// It returns the stored Summary with its server-assigned ID and any error
// encountered during the creation process.
func (s *summaryCreationService) Create(ctx context.Context, url string) (*summaries.Summary, error) {
	summary := &summaries.Summary{
		URL:             url,
		SummaryText:     generateSummaryText(url),
		DateTimeCreated: time.Now().UTC(),
	}

	if err := s.summaryRepo.Create(ctx, summary); err != nil {
		return nil, fmt.Errorf("failed to store summary: %w", err)
	}

	return summary, nil
}

// generateSummaryText produces the stored summary content for a URL.
// TODO: replace with a real summarizer once the URL content extraction
// pipeline lands; until then the content is a fixed placeholder.
func generateSummaryText(url string) string {
	return fmt.Sprintf("Summary for %s is being generated.", url)
}

// summaryMetadataService implements the SummaryMetadataService interface for reading and deleting summaries
type summaryMetadataService struct {
	summaryRepo summaries.SummaryRepository
	logger      logger.Logger
}

// NewSummaryMetadataService creates a new summaryMetadataService instance
func NewSummaryMetadataService(
	summaryRepo summaries.SummaryRepository,
	logger logger.Logger,
) (summaries.SummaryMetadataService, error) {
	return &summaryMetadataService{
		summaryRepo: summaryRepo,
		logger:      logger,
	}, nil
}

// List retrieves all summaries considering a query filter when set.
func (s *summaryMetadataService) List(ctx context.Context, query *summaries.SummaryQuery) ([]*summaries.Summary, error) {
	if query == nil {
		query = summaries.NewSummaryQuery()
	}

	summaryList, err := s.summaryRepo.List(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return summaryList, nil
}

// GetByID retrieves a summary by its unique ID.
func (s *summaryMetadataService) GetByID(ctx context.Context, summaryID int64) (*summaries.Summary, error) {
	summary, err := s.summaryRepo.GetByID(ctx, summaryID)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return summary, nil
}

// DeleteByID deletes a summary by ID.
func (s *summaryMetadataService) DeleteByID(ctx context.Context, summaryID int64) error {
	if err := s.summaryRepo.DeleteByID(ctx, summaryID); err != nil {
		return fmt.Errorf("%w", err)
	}

	s.logger.Infow("Deleted summary", "id", summaryID)
	return nil
}
