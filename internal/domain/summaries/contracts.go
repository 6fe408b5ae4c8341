package summaries

import (
	"context"
)

// SummaryCreationService defines methods for creating summaries.
type SummaryCreationService interface {
	// Create stores a new summary for the given URL.
	// It returns the stored Summary with its server-assigned ID and any error
	// encountered during the creation process.
	Create(ctx context.Context, url string) (*Summary, error)
}

// SummaryMetadataService defines methods for reading and deleting summaries.
type SummaryMetadataService interface {
	// List retrieves all summaries considering a query filter when set.
	// It returns a slice of Summary and any error encountered during the retrieval process.
	List(ctx context.Context, query *SummaryQuery) ([]*Summary, error)

	// GetByID retrieves a summary by its unique ID.
	// It returns the Summary and any error encountered during the retrieval process.
	GetByID(ctx context.Context, summaryID int64) (*Summary, error)

	// DeleteByID deletes a summary by ID.
	// It returns any error encountered during the deletion process.
	DeleteByID(ctx context.Context, summaryID int64) error
}

// SummaryRepository defines the interface for Summary-related persistence operations
type SummaryRepository interface {
	Create(ctx context.Context, summary *Summary) error
	List(ctx context.Context, query *SummaryQuery) ([]*Summary, error)
	GetByID(ctx context.Context, summaryID int64) (*Summary, error)
	UpdateByID(ctx context.Context, summary *Summary) error
	DeleteByID(ctx context.Context, summaryID int64) error
}
