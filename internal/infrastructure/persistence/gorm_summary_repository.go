package persistence

import (
	"context"
	"errors"
	"fmt"

	"summary_service/internal/domain/summaries"
	"summary_service/internal/infrastructure/persistence/models"
	"summary_service/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormSummaryRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormSummaryRepository creates a new GORM-based SummaryRepository implementation
func NewGormSummaryRepository(db *gorm.DB, logger logger.Logger) (summaries.SummaryRepository, error) {
	return &gormSummaryRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormSummaryRepository) Create(ctx context.Context, summary *summaries.Summary) error {
	if err := summary.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.SummaryModel{}
	model.FromDomain(summary)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create summary: %w", err)
	}

	// Propagate the DB-assigned identifier back to the domain entity
	summary.ID = model.ID

	r.logger.Infow("Created summary", "id", summary.ID)
	return nil
}

func (r *gormSummaryRepository) List(ctx context.Context, query *summaries.SummaryQuery) ([]*summaries.Summary, error) {
	if err := query.Validate(); err != nil {
		return nil, fmt.Errorf("invalid query parameters: %w", err)
	}

	var modelList []*models.SummaryModel
	dbQuery := r.db.WithContext(ctx).Model(&models.SummaryModel{})

	if query.URL != "" {
		dbQuery = dbQuery.Where("url = ?", query.URL)
	}
	if !query.DateTimeCreated.IsZero() {
		dbQuery = dbQuery.Where("date_time_created >= ?", query.DateTimeCreated)
	}

	if query.SortBy != "" {
		order := query.SortOrder
		if order == "" {
			order = summaries.SortOrderAsc
		}
		dbQuery = dbQuery.Order(fmt.Sprintf("%s %s", query.SortBy, order))
	}

	if query.Limit > 0 {
		dbQuery = dbQuery.Limit(query.Limit)
	}
	if query.Offset > 0 {
		dbQuery = dbQuery.Offset(query.Offset)
	}

	if err := dbQuery.Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch summaries: %w", err)
	}

	domainList := make([]*summaries.Summary, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}

	return domainList, nil
}

func (r *gormSummaryRepository) GetByID(ctx context.Context, summaryID int64) (*summaries.Summary, error) {
	var model models.SummaryModel
	if err := r.db.WithContext(ctx).Where("id = ?", summaryID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("summary with ID %d not found", summaryID)
		}
		return nil, fmt.Errorf("failed to fetch summary: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormSummaryRepository) UpdateByID(ctx context.Context, summary *summaries.Summary) error {
	if err := summary.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.SummaryModel{}
	model.FromDomain(summary)

	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		return fmt.Errorf("failed to update summary: %w", err)
	}

	r.logger.Infow("Updated summary", "id", summary.ID)
	return nil
}

func (r *gormSummaryRepository) DeleteByID(ctx context.Context, summaryID int64) error {
	result := r.db.WithContext(ctx).Where("id = ?", summaryID).Delete(&models.SummaryModel{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete summary: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("summary with ID %d not found", summaryID)
	}

	r.logger.Infow("Deleted summary", "id", summaryID)
	return nil
}
