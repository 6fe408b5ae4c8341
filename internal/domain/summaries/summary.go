package summaries

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// Sort constants for summary list queries
const (
	SortByID              = "id"
	SortByURL             = "url"
	SortByDateTimeCreated = "date_time_created"

	SortOrderAsc  = "asc"
	SortOrderDesc = "desc"
)

// DefaultListLimit caps list responses when no limit is requested
const DefaultListLimit = 50

// Summary entity
type Summary struct {
	ID              int64     `validate:"min=0"`
	URL             string    `validate:"required,url,max=2048"`
	SummaryText     string    `validate:"omitempty,max=10000"`
	DateTimeCreated time.Time `validate:"required"`
}

// Validate for validating Summary struct
func (s *Summary) Validate() error {
	validate := validator.New()

	err := validate.Struct(s)
	if err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			var messages []string
			for _, fieldErr := range validationErrors {
				messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
			}
			return fmt.Errorf("validation failed: %v", messages)
		}
		return fmt.Errorf("validation error: %w", err)
	}

	return nil
}

// SummaryQuery holds filter, pagination and sorting options for listing summaries
type SummaryQuery struct {
	URL             string    `validate:"omitempty,url"`
	DateTimeCreated time.Time // entries created at or after this time when set
	Limit           int       `validate:"min=0,max=500"`
	Offset          int       `validate:"min=0"`
	SortBy          string    `validate:"omitempty,oneof=id url date_time_created"`
	SortOrder       string    `validate:"omitempty,oneof=asc desc"`
}

// NewSummaryQuery creates a SummaryQuery with default pagination
func NewSummaryQuery() *SummaryQuery {
	return &SummaryQuery{
		Limit:     DefaultListLimit,
		SortBy:    SortByID,
		SortOrder: SortOrderAsc,
	}
}

// Validate for validating SummaryQuery struct
func (q *SummaryQuery) Validate() error {
	validate := validator.New()

	if err := validate.Struct(q); err != nil {
		return fmt.Errorf("validation failed for SummaryQuery: %w", err)
	}

	return nil
}
