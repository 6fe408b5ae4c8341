package models

import (
	"time"

	"summary_service/internal/domain/summaries"
)

// SummaryModel is the GORM database model for summaries (infrastructure concern)
type SummaryModel struct {
	ID              int64     `gorm:"primaryKey;autoIncrement"`
	URL             string    `gorm:"not null;index;type:varchar(2048)"`
	SummaryText     string    `gorm:"type:text"`
	DateTimeCreated time.Time `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (SummaryModel) TableName() string {
	return "text_summaries"
}

// ToDomain converts GORM model to domain entity
func (m *SummaryModel) ToDomain() *summaries.Summary {
	return &summaries.Summary{
		ID:              m.ID,
		URL:             m.URL,
		SummaryText:     m.SummaryText,
		DateTimeCreated: m.DateTimeCreated,
	}
}

// FromDomain converts domain entity to GORM model
func (m *SummaryModel) FromDomain(s *summaries.Summary) {
	m.ID = s.ID
	m.URL = s.URL
	m.SummaryText = s.SummaryText
	m.DateTimeCreated = s.DateTimeCreated
}
