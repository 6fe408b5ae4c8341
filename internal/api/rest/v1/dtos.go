package v1

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// ErrorResponse is the JSON body returned for failed requests
type ErrorResponse struct {
	Message string `json:"message"`
}

// InfoResponse is the JSON body returned for informational results
type InfoResponse struct {
	Message string `json:"message"`
}

// PingResponse is the health-check payload reporting the resolved environment
type PingResponse struct {
	Ping        string `json:"ping"`
	Environment string `json:"environment"`
	Testing     bool   `json:"testing"`
}

// SummaryPayload is the request body for creating a summary
type SummaryPayload struct {
	URL string `json:"url" validate:"required,url,max=2048"`
}

// Validate checks that the payload fields are valid
func (p *SummaryPayload) Validate() error {
	validate := validator.New()

	err := validate.Struct(p)
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

// SummaryResponse is the creation response carrying the server-assigned ID
type SummaryResponse struct {
	ID  int64  `json:"id"`
	URL string `json:"url"`
}

// SummaryDetailResponse is the full representation of a stored summary
type SummaryDetailResponse struct {
	ID              int64     `json:"id"`
	URL             string    `json:"url"`
	Summary         string    `json:"summary"`
	DateTimeCreated time.Time `json:"date_time_created"`
}
