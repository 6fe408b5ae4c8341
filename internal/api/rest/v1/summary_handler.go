package v1

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"summary_service/internal/domain/summaries"
	"summary_service/internal/pkg/utils"

	"github.com/gin-gonic/gin"
)

// SummaryHandler defines the interface for handling summary-related operations
type SummaryHandler interface {
	Create(ctx *gin.Context)
	ListMetadata(ctx *gin.Context)
	GetByID(ctx *gin.Context)
	DeleteByID(ctx *gin.Context)
}

// SummaryHandler struct holds the services
type summaryHandler struct {
	summaryCreationService summaries.SummaryCreationService
	summaryMetadataService summaries.SummaryMetadataService
}

// NewSummaryHandler creates a new SummaryHandler
func NewSummaryHandler(summaryCreationService summaries.SummaryCreationService, summaryMetadataService summaries.SummaryMetadataService) SummaryHandler {
	return &summaryHandler{
		summaryCreationService: summaryCreationService,
		summaryMetadataService: summaryMetadataService,
	}
}

// Create handles the POST request to store a new summary
// @Summary Create a summary for a URL
// @Description Store a new summary record for the provided URL and return its server-assigned ID.
// @Tags Summary
// @Accept json
// @Produce json
// @Param requestBody body SummaryPayload true "Summary Data"
// @Success 201 {object} SummaryResponse
// @Failure 400 {object} ErrorResponse
// @Router /summaries [post]
func (handler *summaryHandler) Create(ctx *gin.Context) {

	var payload SummaryPayload

	if err := ctx.ShouldBindJSON(&payload); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("invalid summary data: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	if err := payload.Validate(); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("validation failed: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	summary, err := handler.summaryCreationService.Create(ctx, payload.URL)
	if err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("error creating summary: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	ctx.JSON(http.StatusCreated, SummaryResponse{
		ID:  summary.ID,
		URL: summary.URL,
	})
}

// ListMetadata handles the GET request to list summaries with optional query parameters
// @Summary List summaries based on query parameters
// @Description Fetch a list of summaries filtered by URL and creation date, with pagination and sorting options.
// @Tags Summary
// @Accept json
// @Produce json
// @Param url query string false "Source URL"
// @Param dateTimeCreated query string false "Creation Date (RFC3339)"
// @Param limit query int false "Limit the number of results"
// @Param offset query int false "Offset the results"
// @Param sortBy query string false "Sort by a specific field"
// @Param sortOrder query string false "Sort order (asc/desc)"
// @Success 200 {array} SummaryDetailResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /summaries [get]
func (handler *summaryHandler) ListMetadata(ctx *gin.Context) {
	query := summaries.NewSummaryQuery()

	if sourceURL := ctx.Query("url"); len(sourceURL) > 0 {
		query.URL = sourceURL
	}

	if dateTimeCreated := ctx.Query("dateTimeCreated"); len(dateTimeCreated) > 0 {
		parsedTime, err := time.Parse(time.RFC3339, dateTimeCreated)
		if err != nil {
			var errorResponse ErrorResponse
			errorResponse.Message = fmt.Sprintf("invalid dateTimeCreated %q: expected RFC3339", dateTimeCreated)
			ctx.JSON(http.StatusBadRequest, errorResponse)
			return
		}
		query.DateTimeCreated = parsedTime
	}

	if limit := ctx.Query("limit"); len(limit) > 0 {
		query.Limit = utils.ConvertToInt(limit)
	}

	if offset := ctx.Query("offset"); len(offset) > 0 {
		query.Offset = utils.ConvertToInt(offset)
	}

	if sortBy := ctx.Query("sortBy"); len(sortBy) > 0 {
		query.SortBy = sortBy
	}

	if sortOrder := ctx.Query("sortOrder"); len(sortOrder) > 0 {
		query.SortOrder = sortOrder
	}

	if err := query.Validate(); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("validation failed: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	summaryList, err := handler.summaryMetadataService.List(ctx, query)
	if err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("list query failed: %v", err.Error())
		ctx.JSON(http.StatusNotFound, errorResponse)
		return
	}

	var listResponse = []SummaryDetailResponse{}
	for _, summary := range summaryList {
		listResponse = append(listResponse, SummaryDetailResponse{
			ID:              summary.ID,
			URL:             summary.URL,
			Summary:         summary.SummaryText,
			DateTimeCreated: summary.DateTimeCreated,
		})
	}

	ctx.JSON(http.StatusOK, listResponse)
}

// GetByID handles the GET request to retrieve a summary by ID
// @Summary Retrieve a summary by ID
// @Description Fetch a stored summary by its numeric ID, including the summary text and creation date.
// @Tags Summary
// @Accept json
// @Produce json
// @Param id path int true "Summary ID"
// @Success 200 {object} SummaryDetailResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /summaries/{id} [get]
func (handler *summaryHandler) GetByID(ctx *gin.Context) {
	summaryID, err := parseSummaryID(ctx)
	if err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = err.Error()
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	summary, err := handler.summaryMetadataService.GetByID(ctx, summaryID)
	if err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("summary with id %d not found", summaryID)
		ctx.JSON(http.StatusNotFound, errorResponse)
		return
	}

	ctx.JSON(http.StatusOK, SummaryDetailResponse{
		ID:              summary.ID,
		URL:             summary.URL,
		Summary:         summary.SummaryText,
		DateTimeCreated: summary.DateTimeCreated,
	})
}

// DeleteByID handles the DELETE request to delete a summary by ID
// @Summary Delete a summary by ID
// @Description Delete a stored summary by its numeric ID.
// @Tags Summary
// @Accept json
// @Produce json
// @Param id path int true "Summary ID"
// @Success 204 {object} InfoResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /summaries/{id} [delete]
func (handler *summaryHandler) DeleteByID(ctx *gin.Context) {
	summaryID, err := parseSummaryID(ctx)
	if err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = err.Error()
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	if err := handler.summaryMetadataService.DeleteByID(ctx, summaryID); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("error deleting summary with id %d", summaryID)
		ctx.JSON(http.StatusNotFound, errorResponse)
		return
	}

	var infoResponse InfoResponse
	infoResponse.Message = fmt.Sprintf("deleted summary with id %d", summaryID)
	ctx.JSON(http.StatusNoContent, infoResponse)
}

// parseSummaryID extracts the numeric summary ID from the request path
func parseSummaryID(ctx *gin.Context) (int64, error) {
	raw := ctx.Param("id")
	summaryID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || summaryID < 1 {
		return 0, fmt.Errorf("invalid summary id %q", raw)
	}
	return summaryID, nil
}
