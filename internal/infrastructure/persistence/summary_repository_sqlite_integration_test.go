//go:build integration
// +build integration

package persistence

import (
	"context"
	"testing"
	"time"

	"summary_service/internal/domain/summaries"

	"github.com/stretchr/testify/require"
)

func TestGormSummaryRepository_CreateAssignsID(t *testing.T) {
	tc := SetupTestDB(t, SqliteScheme)
	ctx := context.Background()

	summary := CreateTestSummary(t, "https://example.com/article")

	err := tc.SummaryRepo.Create(ctx, summary)
	require.NoError(t, err)
	require.Greater(t, summary.ID, int64(0), "ID should be assigned by the database")
}

func TestGormSummaryRepository_GetByID(t *testing.T) {
	tc := SetupTestDB(t, SqliteScheme)
	ctx := context.Background()

	summary := CreateTestSummary(t, "https://example.com/article")
	require.NoError(t, tc.SummaryRepo.Create(ctx, summary))

	fetched, err := tc.SummaryRepo.GetByID(ctx, summary.ID)
	require.NoError(t, err)
	require.Equal(t, summary.ID, fetched.ID)
	require.Equal(t, summary.URL, fetched.URL)
	require.Equal(t, summary.SummaryText, fetched.SummaryText)
}

func TestGormSummaryRepository_GetByID_NotFound(t *testing.T) {
	tc := SetupTestDB(t, SqliteScheme)

	_, err := tc.SummaryRepo.GetByID(context.Background(), 9999)
	require.Error(t, err)
	require.Contains(t, err.Error(), "not found")
}

func TestGormSummaryRepository_List(t *testing.T) {
	tc := SetupTestDB(t, SqliteScheme)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		require.NoError(t, tc.SummaryRepo.Create(ctx, CreateTestSummary(t, "")))
	}

	query := summaries.NewSummaryQuery()
	list, err := tc.SummaryRepo.List(ctx, query)
	require.NoError(t, err)
	require.Len(t, list, 3)
}

func TestGormSummaryRepository_List_FiltersAndPagination(t *testing.T) {
	tc := SetupTestDB(t, SqliteScheme)
	ctx := context.Background()

	target := CreateTestSummary(t, "https://example.com/target")
	require.NoError(t, tc.SummaryRepo.Create(ctx, target))
	require.NoError(t, tc.SummaryRepo.Create(ctx, CreateTestSummary(t, "https://example.com/other")))

	byURL := summaries.NewSummaryQuery()
	byURL.URL = "https://example.com/target"
	list, err := tc.SummaryRepo.List(ctx, byURL)
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, target.ID, list[0].ID)

	paged := summaries.NewSummaryQuery()
	paged.Limit = 1
	paged.Offset = 1
	paged.SortBy = summaries.SortByID
	list, err = tc.SummaryRepo.List(ctx, paged)
	require.NoError(t, err)
	require.Len(t, list, 1)

	since := summaries.NewSummaryQuery()
	since.DateTimeCreated = time.Now().Add(time.Hour)
	list, err = tc.SummaryRepo.List(ctx, since)
	require.NoError(t, err)
	require.Empty(t, list)
}

func TestGormSummaryRepository_UpdateByID(t *testing.T) {
	tc := SetupTestDB(t, SqliteScheme)
	ctx := context.Background()

	summary := CreateTestSummary(t, "https://example.com/article")
	require.NoError(t, tc.SummaryRepo.Create(ctx, summary))

	summary.SummaryText = "updated summary text"
	require.NoError(t, tc.SummaryRepo.UpdateByID(ctx, summary))

	fetched, err := tc.SummaryRepo.GetByID(ctx, summary.ID)
	require.NoError(t, err)
	require.Equal(t, "updated summary text", fetched.SummaryText)
}

func TestGormSummaryRepository_DeleteByID(t *testing.T) {
	tc := SetupTestDB(t, SqliteScheme)
	ctx := context.Background()

	summary := CreateTestSummary(t, "https://example.com/article")
	require.NoError(t, tc.SummaryRepo.Create(ctx, summary))

	require.NoError(t, tc.SummaryRepo.DeleteByID(ctx, summary.ID))

	_, err := tc.SummaryRepo.GetByID(ctx, summary.ID)
	require.Error(t, err)

	// Deleting again reports not found
	err = tc.SummaryRepo.DeleteByID(ctx, summary.ID)
	require.Error(t, err)
}
