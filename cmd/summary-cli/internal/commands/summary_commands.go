package commands

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"summary_service/internal/pkg/logger"

	"github.com/spf13/cobra"
)

// DefaultAPIURL is the API base used when --api-url is not set
const DefaultAPIURL = "http://localhost:8000"

// SummaryCommandHandler encapsulates logic for talking to the summary REST API via CLI.
type SummaryCommandHandler struct {
	client *http.Client
	logger logger.Logger
}

// NewSummaryCommandHandler initializes and returns a SummaryCommandHandler instance
// with a configured logger and HTTP client.
func NewSummaryCommandHandler() (*SummaryCommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	return &SummaryCommandHandler{
		client: &http.Client{Timeout: 30 * time.Second},
		logger: loggerInstance,
	}, nil
}

// PingCmd checks service health and reports the environment it runs in
func (commandHandler *SummaryCommandHandler) PingCmd(cmd *cobra.Command, _ []string) {
	apiURL, err := cmd.Flags().GetString("api-url")
	if err != nil {
		commandHandler.logger.Error("invalid api-url flag ", err)
		return
	}

	body, err := commandHandler.get(apiURL + "/ping")
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	commandHandler.logger.Info("Health check response: ", string(body))
}

// CreateSummaryCmd stores a new summary for a URL
func (commandHandler *SummaryCommandHandler) CreateSummaryCmd(cmd *cobra.Command, _ []string) {
	apiURL, err := cmd.Flags().GetString("api-url")
	if err != nil {
		commandHandler.logger.Error("invalid api-url flag ", err)
		return
	}
	sourceURL, err := cmd.Flags().GetString("url")
	if err != nil {
		commandHandler.logger.Error("invalid url flag ", err)
		return
	}

	payload, err := json.Marshal(map[string]string{"url": sourceURL})
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	resp, err := commandHandler.client.Post(apiURL+"/api/v1/summaries", "application/json", bytes.NewReader(payload))
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}
	defer closeBody(resp.Body, commandHandler.logger)

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	if resp.StatusCode != http.StatusCreated {
		commandHandler.logger.Error("unexpected status ", resp.Status, ": ", string(body))
		return
	}

	commandHandler.logger.Info("Created summary: ", string(body))
}

// ListSummariesCmd lists stored summaries with optional pagination
func (commandHandler *SummaryCommandHandler) ListSummariesCmd(cmd *cobra.Command, _ []string) {
	apiURL, err := cmd.Flags().GetString("api-url")
	if err != nil {
		commandHandler.logger.Error("invalid api-url flag ", err)
		return
	}
	limit, err := cmd.Flags().GetInt("limit")
	if err != nil {
		commandHandler.logger.Error("invalid limit flag ", err)
		return
	}
	offset, err := cmd.Flags().GetInt("offset")
	if err != nil {
		commandHandler.logger.Error("invalid offset flag ", err)
		return
	}

	requestURL := fmt.Sprintf("%s/api/v1/summaries?limit=%d&offset=%d", apiURL, limit, offset)
	body, err := commandHandler.get(requestURL)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	commandHandler.logger.Info("Summaries: ", string(body))
}

// GetSummaryCmd fetches a single summary by ID
func (commandHandler *SummaryCommandHandler) GetSummaryCmd(cmd *cobra.Command, _ []string) {
	apiURL, err := cmd.Flags().GetString("api-url")
	if err != nil {
		commandHandler.logger.Error("invalid api-url flag ", err)
		return
	}
	summaryID, err := cmd.Flags().GetInt64("id")
	if err != nil {
		commandHandler.logger.Error("invalid id flag ", err)
		return
	}

	body, err := commandHandler.get(fmt.Sprintf("%s/api/v1/summaries/%d", apiURL, summaryID))
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	commandHandler.logger.Info("Summary: ", string(body))
}

// DeleteSummaryCmd deletes a summary by ID
func (commandHandler *SummaryCommandHandler) DeleteSummaryCmd(cmd *cobra.Command, _ []string) {
	apiURL, err := cmd.Flags().GetString("api-url")
	if err != nil {
		commandHandler.logger.Error("invalid api-url flag ", err)
		return
	}
	summaryID, err := cmd.Flags().GetInt64("id")
	if err != nil {
		commandHandler.logger.Error("invalid id flag ", err)
		return
	}

	requestURL := fmt.Sprintf("%s/api/v1/summaries/%d", apiURL, summaryID)
	req, err := http.NewRequest(http.MethodDelete, requestURL, nil)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	resp, err := commandHandler.client.Do(req)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}
	defer closeBody(resp.Body, commandHandler.logger)

	if resp.StatusCode != http.StatusNoContent {
		body, _ := io.ReadAll(resp.Body)
		commandHandler.logger.Error("unexpected status ", resp.Status, ": ", string(body))
		return
	}

	commandHandler.logger.Info("Deleted summary with id ", summaryID)
}

// get issues a GET request and returns the response body for 200 responses
func (commandHandler *SummaryCommandHandler) get(requestURL string) ([]byte, error) {
	resp, err := commandHandler.client.Get(requestURL)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer closeBody(resp.Body, commandHandler.logger)

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %s: %s", resp.Status, string(body))
	}

	return body, nil
}

func closeBody(body io.ReadCloser, log logger.Logger) {
	if err := body.Close(); err != nil {
		log.Warn("failed to close response body ", err)
	}
}

// InitSummaryCommands registers summary-related commands
func InitSummaryCommands(rootCmd *cobra.Command) error {
	handler, err := NewSummaryCommandHandler()

	if err != nil {
		return fmt.Errorf("failed to create summary command handler %w", err)
	}

	var pingCmd = &cobra.Command{
		Use:   "ping",
		Short: "Check service health",
		Run:   handler.PingCmd,
	}
	pingCmd.Flags().StringP("api-url", "", DefaultAPIURL, "Base URL of the summary REST API")
	rootCmd.AddCommand(pingCmd)

	var createSummaryCmd = &cobra.Command{
		Use:   "create-summary",
		Short: "Create a summary for a URL",
		Run:   handler.CreateSummaryCmd,
	}
	createSummaryCmd.Flags().StringP("api-url", "", DefaultAPIURL, "Base URL of the summary REST API")
	createSummaryCmd.Flags().StringP("url", "", "", "URL to summarize")
	rootCmd.AddCommand(createSummaryCmd)

	var listSummariesCmd = &cobra.Command{
		Use:   "list-summaries",
		Short: "List stored summaries",
		Run:   handler.ListSummariesCmd,
	}
	listSummariesCmd.Flags().StringP("api-url", "", DefaultAPIURL, "Base URL of the summary REST API")
	listSummariesCmd.Flags().IntP("limit", "", 50, "Limit the number of results")
	listSummariesCmd.Flags().IntP("offset", "", 0, "Offset the results")
	rootCmd.AddCommand(listSummariesCmd)

	var getSummaryCmd = &cobra.Command{
		Use:   "get-summary",
		Short: "Fetch a summary by ID",
		Run:   handler.GetSummaryCmd,
	}
	getSummaryCmd.Flags().StringP("api-url", "", DefaultAPIURL, "Base URL of the summary REST API")
	getSummaryCmd.Flags().Int64P("id", "", 0, "Summary ID")
	rootCmd.AddCommand(getSummaryCmd)

	var deleteSummaryCmd = &cobra.Command{
		Use:   "delete-summary",
		Short: "Delete a summary by ID",
		Run:   handler.DeleteSummaryCmd,
	}
	deleteSummaryCmd.Flags().StringP("api-url", "", DefaultAPIURL, "Base URL of the summary REST API")
	deleteSummaryCmd.Flags().Int64P("id", "", 0, "Summary ID")
	rootCmd.AddCommand(deleteSummaryCmd)

	return nil
}
