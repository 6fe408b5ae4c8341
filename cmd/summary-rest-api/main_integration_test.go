//go:build integration
// +build integration

package main

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"summary_service/internal/infrastructure/persistence"
	"summary_service/internal/pkg/config"
	"summary_service/internal/pkg/testutil"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// The first request through the assembled router must already find a
// connected, migrated database: initializeDependencies completes the
// connection and schema migration before any route is bound.
func TestInitializeDependencies_RouterServesFirstRequest(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cfg := &config.RestConfig{
		Environment: config.EnvironmentDev,
		DatabaseURL: "sqlite://",
		Port:        config.DefaultPort,
		Logger: config.LoggerSettings{
			LogLevel: config.LogLevelInfo,
			LogType:  config.LogTypeConsole,
		},
	}
	require.NoError(t, cfg.Validate())

	log := testutil.SetupTestLogger(t)

	deps, err := initializeDependencies(cfg, log)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = persistence.CloseDB(deps.db)
	})

	r := newRouter(cfg, deps)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/v1/summaries", bytes.NewBufferString(`{"url": "https://example.com/article"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
	require.Contains(t, w.Body.String(), "https://example.com/article")

	w = httptest.NewRecorder()
	req, _ = http.NewRequest("GET", "/api/v1/summaries", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "https://example.com/article")
}

func TestInitializeDependencies_BadDatabaseURL(t *testing.T) {
	cfg := &config.RestConfig{
		Environment: config.EnvironmentDev,
		DatabaseURL: "mysql://localhost:3306/summaries",
		Port:        config.DefaultPort,
		Logger: config.LoggerSettings{
			LogLevel: config.LogLevelInfo,
			LogType:  config.LogTypeConsole,
		},
	}

	log := testutil.SetupTestLogger(t)

	_, err := initializeDependencies(cfg, log)
	require.Error(t, err)
}
