//go:build unit
// +build unit

package v1

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSummaryPayload_Validate(t *testing.T) {
	tests := []struct {
		name      string
		payload   SummaryPayload
		shouldErr bool
	}{
		{"valid https url", SummaryPayload{URL: "https://example.com/article"}, false},
		{"valid http url", SummaryPayload{URL: "http://example.com"}, false},
		{"missing url", SummaryPayload{}, true},
		{"not a url", SummaryPayload{URL: "definitely not a url"}, true},
		{"url above length cap", SummaryPayload{URL: "https://example.com/" + strings.Repeat("a", 2048)}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.payload.Validate()
			if tt.shouldErr {
				require.Error(t, err, "expected validation error")
			} else {
				require.NoError(t, err, "expected no validation error")
			}
		})
	}
}
