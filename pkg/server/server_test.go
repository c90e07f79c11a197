package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/fin-tools/tax-atlas/pkg/models/api"
	"github.com/fin-tools/tax-atlas/pkg/services/tax"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWebAPI_Endpoints(t *testing.T) {
	logger := zerolog.New(zerolog.NewTestWriter(nil))

	config := Config{
		Addr:            ":8080",
		ShutdownTimeout: 10 * time.Second,
		Dependencies: Dependencies{
			Planner: tax.NewEngine(tax.DefaultCatalog()),
			Logger:  logger,
		},
	}
	router := ConfigureRouter(config)
	testServer := httptest.NewServer(router)
	defer testServer.Close()

	tests := []struct {
		name           string
		path           string
		body           string
		expectedStatus int
		check          func(t *testing.T, body []byte)
	}{
		{
			name:           "calculate old regime",
			path:           "/api/v1/tax/calculate",
			body:           `{"income":600000,"deductions":{"80C":150000,"80D":25000},"regime":"old"}`,
			expectedStatus: http.StatusOK,
			check: func(t *testing.T, body []byte) {
				var result api.TaxResult
				require.NoError(t, json.Unmarshal(body, &result))
				assert.Equal(t, 425000.0, result.TaxableIncome)
				assert.InDelta(t, 9100.0, result.TotalTax, 1e-9)
			},
		},
		{
			name:           "calculate rejects unknown regime",
			path:           "/api/v1/tax/calculate",
			body:           `{"income":600000,"regime":"flat"}`,
			expectedStatus: http.StatusBadRequest,
			check: func(t *testing.T, body []byte) {
				var apiErr api.Error
				require.NoError(t, json.Unmarshal(body, &apiErr))
				assert.Equal(t, "invalid_regime", apiErr.Kind)
			},
		},
		{
			name:           "compare recommends cheaper regime",
			path:           "/api/v1/tax/compare",
			body:           `{"income":900000}`,
			expectedStatus: http.StatusOK,
			check: func(t *testing.T, body []byte) {
				var cmp api.RegimeComparison
				require.NoError(t, json.Unmarshal(body, &cmp))
				assert.Equal(t, "new", cmp.RecommendedRegime)
				assert.InDelta(t, cmp.OldRegime.TotalTax-cmp.NewRegime.TotalTax, cmp.Savings, 1e-9)
			},
		},
		{
			name:           "compare rejects negative income",
			path:           "/api/v1/tax/compare",
			body:           `{"income":-1}`,
			expectedStatus: http.StatusBadRequest,
			check: func(t *testing.T, body []byte) {
				var apiErr api.Error
				require.NoError(t, json.Unmarshal(body, &apiErr))
				assert.Equal(t, "negative_amount", apiErr.Kind)
			},
		},
		{
			name:           "recommendations list headroom",
			path:           "/api/v1/tax/recommendations",
			body:           `{"income":600000,"deductions":{"80C":150000}}`,
			expectedStatus: http.StatusOK,
			check: func(t *testing.T, body []byte) {
				var recs []api.Recommendation
				require.NoError(t, json.Unmarshal(body, &recs))
				require.Len(t, recs, 3)
				assert.Equal(t, "80D", recs[0].Section)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := http.Post(testServer.URL+tt.path, "application/json", bytes.NewBufferString(tt.body))
			require.NoError(t, err)
			defer func() { _ = resp.Body.Close() }()

			body, err := io.ReadAll(resp.Body)
			require.NoError(t, err)
			require.Equal(t, tt.expectedStatus, resp.StatusCode, string(body))
			tt.check(t, body)
		})
	}
}
