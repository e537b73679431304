package analyzer

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samboofficeota-hue/finance-analysis/internal/external/edinet"
	"github.com/samboofficeota-hue/finance-analysis/pkg/config"
	"github.com/samboofficeota-hue/finance-analysis/pkg/httputil"
	"github.com/samboofficeota-hue/finance-analysis/pkg/logger"
)

// upstreamStub fakes the EDINET DB API and counts requests.
type upstreamStub struct {
	hits    atomic.Int64
	handler http.HandlerFunc
}

func (s *upstreamStub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.hits.Add(1)
	w.Header().Set("Content-Type", "application/json")
	s.handler(w, r)
}

// newTestAnalyzer wires a real analyzer against a fake upstream.
func newTestAnalyzer(t *testing.T, handler http.HandlerFunc) (*Analyzer, *upstreamStub) {
	t.Helper()

	stub := &upstreamStub{handler: handler}
	server := httptest.NewServer(stub)
	t.Cleanup(server.Close)

	cfg := &config.Config{
		Env:       "development",
		LogLevel:  "error",
		LogFormat: "json",
		EDINET: config.EDINETConfig{
			APIKey:    "edb_test_key",
			BaseURL:   server.URL,
			Timeout:   5 * time.Second,
			RateLimit: 100,
		},
	}
	log := logger.New(cfg)
	client := edinet.NewClient(cfg.EDINET, httputil.New(cfg, log), log)
	return New(client, log), stub
}

func TestSearchValidation(t *testing.T) {
	a, stub := newTestAnalyzer(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"companies":[]}`))
	})

	tests := []struct {
		name    string
		perPage int
		page    int
	}{
		{"per_page zero", 0, 1},
		{"per_page over 100", 101, 1},
		{"page zero", 10, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := a.Search(context.Background(), "任天堂", tt.perPage, tt.page)
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
		})
	}

	assert.Zero(t, stub.hits.Load(), "validation errors must not reach upstream")
}

func TestRankingInvalidMetricFailsBeforeUpstream(t *testing.T) {
	a, stub := newTestAnalyzer(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"ranking":[]}`))
	})

	_, err := a.Ranking(context.Background(), "invalid_metric", 10, "desc")

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Zero(t, stub.hits.Load(), "invalid metric must not be forwarded upstream")
}

func TestRankingOrderAndLimitValidation(t *testing.T) {
	a, stub := newTestAnalyzer(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"ranking":[]}`))
	})

	var verr *ValidationError

	_, err := a.Ranking(context.Background(), "roe", 0, "desc")
	require.ErrorAs(t, err, &verr)

	_, err = a.Ranking(context.Background(), "roe", 101, "desc")
	require.ErrorAs(t, err, &verr)

	_, err = a.Ranking(context.Background(), "roe", 10, "sideways")
	require.ErrorAs(t, err, &verr)

	assert.Zero(t, stub.hits.Load())
}

func TestRankingValidRequest(t *testing.T) {
	a, stub := newTestAnalyzer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/rankings/roe", r.URL.Path)
		_, _ = w.Write([]byte(`{"ranking":[{"name":"任天堂株式会社","edinet_code":"E02367","value":15.8}]}`))
	})

	doc, err := a.Ranking(context.Background(), "roe", 10, "desc")
	require.NoError(t, err)
	assert.Equal(t, int64(1), stub.hits.Load())

	entries := edinet.ParseRankingEntries(doc)
	require.Len(t, entries, 1)
	assert.Equal(t, "E02367", entries[0].EDINETCode)
}

func TestFinancialsAppliesWindow(t *testing.T) {
	a, _ := newTestAnalyzer(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data":[
			{"fiscal_period":"2024年3月期","roe":15.8},
			{"fiscal_period":"2023年3月期","roe":14.2},
			{"fiscal_period":"2022年3月期","roe":20.1}
		],"edinet_code":"E02367"}`))
	})

	result, err := a.Financials(context.Background(), "E02367", 2)
	require.NoError(t, err)
	require.Len(t, result.Financials, 2)
	assert.Equal(t, "2024年3月期", result.Financials[0].FiscalPeriod)
	assert.Equal(t, "2023年3月期", result.Financials[1].FiscalPeriod)

	// Sibling fields still present on the wire document
	assert.Equal(t, "E02367", result.Document()["edinet_code"])
}

func TestFinancialsWithoutYearsReturnsAllPeriods(t *testing.T) {
	a, _ := newTestAnalyzer(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"financials":[
			{"fiscal_period":"2024年3月期"},
			{"fiscal_period":"2023年3月期"}
		]}`))
	})

	result, err := a.Financials(context.Background(), "E02367", 0)
	require.NoError(t, err)
	assert.Len(t, result.Financials, 2)
}
