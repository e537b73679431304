package handlers

import (
	"fmt"
	"net/http"

	"github.com/samboofficeota-hue/finance-analysis/internal/analyzer"
	"github.com/samboofficeota-hue/finance-analysis/internal/status"
	"github.com/samboofficeota-hue/finance-analysis/pkg/logger"
)

// Handlers bundles the HTTP handlers and their dependencies.
type Handlers struct {
	analyzer *analyzer.Analyzer
	monitor  *status.Monitor
	logger   *logger.Logger
}

// New creates the handler set.
func New(a *analyzer.Analyzer, m *status.Monitor, log *logger.Logger) *Handlers {
	return &Handlers{
		analyzer: a,
		monitor:  m,
		logger:   log,
	}
}

// indexHTML is the front page served at GET /.
const indexHTML = `<!DOCTYPE html>
<html lang="ja">
<head>
  <meta charset="utf-8">
  <title>EDINET財務分析API</title>
</head>
<body>
  <h1>EDINET財務分析API</h1>
  <p>上場企業の財務データの検索・比較・レーティング分析を提供します。</p>
  <p>エンドポイント一覧は <a href="/api-info">/api-info</a> を参照してください。</p>
</body>
</html>
`

// Index handles GET /
func (h *Handlers) Index(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	fmt.Fprint(w, indexHTML)
}

// Health handles GET /health
func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

// APIInfo handles GET /api-info and lists the available endpoints.
func (h *Handlers) APIInfo(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"name":    "EDINET財務分析API",
		"version": "1.0.0",
		"endpoints": []map[string]string{
			{"path": "/companies", "description": "企業検索・一覧 (query, per_page, page)"},
			{"path": "/companies/{code}", "description": "企業詳細"},
			{"path": "/companies/{code}/financials", "description": "財務データ (years)"},
			{"path": "/companies/{code}/analysis", "description": "財務分析レポート (years)"},
			{"path": "/rankings/{metric}", "description": "ランキング (limit, order)"},
			{"path": "/compare", "description": "複数企業の比較 (codes, years)"},
			{"path": "/api-status", "description": "上流APIの状態"},
			{"path": "/health", "description": "ヘルスチェック"},
		},
	})
}

// APIStatus handles GET /api-status. Returns the monitor's latest
// snapshot, probing live when no scheduled probe has completed yet.
func (h *Handlers) APIStatus(w http.ResponseWriter, r *http.Request) {
	snap := h.monitor.Latest()
	if snap == nil {
		snap = h.monitor.Check(r.Context())
	}
	respondJSON(w, http.StatusOK, snap)
}
