package analyzer

import (
	"context"
	"fmt"
	"strings"

	"github.com/samboofficeota-hue/finance-analysis/internal/external/edinet"
	"github.com/samboofficeota-hue/finance-analysis/pkg/logger"
)

// validMetrics are the ranking metrics the upstream API understands.
// それ以外の指標は上流に投げずに ValidationError にする。
var validMetrics = map[string]bool{
	"roe":              true,
	"roa":              true,
	"sales":            true,
	"market_cap":       true,
	"operating_income": true,
}

// ValidMetricNames returns the accepted ranking metrics for error messages
// and CLI help.
func ValidMetricNames() []string {
	return []string{"roe", "roa", "sales", "market_cap", "operating_income"}
}

// Analyzer is the shared service behind both the HTTP API and the CLI.
// 企業検索・財務取得・比較・分析をEDINETクライアントの上に束ねる。
type Analyzer struct {
	client *edinet.Client
	logger *logger.Logger
}

// New creates a new Analyzer.
func New(client *edinet.Client, log *logger.Logger) *Analyzer {
	return &Analyzer{
		client: client,
		logger: log,
	}
}

// Search searches companies by keyword, or lists companies without one.
func (a *Analyzer) Search(ctx context.Context, query string, perPage, page int) (edinet.Document, error) {
	if perPage < 1 || perPage > 100 {
		return nil, &ValidationError{Message: "per_page must be between 1 and 100"}
	}
	if page < 1 {
		return nil, &ValidationError{Message: "page must be 1 or greater"}
	}

	return a.client.SearchCompanies(ctx, query, perPage, page)
}

// CompanyInfo fetches the company detail document.
func (a *Analyzer) CompanyInfo(ctx context.Context, code string) (edinet.CompanyDetail, error) {
	return a.client.GetCompany(ctx, code)
}

// Financials fetches the financial time series, windowed to the most recent
// years periods when years > 0.
func (a *Analyzer) Financials(ctx context.Context, code string, years int) (*edinet.FinancialsResult, error) {
	result, err := a.client.GetFinancials(ctx, code)
	if err != nil {
		return nil, err
	}

	result.Financials = WindowPeriods(result.Financials, years)
	return result, nil
}

// Ranking fetches a metric ranking after validating the request.
// 検証エラーは上流呼び出しの前に返す。
func (a *Analyzer) Ranking(ctx context.Context, metric string, limit int, order string) (edinet.Document, error) {
	if !validMetrics[metric] {
		return nil, &ValidationError{
			Message: fmt.Sprintf("Invalid metric. Valid options: %s", strings.Join(ValidMetricNames(), ", ")),
		}
	}
	if limit < 1 || limit > 100 {
		return nil, &ValidationError{Message: "limit must be between 1 and 100"}
	}
	if order != "asc" && order != "desc" {
		return nil, &ValidationError{Message: "order must be asc or desc"}
	}

	return a.client.GetRanking(ctx, metric, limit, order)
}
