package edinet

import (
	"context"
	"encoding/json"
)

// FinancialPeriod is one fiscal period of the financial time series.
// 数値フィールドはすべて任意。キー欠落もnullも nil に正規化する。
type FinancialPeriod struct {
	FiscalPeriod      string   `json:"fiscal_period"`
	FiscalYearEndDate string   `json:"fiscal_year_end_date"`
	NetSales          *float64 `json:"net_sales"`
	OperatingIncome   *float64 `json:"operating_income"`
	OrdinaryIncome    *float64 `json:"ordinary_income"`
	NetIncome         *float64 `json:"net_income"`
	TotalAssets       *float64 `json:"total_assets"`
	NetAssets         *float64 `json:"net_assets"`
	Equity            *float64 `json:"equity"`
	ROE               *float64 `json:"roe"`
	ROA               *float64 `json:"roa"`
	EquityRatio       *float64 `json:"equity_ratio"`
	OperatingMargin   *float64 `json:"operating_margin"`
}

// FinancialsResult holds the normalized financial time series plus the
// sibling top-level fields of the original document.
// 期の並びは上流が返す新しい順のまま。こちらでは並べ替えない。
type FinancialsResult struct {
	Financials []FinancialPeriod
	Meta       Document
}

// Document rebuilds the wire document: all sibling fields preserved, the
// series under the canonical "financials" key.
func (r *FinancialsResult) Document() Document {
	out := make(Document, len(r.Meta)+1)
	for k, v := range r.Meta {
		out[k] = v
	}
	out["financials"] = r.Financials
	return out
}

// MarshalJSON serializes the result as its wire document.
func (r *FinancialsResult) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.Document())
}

// GetFinancials fetches and normalizes the financial time series.
func (c *Client) GetFinancials(ctx context.Context, code string) (*FinancialsResult, error) {
	doc, err := c.get(ctx, "companies/"+code+"/financials", nil)
	if err != nil {
		return nil, err
	}
	return NormalizeFinancials(doc), nil
}

// NormalizeFinancials extracts the period list from whichever envelope key
// the provider used and reparents it under the canonical key, keeping all
// sibling top-level fields unchanged.
func NormalizeFinancials(doc Document) *FinancialsResult {
	items := extractList(doc, financialsEnvelopeKeys)

	periods := make([]FinancialPeriod, 0, len(items))
	for _, item := range items {
		m, ok := item.(map[string]any)
		if !ok {
			continue
		}
		periods = append(periods, parsePeriod(m))
	}

	meta := make(Document, len(doc))
	for k, v := range doc {
		// どちらのエンベロープキーも出力には残さない。正規キーはDocument()で埋める。
		if k == "data" || k == "financials" {
			continue
		}
		meta[k] = v
	}

	return &FinancialsResult{Financials: periods, Meta: meta}
}

func parsePeriod(m map[string]any) FinancialPeriod {
	return FinancialPeriod{
		FiscalPeriod:      stringValue(m["fiscal_period"]),
		FiscalYearEndDate: stringValue(m["fiscal_year_end_date"]),
		NetSales:          floatValue(m["net_sales"]),
		OperatingIncome:   floatValue(m["operating_income"]),
		OrdinaryIncome:    floatValue(m["ordinary_income"]),
		NetIncome:         floatValue(m["net_income"]),
		TotalAssets:       floatValue(m["total_assets"]),
		NetAssets:         floatValue(m["net_assets"]),
		Equity:            floatValue(m["equity"]),
		ROE:               floatValue(m["roe"]),
		ROA:               floatValue(m["roa"]),
		EquityRatio:       floatValue(m["equity_ratio"]),
		OperatingMargin:   floatValue(m["operating_margin"]),
	}
}
