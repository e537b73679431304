package analyzer

import "context"

// AnalysisReport is the financial analysis summary for one company,
// derived from the newest period of the windowed time series.
type AnalysisReport struct {
	Company      AnalysisCompany     `json:"company"`
	LatestPeriod AnalysisPeriod      `json:"latest_period"`
	Performance  AnalysisPerformance `json:"performance"`
	Balance      AnalysisBalance     `json:"balance"`
	Indicators   AnalysisIndicators  `json:"indicators"`
	Ratings      AnalysisRatings     `json:"ratings"`
}

// AnalysisCompany identifies the analyzed company.
type AnalysisCompany struct {
	Code           string `json:"code"`
	Name           string `json:"name"`
	Industry       string `json:"industry"`
	SecuritiesCode string `json:"securities_code"`
}

// AnalysisPeriod identifies the fiscal period the summary is based on.
type AnalysisPeriod struct {
	FiscalPeriod      string `json:"fiscal_period"`
	FiscalYearEndDate string `json:"fiscal_year_end_date"`
}

// AnalysisPerformance holds the P/L figures. 損益計算書。
type AnalysisPerformance struct {
	NetSales        *float64 `json:"net_sales"`
	OperatingIncome *float64 `json:"operating_income"`
	OrdinaryIncome  *float64 `json:"ordinary_income"`
	NetIncome       *float64 `json:"net_income"`
}

// AnalysisBalance holds the B/S figures. 貸借対照表。
type AnalysisBalance struct {
	TotalAssets *float64 `json:"total_assets"`
	NetAssets   *float64 `json:"net_assets"`
	Equity      *float64 `json:"equity"`
}

// AnalysisIndicators holds the financial ratios. 財務指標。
type AnalysisIndicators struct {
	ROE             *float64 `json:"roe"`
	ROA             *float64 `json:"roa"`
	EquityRatio     *float64 `json:"equity_ratio"`
	OperatingMargin *float64 `json:"operating_margin"`
}

// AnalysisRatings holds the three tier classifications.
type AnalysisRatings struct {
	Profitability Rating `json:"profitability"`
	Efficiency    Rating `json:"efficiency"`
	Stability     Rating `json:"stability"`
}

// Analyze builds the analysis summary for one company.
// years 指定時はその範囲の直近1期で分析する。ウィンドウ後に期が残らなければ
// ErrNoFinancialData を返す。
func (a *Analyzer) Analyze(ctx context.Context, code string, years int) (*AnalysisReport, error) {
	info, err := a.client.GetCompany(ctx, code)
	if err != nil {
		return nil, err
	}

	financials, err := a.client.GetFinancials(ctx, code)
	if err != nil {
		return nil, err
	}

	periods := WindowPeriods(financials.Financials, years)
	if len(periods) == 0 {
		return nil, ErrNoFinancialData
	}
	latest := periods[0]

	return &AnalysisReport{
		Company: AnalysisCompany{
			Code:           code,
			Name:           info.Name(),
			Industry:       info.Industry(),
			SecuritiesCode: info.SecuritiesCode(),
		},
		LatestPeriod: AnalysisPeriod{
			FiscalPeriod:      latest.FiscalPeriod,
			FiscalYearEndDate: latest.FiscalYearEndDate,
		},
		Performance: AnalysisPerformance{
			NetSales:        latest.NetSales,
			OperatingIncome: latest.OperatingIncome,
			OrdinaryIncome:  latest.OrdinaryIncome,
			NetIncome:       latest.NetIncome,
		},
		Balance: AnalysisBalance{
			TotalAssets: latest.TotalAssets,
			NetAssets:   latest.NetAssets,
			Equity:      latest.Equity,
		},
		Indicators: AnalysisIndicators{
			ROE:             latest.ROE,
			ROA:             latest.ROA,
			EquityRatio:     latest.EquityRatio,
			OperatingMargin: latest.OperatingMargin,
		},
		Ratings: AnalysisRatings{
			Profitability: RateProfitability(latest.ROE),
			Efficiency:    RateEfficiency(latest.ROA),
			Stability:     RateStability(latest.EquityRatio),
		},
	}, nil
}
