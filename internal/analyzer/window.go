package analyzer

import "github.com/samboofficeota-hue/finance-analysis/internal/external/edinet"

// WindowPeriods truncates a newest-first time series to its most recent n
// periods. n が 0 以下なら全期間をそのまま返す。並べ替えはしない。
func WindowPeriods(periods []edinet.FinancialPeriod, n int) []edinet.FinancialPeriod {
	if n <= 0 || n >= len(periods) {
		return periods
	}
	return periods[:n]
}
