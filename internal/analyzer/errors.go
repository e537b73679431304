package analyzer

import "errors"

// ValidationError reports caller-supplied input outside the accepted
// contract. 上流エラーと区別して400系で返すための型。
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// ErrNoFinancialData indicates the windowed time series came back empty, so
// there is nothing to analyze.
var ErrNoFinancialData = errors.New("no financial data available")
