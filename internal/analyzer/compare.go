package analyzer

import (
	"context"
	"sync"

	"github.com/samboofficeota-hue/finance-analysis/internal/external/edinet"
)

const (
	minCompareCodes = 2
	maxCompareCodes = 10
)

// CompareSuccess is one successfully fetched company in a comparison.
type CompareSuccess struct {
	Code       string                   `json:"code"`
	Name       string                   `json:"name"`
	Info       edinet.CompanyDetail     `json:"info"`
	Financials *edinet.FinancialsResult `json:"financials"`
}

// CompareFailure records why one company could not be fetched.
type CompareFailure struct {
	Code  string `json:"code"`
	Error string `json:"error"`
}

// ComparisonResult partitions a comparison into per-company successes and
// failures. 両パーティションとも入力コード順を保つ。
type ComparisonResult struct {
	Success []CompareSuccess `json:"success"`
	Errors  []CompareFailure `json:"errors"`
}

// compareLane holds one company's outcome; exactly one field is set.
type compareLane struct {
	success *CompareSuccess
	failure *CompareFailure
}

// Compare fetches detail and financials for 2-10 companies.
// 1社の失敗でバッチを中断しない。失敗はその企業のレコードとして記録し、
// 残りの企業は処理を続ける。同じコードが重複していてもそれぞれ独立に処理する。
func (a *Analyzer) Compare(ctx context.Context, codes []string, years int) (*ComparisonResult, error) {
	if len(codes) < minCompareCodes {
		return nil, &ValidationError{Message: "At least 2 company codes are required"}
	}
	if len(codes) > maxCompareCodes {
		return nil, &ValidationError{Message: "Maximum 10 companies can be compared at once"}
	}

	// 企業ごとに1本のゴルーチン（上限10本）。各レーンは自分のスロットにだけ
	// 書き込むのでロックは不要。結果は全レーン完了後に入力順で畳み込む。
	lanes := make([]compareLane, len(codes))
	var wg sync.WaitGroup

	for i, code := range codes {
		wg.Add(1)
		go func(i int, code string) {
			defer wg.Done()
			lanes[i] = a.compareOne(ctx, code, years)
		}(i, code)
	}
	wg.Wait()

	result := &ComparisonResult{
		Success: make([]CompareSuccess, 0, len(codes)),
		Errors:  make([]CompareFailure, 0),
	}
	for _, lane := range lanes {
		if lane.success != nil {
			result.Success = append(result.Success, *lane.success)
		} else if lane.failure != nil {
			result.Errors = append(result.Errors, *lane.failure)
		}
	}
	return result, nil
}

// compareOne fetches one company: detail first, then financials.
func (a *Analyzer) compareOne(ctx context.Context, code string, years int) compareLane {
	info, err := a.client.GetCompany(ctx, code)
	if err != nil {
		a.logger.WithError(err).WithField("code", code).Warn("比較対象の企業情報取得に失敗")
		return compareLane{failure: &CompareFailure{Code: code, Error: err.Error()}}
	}

	financials, err := a.client.GetFinancials(ctx, code)
	if err != nil {
		a.logger.WithError(err).WithField("code", code).Warn("比較対象の財務データ取得に失敗")
		return compareLane{failure: &CompareFailure{Code: code, Error: err.Error()}}
	}

	financials.Financials = WindowPeriods(financials.Financials, years)

	return compareLane{success: &CompareSuccess{
		Code:       code,
		Name:       info.Name(),
		Info:       info,
		Financials: financials,
	}}
}
