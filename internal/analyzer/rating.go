package analyzer

// Rating is one of four ordinal financial-health tiers, labelled the way the
// EDINET DB reports them. 値が取れない場合は N/A。
type Rating string

const (
	RatingExcellent        Rating = "優秀"
	RatingGood             Rating = "良好"
	RatingAverage          Rating = "普通"
	RatingNeedsImprovement Rating = "要改善"
	RatingUnrated          Rating = "N/A"
)

// ratioThresholds holds the inclusive lower bounds of the upper three tiers.
// 境界値は上のティアに属する。下回ったら要改善。
type ratioThresholds struct {
	excellent float64
	good      float64
	average   float64
}

var (
	profitabilityThresholds = ratioThresholds{excellent: 15, good: 10, average: 5}  // ROE %
	efficiencyThresholds    = ratioThresholds{excellent: 10, good: 5, average: 2}   // ROA %
	stabilityThresholds     = ratioThresholds{excellent: 50, good: 30, average: 20} // 自己資本比率 %
)

func rateRatio(value *float64, t ratioThresholds) Rating {
	if value == nil {
		return RatingUnrated
	}
	switch {
	case *value >= t.excellent:
		return RatingExcellent
	case *value >= t.good:
		return RatingGood
	case *value >= t.average:
		return RatingAverage
	default:
		return RatingNeedsImprovement
	}
}

// RateProfitability classifies ROE (%).
func RateProfitability(roe *float64) Rating {
	return rateRatio(roe, profitabilityThresholds)
}

// RateEfficiency classifies ROA (%).
func RateEfficiency(roa *float64) Rating {
	return rateRatio(roa, efficiencyThresholds)
}

// RateStability classifies the equity ratio (%).
func RateStability(equityRatio *float64) Rating {
	return rateRatio(equityRatio, stabilityThresholds)
}
