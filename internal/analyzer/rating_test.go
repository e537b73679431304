package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func f(v float64) *float64 { return &v }

func TestRateProfitability(t *testing.T) {
	tests := []struct {
		name string
		roe  *float64
		want Rating
	}{
		{"excellent boundary", f(15.0), RatingExcellent},
		{"just below excellent", f(14.99), RatingGood},
		{"good boundary", f(10.0), RatingGood},
		{"average boundary", f(5.0), RatingAverage},
		{"below average", f(4.99), RatingNeedsImprovement},
		{"negative", f(-3.2), RatingNeedsImprovement},
		{"high", f(42.0), RatingExcellent},
		{"absent", nil, RatingUnrated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RateProfitability(tt.roe))
		})
	}
}

func TestRateEfficiency(t *testing.T) {
	tests := []struct {
		name string
		roa  *float64
		want Rating
	}{
		{"excellent boundary", f(10.0), RatingExcellent},
		{"good boundary", f(5.0), RatingGood},
		{"average boundary", f(2.0), RatingAverage},
		{"below average", f(1.99), RatingNeedsImprovement},
		{"absent", nil, RatingUnrated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RateEfficiency(tt.roa))
		})
	}
}

func TestRateStability(t *testing.T) {
	tests := []struct {
		name        string
		equityRatio *float64
		want        Rating
	}{
		{"excellent boundary", f(50.0), RatingExcellent},
		{"good boundary", f(30.0), RatingGood},
		{"average boundary", f(20.0), RatingAverage},
		{"below average", f(19.99), RatingNeedsImprovement},
		{"absent", nil, RatingUnrated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RateStability(tt.equityRatio))
		})
	}
}

// 値を上げて評価が下がることはない（単調な階段関数であること）
func TestRatingMonotonic(t *testing.T) {
	order := map[Rating]int{
		RatingNeedsImprovement: 0,
		RatingAverage:          1,
		RatingGood:             2,
		RatingExcellent:        3,
	}

	raters := map[string]func(*float64) Rating{
		"profitability": RateProfitability,
		"efficiency":    RateEfficiency,
		"stability":     RateStability,
	}

	for name, rater := range raters {
		t.Run(name, func(t *testing.T) {
			prev := -1
			for v := -10.0; v <= 60.0; v += 0.25 {
				tier := order[rater(f(v))]
				if tier < prev {
					t.Fatalf("rating decreased at value %.2f", v)
				}
				prev = tier
			}
		})
	}
}
