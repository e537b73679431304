package edinet

import (
	"testing"
)

func TestNormalizeSearchResults(t *testing.T) {
	tests := []struct {
		name string
		doc  Document
		want []CompanySummary
	}{
		{
			name: "data envelope",
			doc: Document{
				"data": []any{
					map[string]any{
						"edinet_code":     "E02367",
						"name":            "任天堂株式会社",
						"securities_code": "79740",
						"industry":        "その他製品",
					},
				},
			},
			want: []CompanySummary{
				{EDINETCode: "E02367", Name: "任天堂株式会社", SecuritiesCode: "79740", Industry: "その他製品"},
			},
		},
		{
			name: "companies envelope",
			doc: Document{
				"companies": []any{
					map[string]any{"edinet_code": "E01825", "name": "ソニーグループ株式会社"},
				},
			},
			want: []CompanySummary{
				{EDINETCode: "E01825", Name: "ソニーグループ株式会社"},
			},
		},
		{
			name: "synonym keys",
			doc: Document{
				"data": []any{
					map[string]any{
						"code":     "E02144",
						"name":     "トヨタ自動車株式会社",
						"sec_code": "72030",
						"sector":   "輸送用機器",
					},
				},
			},
			want: []CompanySummary{
				{EDINETCode: "E02144", Name: "トヨタ自動車株式会社", SecuritiesCode: "72030", Industry: "輸送用機器"},
			},
		},
		{
			name: "canonical key preferred over synonym",
			doc: Document{
				"data": []any{
					map[string]any{
						"edinet_code":     "E02367",
						"code":            "IGNORED",
						"securities_code": "79740",
						"sec_code":        "00000",
						"name":            "任天堂株式会社",
					},
				},
			},
			want: []CompanySummary{
				{EDINETCode: "E02367", Name: "任天堂株式会社", SecuritiesCode: "79740"},
			},
		},
		{
			name: "missing fields normalize to empty string",
			doc: Document{
				"data": []any{
					map[string]any{"name": "名称のみ株式会社"},
				},
			},
			want: []CompanySummary{
				{Name: "名称のみ株式会社"},
			},
		},
		{
			name: "numeric securities code",
			doc: Document{
				"data": []any{
					map[string]any{"edinet_code": "E02367", "name": "任天堂株式会社", "sec_code": float64(79740)},
				},
			},
			want: []CompanySummary{
				{EDINETCode: "E02367", Name: "任天堂株式会社", SecuritiesCode: "79740"},
			},
		},
		{
			name: "neither envelope key",
			doc:  Document{"message": "ok"},
			want: []CompanySummary{},
		},
		{
			name: "non-list payload normalizes to empty",
			doc:  Document{"data": "unexpected", "companies": map[string]any{}},
			want: []CompanySummary{},
		},
		{
			name: "empty first envelope falls through to second",
			doc: Document{
				"data": []any{},
				"companies": []any{
					map[string]any{"edinet_code": "E02503", "name": "キッコーマン株式会社"},
				},
			},
			want: []CompanySummary{
				{EDINETCode: "E02503", Name: "キッコーマン株式会社"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeSearchResults(tt.doc)
			if len(got) != len(tt.want) {
				t.Fatalf("NormalizeSearchResults() returned %d companies, want %d", len(got), len(tt.want))
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("company[%d] = %+v, want %+v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestNormalizeSearchResultsEquivalentEnvelopes(t *testing.T) {
	// 同じ項目ならどちらのエンベロープでも同じ正規化結果になること
	item := map[string]any{
		"edinet_code":     "E02367",
		"name":            "任天堂株式会社",
		"securities_code": "79740",
		"industry":        "その他製品",
	}

	fromData := NormalizeSearchResults(Document{"data": []any{item}})
	fromCompanies := NormalizeSearchResults(Document{"companies": []any{item}})

	if len(fromData) != 1 || len(fromCompanies) != 1 {
		t.Fatalf("expected 1 company from each envelope, got %d and %d", len(fromData), len(fromCompanies))
	}
	if fromData[0] != fromCompanies[0] {
		t.Errorf("envelope shapes diverged: %+v vs %+v", fromData[0], fromCompanies[0])
	}
}

func TestStringValue(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want string
	}{
		{"string", "E02367", "E02367"},
		{"float", float64(79740), "79740"},
		{"float with fraction", 12.5, "12.5"},
		{"nil", nil, ""},
		{"bool", true, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := stringValue(tt.in); got != tt.want {
				t.Errorf("stringValue(%v) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestFloatValue(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want *float64
	}{
		{"float", 15.2, ptr(15.2)},
		{"string number", "15.2", ptr(15.2)},
		{"null", nil, nil},
		{"non numeric string", "N/A", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := floatValue(tt.in)
			if (got == nil) != (tt.want == nil) {
				t.Fatalf("floatValue(%v) = %v, want %v", tt.in, got, tt.want)
			}
			if got != nil && *got != *tt.want {
				t.Errorf("floatValue(%v) = %v, want %v", tt.in, *got, *tt.want)
			}
		})
	}
}

func ptr(f float64) *float64 { return &f }
