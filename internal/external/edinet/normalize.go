package edinet

import "strconv"

// EDINET DB APIはデプロイ世代によってエンベロープキーとフィールド名が揺れる。
// 既知の同義キーを優先順で表に持ち、Normalizerは常にこの表だけを参照する。
// 新しい同義キーが現れたらコードではなく表に追加する。

// envelope keys holding list payloads, in preference order
var (
	searchEnvelopeKeys     = []string{"data", "companies"}
	financialsEnvelopeKeys = []string{"data", "financials"}
	rankingEnvelopeKeys    = []string{"ranking", "data"}
)

// companyFieldSynonyms maps each canonical CompanySummary field to the
// source keys that may hold it, in preference order.
var companyFieldSynonyms = map[string][]string{
	"edinet_code":     {"edinet_code", "code"},
	"name":            {"name"},
	"securities_code": {"securities_code", "sec_code"},
	"industry":        {"industry", "sector"},
}

// CompanySummary is the normalized form of a search result item.
// 値が取れないフィールドは空文字。nilは使わない。
type CompanySummary struct {
	EDINETCode     string `json:"edinet_code"`
	Name           string `json:"name"`
	SecuritiesCode string `json:"securities_code"`
	Industry       string `json:"industry"`
}

// NormalizeSearchResults extracts and normalizes the company list from a
// search response document. A malformed payload yields an empty slice:
// 上流のフォーマット揺れと0件を区別する手段がないため、どちらも空として返す。
func NormalizeSearchResults(doc Document) []CompanySummary {
	items := extractList(doc, searchEnvelopeKeys)

	companies := make([]CompanySummary, 0, len(items))
	for _, item := range items {
		m, ok := item.(map[string]any)
		if !ok {
			continue
		}
		companies = append(companies, CompanySummary{
			EDINETCode:     firstNonEmpty(m, companyFieldSynonyms["edinet_code"]),
			Name:           firstNonEmpty(m, companyFieldSynonyms["name"]),
			SecuritiesCode: firstNonEmpty(m, companyFieldSynonyms["securities_code"]),
			Industry:       firstNonEmpty(m, companyFieldSynonyms["industry"]),
		})
	}
	return companies
}

// extractList returns the first non-empty list found under the given keys.
// 空リスト・リスト以外の値・キー欠落はすべて「なし」として次の候補へ進む。
func extractList(doc Document, keys []string) []any {
	for _, key := range keys {
		if list, ok := doc[key].([]any); ok && len(list) > 0 {
			return list
		}
	}
	return nil
}

// firstNonEmpty returns the first non-empty value among the synonym keys.
func firstNonEmpty(item map[string]any, keys []string) string {
	for _, key := range keys {
		if s := stringValue(item[key]); s != "" {
			return s
		}
	}
	return ""
}

// stringValue renders a JSON scalar as a string. 証券コードが数値で返る
// 世代があるため、数値もそのまま文字列化する。
func stringValue(v any) string {
	switch value := v.(type) {
	case string:
		return value
	case float64:
		return strconv.FormatFloat(value, 'f', -1, 64)
	default:
		return ""
	}
}

// floatValue parses an optional numeric field.
// キー欠落とJSON nullのどちらも「値なし」としてnilに正規化する。
func floatValue(v any) *float64 {
	switch value := v.(type) {
	case float64:
		return &value
	case string:
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return &f
		}
	}
	return nil
}
