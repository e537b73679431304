package edinet

import (
	"context"
	"net/url"
	"strconv"
)

// RankingEntry is one company in a metric ranking.
// 並び順は上流がソート済みのものをそのまま使う。
type RankingEntry struct {
	Name       string   `json:"name"`
	EDINETCode string   `json:"edinet_code"`
	Value      *float64 `json:"value"`
}

// GetRanking fetches the ranking document for a metric.
// ランキングは単一エンベロープの既知形式なので再整形しない。
func (c *Client) GetRanking(ctx context.Context, metric string, limit int, order string) (Document, error) {
	params := url.Values{}
	params.Set("limit", strconv.Itoa(limit))
	params.Set("order", order)
	return c.get(ctx, "rankings/"+metric, params)
}

// ParseRankingEntries extracts typed entries for terminal display.
func ParseRankingEntries(doc Document) []RankingEntry {
	items := extractList(doc, rankingEnvelopeKeys)

	entries := make([]RankingEntry, 0, len(items))
	for _, item := range items {
		m, ok := item.(map[string]any)
		if !ok {
			continue
		}
		entries = append(entries, RankingEntry{
			Name:       firstNonEmpty(m, companyFieldSynonyms["name"]),
			EDINETCode: firstNonEmpty(m, companyFieldSynonyms["edinet_code"]),
			Value:      floatValue(m["value"]),
		})
	}
	return entries
}
