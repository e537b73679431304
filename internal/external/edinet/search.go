package edinet

import (
	"context"
	"net/url"
	"strconv"
)

// SearchCompanies searches companies by keyword, or lists companies when the
// query is empty.
// キーワード検索は /search?q= を使用する（/companies?query= は非対応）。
// 検索結果は正規化のうえ perPage 件に切り詰める。一覧取得はそのまま返す。
func (c *Client) SearchCompanies(ctx context.Context, query string, perPage, page int) (Document, error) {
	if query != "" {
		doc, err := c.get(ctx, "search", url.Values{"q": []string{query}})
		if err != nil {
			return nil, err
		}

		companies := NormalizeSearchResults(doc)
		if perPage > 0 && len(companies) > perPage {
			companies = companies[:perPage]
		}
		return Document{"companies": companies}, nil
	}

	params := url.Values{}
	params.Set("per_page", strconv.Itoa(perPage))
	params.Set("page", strconv.Itoa(page))
	return c.get(ctx, "companies", params)
}
