package edinet

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
)

// Status checks upstream reachability via the /status endpoint.
// このエンドポイントは認証不要（edinetdb.jpの仕様）。
// 本文がJSONでなくても疎通自体は確認できているので、ステータスコードを返す。
func (c *Client) Status(ctx context.Context) (int, Document, error) {
	resp, err := c.httpClient.Get(ctx, c.baseURL+"/status")
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()

	var doc Document
	if resp.StatusCode == http.StatusOK {
		body, err := io.ReadAll(resp.Body)
		if err == nil && len(body) > 0 {
			_ = json.Unmarshal(body, &doc)
		}
	}

	return resp.StatusCode, doc, nil
}
