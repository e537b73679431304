package edinet

import "context"

// CompanyDetail is the upstream company document, forwarded verbatim.
// 住所や設立年月日など自由形式の属性をそのまま保持する。
type CompanyDetail map[string]any

// Name returns the company name, or empty string when absent.
func (d CompanyDetail) Name() string {
	return firstNonEmpty(d, companyFieldSynonyms["name"])
}

// SecuritiesCode returns the securities code, or empty string when absent.
func (d CompanyDetail) SecuritiesCode() string {
	return firstNonEmpty(d, companyFieldSynonyms["securities_code"])
}

// Industry returns the industry, or empty string when absent.
func (d CompanyDetail) Industry() string {
	return firstNonEmpty(d, companyFieldSynonyms["industry"])
}

// EDINETCode returns the EDINET code, or empty string when absent.
func (d CompanyDetail) EDINETCode() string {
	return firstNonEmpty(d, companyFieldSynonyms["edinet_code"])
}

// StringField returns an arbitrary string attribute, or empty string.
func (d CompanyDetail) StringField(key string) string {
	return stringValue(d[key])
}

// GetCompany fetches the company detail document for an EDINET code.
// 存在しないコードは ErrNotFound になる。
func (c *Client) GetCompany(ctx context.Context, code string) (CompanyDetail, error) {
	doc, err := c.get(ctx, "companies/"+code, nil)
	if err != nil {
		return nil, err
	}
	return CompanyDetail(doc), nil
}
