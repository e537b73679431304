package handlers

import (
	"net/http"
	"strings"

	"github.com/samboofficeota-hue/finance-analysis/internal/analyzer"
)

// CompareCompanies handles GET /compare
//
// codes はカンマ区切りのEDINETコード (2〜10社)。
func (h *Handlers) CompareCompanies(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("codes")
	years, err := queryInt(r, "years", 0)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}

	var codes []string
	for _, c := range strings.Split(raw, ",") {
		if c = strings.TrimSpace(c); c != "" {
			codes = append(codes, c)
		}
	}

	if len(codes) == 0 {
		respondError(w, h.logger, &analyzer.ValidationError{
			Message: "codesパラメータを指定してください (カンマ区切りのEDINETコード)",
		})
		return
	}

	result, err := h.analyzer.Compare(r.Context(), codes, years)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}

	respondJSON(w, http.StatusOK, result)
}
