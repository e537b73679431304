package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
)

// GetRanking handles GET /rankings/{metric}
func (h *Handlers) GetRanking(w http.ResponseWriter, r *http.Request) {
	metric := mux.Vars(r)["metric"]
	limit, err := queryInt(r, "limit", 20)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	order := r.URL.Query().Get("order")
	if order == "" {
		order = "desc"
	}

	doc, err := h.analyzer.Ranking(r.Context(), metric, limit, order)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}

	respondJSON(w, http.StatusOK, doc)
}
