package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/samboofficeota-hue/finance-analysis/internal/analyzer"
)

// queryInt parses an integer query parameter. Absent parameters fall back
// to def; malformed values are a validation error, not a silent default.
func queryInt(r *http.Request, name string, def int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, &analyzer.ValidationError{
			Message: fmt.Sprintf("%s must be an integer, got %q", name, raw),
		}
	}
	return v, nil
}

// SearchCompanies handles GET /companies
// キーワードは query パラメータ。旧クライアント向けに q も受け付ける。
func (h *Handlers) SearchCompanies(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")
	if query == "" {
		query = r.URL.Query().Get("q")
	}
	perPage, err := queryInt(r, "per_page", 20)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	page, err := queryInt(r, "page", 1)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}

	doc, err := h.analyzer.Search(r.Context(), query, perPage, page)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}

	respondJSON(w, http.StatusOK, doc)
}

// GetCompany handles GET /companies/{code}
func (h *Handlers) GetCompany(w http.ResponseWriter, r *http.Request) {
	code := mux.Vars(r)["code"]

	detail, err := h.analyzer.CompanyInfo(r.Context(), code)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}

	respondJSON(w, http.StatusOK, detail)
}

// GetFinancials handles GET /companies/{code}/financials
func (h *Handlers) GetFinancials(w http.ResponseWriter, r *http.Request) {
	code := mux.Vars(r)["code"]
	years, err := queryInt(r, "years", 0)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}

	result, err := h.analyzer.Financials(r.Context(), code, years)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}

	respondJSON(w, http.StatusOK, result)
}

// GetAnalysis handles GET /companies/{code}/analysis
func (h *Handlers) GetAnalysis(w http.ResponseWriter, r *http.Request) {
	code := mux.Vars(r)["code"]
	years, err := queryInt(r, "years", 0)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}

	report, err := h.analyzer.Analyze(r.Context(), code, years)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}

	respondJSON(w, http.StatusOK, report)
}
